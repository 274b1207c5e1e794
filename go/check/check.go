package check

import (
	"fmt"

	"github.com/allmad/lanyfs/go/disk"
	"github.com/allmad/lanyfs/go/fs"
	"github.com/chzyer/flow"
	"github.com/chzyer/logex"
)

var ErrMissingDevice = logex.Define("usage: lanyfs check [-v] device")

type Config struct {
	Verbose bool   `name:"v" desc:"report every free address"`
	Device  string `type:"[0]"`
}

func (c *Config) FlaglyDesc() string {
	return "walk the free chain and verify the superblock accounting"
}

func (c *Config) FlaglyHandle(f *flow.Flow) error {
	defer f.Close()

	if c.Device == "" {
		return ErrMissingDevice.Trace()
	}
	dev, err := disk.OpenRead(c.Device)
	if err != nil {
		return logex.Trace(err)
	}
	defer dev.Close()

	sb, err := fs.Detect(dev)
	if err != nil {
		return logex.Trace(err)
	}

	codec := fs.NewCodec(dev, int(sb.BlockBit), int(sb.AddrLen))
	stat, err := fs.CheckFreeChain(codec, sb, func(addr uint64) {
		if c.Verbose {
			logex.Info("free addr=", addr)
		}
	})
	if err != nil {
		return logex.Trace(err)
	}

	fmt.Printf("free chain: %d slots in %d links, tail at %d\n",
		stat.Slots, stat.Links, stat.Tail)
	fmt.Println("free chain ok")
	return nil
}
