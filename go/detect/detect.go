package detect

import (
	"fmt"

	"github.com/allmad/lanyfs/go/disk"
	"github.com/allmad/lanyfs/go/fs"
	"github.com/chzyer/flow"
	"github.com/chzyer/logex"
)

var ErrMissingDevice = logex.Define("usage: lanyfs detect device")

type Config struct {
	Device string `type:"[0]"`
}

func (c *Config) FlaglyDesc() string {
	return "inspect a device for a lanyfs superblock"
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
	Print(sb)
	return nil
}

// Print reports every superblock field, one per line.
func Print(sb *fs.Superblock) {
	fmt.Printf("blocktype: 0x%x\n", uint8(sb.Hdr.BlockType))
	fmt.Printf("write counter: %d\n", sb.Hdr.Wrcnt)
	fmt.Printf("magic: 0x%x\n", sb.Magic)
	fmt.Printf("version: %d.%d\n", sb.Major, sb.Minor)
	fmt.Printf("address length: %d bit\n", int(sb.AddrLen)*8)
	fmt.Printf("blocksize: %d bytes\n", sb.BlockSize())
	fmt.Printf("root dir: %d\n", sb.RootDir)
	fmt.Printf("total blocks: %d\n", sb.Blocks)
	fmt.Printf("free head: %d\n", sb.FreeHead)
	fmt.Printf("free tail: %d\n", sb.FreeTail)
	fmt.Printf("free blocks: %d\n", sb.FreeBlocks)
	fmt.Printf("created: %s\n", sb.Created)
	fmt.Printf("updated: %s\n", sb.Updated)
	fmt.Printf("checked: %s\n", sb.Checked)
	fmt.Printf("badblocks: %d\n", sb.BadBlocks)
	fmt.Printf("volume label: %s\n", sb.Label)
}
