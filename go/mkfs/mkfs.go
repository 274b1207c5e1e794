package mkfs

import (
	"fmt"
	"time"

	"github.com/allmad/lanyfs/go/disk"
	"github.com/allmad/lanyfs/go/fs"
	"github.com/allmad/lanyfs/go/ptrace"
	"github.com/chzyer/flow"
	"github.com/chzyer/logex"
)

var (
	ErrInvalidAddrLen   = logex.Define("invalid address length")
	ErrInvalidBlockSize = logex.Define("invalid blocksize")
	ErrMissingDevice    = logex.Define("usage: lanyfs mkfs [-v] [-l label] [-b blocksize] [-a addrlen] device")
)

type Config struct {
	AddrBits  int    `name:"a" desc:"address length in bits, multiple of 8" default:"32"`
	BlockSize int    `name:"b" desc:"blocksize in bytes, power of two" default:"4096"`
	Label     string `name:"l" desc:"volume label" default:"LanyFS Storage"`
	Verbose   bool   `name:"v" desc:"verbose output"`
	Device    string `type:"[0]"`
}

func (c *Config) FlaglyDesc() string {
	return "write a fresh lanyfs onto a device"
}

// addrLen validates -a before any I/O happens.
func (c *Config) addrLen() (int, error) {
	if c.AddrBits%8 != 0 ||
		c.AddrBits < fs.MinAddrLen*8 || c.AddrBits > fs.MaxAddrLen*8 {
		return 0, ErrInvalidAddrLen.Trace(c.AddrBits)
	}
	return c.AddrBits / 8, nil
}

// blockBit validates -b before any I/O happens.
func (c *Config) blockBit() (int, error) {
	bit := intlog2(c.BlockSize)
	if bit < fs.MinBlockBit || bit > fs.MaxBlockBit {
		return 0, ErrInvalidBlockSize.Trace(c.BlockSize)
	}
	return bit, nil
}

func (c *Config) FlaglyHandle(f *flow.Flow) error {
	defer f.Close()

	if c.Device == "" {
		return ErrMissingDevice.Trace()
	}
	addrLen, err := c.addrLen()
	if err != nil {
		return logex.Trace(err)
	}
	blockBit, err := c.blockBit()
	if err != nil {
		return logex.Trace(err)
	}
	label := c.Label
	if len(label) > fs.NameLen-1 {
		label = label[:fs.NameLen-1]
	}

	dev, err := disk.Open(c.Device)
	if err != nil {
		return logex.Trace(err)
	}
	defer dev.Close()

	fmt.Printf("address length: %d bit\n", addrLen*8)
	fmt.Printf("blocksize: %d bytes\n", 1<<uint(blockBit))
	fmt.Printf("volume label: %s\n", label)
	if overhead := dev.Overhead(blockBit); overhead > 0 {
		logex.Info("device has", overhead, "bytes overhead")
	}

	start := time.Now()
	res, err := fs.Format(dev, dev.Blocks(blockBit), &fs.FormatConfig{
		BlockBit: blockBit,
		AddrLen:  addrLen,
		Label:    label,
		Verbose:  c.Verbose,
	})
	if err != nil {
		return logex.Trace(err)
	}
	if err := dev.Sync(); err != nil {
		return logex.Trace(err)
	}

	fmt.Printf("mapped %d free blocks in %d chain links\n",
		res.FreeSlots, res.ChainLinks)
	if c.Verbose {
		// superblock (twice), root dir and every chain link
		var written ptrace.Size
		written.Add(int64(res.ChainLinks+3) << uint(blockBit))
		dur := time.Since(start)
		logex.Info("wrote", written.String(), "in", dur,
			"(", written.Rate(dur), ")")
	}
	fmt.Println("all done")
	return nil
}

// intlog2 returns the exponent when n is an exact power of two,
// -1 otherwise.
func intlog2(n int) int {
	if n <= 0 || n&(n-1) != 0 {
		return -1
	}
	bit := 0
	for n > 1 {
		n >>= 1
		bit++
	}
	return bit
}
