package fs

import (
	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/logex"
)

var ErrDeviceTooSmall = logex.Define("device fits less than the minimum block count")

// FormatConfig is threaded through the builder explicitly; there is no
// ambient state.
type FormatConfig struct {
	BlockBit int
	AddrLen  int
	Label    string
	Verbose  bool
}

// FormatResult reports what the builder wrote.
type FormatResult struct {
	Blocks     uint64 // usable block count after clamping
	Clamped    bool   // address width could not cover the whole device
	RootDir    uint64
	FreeHead   uint64
	FreeTail   uint64
	FreeBlocks uint64
	ChainLinks uint64
	FreeSlots  uint64
}

// Format writes a fresh filesystem onto dev: superblock at address 0,
// root directory, then the free-space chain, and finally back-patches
// the superblock with the free-list pointers and count. It
// irreversibly overwrites those regions and nothing beyond them.
//
// FreeBlocks preserves the original accounting: chain links spend one
// address each and are counted alongside the recorded slots.
func Format(dev bio.RawDisker, blocks uint64, cfg *FormatConfig) (*FormatResult, error) {
	if blocks < MinBlocks {
		return nil, ErrDeviceTooSmall.Trace(blocks, MinBlocks)
	}
	res := &FormatResult{Blocks: blocks}
	if max := MaxBlocks(cfg.AddrLen); blocks > max {
		// the unaddressable tail of the device is left untouched
		logex.Warn("address length not sufficient, clamping to", max, "blocks")
		blocks = max
		res.Blocks = max
		res.Clamped = true
	}

	codec := NewCodec(dev, cfg.BlockBit, cfg.AddrLen)

	sb := NewSuperblock(cfg.BlockBit, cfg.AddrLen, blocks, cfg.Label)
	if cfg.Verbose {
		logex.Info("writing superblock at addr=", uint64(SuperblockAddr))
	}
	if err := codec.WriteBlock(SuperblockAddr, sb); err != nil {
		return nil, logex.Trace(err)
	}

	current := uint64(SuperblockAddr + 1)

	root := NewRootDir()
	if cfg.Verbose {
		logex.Info("creating root directory at addr=", current)
	}
	if err := codec.WriteBlock(current, root); err != nil {
		return nil, logex.Trace(err)
	}
	sb.RootDir = current
	res.RootDir = current
	current++

	fc := &freeChain{codec: codec, verbose: cfg.Verbose}
	if err := fc.run(current, blocks); err != nil {
		return nil, logex.Trace(err)
	}
	sb.FreeHead = fc.head
	sb.FreeTail = fc.tail
	sb.FreeBlocks = fc.count

	sb.Updated = Now()
	if err := codec.WriteBlock(SuperblockAddr, sb); err != nil {
		return nil, logex.Trace(err)
	}

	res.FreeHead = fc.head
	res.FreeTail = fc.tail
	res.FreeBlocks = fc.count
	res.ChainLinks = fc.links
	res.FreeSlots = fc.slots
	return res, nil
}
