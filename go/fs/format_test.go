package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/allmad/lanyfs/go/disk"
	"github.com/chzyer/test"
)

// countDisk counts writes so tests can assert "no writes happened".
type countDisk struct {
	mem    *test.MemDisk
	writes int
}

func (d *countDisk) ReadAt(b []byte, off int64) (int, error) {
	return d.mem.ReadAt(b, off)
}

func (d *countDisk) WriteAt(b []byte, off int64) (int, error) {
	d.writes++
	return d.mem.WriteAt(b, off)
}

func newCountDisk() *countDisk {
	return &countDisk{mem: test.NewMemDisk()}
}

func testDevice(t *testing.T, name string, blocks, blocksize int64) *disk.File {
	test.CleanTmp()
	path := filepath.Join(test.Root(), name)
	test.Nil(os.MkdirAll(test.Root(), 0755))
	fd, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	test.Nil(err)
	test.Nil(fd.Truncate(blocks * blocksize))
	test.Nil(fd.Close())

	dev, err := disk.Open(path)
	test.Nil(err)
	return dev
}

func TestFormat(t *testing.T) {
	defer test.New(t)

	dev := testDevice(t, "dev.img", 64, 512)
	defer dev.Close()

	test.Equal(dev.Blocks(9), uint64(64))
	res, err := Format(dev, dev.Blocks(9), &FormatConfig{
		BlockBit: 9,
		AddrLen:  4,
		Label:    "LanyFS Storage",
	})
	test.Nil(err)
	test.Equal(res.Clamped, false)
	test.Equal(res.RootDir, uint64(1))
	test.Equal(res.FreeHead, uint64(2))
	test.Equal(res.FreeTail, uint64(2))
	test.Equal(res.ChainLinks, uint64(1))
	// 64 blocks minus superblock, root dir and the chain block itself
	test.Equal(res.FreeSlots, uint64(61))
	// chain links spend their own address and are counted too
	test.Equal(res.FreeBlocks, uint64(62))

	sb, err := Detect(dev)
	test.Nil(err)
	test.Equal(sb.Blocks, uint64(64))
	test.Equal(sb.RootDir, uint64(1))
	test.Equal(sb.FreeHead, uint64(2))
	test.Equal(sb.FreeTail, uint64(2))
	test.Equal(sb.FreeBlocks, uint64(62))
	test.Equal(sb.Label, "LanyFS Storage")
	test.True(!sb.Created.IsZero())
	test.True(!sb.Updated.IsZero())
	test.True(sb.Checked.IsZero())
	test.Equal(sb.BadBlocks, uint64(0))
	// back-patch flushed the superblock twice
	test.Equal(sb.Hdr.Wrcnt, uint16(2))

	codec := NewCodec(dev, 9, 4)
	blk, err := codec.ReadBlock(sb.RootDir)
	test.Nil(err)
	root, ok := blk.(*Dir)
	test.True(ok)
	test.Equal(root.Type(), TypeDir)
	test.Equal(root.Name, RootDirName)
	test.Equal(root.Hdr.Wrcnt, uint16(1))

	seen := make(map[uint64]bool)
	stat, err := CheckFreeChain(codec, sb, func(addr uint64) {
		test.True(!seen[addr])
		seen[addr] = true
	})
	test.Nil(err)
	test.Equal(stat.Links, uint64(1))
	test.Equal(stat.Slots, uint64(61))
	// exactly [3, 64), nothing else
	test.Equal(len(seen), 61)
	for addr := uint64(3); addr < 64; addr++ {
		test.True(seen[addr])
	}
}

func TestFormatMultiChain(t *testing.T) {
	defer test.New(t)

	md := newCountDisk()
	// 8-byte addresses in 512-byte blocks: 62 slots per link
	res, err := Format(md, 200, &FormatConfig{
		BlockBit: 9,
		AddrLen:  8,
		Label:    "multi",
	})
	test.Nil(err)
	test.Equal(res.ChainLinks, uint64(4))
	test.Equal(res.FreeSlots, uint64(194))
	test.Equal(res.FreeBlocks, uint64(198))
	test.Equal(res.FreeHead, uint64(2))
	test.Equal(res.FreeTail, uint64(191))

	sb, err := Detect(md)
	test.Nil(err)
	codec := NewCodec(md, 9, 8)
	links := []uint64{2, 65, 128, 191}
	isLink := make(map[uint64]bool)
	for _, a := range links {
		isLink[a] = true
	}
	seen := make(map[uint64]bool)
	stat, err := CheckFreeChain(codec, sb, func(addr uint64) {
		test.True(!seen[addr])
		seen[addr] = true
	})
	test.Nil(err)
	test.Equal(stat.Links, uint64(4))
	test.Equal(stat.Tail, uint64(191))
	// every address in [3, 200) except the links' own locations
	test.Equal(len(seen), 194)
	for addr := uint64(3); addr < 200; addr++ {
		test.Equal(seen[addr], !isLink[addr])
	}

	// every link except the last is exactly full
	for i, a := range links {
		blk, err := codec.ReadBlock(a)
		test.Nil(err)
		chain, ok := blk.(*Chain)
		test.True(ok)
		if i < len(links)-1 {
			test.Equal(chain.FreeSlot(), -1)
			test.Equal(chain.Next, links[i+1])
		} else {
			test.Equal(chain.Next, uint64(0))
		}
	}
}

func TestFormatTooSmall(t *testing.T) {
	defer test.New(t)

	md := newCountDisk()
	res, err := Format(md, MinBlocks-1, &FormatConfig{
		BlockBit: 9,
		AddrLen:  4,
	})
	test.Nil(res)
	test.Equal(err, ErrDeviceTooSmall)
	// rejected before any I/O
	test.Equal(md.writes, 0)
}

func TestFormatClamped(t *testing.T) {
	defer test.New(t)

	md := newCountDisk()
	// 1-byte addresses cover 256 blocks, the device holds 300
	res, err := Format(md, 300, &FormatConfig{
		BlockBit: 9,
		AddrLen:  1,
	})
	test.Nil(err)
	test.True(res.Clamped)
	test.Equal(res.Blocks, uint64(256))

	sb, err := Detect(md)
	test.Nil(err)
	test.Equal(sb.Blocks, uint64(256))

	codec := NewCodec(md, 9, 1)
	var max uint64
	stat, err := CheckFreeChain(codec, sb, func(addr uint64) {
		if addr > max {
			max = addr
		}
	})
	test.Nil(err)
	test.Equal(stat.Links, uint64(1))
	test.Equal(stat.Slots, uint64(253))
	test.True(max < 256)
}
