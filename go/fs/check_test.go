package fs

import (
	"testing"

	"github.com/chzyer/test"
)

func testFormatted(blocks uint64) (*Codec, *Superblock) {
	md := test.NewMemDisk()
	if _, err := Format(md, blocks, &FormatConfig{BlockBit: 9, AddrLen: 4}); err != nil {
		panic(err)
	}
	sb, err := Detect(md)
	if err != nil {
		panic(err)
	}
	return NewCodec(md, 9, 4), sb
}

func TestCheckFreeChain(t *testing.T) {
	defer test.New(t)

	codec, sb := testFormatted(64)
	stat, err := CheckFreeChain(codec, sb, nil)
	test.Nil(err)
	test.Equal(stat.Links+stat.Slots, sb.FreeBlocks)
	test.Equal(stat.Tail, sb.FreeTail)
}

func TestWalkFreeChainBounds(t *testing.T) {
	defer test.New(t)

	codec, sb := testFormatted(64)
	sb.FreeHead = sb.Blocks + 10
	_, err := WalkFreeChain(codec, sb, nil)
	test.Equal(err, ErrChainBounds)
}

func TestWalkFreeChainNotChain(t *testing.T) {
	defer test.New(t)

	codec, sb := testFormatted(64)
	// the root directory is not part of the free list
	sb.FreeHead = sb.RootDir
	_, err := WalkFreeChain(codec, sb, nil)
	test.Equal(err, ErrNotChainBlock)
}

func TestWalkFreeChainCycle(t *testing.T) {
	defer test.New(t)

	codec, sb := testFormatted(64)
	blk, err := codec.ReadBlock(sb.FreeHead)
	test.Nil(err)
	chain := blk.(*Chain)
	chain.Next = sb.FreeHead
	test.Nil(codec.WriteBlock(sb.FreeHead, chain))

	_, err = WalkFreeChain(codec, sb, nil)
	test.Equal(err, ErrChainCycle)
}

func TestCheckFreeChainMismatch(t *testing.T) {
	defer test.New(t)

	codec, sb := testFormatted(64)
	sb.FreeBlocks++
	_, err := CheckFreeChain(codec, sb, nil)
	test.Equal(err, ErrFreeCountMismatch)

	sb.FreeBlocks--
	sb.FreeTail = sb.FreeTail + 1
	_, err = CheckFreeChain(codec, sb, nil)
	test.Equal(err, ErrFreeTailMismatch)
}
