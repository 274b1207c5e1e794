package fs

import "github.com/chzyer/logex"

var (
	ErrChainCycle        = logex.Define("free chain does not terminate")
	ErrChainBounds       = logex.Define("free chain address out of range")
	ErrNotChainBlock     = logex.Define("free chain points at a non-chain block")
	ErrFreeCountMismatch = logex.Define("free block count mismatch")
	ErrFreeTailMismatch  = logex.Define("free tail mismatch")
)

// ChainStat summarizes one walk over a volume's free list.
type ChainStat struct {
	Links uint64 // chain blocks visited
	Slots uint64 // non-zero addresses recorded
	Tail  uint64 // last link, the one with next == 0
}

// WalkFreeChain follows the free list from freehead slot by slot,
// calling fn for every recorded address. The list must be simple: a
// walk visiting more links than the volume has blocks is reported as
// a cycle rather than followed forever.
func WalkFreeChain(codec *Codec, sb *Superblock, fn func(addr uint64)) (*ChainStat, error) {
	stat := new(ChainStat)
	addr := sb.FreeHead
	for addr != 0 {
		if addr >= sb.Blocks {
			return nil, ErrChainBounds.Trace(addr, sb.Blocks)
		}
		if stat.Links >= sb.Blocks {
			return nil, ErrChainCycle.Trace()
		}
		blk, err := codec.ReadBlock(addr)
		if err != nil {
			return nil, logex.Trace(err)
		}
		chain, ok := blk.(*Chain)
		if !ok {
			return nil, ErrNotChainBlock.Trace(addr, blk.Type().String())
		}
		stat.Links++
		stat.Tail = addr
		for i := 0; i < chain.Slots(); i++ {
			slot := chain.Slot(i)
			if slot == 0 {
				continue
			}
			stat.Slots++
			if fn != nil {
				fn(slot)
			}
		}
		addr = chain.Next
	}
	return stat, nil
}

// CheckFreeChain walks the free list and verifies it against the
// superblock's own accounting: the recorded tail must be the last
// link, and freeblocks must equal slots plus links (chain blocks spend
// their own address).
func CheckFreeChain(codec *Codec, sb *Superblock, fn func(addr uint64)) (*ChainStat, error) {
	stat, err := WalkFreeChain(codec, sb, fn)
	if err != nil {
		return nil, logex.Trace(err)
	}
	if stat.Tail != sb.FreeTail {
		return stat, ErrFreeTailMismatch.Trace(stat.Tail, sb.FreeTail)
	}
	if stat.Slots+stat.Links != sb.FreeBlocks {
		return stat, ErrFreeCountMismatch.Trace(stat.Slots+stat.Links, sb.FreeBlocks)
	}
	return stat, nil
}
