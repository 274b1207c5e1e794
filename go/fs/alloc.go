package fs

import "github.com/chzyer/logex"

// freeChain packs every remaining block address into a growing linked
// list of chain blocks. A chain block claims its own address the
// moment it is placed: that address is consumed by the link itself and
// never recorded as a free slot.
type freeChain struct {
	codec   *Codec
	verbose bool

	head  uint64
	tail  uint64
	count uint64 // every consumed address, slots and links alike
	links uint64 // chain blocks written
	slots uint64 // addresses recorded as free
}

// run distributes [current, devBlocks) across the chain, starting the
// first link at current. devBlocks must leave room for at least the
// first link; the boundary check also terminates degenerate volumes
// where that link never fills.
func (fc *freeChain) run(current, devBlocks uint64) error {
	chain := NewChain(fc.codec.blockBit, fc.codec.addrLen)
	addr := current
	fc.head = addr
	current++
	fc.count++
	fc.links++

	for current < devBlocks {
		if chain.FreeSlot() < 0 {
			// rotate: the consumed address becomes the new
			// link's own location
			chain.Next = current
			if err := fc.codec.WriteBlock(addr, chain); err != nil {
				return logex.Trace(err)
			}
			if fc.verbose {
				logex.Info("chain block full, next at addr=", current)
			}
			chain = NewChain(fc.codec.blockBit, fc.codec.addrLen)
			addr = current
			current++
			fc.count++
			fc.links++
			continue
		}
		if err := chain.SetSlot(current); err != nil {
			return logex.Trace(err)
		}
		current++
		fc.count++
		fc.slots++
	}

	chain.Next = 0
	if err := fc.codec.WriteBlock(addr, chain); err != nil {
		return logex.Trace(err)
	}
	fc.tail = addr
	return nil
}
