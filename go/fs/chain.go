package fs

import (
	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/logex"
)

var ErrChainFull = logex.Define("chain block has no free slot")

// Chain is one link of the free list: a pointer to the next link
// (0 terminates the list) plus a stream of addrlen-wide address
// slots. A slot holding 0 is unused; address 0 is the superblock and
// never a valid free-list entry.
type Chain struct {
	Hdr  Header
	Next uint64

	stream  []byte
	addrLen int
}

func NewChain(blockBit, addrLen int) *Chain {
	return &Chain{
		// the formatter tags free-list links EXT, like the rest of
		// the lanyfs tooling
		Hdr:     Header{BlockType: TypeExt},
		stream:  make([]byte, (1<<uint(blockBit))-ChainStreamOff),
		addrLen: addrLen,
	}
}

func (c *Chain) Type() BlockType { return c.Hdr.BlockType }
func (c *Chain) Header() *Header { return &c.Hdr }

// Slots is the number of addresses one chain block can hold.
func (c *Chain) Slots() int {
	return len(c.stream) / c.addrLen
}

// Slot returns the address stored at idx, 0 when idx is out of range.
func (c *Chain) Slot(idx int) uint64 {
	if idx < 0 || idx >= c.Slots() {
		return 0
	}
	return bio.GetUint(c.stream[idx*c.addrLen:], c.addrLen)
}

// FreeSlot returns the first unused slot, -1 when the block is full.
func (c *Chain) FreeSlot() int {
	for i := 0; i < c.Slots(); i++ {
		if c.Slot(i) == 0 {
			return i
		}
	}
	return -1
}

// SetSlot records addr in the first unused slot. ErrChainFull is not
// fatal: it signals the caller to rotate to a new chain block.
func (c *Chain) SetSlot(addr uint64) error {
	idx := c.FreeSlot()
	if idx < 0 {
		return ErrChainFull.Trace()
	}
	bio.PutUint(c.stream[idx*c.addrLen:], addr, c.addrLen)
	return nil
}

func (c *Chain) ReadDisk(r *bio.Reader) error {
	if err := c.Hdr.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	c.Next = r.Uint64()
	c.stream = append(c.stream[:0], r.Byte(r.Available())...)
	return nil
}

func (c *Chain) WriteDisk(w *bio.Writer) {
	c.Hdr.WriteDisk(w)
	w.Uint64(c.Next)
	w.Byte(c.stream)
}
