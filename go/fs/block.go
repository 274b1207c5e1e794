package fs

import (
	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/logex"
)

// Block is one decoded on-disk block. WriteDisk lays out the block
// image from offset 0; the shared header carries the write counter.
type Block interface {
	Type() BlockType
	Header() *Header
	ReadDisk(r *bio.Reader) error
	WriteDisk(w *bio.Writer)
}

var (
	_ Block = new(Superblock)
	_ Block = new(Dir)
	_ Block = new(Chain)
	_ Block = new(Raw)
)

// Header is the 4-byte prefix every block starts with.
type Header struct {
	BlockType BlockType
	Wrcnt     uint16
}

func (h *Header) ReadDisk(r *bio.Reader) error {
	h.BlockType = BlockType(r.Uint8())
	r.Skip(1)
	h.Wrcnt = r.Uint16()
	return nil
}

func (h *Header) WriteDisk(w *bio.Writer) {
	w.Uint8(uint8(h.BlockType))
	w.Skip(1)
	w.Uint16(h.Wrcnt)
}

// Raw is a block whose type the codec does not interpret.
type Raw struct {
	Hdr  Header
	Data []byte
}

func (b *Raw) Type() BlockType { return b.Hdr.BlockType }
func (b *Raw) Header() *Header { return &b.Hdr }

func (b *Raw) ReadDisk(r *bio.Reader) error {
	if err := b.Hdr.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	b.Data = append(b.Data[:0], r.Byte(r.Available())...)
	return nil
}

func (b *Raw) WriteDisk(w *bio.Writer) {
	b.Hdr.WriteDisk(w)
	w.Byte(b.Data)
}

// Codec reads and writes whole blocks at logical addresses. Blocksize
// and address width are fixed per volume at creation time.
type Codec struct {
	dev      bio.RawDisker
	blockBit int
	addrLen  int
}

func NewCodec(dev bio.RawDisker, blockBit, addrLen int) *Codec {
	return &Codec{dev: dev, blockBit: blockBit, addrLen: addrLen}
}

func (c *Codec) BlockSize() int { return 1 << uint(c.blockBit) }
func (c *Codec) AddrLen() int   { return c.addrLen }

func (c *Codec) blockOff(addr uint64) int64 {
	return int64(addr) << uint(c.blockBit)
}

// ReadBlock reads exactly one block at addr and decodes it by its
// type tag.
func (c *Codec) ReadBlock(addr uint64) (Block, error) {
	buf := make([]byte, c.BlockSize())
	n, err := c.dev.ReadAt(buf, c.blockOff(addr))
	if n != len(buf) {
		if err != nil {
			return nil, logex.Trace(err)
		}
		return nil, bio.ErrShortRead.Trace(n, len(buf))
	}

	var blk Block
	switch t := BlockType(buf[0]); {
	case t == TypeSuper:
		blk = new(Superblock)
	case t == TypeDir:
		blk = new(Dir)
	case t.IsChain():
		blk = NewChain(c.blockBit, c.addrLen)
	default:
		blk = new(Raw)
	}
	if err := blk.ReadDisk(bio.NewReader(buf)); err != nil {
		return nil, logex.Trace(err)
	}
	return blk, nil
}

// WriteBlock bumps the write counter and flushes exactly one block,
// so the on-disk counter reflects the write that carried it.
func (c *Codec) WriteBlock(addr uint64, blk Block) error {
	blk.Header().Wrcnt++
	buf := make([]byte, c.BlockSize())
	blk.WriteDisk(bio.NewWriter(buf))
	n, err := c.dev.WriteAt(buf, c.blockOff(addr))
	if err != nil {
		return logex.Trace(err)
	}
	if n != len(buf) {
		return bio.ErrShortWrite.Trace(n, len(buf))
	}
	return nil
}
