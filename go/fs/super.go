package fs

import (
	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/logex"
)

var (
	ErrTypeMismatch  = logex.Define("block type mismatch")
	ErrMagicMismatch = logex.Define("magic mismatch")
	ErrBadGeometry   = logex.Define("blocksize or address length out of range")
)

// Superblock is the single block holding volume-wide metadata, stored
// at address 0. Updated is refreshed on every later field change.
type Superblock struct {
	Hdr        Header
	Magic      uint32
	Major      uint8
	Minor      uint8
	BlockBit   uint8 // blocksize exponent to base 2
	AddrLen    uint8 // address width in bytes
	RootDir    uint64
	Blocks     uint64
	FreeHead   uint64
	FreeTail   uint64
	FreeBlocks uint64
	Created    Timestamp
	Updated    Timestamp
	Checked    Timestamp
	BadBlocks  uint64
	Label      string
}

func NewSuperblock(blockBit, addrLen int, blocks uint64, label string) *Superblock {
	now := Now()
	return &Superblock{
		Hdr:      Header{BlockType: TypeSuper},
		Magic:    Magic,
		Major:    MajorVersion,
		Minor:    MinorVersion,
		BlockBit: uint8(blockBit),
		AddrLen:  uint8(addrLen),
		Blocks:   blocks,
		Created:  now,
		Updated:  now,
		Label:    label,
	}
}

func (sb *Superblock) Type() BlockType { return sb.Hdr.BlockType }
func (sb *Superblock) Header() *Header { return &sb.Hdr }

// BlockSize is the volume's block size in bytes.
func (sb *Superblock) BlockSize() int { return 1 << uint(sb.BlockBit) }

// ReadDisk validates the type tag before anything else and the magic
// right after; no further fields are parsed on a mismatch. Geometry
// fields outside the supported ranges are rejected too, so a corrupt
// volume never reaches the block codec.
func (sb *Superblock) ReadDisk(r *bio.Reader) error {
	if err := sb.Hdr.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	if sb.Hdr.BlockType != TypeSuper {
		return ErrTypeMismatch.Trace(sb.Hdr.BlockType.String())
	}
	r.Skip(4)
	sb.Magic = r.Uint32()
	if sb.Magic != Magic {
		return ErrMagicMismatch.Trace(sb.Magic)
	}
	sb.Major = r.Uint8()
	r.Skip(1)
	sb.Minor = r.Uint8()
	r.Skip(1)
	sb.BlockBit = r.Uint8()
	r.Skip(1)
	sb.AddrLen = r.Uint8()
	r.Skip(1)
	if sb.BlockBit < MinBlockBit || sb.BlockBit > MaxBlockBit ||
		sb.AddrLen < MinAddrLen || sb.AddrLen > MaxAddrLen {
		return ErrBadGeometry.Trace(sb.BlockBit, sb.AddrLen)
	}
	sb.RootDir = r.Uint64()
	sb.Blocks = r.Uint64()
	sb.FreeHead = r.Uint64()
	sb.FreeTail = r.Uint64()
	sb.FreeBlocks = r.Uint64()
	if err := sb.Created.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	if err := sb.Updated.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	if err := sb.Checked.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	sb.BadBlocks = r.Uint64()
	r.Skip(8)
	sb.Label = getName(r)
	return nil
}

func (sb *Superblock) WriteDisk(w *bio.Writer) {
	sb.Hdr.WriteDisk(w)
	w.Skip(4)
	w.Uint32(Magic)
	w.Uint8(sb.Major)
	w.Skip(1)
	w.Uint8(sb.Minor)
	w.Skip(1)
	w.Uint8(sb.BlockBit)
	w.Skip(1)
	w.Uint8(sb.AddrLen)
	w.Skip(1)
	w.Uint64(sb.RootDir)
	w.Uint64(sb.Blocks)
	w.Uint64(sb.FreeHead)
	w.Uint64(sb.FreeTail)
	w.Uint64(sb.FreeBlocks)
	sb.Created.WriteDisk(w)
	sb.Updated.WriteDisk(w)
	sb.Checked.WriteDisk(w)
	w.Uint64(sb.BadBlocks)
	w.Skip(8)
	putName(w, sb.Label)
}
