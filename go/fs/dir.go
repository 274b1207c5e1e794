package fs

import (
	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/logex"
)

// Dir is a directory block: binary tree siblings, the subtree holding
// the directory's contents, and metadata. The root directory is the
// unique directory with no parent, created right after the superblock.
type Dir struct {
	Hdr      Header
	Left     uint64
	Right    uint64
	Subtree  uint64
	Created  Timestamp
	Modified Timestamp
	Attr     Attr
	Name     string
}

func NewRootDir() *Dir {
	now := Now()
	return &Dir{
		Hdr:      Header{BlockType: TypeDir},
		Created:  now,
		Modified: now,
		Name:     RootDirName,
	}
}

func (d *Dir) Type() BlockType { return d.Hdr.BlockType }
func (d *Dir) Header() *Header { return &d.Hdr }

func (d *Dir) ReadDisk(r *bio.Reader) error {
	if err := d.Hdr.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	r.Skip(4)
	d.Left = r.Uint64()
	d.Right = r.Uint64()
	d.Subtree = r.Uint64()
	r.Skip(24)
	if err := d.Created.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	if err := d.Modified.ReadDisk(r); err != nil {
		return logex.Trace(err)
	}
	r.Skip(14)
	d.Attr = Attr(r.Uint16())
	d.Name = getName(r)
	return nil
}

func (d *Dir) WriteDisk(w *bio.Writer) {
	d.Hdr.WriteDisk(w)
	w.Skip(4)
	w.Uint64(d.Left)
	w.Uint64(d.Right)
	w.Uint64(d.Subtree)
	w.Skip(24)
	d.Created.WriteDisk(w)
	d.Modified.WriteDisk(w)
	w.Skip(14)
	w.Uint16(uint16(d.Attr))
	putName(w, d.Name)
}
