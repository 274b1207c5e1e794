package fs

import "fmt"

type BlockType uint8

const (
	TypeFree  BlockType = 0x00
	TypeDir   BlockType = 0x10
	TypeFile  BlockType = 0x20
	TypeChain BlockType = 0x70
	TypeExt   BlockType = 0x80
	TypeData  BlockType = 0xA0
	TypeSuper BlockType = 0xD0
	TypeBad   BlockType = 0xE0
)

func (t BlockType) String() string {
	switch t {
	case TypeFree:
		return "FREE"
	case TypeDir:
		return "DIR"
	case TypeFile:
		return "FILE"
	case TypeChain:
		return "CHAIN"
	case TypeExt:
		return "EXT"
	case TypeData:
		return "DATA"
	case TypeSuper:
		return "SB"
	case TypeBad:
		return "BAD"
	}
	return fmt.Sprintf("unknown: 0x%x", uint8(t))
}

// IsChain reports whether a block tagged t carries a chain layout. The
// formatter tags free-list links EXT, older volumes use CHAIN.
func (t BlockType) IsChain() bool {
	return t == TypeChain || t == TypeExt
}

type Attr uint16

const (
	AttrNoWrite Attr = 1 << iota
	AttrNoExec
	AttrHidden
	AttrArchive
)
