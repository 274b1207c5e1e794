package fs

// filesystem magic, spells "LANY" on disk
const Magic uint32 = 0x594E414C

const (
	MajorVersion = 1
	MinorVersion = 4
)

const (
	// the superblock always lives at address 0
	SuperblockAddr = 0

	// block address width in bytes, fixed per volume
	MinAddrLen = 1
	MaxAddrLen = 8

	// blocksize exponent to base 2, fixed per volume
	MinBlockBit = 9
	MaxBlockBit = 12

	// fixed length of labels and names, including NUL padding
	NameLen = 256

	// a device holding fewer blocks is not worth formatting
	MinBlocks = 16

	RootDirName = "LANYFSROOT"
)

// every block starts with type, a reserved byte and a 16-bit write counter
const HeaderSize = 4

// chain block: header plus the next pointer; the slot stream follows
const ChainStreamOff = HeaderSize + 8

const TimestampSize = 16

// fixed prefix read by Detect, covers every superblock field
const DetectSize = 1 << MinBlockBit
