// The glb package implements the binary glTF container format.
//
// A GLB container is a 12-byte header followed by a JSON chunk holding the
// glTF document and an optional BIN chunk holding the payload of the first
// buffer. Streams that do not begin with the container magic are treated as
// plain glTF JSON.
package glb

import (
	"encoding/binary"
	"strconv"
	"unicode"
)

const (
	// Magic is the first four bytes of a GLB container, "glTF".
	Magic uint32 = 0x46546C67
	// Version is the container version understood by this package.
	Version uint32 = 2

	headerSize      = 12
	chunkHeaderSize = 8
)

// ChunkType identifies the content of a chunk.
type ChunkType uint32

const (
	ChunkJSON ChunkType = 0x4E4F534A // "JSON"
	ChunkBIN  ChunkType = 0x004E4942 // "BIN\x00"
)

// String returns the four characters of the chunk type, with unprintable
// characters replaced by '.'.
func (t ChunkType) String() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(t))
	for i, c := range b {
		if !unicode.IsPrint(rune(c)) {
			b[i] = '.'
		}
	}
	return string(b[:])
}

// GoString returns the chunk type as a hexadecimal number.
func (t ChunkType) GoString() string {
	return "0x" + strconv.FormatUint(uint64(t), 16)
}

// Chunk is a chunk of a GLB container.
type Chunk struct {
	// Offset is the byte offset of the chunk header within the container.
	Offset int64
	Type   ChunkType
	Data   []byte
}

// Container is the content of a GLB container, or of plain glTF JSON.
type Container struct {
	// Binary is true if the content was read from a GLB container, and false
	// if it was plain JSON text.
	Binary bool
	// Version and Length are the fields of the container header.
	Version uint32
	Length  uint32
	// Chunks holds every chunk in the order it was read, including chunks of
	// unknown type.
	Chunks []Chunk

	// JSON is the document text.
	JSON []byte
	// BIN is the payload of the binary chunk, or nil if there is none.
	BIN []byte
}

// padding returns the number of bytes needed to align n to 4 bytes.
func padding(n int) int {
	return (4 - n%4) % 4
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}
