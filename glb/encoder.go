package glb

import (
	"bytes"
	"io"

	"github.com/anaminus/parse"
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/json"
)

// Encoder encodes a glTF document into a GLB container.
type Encoder struct{}

// Encode writes doc to w as a GLB container. If bin is not nil, it is written
// as the binary chunk, and is expected to be the payload of the document's
// first buffer.
func (e Encoder) Encode(w io.Writer, doc *gltf.Document, bin []byte) (err error) {
	if w == nil {
		return errors.New("nil writer")
	}
	if doc == nil {
		return errors.New("nil document")
	}
	text, err := json.Encode(doc)
	if err != nil {
		return errors.New("error encoding document: " + err.Error())
	}
	c := &Container{Binary: true, Version: Version, JSON: text, BIN: bin}
	c.Chunks = append(c.Chunks, Chunk{Type: ChunkJSON, Data: text})
	if bin != nil {
		c.Chunks = append(c.Chunks, Chunk{Type: ChunkBIN, Data: bin})
	}
	_, err = c.WriteTo(w)
	return err
}

// WriteTo writes the chunks of c to w as a GLB container. Chunks are padded
// to 4-byte alignment, JSON with spaces and all others with zeros. The
// Length, Version, and chunk offsets of c are updated.
func (c *Container) WriteTo(w io.Writer) (n int64, err error) {
	if c.Version == 0 {
		c.Version = Version
	}
	length := headerSize
	for _, chunk := range c.Chunks {
		length += chunkHeaderSize + len(chunk.Data) + padding(len(chunk.Data))
	}
	c.Length = uint32(length)

	fw := parse.NewBinaryWriter(w)
	if fw.Number(Magic) || fw.Number(c.Version) || fw.Number(c.Length) {
		return fw.End()
	}
	for i := range c.Chunks {
		chunk := &c.Chunks[i]
		chunk.Offset = fw.N()
		pad := padding(len(chunk.Data))
		if fw.Number(uint32(len(chunk.Data)+pad)) || fw.Number(uint32(chunk.Type)) || fw.Bytes(chunk.Data) {
			return fw.End()
		}
		fill := byte(0)
		if chunk.Type == ChunkJSON {
			fill = ' '
		}
		if fw.Bytes(bytes.Repeat([]byte{fill}, pad)) {
			return fw.End()
		}
	}
	return fw.End()
}
