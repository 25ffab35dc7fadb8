package glb

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/anaminus/parse"
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/json"
)

// Decoder decodes a glTF document from a GLB container or from plain JSON
// text.
type Decoder struct {
	// If Strict is true, then conditions that are otherwise returned as
	// warnings cause decoding to fail.
	Strict bool
}

// ChunkWarning reports a chunk that was skipped.
type ChunkWarning struct {
	Offset int64
	Type   ChunkType
}

func (w ChunkWarning) Error() string {
	return "ignoring chunk " + w.Type.String() + " (" + w.Type.GoString() + ") at " + itoa(w.Offset)
}

// LengthWarning reports a container header whose length field disagrees with
// the number of bytes present.
type LengthWarning struct {
	Declared uint32
	Actual   int64
}

func (w LengthWarning) Error() string {
	return "header declares length " + itoa(int64(w.Declared)) + ", container has " + itoa(w.Actual) + " bytes"
}

// Decode reads data from r and decodes it into a document. bin is the
// payload of the binary chunk, or nil if there is none.
func (d Decoder) Decode(r io.Reader) (doc *gltf.Document, bin []byte, warn, err error) {
	c, warn, err := d.Read(r)
	if err != nil {
		return nil, nil, warn, err
	}
	doc, err = json.Decode(c.JSON)
	if err != nil {
		return nil, nil, warn, err
	}
	return doc, c.BIN, warn, nil
}

// decodeError returns the error of r as a ContainerFormatError, or as an
// InputError if reading from the underlying stream failed.
func decodeError(r *parse.BinaryReader, err error) error {
	r.Add(0, err)
	err = r.Err()
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		err = errors.ErrTruncated
	}
	if _, ok := err.(errors.ErrUnsupportedVersion); !ok && err != errors.ErrTruncated {
		return errors.InputError{Cause: err}
	}
	return errors.ContainerFormatError{Offset: r.N(), Cause: err}
}

// Read reads the content of a container from r, without decoding the
// document. If r does not begin with the GLB magic, then the entire stream is
// returned as JSON text.
func (d Decoder) Read(r io.Reader) (c *Container, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}
	c = &Container{}
	fr := parse.NewBinaryReader(r)

	// Check magic.
	var magic [4]byte
	if fr.Bytes(magic[:]) {
		if err := fr.Err(); err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, nil, decodeError(fr, nil)
		}
	}
	if fr.Err() != nil || binary.LittleEndian.Uint32(magic[:]) != Magic {
		// Reconstruct original stream as JSON text.
		text, err := io.ReadAll(io.MultiReader(bytes.NewReader(magic[:fr.N()]), r))
		if err != nil {
			return nil, nil, errors.InputError{Cause: err}
		}
		c.JSON = text
		return c, nil, nil
	}
	c.Binary = true

	if fr.Number(&c.Version) {
		return nil, nil, decodeError(fr, nil)
	}
	var warns errors.Errors
	if c.Version != Version {
		if d.Strict {
			return nil, nil, decodeError(fr, errors.ErrUnsupportedVersion(c.Version))
		}
		warns = warns.Append(errors.ErrUnsupportedVersion(c.Version))
	}
	if fr.Number(&c.Length) {
		return nil, warns.Return(), decodeError(fr, nil)
	}

	for i := 0; ; i++ {
		chunk := Chunk{Offset: fr.N()}
		var header [chunkHeaderSize]byte
		if fr.Bytes(header[:]) {
			if fr.Err() == io.EOF && i > 0 {
				break
			}
			return nil, warns.Return(), decodeError(fr, nil)
		}
		length := binary.LittleEndian.Uint32(header[0:4])
		chunk.Type = ChunkType(binary.LittleEndian.Uint32(header[4:8]))

		switch {
		case i == 0 && chunk.Type != ChunkJSON,
			i > 1 && chunk.Type == ChunkBIN,
			i > 0 && chunk.Type == ChunkJSON:
			return nil, warns.Return(), errors.ContainerFormatError{Offset: chunk.Offset, Cause: errors.ErrChunkType}
		}

		// Grow as data arrives, so that a bad length does not allocate.
		var data bytes.Buffer
		if fr.Add(io.CopyN(&data, r, int64(length))) {
			return nil, warns.Return(), decodeError(fr, nil)
		}
		chunk.Data = data.Bytes()
		if chunk.Data == nil {
			chunk.Data = []byte{}
		}
		c.Chunks = append(c.Chunks, chunk)

		switch chunk.Type {
		case ChunkJSON:
			c.JSON = chunk.Data
		case ChunkBIN:
			c.BIN = chunk.Data
		default:
			warns = warns.Append(ChunkWarning{Offset: chunk.Offset, Type: chunk.Type})
		}
	}

	if int64(c.Length) != fr.N() {
		w := LengthWarning{Declared: c.Length, Actual: fr.N()}
		if d.Strict {
			return nil, warns.Return(), errors.ContainerFormatError{Offset: 8, Cause: w}
		}
		warns = warns.Append(w)
	}
	return c, warns.Return(), nil
}
