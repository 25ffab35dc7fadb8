package load

import (
	"encoding/binary"
	"math"

	"github.com/vrmkit/gltf"
	"golang.org/x/crypto/blake2b"
)

// MaterializedBuffers holds the concrete data of a document, indexed in
// parallel with the corresponding arrays of the document.
type MaterializedBuffers struct {
	// Buffers holds the payload of each buffer, truncated to its declared
	// byte length.
	Buffers [][]byte
	// Views holds the byte range of each buffer view. Each is a subslice of
	// its buffer.
	Views [][]byte
	// Accessors holds the materialized data of each accessor.
	Accessors []*Source
	// Images holds the encoded data of each image.
	Images []*Image
	// Meshes holds the assembled primitives of each mesh.
	Meshes [][]*Primitive
}

// Source is tightly packed component data of an accessor or of a decoded
// compressed attribute.
type Source struct {
	Data []byte
	// Count is the number of elements.
	Count int
	// Components is the number of components per element.
	Components int
	// ComponentType is the type of each component. It is FLOAT for data
	// that was normalized.
	ComponentType gltf.ComponentType
	// Digest is the BLAKE2b-256 hash of Data.
	Digest [blake2b.Size256]byte
}

// NewSource returns a source of count elements over data, and computes its
// digest.
func NewSource(data []byte, count, components int, typ gltf.ComponentType) *Source {
	return &Source{
		Data:          data,
		Count:         count,
		Components:    components,
		ComponentType: typ,
		Digest:        blake2b.Sum256(data),
	}
}

// Float32s returns the components of a FLOAT source. Returns nil for other
// component types.
func (s *Source) Float32s() []float32 {
	if s.ComponentType != gltf.ComponentFloat {
		return nil
	}
	f := make([]float32, len(s.Data)/4)
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(s.Data[i*4:]))
	}
	return f
}

// Uint32s returns the components of a source with an unsigned integer
// component type, widened to 32 bits. Returns nil for other component types.
func (s *Source) Uint32s() []uint32 {
	size := s.ComponentType.Size()
	switch s.ComponentType {
	case gltf.ComponentUnsignedByte, gltf.ComponentUnsignedShort, gltf.ComponentUnsignedInt:
	default:
		return nil
	}
	u := make([]uint32, len(s.Data)/size)
	for i := range u {
		u[i] = readUint(s.Data[i*size:], s.ComponentType)
	}
	return u
}

// readUint reads one unsigned integer component of type t from b.
func readUint(b []byte, t gltf.ComponentType) uint32 {
	switch t {
	case gltf.ComponentUnsignedByte:
		return uint32(b[0])
	case gltf.ComponentUnsignedShort:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

// Image is the encoded data of an image.
type Image struct {
	Data []byte
	// MimeType is the declared media type, the media type of a data URI, or
	// the type derived from the content, in that order of preference. Empty
	// if none is known.
	MimeType string
	// Format, Width, and Height are read from the image header. They are zero
	// when the format is not recognized.
	Format        string
	Width, Height int
	// Digest is the BLAKE2b-256 hash of Data.
	Digest [blake2b.Size256]byte
}

// Primitive is the assembled geometry of a mesh primitive.
type Primitive struct {
	Mode     gltf.PrimitiveMode
	Material *uint32
	// Attributes maps each attribute semantic, such as POSITION or
	// TEXCOORD_0, to its source.
	Attributes map[string]*Source
	// Sets maps each indexed semantic, such as TEXCOORD, to the sources of
	// its consecutive sets starting at 0.
	Sets map[string][]*Source
	// Element holds the index data, or is nil for a non-indexed primitive.
	Element *Element
	// Targets holds the sources of each morph target.
	Targets []map[string]*Source
	// Compressed is true if the geometry was decoded from a compressed
	// buffer view.
	Compressed bool
}

// Element is the index data of a primitive.
type Element struct {
	Indices *Source
	// PrimitiveCount is the number of points, lines, or triangles drawn.
	PrimitiveCount int
}

// PrimitiveCount returns the number of points, lines, or triangles drawn by
// the primitive. For a non-indexed primitive, it is derived from the number
// of positions.
func (p *Primitive) PrimitiveCount() int {
	if p.Element != nil {
		return p.Element.PrimitiveCount
	}
	if pos := p.Attributes[gltf.SemanticPosition]; pos != nil {
		return p.Mode.PrimitiveCount(pos.Count)
	}
	return 0
}

// indexedSemantics are the semantics that are collected into Primitive.Sets.
var indexedSemantics = []string{
	gltf.SemanticTexCoord,
	gltf.SemanticColor,
	gltf.SemanticJoints,
	gltf.SemanticWeights,
}

// collectSets checks each indexed semantic for consecutive sets starting at
// 0.
func collectSets(attrs map[string]*Source) map[string][]*Source {
	var sets map[string][]*Source
	for _, semantic := range indexedSemantics {
		for i := 0; ; i++ {
			src, ok := attrs[gltf.SemanticSet(semantic, i)]
			if !ok {
				break
			}
			if sets == nil {
				sets = map[string][]*Source{}
			}
			sets[semantic] = append(sets[semantic], src)
		}
	}
	return sets
}
