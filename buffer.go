package gltf

// Buffer points to binary geometry, animation, or skin data.
type Buffer struct {
	// URI locates the buffer data. It is empty when the data is the binary
	// chunk of a GLB container.
	URI        string `json:"uri,omitempty"`
	ByteLength uint32 `json:"byteLength"`
	Name       string `json:"name,omitempty"`
}

// IsEmbedded returns whether the buffer refers to the GLB binary chunk.
func (b *Buffer) IsEmbedded() bool {
	return b.URI == ""
}

// BufferView is a byte range within a buffer.
type BufferView struct {
	Buffer     uint32 `json:"buffer"`
	ByteOffset uint32 `json:"byteOffset,omitempty"`
	ByteLength uint32 `json:"byteLength"`
	// ByteStride is the distance in bytes between the starts of consecutive
	// elements. When nil, elements are tightly packed.
	ByteStride *uint32          `json:"byteStride,omitempty"`
	Target     BufferViewTarget `json:"target,omitempty"`
	Name       string           `json:"name,omitempty"`
}

// Stride returns the byte stride of the view for elements of the given size.
func (v *BufferView) Stride(elementSize int) int {
	if v.ByteStride == nil || *v.ByteStride == 0 {
		return elementSize
	}
	return int(*v.ByteStride)
}

// Accessor is a typed view into a buffer view.
type Accessor struct {
	// BufferView is nil for an accessor whose values come only from Sparse,
	// or that is all zeros.
	BufferView    *uint32       `json:"bufferView,omitempty"`
	ByteOffset    uint32        `json:"byteOffset,omitempty"`
	ComponentType ComponentType `json:"componentType"`
	Normalized    bool          `json:"normalized,omitempty"`
	Count         uint32        `json:"count"`
	Type          AccessorType  `json:"type"`
	Max           []float32     `json:"max,omitempty"`
	Min           []float32     `json:"min,omitempty"`
	Sparse        *Sparse       `json:"sparse,omitempty"`
	Name          string        `json:"name,omitempty"`
}

// ElementSize returns the size in bytes of one tightly packed element.
func (a *Accessor) ElementSize() int {
	return a.Type.Components() * a.ComponentType.Size()
}

// ByteLength returns the size in bytes of all elements, tightly packed.
func (a *Accessor) ByteLength() int {
	return int(a.Count) * a.ElementSize()
}

// Sparse stores displacements of a subset of an accessor's elements.
type Sparse struct {
	Count   uint32        `json:"count"`
	Indices SparseIndices `json:"indices"`
	Values  SparseValues  `json:"values"`
}

// SparseIndices locates the indices of the elements a Sparse replaces. The
// component type is one of the unsigned integer types.
type SparseIndices struct {
	BufferView    uint32        `json:"bufferView"`
	ByteOffset    uint32        `json:"byteOffset,omitempty"`
	ComponentType ComponentType `json:"componentType"`
}

// SparseValues locates the replacement element values of a Sparse. They
// have the component type and element type of the owning accessor.
type SparseValues struct {
	BufferView uint32 `json:"bufferView"`
	ByteOffset uint32 `json:"byteOffset,omitempty"`
}
