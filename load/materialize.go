package load

import (
	"encoding/binary"
	"math"

	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/json"
)

// materializer loads the elements of a document into out. Each method writes
// only its own slot of out, and reads only slots written by an earlier stage.
type materializer struct {
	loader *Loader
	doc    *gltf.Document
	out    *MaterializedBuffers
}

func newMaterializer(l *Loader, doc *gltf.Document) *materializer {
	out := &MaterializedBuffers{
		Buffers:   make([][]byte, len(doc.Buffers)),
		Views:     make([][]byte, len(doc.BufferViews)),
		Accessors: make([]*Source, len(doc.Accessors)),
		Images:    make([]*Image, len(doc.Images)),
		Meshes:    make([][]*Primitive, len(doc.Meshes)),
	}
	for i, mesh := range doc.Meshes {
		out.Meshes[i] = make([]*Primitive, len(mesh.Primitives))
	}
	return &materializer{loader: l, doc: doc, out: out}
}

// slice returns the n bytes of b at offset, or a RangeError.
func slice(path json.Path, b []byte, offset, n int) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, errors.RangeError{Path: path.String(), Need: offset + n, Have: len(b)}
	}
	return b[offset : offset+n], nil
}

// ref checks that index i refers into an array of length n.
func ref(path json.Path, i uint32, n int) error {
	if int64(i) >= int64(n) {
		return errors.ReferenceError{Path: path.String(), Index: int(i), Len: n}
	}
	return nil
}

// buffer loads buffer i from its URI or from the binary chunk.
func (m *materializer) buffer(i int) error {
	b := &m.doc.Buffers[i]
	path := json.RootPath.Key("buffers").Index(i)
	var data []byte
	if b.IsEmbedded() {
		if m.loader.BIN == nil {
			return errors.InputError{Path: path.String(), Cause: errors.ErrNoBinaryChunk}
		}
		data = m.loader.BIN
	} else {
		var err error
		if data, _, err = m.loader.readURI(b.URI); err != nil {
			return err
		}
	}
	data, err := slice(path.Key("byteLength"), data, 0, int(b.ByteLength))
	if err != nil {
		return err
	}
	m.out.Buffers[i] = data
	return nil
}

// view slices buffer view i from its loaded buffer.
func (m *materializer) view(i int) error {
	v := &m.doc.BufferViews[i]
	path := json.RootPath.Key("bufferViews").Index(i)
	if err := ref(path.Key("buffer"), v.Buffer, len(m.out.Buffers)); err != nil {
		return err
	}
	data, err := slice(path, m.out.Buffers[v.Buffer], int(v.ByteOffset), int(v.ByteLength))
	if err != nil {
		return err
	}
	m.out.Views[i] = data
	return nil
}

// viewBytes returns the loaded buffer view referred to by the field at path.
func (m *materializer) viewBytes(path json.Path, i uint32) ([]byte, error) {
	if err := ref(path, i, len(m.out.Views)); err != nil {
		return nil, err
	}
	return m.out.Views[i], nil
}

// accessor materializes accessor i. The elements are copied out of the
// buffer view, then overlaid with sparse values, then normalized.
func (m *materializer) accessor(i int) error {
	a := &m.doc.Accessors[i]
	path := json.RootPath.Key("accessors").Index(i)
	elem := a.ElementSize()
	count := int(a.Count)

	var data []byte
	if a.BufferView != nil {
		view, err := m.viewBytes(path.Key("bufferView"), *a.BufferView)
		if err != nil {
			return err
		}
		stride := m.doc.BufferViews[*a.BufferView].Stride(elem)
		if data, err = destride(path, view, int(a.ByteOffset), stride, elem, count); err != nil {
			return err
		}
	} else {
		data = make([]byte, count*elem)
	}

	if a.Sparse != nil {
		if err := m.sparse(path.Key("sparse"), a, data); err != nil {
			return err
		}
	}

	typ := a.ComponentType
	if a.Normalized && typ.Normalizable() {
		data = normalize(data, typ)
		typ = gltf.ComponentFloat
	}
	m.out.Accessors[i] = NewSource(data, count, a.Type.Components(), typ)
	return nil
}

// destride copies count elements from view, starting at offset and separated
// by stride bytes, into a tightly packed slice. The range is checked against
// view before anything is allocated.
func destride(path json.Path, view []byte, offset, stride, elem, count int) ([]byte, error) {
	if count == 0 {
		return []byte{}, nil
	}
	src, err := slice(path.Key("byteOffset"), view, offset, stride*(count-1)+elem)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, count*elem)
	if stride == elem {
		copy(dst, src)
		return dst, nil
	}
	for i := 0; i < count; i++ {
		copy(dst[i*elem:(i+1)*elem], src[i*stride:])
	}
	return dst, nil
}

// sparse overwrites the elements of data selected by the sparse indices of a
// with the sparse values.
func (m *materializer) sparse(path json.Path, a *gltf.Accessor, data []byte) error {
	s := a.Sparse
	n := int(s.Count)
	if n > int(a.Count) {
		return errors.RangeError{Path: path.Key("count").String(), Need: n, Have: int(a.Count)}
	}
	elem := a.ElementSize()

	ipath := path.Key("indices")
	view, err := m.viewBytes(ipath.Key("bufferView"), s.Indices.BufferView)
	if err != nil {
		return err
	}
	isize := s.Indices.ComponentType.Size()
	indices, err := slice(ipath.Key("byteOffset"), view, int(s.Indices.ByteOffset), n*isize)
	if err != nil {
		return err
	}

	vpath := path.Key("values")
	view, err = m.viewBytes(vpath.Key("bufferView"), s.Values.BufferView)
	if err != nil {
		return err
	}
	values, err := slice(vpath.Key("byteOffset"), view, int(s.Values.ByteOffset), n*elem)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		j := int(readUint(indices[i*isize:], s.Indices.ComponentType))
		if j >= int(a.Count) {
			return errors.RangeError{Path: ipath.Index(i).String(), Need: j + 1, Have: int(a.Count)}
		}
		copy(data[j*elem:(j+1)*elem], values[i*elem:(i+1)*elem])
	}
	return nil
}

// normalize converts integer components of type t to floats. Signed values
// are divided by the extreme of their sign, so that the full range maps onto
// [-1, 1]; unsigned values are divided by the maximum.
func normalize(data []byte, t gltf.ComponentType) []byte {
	size := t.Size()
	n := len(data) / size
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		var f float32
		b := data[i*size:]
		switch t {
		case gltf.ComponentByte:
			v := int8(b[0])
			if v >= 0 {
				f = float32(v) / math.MaxInt8
			} else {
				f = float32(v) / -math.MinInt8
			}
		case gltf.ComponentUnsignedByte:
			f = float32(b[0]) / math.MaxUint8
		case gltf.ComponentShort:
			v := int16(binary.LittleEndian.Uint16(b))
			if v >= 0 {
				f = float32(v) / math.MaxInt16
			} else {
				f = float32(v) / -math.MinInt16
			}
		case gltf.ComponentUnsignedShort:
			f = float32(binary.LittleEndian.Uint16(b)) / math.MaxUint16
		}
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}
