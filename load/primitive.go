package load

import (
	"encoding/binary"

	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/json"
)

// MeshDecoder decodes the compressed geometry of a primitive carrying the
// KHR_draco_mesh_compression extension.
type MeshDecoder interface {
	// DecodeMesh decodes data. attributes maps the semantic of each attribute
	// to its identifier within the compressed data.
	DecodeMesh(data []byte, attributes gltf.Attributes) (*DecodedMesh, error)
}

// DecodedMesh is the geometry decoded from a compressed buffer view.
type DecodedMesh struct {
	// Indices holds three vertex indices per face.
	Indices []uint32
	// Attributes maps semantics to decoded vertex data.
	Attributes map[string]*Source
}

// primitive assembles primitive p of mesh m from the materialized accessors,
// or from its compressed buffer view.
func (m *materializer) primitive(mesh, p int) error {
	prim := &m.doc.Meshes[mesh].Primitives[p]
	path := json.RootPath.Key("meshes").Index(mesh).Key("primitives").Index(p)
	out := &Primitive{
		Mode:     prim.ModeOrDefault(),
		Material: prim.Material,
	}

	if ext := prim.Draco(); ext != nil && m.useDecoder(prim) {
		if err := m.decodeCompressed(path, ext, out); err != nil {
			return errors.CompressedMeshDecodeError{Mesh: mesh, Primitive: p, Cause: err}
		}
	} else {
		attrs, err := m.sources(path.Key("attributes"), prim.Attributes)
		if err != nil {
			return err
		}
		out.Attributes = attrs
		if prim.Indices != nil {
			src, err := m.source(path.Key("indices"), *prim.Indices)
			if err != nil {
				return err
			}
			out.Element = &Element{Indices: src, PrimitiveCount: out.Mode.PrimitiveCount(src.Count)}
		}
	}
	out.Sets = collectSets(out.Attributes)

	for i, target := range prim.Targets {
		srcs, err := m.sources(path.Key("targets").Index(i), target)
		if err != nil {
			return err
		}
		out.Targets = append(out.Targets, srcs)
	}

	m.out.Meshes[mesh][p] = out
	return nil
}

// useDecoder returns whether a compressed primitive is decoded from its
// compressed data. Without a decoder, a primitive whose position accessor
// has uncompressed fallback data is assembled from its accessors instead.
func (m *materializer) useDecoder(prim *gltf.Primitive) bool {
	if m.loader.Draco != nil {
		return true
	}
	i, ok := prim.Attributes[gltf.SemanticPosition]
	if !ok || int(i) >= len(m.doc.Accessors) {
		return true
	}
	return m.doc.Accessors[i].BufferView == nil
}

func (m *materializer) decodeCompressed(path json.Path, ext *gltf.DracoMeshCompression, out *Primitive) error {
	if m.loader.Draco == nil {
		return errors.New("no compressed mesh decoder")
	}
	data, err := m.viewBytes(path.Key("extensions").Key(gltf.ExtDracoMeshCompression).Key("bufferView"), ext.BufferView)
	if err != nil {
		return err
	}
	dm, err := m.loader.Draco.DecodeMesh(data, ext.Attributes)
	if err != nil {
		return err
	}
	out.Compressed = true
	out.Attributes = dm.Attributes
	if dm.Indices != nil {
		b := make([]byte, 4*len(dm.Indices))
		for i, v := range dm.Indices {
			binary.LittleEndian.PutUint32(b[i*4:], v)
		}
		src := NewSource(b, len(dm.Indices), 1, gltf.ComponentUnsignedInt)
		out.Element = &Element{Indices: src, PrimitiveCount: out.Mode.PrimitiveCount(src.Count)}
	}
	return nil
}

// source returns the materialized accessor referred to by the field at path.
func (m *materializer) source(path json.Path, i uint32) (*Source, error) {
	if err := ref(path, i, len(m.out.Accessors)); err != nil {
		return nil, err
	}
	return m.out.Accessors[i], nil
}

func (m *materializer) sources(path json.Path, attrs gltf.Attributes) (map[string]*Source, error) {
	srcs := make(map[string]*Source, len(attrs))
	for _, name := range attrs.Names() {
		src, err := m.source(path.Key(name), attrs[name])
		if err != nil {
			return nil, err
		}
		srcs[name] = src
	}
	return srcs, nil
}
