// The load package materializes the binary data of a glTF document.
//
// A Loader resolves buffer and image URIs, slices buffer views, expands
// accessors into tightly packed component data, and assembles the vertex
// sources of each mesh primitive. Elements of each kind are loaded
// concurrently, with each kind completing before the next begins.
//
// Buffers are materialized from the document's buffers array. A buffer with
// no URI takes its bytes from the binary chunk of a GLB container, so a
// container whose JSON declares no buffers has no buffer 0 to load even when
// it carries a binary chunk. Such a payload is still available as the bin
// value returned by glb.Decoder.Decode.
package load

import (
	"os"
	"path/filepath"

	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/glb"
)

// Loader materializes documents. The zero value reads relative URIs from the
// working directory and has no binary chunk or compressed mesh decoder.
type Loader struct {
	// BasePath is the directory against which relative URIs are resolved.
	BasePath string
	// BIN is the payload of the binary chunk of a GLB container. It is the
	// content of each buffer that has no URI.
	BIN []byte
	// Draco decodes primitives compressed with KHR_draco_mesh_compression.
	// If nil, such primitives are assembled from their uncompressed fallback
	// accessors when present, and otherwise fail.
	Draco MeshDecoder
	// Workers caps the number of tasks of the loader that run at once. All
	// loaders share one pool of GOMAXPROCS workers; zero means no cap beyond
	// the pool.
	Workers int
	// ReadFile reads a file referred to by a URI. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// LoadAll materializes every buffer, buffer view, accessor, image, and mesh
// primitive of doc. The first error encountered aborts the load.
func (l *Loader) LoadAll(doc *gltf.Document) (*MaterializedBuffers, error) {
	m := newMaterializer(l, doc)
	if err := l.fanOut(len(doc.Buffers), m.buffer); err != nil {
		return nil, err
	}
	if err := l.fanOut(len(doc.BufferViews), m.view); err != nil {
		return nil, err
	}

	// Accessors and images depend only on views.
	na := len(doc.Accessors)
	err := l.fanOut(na+len(doc.Images), func(i int) error {
		if i < na {
			return m.accessor(i)
		}
		return m.image(i - na)
	})
	if err != nil {
		return nil, err
	}

	type primRef struct{ mesh, prim int }
	var prims []primRef
	for i, mesh := range doc.Meshes {
		for j := range mesh.Primitives {
			prims = append(prims, primRef{i, j})
		}
	}
	err = l.fanOut(len(prims), func(i int) error {
		return m.primitive(prims[i].mesh, prims[i].prim)
	})
	if err != nil {
		return nil, err
	}
	return m.out, nil
}

// LoadFile decodes the GLB or glTF file at path, and materializes its data.
// Relative URIs are resolved against the directory of the file unless
// BasePath is set. The binary chunk of the file replaces BIN.
func (l *Loader) LoadFile(path string) (doc *gltf.Document, mb *MaterializedBuffers, warn, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, errors.InputError{Path: path, Cause: err}
	}
	defer f.Close()

	doc, bin, warn, err := glb.Decoder{}.Decode(f)
	if err != nil {
		return nil, nil, warn, err
	}

	fl := &Loader{
		BasePath: l.BasePath,
		BIN:      bin,
		Draco:    l.Draco,
		Workers:  l.Workers,
		ReadFile: l.ReadFile,
	}
	if fl.BasePath == "" {
		fl.BasePath = filepath.Dir(path)
	}
	if mb, err = fl.LoadAll(doc); err != nil {
		return nil, nil, warn, err
	}
	return doc, mb, warn, nil
}

// File decodes and materializes the file at path with a default Loader.
func File(path string) (doc *gltf.Document, mb *MaterializedBuffers, warn, err error) {
	var l Loader
	return l.LoadFile(path)
}
