// The dracomesh package decodes KHR_draco_mesh_compression data with the
// Draco library.
package dracomesh

import (
	"encoding/binary"
	"fmt"

	"github.com/qmuntal/draco-go/draco"
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/load"
)

// Decoder implements load.MeshDecoder.
type Decoder struct{}

var _ load.MeshDecoder = Decoder{}

// DecodeMesh decodes a Draco mesh. Each attribute named in attributes is
// looked up by its unique ID. Remaining attributes with a known role are
// named after that role, such as POSITION or TEXCOORD_0.
func (Decoder) DecodeMesh(data []byte, attributes gltf.Attributes) (*load.DecodedMesh, error) {
	if len(data) == 0 {
		return nil, errors.New("empty compressed data")
	}
	m := draco.NewMesh()
	if err := draco.NewDecoder().DecodeMesh(m, data); err != nil {
		return nil, err
	}

	out := &load.DecodedMesh{Attributes: make(map[string]*load.Source, m.NumAttrs())}
	if n := m.NumFaces(); n > 0 {
		// Faces writes three indices per face, but sizes its result by the
		// face count.
		out.Indices = make([]uint32, 3*n)
		m.Faces(out.Indices)
	}

	named := make(map[uint32]bool, len(attributes))
	for _, name := range attributes.Names() {
		id := attributes[name]
		pa := m.AttrByUniqueID(id)
		if pa == nil {
			return nil, fmt.Errorf("attribute %s: no compressed attribute with id %d", name, id)
		}
		src, err := source(m, pa)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		out.Attributes[name] = src
		named[id] = true
	}

	var roles roleCounter
	for i := int32(0); i < m.NumAttrs(); i++ {
		pa := m.Attr(i)
		if pa == nil {
			continue
		}
		name := roles.name(pa.Type())
		if name == "" || named[pa.UniqueID()] {
			continue
		}
		if _, ok := out.Attributes[name]; ok {
			continue
		}
		src, err := source(m, pa)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		out.Attributes[name] = src
	}
	return out, nil
}

// roleCounter names attributes by role, numbering the sets of indexed roles
// in order of appearance.
type roleCounter struct {
	colors, texCoords int
}

func (r *roleCounter) name(t draco.GeometryAttrType) string {
	switch t {
	case draco.GAT_POSITION:
		return gltf.SemanticPosition
	case draco.GAT_NORMAL:
		return gltf.SemanticNormal
	case draco.GAT_COLOR:
		r.colors++
		return gltf.SemanticSet(gltf.SemanticColor, r.colors-1)
	case draco.GAT_TEX_COORD:
		r.texCoords++
		return gltf.SemanticSet(gltf.SemanticTexCoord, r.texCoords-1)
	}
	return ""
}

// source reads the values of an attribute.
func source(m *draco.Mesh, pa *draco.PointAttr) (*load.Source, error) {
	switch pa.DataType() {
	case draco.DT_INT8, draco.DT_UINT8,
		draco.DT_INT16, draco.DT_UINT16,
		draco.DT_INT32, draco.DT_UINT32,
		draco.DT_FLOAT32:
	default:
		return nil, fmt.Errorf("unsupported data type %d", pa.DataType())
	}
	values, ok := m.AttrData(pa, nil)
	if !ok {
		return nil, errors.New("reading attribute data failed")
	}
	data, typ, err := encode(values)
	if err != nil {
		return nil, err
	}
	return load.NewSource(data, int(m.NumPoints()), int(pa.NumComponents()), typ), nil
}

// encode packs a slice of attribute values as little-endian components of
// the corresponding component type.
func encode(values interface{}) ([]byte, gltf.ComponentType, error) {
	var typ gltf.ComponentType
	switch v := values.(type) {
	case []int8:
		typ = gltf.ComponentByte
	case []uint8:
		typ = gltf.ComponentUnsignedByte
	case []int16:
		typ = gltf.ComponentShort
	case []uint16:
		typ = gltf.ComponentUnsignedShort
	case []uint32:
		typ = gltf.ComponentUnsignedInt
	case []float32:
		typ = gltf.ComponentFloat
	case []int32:
		for _, x := range v {
			if x < 0 {
				return nil, 0, fmt.Errorf("negative value %d in 32-bit integer attribute", x)
			}
		}
		typ = gltf.ComponentUnsignedInt
	default:
		return nil, 0, fmt.Errorf("unsupported values %T", values)
	}
	data, err := binary.Append(nil, binary.LittleEndian, values)
	if err != nil {
		return nil, 0, err
	}
	return data, typ, nil
}
