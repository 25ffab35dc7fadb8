package gltf

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Attribute semantics of a mesh primitive. Semantics with a set index, such
// as TEXCOORD_0, are formed with SemanticSet.
const (
	SemanticPosition = "POSITION"
	SemanticNormal   = "NORMAL"
	SemanticTangent  = "TANGENT"
	SemanticTexCoord = "TEXCOORD"
	SemanticColor    = "COLOR"
	SemanticJoints   = "JOINTS"
	SemanticWeights  = "WEIGHTS"
)

// SemanticSet returns the name of set i of an indexed semantic, such as
// "TEXCOORD_1".
func SemanticSet(semantic string, i int) string {
	return semantic + "_" + strconv.Itoa(i)
}

// SplitSemantic splits an indexed semantic into its base name and set index.
// ok is false when name has no numeric suffix.
func SplitSemantic(name string) (semantic string, set int, ok bool) {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return name, 0, false
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil || n < 0 {
		return name, 0, false
	}
	return name[:i], n, true
}

// Attributes maps attribute semantics to accessor indices.
type Attributes map[string]uint32

// Names returns the semantics of a in sorted order.
func (a Attributes) Names() []string {
	return slices.Sorted(maps.Keys(a))
}

// Mesh is a set of primitives to be rendered.
type Mesh struct {
	Primitives []Primitive `json:"primitives"`
	Weights    []float32   `json:"weights,omitempty"`
	Name       string      `json:"name,omitempty"`
}

// Primitive is geometry to be rendered with a material.
type Primitive struct {
	Attributes Attributes     `json:"attributes"`
	Indices    *uint32        `json:"indices,omitempty"`
	Material   *uint32        `json:"material,omitempty"`
	Mode       *PrimitiveMode `json:"mode,omitempty"`
	// Targets are morph targets, each mapping POSITION, NORMAL, or TANGENT
	// to an accessor of displacements.
	Targets []Attributes `json:"targets,omitempty"`

	Extensions *PrimitiveExtensions `json:"extensions,omitempty"`
}

// ModeOrDefault returns the primitive's topology, TRIANGLES by default.
func (p *Primitive) ModeOrDefault() PrimitiveMode {
	if p.Mode == nil {
		return ModeTriangles
	}
	return *p.Mode
}

// Draco returns the primitive's KHR_draco_mesh_compression extension, or nil.
func (p *Primitive) Draco() *DracoMeshCompression {
	if p.Extensions == nil {
		return nil
	}
	return p.Extensions.DracoMeshCompression
}

// PrimitiveExtensions holds the recognized extensions of a mesh primitive.
type PrimitiveExtensions struct {
	DracoMeshCompression *DracoMeshCompression `json:"KHR_draco_mesh_compression,omitempty"`
}

// DracoMeshCompression is the KHR_draco_mesh_compression extension. When
// present, the primitive's geometry is decoded from BufferView rather than
// read through its accessors.
type DracoMeshCompression struct {
	BufferView uint32 `json:"bufferView"`
	// Attributes maps semantics to the unique ID of the compressed attribute.
	Attributes Attributes `json:"attributes"`
}
