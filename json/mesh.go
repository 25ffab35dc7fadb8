package json

import (
	"github.com/vrmkit/gltf"
)

func mesh(o *Object) (m gltf.Mesh) {
	m.Primitives = Required(o, "primitives", ArrayOf(ObjectOf(primitive)))
	m.Weights = List(o, "weights", Float32)
	m.Name = Default(o, "name", String)
	return m
}

var primitiveExtensions = []Extension[gltf.PrimitiveExtensions]{
	Field(gltf.ExtDracoMeshCompression, ObjectOf(dracoMeshCompression), func(e *gltf.PrimitiveExtensions) **gltf.DracoMeshCompression { return &e.DracoMeshCompression }),
}

func primitive(o *Object) (p gltf.Primitive) {
	p.Attributes = Required(o, "attributes", attributes)
	p.Indices = Optional(o, "indices", Uint32)
	p.Material = Optional(o, "material", Uint32)
	p.Mode = Optional(o, "mode", IntEnum[gltf.PrimitiveMode]())
	p.Targets = List(o, "targets", attributes)
	p.Extensions = Extensions(o, primitiveExtensions)
	return p
}

func attributes(v Value) (gltf.Attributes, error) {
	return MapOf(Uint32)(v)
}

func dracoMeshCompression(o *Object) (d gltf.DracoMeshCompression) {
	d.BufferView = Required(o, "bufferView", Uint32)
	d.Attributes = Required(o, "attributes", attributes)
	return d
}
