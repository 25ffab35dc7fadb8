package json

import (
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
)

// DecodeDocument decodes the root object of a glTF document from a generic
// tree. Decoding fails with UnsupportedExtensionError if the document
// requires an extension that is not in gltf.SupportedExtensions.
func DecodeDocument(v Value) (gltf.Document, error) {
	return ObjectOf(document)(v)
}

var documentExtensions = []Extension[gltf.DocumentExtensions]{
	Field(gltf.ExtLightsPunctual, ObjectOf(lightsPunctual), func(e *gltf.DocumentExtensions) **gltf.LightsPunctual { return &e.LightsPunctual }),
	Field(gltf.ExtVRM0, ObjectOf(vrm0), func(e *gltf.DocumentExtensions) **gltf.VRM0 { return &e.VRM0 }),
	Field(gltf.ExtVRM1, ObjectOf(vrm1), func(e *gltf.DocumentExtensions) **gltf.VRM1 { return &e.VRM1 }),
	Field(gltf.ExtSpringBone, ObjectOf(springBone), func(e *gltf.DocumentExtensions) **gltf.SpringBone { return &e.SpringBone }),
}

func document(o *Object) (d gltf.Document) {
	d.ExtensionsUsed = List(o, "extensionsUsed", String)
	d.ExtensionsRequired = List(o, "extensionsRequired", String)
	for _, name := range d.ExtensionsRequired {
		if !gltf.IsSupportedExtension(name) {
			o.Add(errors.UnsupportedExtensionError{Name: name})
			return d
		}
	}
	d.Asset = Required(o, "asset", ObjectOf(asset))
	d.Accessors = List(o, "accessors", ObjectOf(accessor))
	d.Animations = List(o, "animations", ObjectOf(animation))
	d.Buffers = List(o, "buffers", ObjectOf(buffer))
	d.BufferViews = List(o, "bufferViews", ObjectOf(bufferView))
	d.Cameras = List(o, "cameras", ObjectOf(camera))
	d.Images = List(o, "images", ObjectOf(image))
	d.Materials = List(o, "materials", ObjectOf(material))
	d.Meshes = List(o, "meshes", ObjectOf(mesh))
	d.Nodes = List(o, "nodes", ObjectOf(node))
	d.Samplers = List(o, "samplers", ObjectOf(sampler))
	d.Scene = Optional(o, "scene", Uint32)
	d.Scenes = List(o, "scenes", ObjectOf(scene))
	d.Skins = List(o, "skins", ObjectOf(skin))
	d.Textures = List(o, "textures", ObjectOf(texture))
	d.Extensions = Extensions(o, documentExtensions)
	return d
}

func asset(o *Object) (a gltf.Asset) {
	a.Copyright = Default(o, "copyright", String)
	a.Generator = Default(o, "generator", String)
	a.Version = Required(o, "version", String)
	a.MinVersion = Default(o, "minVersion", String)
	return a
}

func scene(o *Object) (s gltf.Scene) {
	s.Nodes = List(o, "nodes", Uint32)
	s.Name = Default(o, "name", String)
	return s
}

////////////////////////////////////////////////////////////////

var nodeExtensions = []Extension[gltf.NodeExtensions]{
	Field(gltf.ExtLightsPunctual, ObjectOf(nodeLight), func(e *gltf.NodeExtensions) **gltf.NodeLight { return &e.LightsPunctual }),
}

func node(o *Object) (n gltf.Node) {
	n.Camera = Optional(o, "camera", Uint32)
	n.Children = List(o, "children", Uint32)
	n.Skin = Optional(o, "skin", Uint32)
	n.Matrix = Optional(o, "matrix", Mat4)
	n.Mesh = Optional(o, "mesh", Uint32)
	n.Rotation = Optional(o, "rotation", Vec4)
	n.Scale = Optional(o, "scale", Vec3)
	n.Translation = Optional(o, "translation", Vec3)
	n.Weights = List(o, "weights", Float32)
	n.Name = Default(o, "name", String)
	n.Extensions = Extensions(o, nodeExtensions)
	return n
}

func nodeLight(o *Object) (l gltf.NodeLight) {
	l.Light = Required(o, "light", Uint32)
	return l
}

func skin(o *Object) (s gltf.Skin) {
	s.InverseBindMatrices = Optional(o, "inverseBindMatrices", Uint32)
	s.Skeleton = Optional(o, "skeleton", Uint32)
	s.Joints = Required(o, "joints", ArrayOf(Uint32))
	s.Name = Default(o, "name", String)
	return s
}

////////////////////////////////////////////////////////////////

func camera(o *Object) (c gltf.Camera) {
	c.Orthographic = Optional(o, "orthographic", ObjectOf(orthographic))
	c.Perspective = Optional(o, "perspective", ObjectOf(perspective))
	c.Type = Required(o, "type", StringEnum(gltf.CameraTypeFromString))
	c.Name = Default(o, "name", String)
	return c
}

func orthographic(o *Object) (c gltf.Orthographic) {
	c.XMag = Required(o, "xmag", Float32)
	c.YMag = Required(o, "ymag", Float32)
	c.ZFar = Required(o, "zfar", Float32)
	c.ZNear = Required(o, "znear", Float32)
	return c
}

func perspective(o *Object) (c gltf.Perspective) {
	c.AspectRatio = Optional(o, "aspectRatio", Float32)
	c.YFov = Required(o, "yfov", Float32)
	c.ZFar = Optional(o, "zfar", Float32)
	c.ZNear = Required(o, "znear", Float32)
	return c
}

////////////////////////////////////////////////////////////////

func animation(o *Object) (a gltf.Animation) {
	a.Channels = Required(o, "channels", ArrayOf(ObjectOf(animationChannel)))
	a.Samplers = Required(o, "samplers", ArrayOf(ObjectOf(animationSampler)))
	a.Name = Default(o, "name", String)
	return a
}

func animationChannel(o *Object) (c gltf.AnimationChannel) {
	c.Sampler = Required(o, "sampler", Uint32)
	c.Target = Required(o, "target", ObjectOf(animationTarget))
	return c
}

func animationTarget(o *Object) (t gltf.AnimationTarget) {
	t.Node = Optional(o, "node", Uint32)
	t.Path = Required(o, "path", StringEnum(gltf.AnimationPathFromString))
	return t
}

func animationSampler(o *Object) (s gltf.AnimationSampler) {
	s.Input = Required(o, "input", Uint32)
	s.Interpolation = Default(o, "interpolation", StringEnum(gltf.InterpolationFromString))
	s.Output = Required(o, "output", Uint32)
	return s
}

////////////////////////////////////////////////////////////////

func buffer(o *Object) (b gltf.Buffer) {
	b.URI = Default(o, "uri", String)
	b.ByteLength = Required(o, "byteLength", Uint32)
	b.Name = Default(o, "name", String)
	return b
}

func bufferView(o *Object) (v gltf.BufferView) {
	v.Buffer = Required(o, "buffer", Uint32)
	v.ByteOffset = Default(o, "byteOffset", Uint32)
	v.ByteLength = Required(o, "byteLength", Uint32)
	v.ByteStride = Optional(o, "byteStride", Uint32)
	v.Target = Default(o, "target", IntEnum[gltf.BufferViewTarget]())
	v.Name = Default(o, "name", String)
	return v
}

func accessor(o *Object) (a gltf.Accessor) {
	a.BufferView = Optional(o, "bufferView", Uint32)
	a.ByteOffset = Default(o, "byteOffset", Uint32)
	a.ComponentType = Required(o, "componentType", IntEnum[gltf.ComponentType]())
	a.Normalized = Default(o, "normalized", Bool)
	a.Count = Required(o, "count", Uint32)
	a.Type = Required(o, "type", StringEnum(gltf.AccessorTypeFromString))
	a.Max = List(o, "max", Float32)
	a.Min = List(o, "min", Float32)
	a.Sparse = Optional(o, "sparse", ObjectOf(sparse))
	a.Name = Default(o, "name", String)
	return a
}

func sparse(o *Object) (s gltf.Sparse) {
	s.Count = Required(o, "count", Uint32)
	s.Indices = Required(o, "indices", ObjectOf(sparseIndices))
	s.Values = Required(o, "values", ObjectOf(sparseValues))
	return s
}

func sparseIndices(o *Object) (s gltf.SparseIndices) {
	s.BufferView = Required(o, "bufferView", Uint32)
	s.ByteOffset = Default(o, "byteOffset", Uint32)
	s.ComponentType = Required(o, "componentType", indexComponentType)
	return s
}

func sparseValues(o *Object) (s gltf.SparseValues) {
	s.BufferView = Required(o, "bufferView", Uint32)
	s.ByteOffset = Default(o, "byteOffset", Uint32)
	return s
}

// indexComponentType decodes a component type that is one of the unsigned
// integer types allowed for indices.
func indexComponentType(v Value) (gltf.ComponentType, error) {
	t, err := IntEnum[gltf.ComponentType]()(v)
	if err != nil {
		return 0, err
	}
	switch t {
	case gltf.ComponentUnsignedByte, gltf.ComponentUnsignedShort, gltf.ComponentUnsignedInt:
		return t, nil
	}
	return 0, errors.InvalidEnumValueError{Path: v.Path.String(), Value: uint32(t)}
}

// xyz decodes a VRM 0.x vector object. Missing members are zero.
func xyz(o *Object) (v gltf.XYZ) {
	v.X = Default(o, "x", Float32)
	v.Y = Default(o, "y", Float32)
	v.Z = Default(o, "z", Float32)
	return v
}
