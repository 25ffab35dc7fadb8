package json

import (
	"github.com/vrmkit/gltf"
)

var materialExtensions = []Extension[gltf.MaterialExtensions]{
	Field(gltf.ExtMaterialsAnisotropy, ObjectOf(anisotropy), func(e *gltf.MaterialExtensions) **gltf.Anisotropy { return &e.Anisotropy }),
	Field(gltf.ExtMaterialsClearcoat, ObjectOf(clearcoat), func(e *gltf.MaterialExtensions) **gltf.Clearcoat { return &e.Clearcoat }),
	Field(gltf.ExtMaterialsDispersion, ObjectOf(dispersion), func(e *gltf.MaterialExtensions) **gltf.Dispersion { return &e.Dispersion }),
	Field(gltf.ExtMaterialsEmissiveStrength, ObjectOf(emissiveStrength), func(e *gltf.MaterialExtensions) **gltf.EmissiveStrength { return &e.EmissiveStrength }),
	Field(gltf.ExtMaterialsIOR, ObjectOf(ior), func(e *gltf.MaterialExtensions) **gltf.IOR { return &e.IOR }),
	Field(gltf.ExtMaterialsIridescence, ObjectOf(iridescence), func(e *gltf.MaterialExtensions) **gltf.Iridescence { return &e.Iridescence }),
	Field(gltf.ExtMaterialsSheen, ObjectOf(sheen), func(e *gltf.MaterialExtensions) **gltf.Sheen { return &e.Sheen }),
	Field(gltf.ExtMaterialsSpecular, ObjectOf(specular), func(e *gltf.MaterialExtensions) **gltf.Specular { return &e.Specular }),
	Field(gltf.ExtMaterialsTransmission, ObjectOf(transmission), func(e *gltf.MaterialExtensions) **gltf.Transmission { return &e.Transmission }),
	Field(gltf.ExtMaterialsUnlit, ObjectOf(unlit), func(e *gltf.MaterialExtensions) **gltf.Unlit { return &e.Unlit }),
	Field(gltf.ExtMaterialsVolume, ObjectOf(volume), func(e *gltf.MaterialExtensions) **gltf.Volume { return &e.Volume }),
	Field(gltf.ExtMaterialsMToon, ObjectOf(mtoon), func(e *gltf.MaterialExtensions) **gltf.MToon { return &e.MToon }),
}

func material(o *Object) (m gltf.Material) {
	m.Name = Default(o, "name", String)
	m.PBRMetallicRoughness = Optional(o, "pbrMetallicRoughness", ObjectOf(pbrMetallicRoughness))
	m.NormalTexture = Optional(o, "normalTexture", ObjectOf(normalTextureInfo))
	m.OcclusionTexture = Optional(o, "occlusionTexture", ObjectOf(occlusionTextureInfo))
	m.EmissiveTexture = Optional(o, "emissiveTexture", ObjectOf(textureInfo))
	m.EmissiveFactor = Optional(o, "emissiveFactor", Vec3)
	m.AlphaMode = Default(o, "alphaMode", StringEnum(gltf.AlphaModeFromString))
	m.AlphaCutoff = Optional(o, "alphaCutoff", Float32)
	m.DoubleSided = Default(o, "doubleSided", Bool)
	m.Extensions = Extensions(o, materialExtensions)
	return m
}

func pbrMetallicRoughness(o *Object) (p gltf.PBRMetallicRoughness) {
	p.BaseColorFactor = Optional(o, "baseColorFactor", Vec4)
	p.BaseColorTexture = Optional(o, "baseColorTexture", ObjectOf(textureInfo))
	p.MetallicFactor = Optional(o, "metallicFactor", Float32)
	p.RoughnessFactor = Optional(o, "roughnessFactor", Float32)
	p.MetallicRoughnessTexture = Optional(o, "metallicRoughnessTexture", ObjectOf(textureInfo))
	return p
}

var textureInfoExtensions = []Extension[gltf.TextureInfoExtensions]{
	Field(gltf.ExtTextureTransform, ObjectOf(textureTransform), func(e *gltf.TextureInfoExtensions) **gltf.TextureTransform { return &e.TextureTransform }),
}

func textureInfo(o *Object) (t gltf.TextureInfo) {
	t.Index = Required(o, "index", Uint32)
	t.TexCoord = Default(o, "texCoord", Uint32)
	t.Extensions = Extensions(o, textureInfoExtensions)
	return t
}

func normalTextureInfo(o *Object) (t gltf.NormalTextureInfo) {
	t.TextureInfo = textureInfo(o)
	t.Scale = Optional(o, "scale", Float32)
	return t
}

func occlusionTextureInfo(o *Object) (t gltf.OcclusionTextureInfo) {
	t.TextureInfo = textureInfo(o)
	t.Strength = Optional(o, "strength", Float32)
	return t
}

////////////////////////////////////////////////////////////////

func texture(o *Object) (t gltf.Texture) {
	t.Sampler = Optional(o, "sampler", Uint32)
	t.Source = Optional(o, "source", Uint32)
	t.Name = Default(o, "name", String)
	return t
}

func image(o *Object) (i gltf.Image) {
	i.URI = Default(o, "uri", String)
	i.MimeType = Default(o, "mimeType", String)
	i.BufferView = Optional(o, "bufferView", Uint32)
	i.Name = Default(o, "name", String)
	return i
}

func sampler(o *Object) (s gltf.Sampler) {
	s.MagFilter = Default(o, "magFilter", IntEnum[gltf.MagFilter]())
	s.MinFilter = Default(o, "minFilter", IntEnum[gltf.MinFilter]())
	s.WrapS = Optional(o, "wrapS", IntEnum[gltf.WrapMode]())
	s.WrapT = Optional(o, "wrapT", IntEnum[gltf.WrapMode]())
	s.Name = Default(o, "name", String)
	return s
}
