package json

import (
	"github.com/vrmkit/gltf"
)

func textureTransform(o *Object) (t gltf.TextureTransform) {
	t.Offset = Optional(o, "offset", Vec2)
	t.Rotation = Default(o, "rotation", Float32)
	t.Scale = Optional(o, "scale", Vec2)
	t.TexCoord = Optional(o, "texCoord", Uint32)
	return t
}

func unlit(o *Object) (u gltf.Unlit) {
	return u
}

func anisotropy(o *Object) (a gltf.Anisotropy) {
	a.Strength = Default(o, "anisotropyStrength", Float32)
	a.Rotation = Default(o, "anisotropyRotation", Float32)
	a.Texture = Optional(o, "anisotropyTexture", ObjectOf(textureInfo))
	return a
}

func clearcoat(o *Object) (c gltf.Clearcoat) {
	c.Factor = Default(o, "clearcoatFactor", Float32)
	c.Texture = Optional(o, "clearcoatTexture", ObjectOf(textureInfo))
	c.RoughnessFactor = Default(o, "clearcoatRoughnessFactor", Float32)
	c.RoughnessTexture = Optional(o, "clearcoatRoughnessTexture", ObjectOf(textureInfo))
	c.NormalTexture = Optional(o, "clearcoatNormalTexture", ObjectOf(normalTextureInfo))
	return c
}

func dispersion(o *Object) (d gltf.Dispersion) {
	d.Dispersion = Default(o, "dispersion", Float32)
	return d
}

func emissiveStrength(o *Object) (e gltf.EmissiveStrength) {
	e.EmissiveStrength = Optional(o, "emissiveStrength", Float32)
	return e
}

func ior(o *Object) (i gltf.IOR) {
	i.IOR = Optional(o, "ior", Float32)
	return i
}

func iridescence(o *Object) (i gltf.Iridescence) {
	i.Factor = Default(o, "iridescenceFactor", Float32)
	i.Texture = Optional(o, "iridescenceTexture", ObjectOf(textureInfo))
	i.IOR = Optional(o, "iridescenceIor", Float32)
	i.ThicknessMinimum = Optional(o, "iridescenceThicknessMinimum", Float32)
	i.ThicknessMaximum = Optional(o, "iridescenceThicknessMaximum", Float32)
	i.ThicknessTexture = Optional(o, "iridescenceThicknessTexture", ObjectOf(textureInfo))
	return i
}

func sheen(o *Object) (s gltf.Sheen) {
	s.ColorFactor = Optional(o, "sheenColorFactor", Vec3)
	s.ColorTexture = Optional(o, "sheenColorTexture", ObjectOf(textureInfo))
	s.RoughnessFactor = Default(o, "sheenRoughnessFactor", Float32)
	s.RoughnessTexture = Optional(o, "sheenRoughnessTexture", ObjectOf(textureInfo))
	return s
}

func specular(o *Object) (s gltf.Specular) {
	s.Factor = Optional(o, "specularFactor", Float32)
	s.Texture = Optional(o, "specularTexture", ObjectOf(textureInfo))
	s.ColorFactor = Optional(o, "specularColorFactor", Vec3)
	s.ColorTexture = Optional(o, "specularColorTexture", ObjectOf(textureInfo))
	return s
}

func transmission(o *Object) (t gltf.Transmission) {
	t.Factor = Default(o, "transmissionFactor", Float32)
	t.Texture = Optional(o, "transmissionTexture", ObjectOf(textureInfo))
	return t
}

func volume(o *Object) (v gltf.Volume) {
	v.ThicknessFactor = Default(o, "thicknessFactor", Float32)
	v.ThicknessTexture = Optional(o, "thicknessTexture", ObjectOf(textureInfo))
	v.AttenuationDistance = Optional(o, "attenuationDistance", Float32)
	v.AttenuationColor = Optional(o, "attenuationColor", Vec3)
	return v
}

////////////////////////////////////////////////////////////////

func lightsPunctual(o *Object) (l gltf.LightsPunctual) {
	l.Lights = Required(o, "lights", ArrayOf(ObjectOf(light)))
	return l
}

func light(o *Object) (l gltf.Light) {
	l.Name = Default(o, "name", String)
	l.Color = Optional(o, "color", Vec3)
	l.Intensity = Optional(o, "intensity", Float32)
	l.Type = Required(o, "type", StringEnum(gltf.LightTypeFromString))
	l.Range = Optional(o, "range", Float32)
	l.Spot = Optional(o, "spot", ObjectOf(spot))
	return l
}

func spot(o *Object) (s gltf.Spot) {
	s.InnerConeAngle = Default(o, "innerConeAngle", Float32)
	s.OuterConeAngle = Optional(o, "outerConeAngle", Float32)
	return s
}
