package json

import (
	"github.com/vrmkit/gltf"
)

func mtoon(o *Object) (m gltf.MToon) {
	m.SpecVersion = Required(o, "specVersion", String)
	m.TransparentWithZWrite = Default(o, "transparentWithZWrite", Bool)
	m.RenderQueueOffsetNumber = Default(o, "renderQueueOffsetNumber", Int32)

	m.ShadeColorFactor = Optional(o, "shadeColorFactor", Vec3)
	m.ShadeMultiplyTexture = Optional(o, "shadeMultiplyTexture", ObjectOf(textureInfo))
	m.ShadingShiftFactor = Default(o, "shadingShiftFactor", Float32)
	m.ShadingShiftTexture = Optional(o, "shadingShiftTexture", ObjectOf(shadingShiftTextureInfo))
	m.ShadingToonyFactor = Optional(o, "shadingToonyFactor", Float32)
	m.GIEqualizationFactor = Optional(o, "giEqualizationFactor", Float32)

	m.MatcapFactor = Optional(o, "matcapFactor", Vec3)
	m.MatcapTexture = Optional(o, "matcapTexture", ObjectOf(textureInfo))

	m.ParametricRimColorFactor = Optional(o, "parametricRimColorFactor", Vec3)
	m.RimMultiplyTexture = Optional(o, "rimMultiplyTexture", ObjectOf(textureInfo))
	m.RimLightingMixFactor = Optional(o, "rimLightingMixFactor", Float32)
	m.ParametricRimFresnelPowerFactor = Optional(o, "parametricRimFresnelPowerFactor", Float32)
	m.ParametricRimLiftFactor = Default(o, "parametricRimLiftFactor", Float32)

	m.OutlineWidthMode = Default(o, "outlineWidthMode", StringEnum(gltf.OutlineWidthModeFromString))
	m.OutlineWidthFactor = Default(o, "outlineWidthFactor", Float32)
	m.OutlineWidthMultiplyTexture = Optional(o, "outlineWidthMultiplyTexture", ObjectOf(textureInfo))
	m.OutlineColorFactor = Optional(o, "outlineColorFactor", Vec3)
	m.OutlineLightingMixFactor = Optional(o, "outlineLightingMixFactor", Float32)

	m.UVAnimationMaskTexture = Optional(o, "uvAnimationMaskTexture", ObjectOf(textureInfo))
	m.UVAnimationScrollXSpeedFactor = Default(o, "uvAnimationScrollXSpeedFactor", Float32)
	m.UVAnimationScrollYSpeedFactor = Default(o, "uvAnimationScrollYSpeedFactor", Float32)
	m.UVAnimationRotationSpeedFactor = Default(o, "uvAnimationRotationSpeedFactor", Float32)
	return m
}

func shadingShiftTextureInfo(o *Object) (t gltf.ShadingShiftTextureInfo) {
	t.TextureInfo = textureInfo(o)
	t.Scale = Optional(o, "scale", Float32)
	return t
}
