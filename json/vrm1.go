package json

import (
	"github.com/vrmkit/gltf"
)

func vrm1(o *Object) (v gltf.VRM1) {
	v.SpecVersion = Required(o, "specVersion", String)
	v.Meta = Required(o, "meta", ObjectOf(vrm1Meta))
	v.Humanoid = Required(o, "humanoid", ObjectOf(vrm1Humanoid))
	v.FirstPerson = Optional(o, "firstPerson", ObjectOf(firstPerson))
	v.LookAt = Optional(o, "lookAt", ObjectOf(lookAt))
	v.Expressions = Optional(o, "expressions", ObjectOf(expressions))
	return v
}

func vrm1Meta(o *Object) (m gltf.VRM1Meta) {
	m.Name = Required(o, "name", String)
	m.Version = Default(o, "version", String)
	m.Authors = Required(o, "authors", ArrayOf(String))
	m.CopyrightInformation = Default(o, "copyrightInformation", String)
	m.ContactInformation = Default(o, "contactInformation", String)
	m.References = List(o, "references", String)
	m.ThirdPartyLicenses = Default(o, "thirdPartyLicenses", String)
	m.ThumbnailImage = Optional(o, "thumbnailImage", Uint32)
	m.LicenseURL = Required(o, "licenseUrl", String)
	m.AvatarPermission = Default(o, "avatarPermission", StringEnum(gltf.AvatarPermissionFromString))
	m.AllowExcessivelyViolentUsage = Default(o, "allowExcessivelyViolentUsage", Bool)
	m.AllowExcessivelySexualUsage = Default(o, "allowExcessivelySexualUsage", Bool)
	m.CommercialUsage = Default(o, "commercialUsage", StringEnum(gltf.CommercialUsageFromString))
	m.AllowPoliticalOrReligiousUsage = Default(o, "allowPoliticalOrReligiousUsage", Bool)
	m.AllowAntisocialOrHateUsage = Default(o, "allowAntisocialOrHateUsage", Bool)
	m.CreditNotation = Default(o, "creditNotation", StringEnum(gltf.CreditNotationFromString))
	m.AllowRedistribution = Default(o, "allowRedistribution", Bool)
	m.Modification = Default(o, "modification", StringEnum(gltf.ModificationFromString))
	m.OtherLicenseURL = Default(o, "otherLicenseUrl", String)
	return m
}

func vrm1Humanoid(o *Object) (h gltf.VRM1Humanoid) {
	h.HumanBones = Required(o, "humanBones", MapOf(ObjectOf(humanBone)))
	return h
}

func humanBone(o *Object) (b gltf.HumanBone) {
	b.Node = Required(o, "node", Uint32)
	return b
}

////////////////////////////////////////////////////////////////

func firstPerson(o *Object) (f gltf.FirstPerson) {
	f.MeshAnnotations = List(o, "meshAnnotations", ObjectOf(meshAnnotation))
	return f
}

func meshAnnotation(o *Object) (a gltf.MeshAnnotation) {
	a.Node = Required(o, "node", Uint32)
	a.Type = Required(o, "type", StringEnum(gltf.FirstPersonTypeFromString))
	return a
}

func lookAt(o *Object) (l gltf.LookAt) {
	l.OffsetFromHeadBone = Optional(o, "offsetFromHeadBone", Vec3)
	l.Type = Default(o, "type", StringEnum(gltf.LookAtTypeFromString))
	l.RangeMapHorizontalInner = Optional(o, "rangeMapHorizontalInner", ObjectOf(rangeMap))
	l.RangeMapHorizontalOuter = Optional(o, "rangeMapHorizontalOuter", ObjectOf(rangeMap))
	l.RangeMapVerticalDown = Optional(o, "rangeMapVerticalDown", ObjectOf(rangeMap))
	l.RangeMapVerticalUp = Optional(o, "rangeMapVerticalUp", ObjectOf(rangeMap))
	return l
}

func rangeMap(o *Object) (r gltf.RangeMap) {
	r.InputMaxValue = Optional(o, "inputMaxValue", Float32)
	r.OutputScale = Optional(o, "outputScale", Float32)
	return r
}

////////////////////////////////////////////////////////////////

func expressions(o *Object) (e gltf.Expressions) {
	e.Preset = Dict(o, "preset", ObjectOf(expression))
	e.Custom = Dict(o, "custom", ObjectOf(expression))
	return e
}

func expression(o *Object) (e gltf.Expression) {
	e.MorphTargetBinds = List(o, "morphTargetBinds", ObjectOf(morphTargetBind))
	e.MaterialColorBinds = List(o, "materialColorBinds", ObjectOf(materialColorBind))
	e.TextureTransformBinds = List(o, "textureTransformBinds", ObjectOf(textureTransformBind))
	e.IsBinary = Default(o, "isBinary", Bool)
	e.OverrideBlink = Default(o, "overrideBlink", StringEnum(gltf.ExpressionOverrideFromString))
	e.OverrideLookAt = Default(o, "overrideLookAt", StringEnum(gltf.ExpressionOverrideFromString))
	e.OverrideMouth = Default(o, "overrideMouth", StringEnum(gltf.ExpressionOverrideFromString))
	return e
}

func morphTargetBind(o *Object) (b gltf.MorphTargetBind) {
	b.Node = Required(o, "node", Uint32)
	b.Index = Required(o, "index", Uint32)
	b.Weight = Required(o, "weight", Float32)
	return b
}

func materialColorBind(o *Object) (b gltf.MaterialColorBind) {
	b.Material = Required(o, "material", Uint32)
	b.Type = Required(o, "type", StringEnum(gltf.MaterialColorTypeFromString))
	b.TargetValue = Required(o, "targetValue", Vec4)
	return b
}

func textureTransformBind(o *Object) (b gltf.TextureTransformBind) {
	b.Material = Required(o, "material", Uint32)
	b.Scale = Optional(o, "scale", Vec2)
	b.Offset = Optional(o, "offset", Vec2)
	return b
}
