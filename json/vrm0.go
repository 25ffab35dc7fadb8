package json

import (
	"math"

	"github.com/vrmkit/gltf"
)

func vrm0(o *Object) (v gltf.VRM0) {
	v.ExporterVersion = Default(o, "exporterVersion", String)
	v.SpecVersion = Default(o, "specVersion", String)
	v.Meta = Default(o, "meta", ObjectOf(vrm0Meta))
	v.Humanoid = Default(o, "humanoid", ObjectOf(vrm0Humanoid))
	v.FirstPerson = Optional(o, "firstPerson", ObjectOf(vrm0FirstPerson))
	v.BlendShapeMaster = Optional(o, "blendShapeMaster", ObjectOf(blendShapeMaster))
	v.SecondaryAnimation = Optional(o, "secondaryAnimation", ObjectOf(secondaryAnimation))
	v.MaterialProperties = List(o, "materialProperties", ObjectOf(materialProperty))
	return v
}

// vrm0Index decodes an index where a negative value means none, returning
// nil in that case.
func vrm0Index(o *Object, key string) *uint32 {
	v, ok := o.Member(key)
	if !ok {
		return nil
	}
	i, err := v.integer(64)
	if o.Add(err) || i < 0 {
		return nil
	}
	if i > math.MaxUint32 {
		o.Add(v.typeError("unsigned integer"))
		return nil
	}
	n := uint32(i)
	return &n
}

func vrm0Meta(o *Object) (m gltf.VRM0Meta) {
	m.Title = Default(o, "title", String)
	m.Version = Default(o, "version", String)
	m.Author = Default(o, "author", String)
	m.ContactInformation = Default(o, "contactInformation", String)
	m.Reference = Default(o, "reference", String)
	m.Texture = vrm0Index(o, "texture")
	m.AllowedUserName = Default(o, "allowedUserName", StringEnum(gltf.AllowedUserNameFromString))
	m.ViolentUsage = Default(o, "violentUssageName", StringEnum(gltf.UsageFromString))
	m.SexualUsage = Default(o, "sexualUssageName", StringEnum(gltf.UsageFromString))
	m.CommercialUsage = Default(o, "commercialUssageName", StringEnum(gltf.UsageFromString))
	m.OtherPermissionURL = Default(o, "otherPermissionUrl", String)
	m.LicenseName = Default(o, "licenseName", StringEnum(gltf.LicenseNameFromString))
	m.OtherLicenseURL = Default(o, "otherLicenseUrl", String)
	return m
}

////////////////////////////////////////////////////////////////

func vrm0Humanoid(o *Object) (h gltf.VRM0Humanoid) {
	h.HumanBones = List(o, "humanBones", ObjectOf(vrm0HumanBone))
	h.ArmStretch = Optional(o, "armStretch", Float32)
	h.LegStretch = Optional(o, "legStretch", Float32)
	h.UpperArmTwist = Optional(o, "upperArmTwist", Float32)
	h.LowerArmTwist = Optional(o, "lowerArmTwist", Float32)
	h.UpperLegTwist = Optional(o, "upperLegTwist", Float32)
	h.LowerLegTwist = Optional(o, "lowerLegTwist", Float32)
	h.FeetSpacing = Optional(o, "feetSpacing", Float32)
	h.HasTranslationDoF = Default(o, "hasTranslationDoF", Bool)
	return h
}

func vrm0HumanBone(o *Object) (b gltf.VRM0HumanBone) {
	b.Bone = Required(o, "bone", String)
	b.Node = Required(o, "node", Uint32)
	b.UseDefaultValues = Default(o, "useDefaultValues", Bool)
	b.Min = Optional(o, "min", ObjectOf(xyz))
	b.Max = Optional(o, "max", ObjectOf(xyz))
	b.Center = Optional(o, "center", ObjectOf(xyz))
	b.AxisLength = Default(o, "axisLength", Float32)
	return b
}

////////////////////////////////////////////////////////////////

func vrm0FirstPerson(o *Object) (f gltf.VRM0FirstPerson) {
	f.FirstPersonBone = vrm0Index(o, "firstPersonBone")
	f.FirstPersonBoneOffset = Optional(o, "firstPersonBoneOffset", ObjectOf(xyz))
	f.MeshAnnotations = List(o, "meshAnnotations", ObjectOf(vrm0MeshAnnotation))
	f.LookAtTypeName = Default(o, "lookAtTypeName", StringEnum(gltf.LookAtTypeNameFromString))
	f.LookAtHorizontalInner = Optional(o, "lookAtHorizontalInner", ObjectOf(degreeMap))
	f.LookAtHorizontalOuter = Optional(o, "lookAtHorizontalOuter", ObjectOf(degreeMap))
	f.LookAtVerticalDown = Optional(o, "lookAtVerticalDown", ObjectOf(degreeMap))
	f.LookAtVerticalUp = Optional(o, "lookAtVerticalUp", ObjectOf(degreeMap))
	return f
}

func vrm0MeshAnnotation(o *Object) (a gltf.VRM0MeshAnnotation) {
	a.Mesh = Required(o, "mesh", Uint32)
	a.FirstPersonFlag = Default(o, "firstPersonFlag", StringEnum(gltf.FirstPersonFlagFromString))
	return a
}

func degreeMap(o *Object) (d gltf.DegreeMap) {
	d.Curve = List(o, "curve", Float32)
	d.XRange = Default(o, "xRange", Float32)
	d.YRange = Default(o, "yRange", Float32)
	return d
}

////////////////////////////////////////////////////////////////

func blendShapeMaster(o *Object) (m gltf.BlendShapeMaster) {
	m.BlendShapeGroups = List(o, "blendShapeGroups", ObjectOf(blendShapeGroup))
	return m
}

func blendShapeGroup(o *Object) (g gltf.BlendShapeGroup) {
	g.Name = Default(o, "name", String)
	g.PresetName = Default(o, "presetName", StringEnum(gltf.BlendShapePresetFromString))
	g.Binds = List(o, "binds", ObjectOf(blendShapeBind))
	g.MaterialValues = List(o, "materialValues", ObjectOf(blendShapeMaterialValue))
	g.IsBinary = Default(o, "isBinary", Bool)
	return g
}

func blendShapeBind(o *Object) (b gltf.BlendShapeBind) {
	b.Mesh = Required(o, "mesh", Uint32)
	b.Index = Required(o, "index", Uint32)
	b.Weight = Default(o, "weight", Float32)
	return b
}

func blendShapeMaterialValue(o *Object) (v gltf.BlendShapeMaterialValue) {
	v.MaterialName = Default(o, "materialName", String)
	v.PropertyName = Default(o, "propertyName", String)
	v.TargetValue = List(o, "targetValue", Float32)
	return v
}

////////////////////////////////////////////////////////////////

func secondaryAnimation(o *Object) (s gltf.SecondaryAnimation) {
	s.BoneGroups = List(o, "boneGroups", ObjectOf(boneGroup))
	s.ColliderGroups = List(o, "colliderGroups", ObjectOf(vrm0ColliderGroup))
	return s
}

func boneGroup(o *Object) (g gltf.BoneGroup) {
	g.Comment = Default(o, "comment", String)
	g.Stiffness = Default(o, "stiffiness", Float32)
	g.GravityPower = Default(o, "gravityPower", Float32)
	g.GravityDir = Default(o, "gravityDir", ObjectOf(xyz))
	g.DragForce = Default(o, "dragForce", Float32)
	g.Center = vrm0Index(o, "center")
	g.HitRadius = Default(o, "hitRadius", Float32)
	g.Bones = List(o, "bones", Uint32)
	g.ColliderGroups = List(o, "colliderGroups", Uint32)
	return g
}

func vrm0ColliderGroup(o *Object) (g gltf.VRM0ColliderGroup) {
	g.Node = Required(o, "node", Uint32)
	g.Colliders = List(o, "colliders", ObjectOf(vrm0Collider))
	return g
}

func vrm0Collider(o *Object) (c gltf.VRM0Collider) {
	c.Offset = Default(o, "offset", ObjectOf(xyz))
	c.Radius = Default(o, "radius", Float32)
	return c
}

////////////////////////////////////////////////////////////////

func materialProperty(o *Object) (p gltf.MaterialProperty) {
	p.Name = Default(o, "name", String)
	p.Shader = Default(o, "shader", String)
	p.RenderQueue = Default(o, "renderQueue", Int32)
	p.FloatProperties = Dict(o, "floatProperties", Float32)
	p.VectorProperties = Dict(o, "vectorProperties", ArrayOf(Float32))
	p.TextureProperties = Dict(o, "textureProperties", Uint32)
	p.KeywordMap = Dict(o, "keywordMap", Bool)
	p.TagMap = Dict(o, "tagMap", String)
	return p
}
