package gltf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VRM0 is the VRM 0.x extension. Index fields that VRM 0.x writers set to -1
// to mean "none" are decoded as nil.
type VRM0 struct {
	ExporterVersion    string              `json:"exporterVersion,omitempty"`
	SpecVersion        string              `json:"specVersion,omitempty"`
	Meta               VRM0Meta            `json:"meta"`
	Humanoid           VRM0Humanoid        `json:"humanoid"`
	FirstPerson        *VRM0FirstPerson    `json:"firstPerson,omitempty"`
	BlendShapeMaster   *BlendShapeMaster   `json:"blendShapeMaster,omitempty"`
	SecondaryAnimation *SecondaryAnimation `json:"secondaryAnimation,omitempty"`
	MaterialProperties []MaterialProperty  `json:"materialProperties,omitempty"`
}

// XYZ is a vector encoded as an object with x, y, and z members, the form
// VRM 0.x uses for all of its vectors.
type XYZ struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec returns v as an mgl32.Vec3.
func (v XYZ) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

////////////////////////////////////////////////////////////////

// VRM0Meta holds the avatar's metadata and license.
type VRM0Meta struct {
	Title              string  `json:"title,omitempty"`
	Version            string  `json:"version,omitempty"`
	Author             string  `json:"author,omitempty"`
	ContactInformation string  `json:"contactInformation,omitempty"`
	Reference          string  `json:"reference,omitempty"`
	Texture            *uint32 `json:"texture,omitempty"`

	AllowedUserName    AllowedUserName `json:"allowedUserName,omitempty"`
	ViolentUsage       Usage           `json:"violentUssageName,omitempty"`
	SexualUsage        Usage           `json:"sexualUssageName,omitempty"`
	CommercialUsage    Usage           `json:"commercialUssageName,omitempty"`
	OtherPermissionURL string          `json:"otherPermissionUrl,omitempty"`
	LicenseName        LicenseName     `json:"licenseName,omitempty"`
	OtherLicenseURL    string          `json:"otherLicenseUrl,omitempty"`
}

// AllowedUserName is who may perform as the avatar. The zero value means the
// field was absent.
type AllowedUserName byte

const (
	UserNameUnset AllowedUserName = iota
	UserNameOnlyAuthor
	UserNameExplicitlyLicensedPerson
	UserNameEveryone
)

var allowedUserNameStrings = []string{
	UserNameUnset:                    "",
	UserNameOnlyAuthor:               "OnlyAuthor",
	UserNameExplicitlyLicensedPerson: "ExplicitlyLicensedPerson",
	UserNameEveryone:                 "Everyone",
}

func AllowedUserNameFromString(s string) (AllowedUserName, bool) {
	return lookup[AllowedUserName](allowedUserNameStrings, s)
}

func (n AllowedUserName) String() string { return name(allowedUserNameStrings, n) }
func (n AllowedUserName) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// Usage is whether a kind of use is permitted. The zero value means the field
// was absent.
type Usage byte

const (
	UsageUnset Usage = iota
	UsageDisallow
	UsageAllow
)

var usageStrings = []string{
	UsageUnset:    "",
	UsageDisallow: "Disallow",
	UsageAllow:    "Allow",
}

func UsageFromString(s string) (Usage, bool) {
	return lookup[Usage](usageStrings, s)
}

func (u Usage) String() string { return name(usageStrings, u) }
func (u Usage) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// LicenseName is the license of the avatar. The zero value means the field
// was absent.
type LicenseName byte

const (
	LicenseUnset LicenseName = iota
	LicenseRedistributionProhibited
	LicenseCC0
	LicenseCCBY
	LicenseCCBYNC
	LicenseCCBYSA
	LicenseCCBYNCSA
	LicenseCCBYND
	LicenseCCBYNCND
	LicenseOther
)

var licenseNameStrings = []string{
	LicenseUnset:                    "",
	LicenseRedistributionProhibited: "Redistribution_Prohibited",
	LicenseCC0:                      "CC0",
	LicenseCCBY:                     "CC_BY",
	LicenseCCBYNC:                   "CC_BY_NC",
	LicenseCCBYSA:                   "CC_BY_SA",
	LicenseCCBYNCSA:                 "CC_BY_NC_SA",
	LicenseCCBYND:                   "CC_BY_ND",
	LicenseCCBYNCND:                 "CC_BY_NC_ND",
	LicenseOther:                    "Other",
}

func LicenseNameFromString(s string) (LicenseName, bool) {
	return lookup[LicenseName](licenseNameStrings, s)
}

func (n LicenseName) String() string { return name(licenseNameStrings, n) }
func (n LicenseName) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

////////////////////////////////////////////////////////////////

// VRM0Humanoid maps humanoid bones to nodes, with the muscle settings of the
// Unity avatar the model was exported from.
type VRM0Humanoid struct {
	HumanBones        []VRM0HumanBone `json:"humanBones,omitempty"`
	ArmStretch        *float32        `json:"armStretch,omitempty"`
	LegStretch        *float32        `json:"legStretch,omitempty"`
	UpperArmTwist     *float32        `json:"upperArmTwist,omitempty"`
	LowerArmTwist     *float32        `json:"lowerArmTwist,omitempty"`
	UpperLegTwist     *float32        `json:"upperLegTwist,omitempty"`
	LowerLegTwist     *float32        `json:"lowerLegTwist,omitempty"`
	FeetSpacing       *float32        `json:"feetSpacing,omitempty"`
	HasTranslationDoF bool            `json:"hasTranslationDoF,omitempty"`
}

// Bone returns the node of the named bone.
func (h *VRM0Humanoid) Bone(bone string) (node uint32, ok bool) {
	for _, b := range h.HumanBones {
		if b.Bone == bone {
			return b.Node, true
		}
	}
	return 0, false
}

// MissingBones returns the required bones that h does not map, in the order
// of RequiredHumanBones. VRM 0.x additionally requires chest and neck.
func (h *VRM0Humanoid) MissingBones() []string {
	var missing []string
	for _, bone := range append([]string{"chest", "neck"}, RequiredHumanBones...) {
		if _, ok := h.Bone(bone); !ok {
			missing = append(missing, bone)
		}
	}
	return missing
}

// VRM0HumanBone binds a humanoid bone to a node.
type VRM0HumanBone struct {
	Bone             string  `json:"bone"`
	Node             uint32  `json:"node"`
	UseDefaultValues bool    `json:"useDefaultValues,omitempty"`
	Min              *XYZ    `json:"min,omitempty"`
	Max              *XYZ    `json:"max,omitempty"`
	Center           *XYZ    `json:"center,omitempty"`
	AxisLength       float32 `json:"axisLength,omitempty"`
}

////////////////////////////////////////////////////////////////

// VRM0FirstPerson configures the first-person view and look-at behavior.
type VRM0FirstPerson struct {
	FirstPersonBone       *uint32              `json:"firstPersonBone,omitempty"`
	FirstPersonBoneOffset *XYZ                 `json:"firstPersonBoneOffset,omitempty"`
	MeshAnnotations       []VRM0MeshAnnotation `json:"meshAnnotations,omitempty"`

	LookAtTypeName        LookAtTypeName `json:"lookAtTypeName,omitempty"`
	LookAtHorizontalInner *DegreeMap     `json:"lookAtHorizontalInner,omitempty"`
	LookAtHorizontalOuter *DegreeMap     `json:"lookAtHorizontalOuter,omitempty"`
	LookAtVerticalDown    *DegreeMap     `json:"lookAtVerticalDown,omitempty"`
	LookAtVerticalUp      *DegreeMap     `json:"lookAtVerticalUp,omitempty"`
}

// VRM0MeshAnnotation sets the first-person visibility of a mesh.
type VRM0MeshAnnotation struct {
	Mesh            uint32          `json:"mesh"`
	FirstPersonFlag FirstPersonFlag `json:"firstPersonFlag,omitempty"`
}

// DegreeMap maps a look-at angle to a bone rotation or blend shape weight
// through a curve.
type DegreeMap struct {
	Curve  []float32 `json:"curve,omitempty"`
	XRange float32   `json:"xRange,omitempty"`
	YRange float32   `json:"yRange,omitempty"`
}

// FirstPersonFlag is the first-person visibility of a mesh. The zero value
// means the field was absent.
type FirstPersonFlag byte

const (
	FlagUnset FirstPersonFlag = iota
	FlagAuto
	FlagBoth
	FlagThirdPersonOnly
	FlagFirstPersonOnly
)

var firstPersonFlagStrings = []string{
	FlagUnset:           "",
	FlagAuto:            "Auto",
	FlagBoth:            "Both",
	FlagThirdPersonOnly: "ThirdPersonOnly",
	FlagFirstPersonOnly: "FirstPersonOnly",
}

func FirstPersonFlagFromString(s string) (FirstPersonFlag, bool) {
	return lookup[FirstPersonFlag](firstPersonFlagStrings, s)
}

func (f FirstPersonFlag) String() string { return name(firstPersonFlagStrings, f) }
func (f FirstPersonFlag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// LookAtTypeName is whether look-at drives bones or blend shapes. The zero
// value means the field was absent.
type LookAtTypeName byte

const (
	LookAtTypeUnset LookAtTypeName = iota
	LookAtTypeBone
	LookAtTypeBlendShape
)

var lookAtTypeNameStrings = []string{
	LookAtTypeUnset:      "",
	LookAtTypeBone:       "Bone",
	LookAtTypeBlendShape: "BlendShape",
}

func LookAtTypeNameFromString(s string) (LookAtTypeName, bool) {
	return lookup[LookAtTypeName](lookAtTypeNameStrings, s)
}

func (t LookAtTypeName) String() string { return name(lookAtTypeNameStrings, t) }
func (t LookAtTypeName) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

////////////////////////////////////////////////////////////////

// BlendShapeMaster holds the blend shape groups of the avatar.
type BlendShapeMaster struct {
	BlendShapeGroups []BlendShapeGroup `json:"blendShapeGroups,omitempty"`
}

// BlendShapeGroup is a named expression built from morph targets and
// material values.
type BlendShapeGroup struct {
	Name           string                    `json:"name,omitempty"`
	PresetName     BlendShapePreset          `json:"presetName,omitempty"`
	Binds          []BlendShapeBind          `json:"binds,omitempty"`
	MaterialValues []BlendShapeMaterialValue `json:"materialValues,omitempty"`
	IsBinary       bool                      `json:"isBinary,omitempty"`
}

// BlendShapeBind drives a morph target of a mesh. Weight ranges from 0 to
// 100.
type BlendShapeBind struct {
	Mesh   uint32  `json:"mesh"`
	Index  uint32  `json:"index"`
	Weight float32 `json:"weight"`
}

// BlendShapeMaterialValue drives a named shader property of a material.
type BlendShapeMaterialValue struct {
	MaterialName string    `json:"materialName"`
	PropertyName string    `json:"propertyName"`
	TargetValue  []float32 `json:"targetValue"`
}

// BlendShapePreset identifies the role of a blend shape group. The zero
// value is unknown, which is also used for custom groups.
type BlendShapePreset byte

const (
	PresetUnknown BlendShapePreset = iota
	PresetNeutral
	PresetA
	PresetI
	PresetU
	PresetE
	PresetO
	PresetBlink
	PresetJoy
	PresetAngry
	PresetSorrow
	PresetFun
	PresetLookUp
	PresetLookDown
	PresetLookLeft
	PresetLookRight
	PresetBlinkL
	PresetBlinkR
)

var blendShapePresetStrings = []string{
	PresetUnknown:   "unknown",
	PresetNeutral:   "neutral",
	PresetA:         "a",
	PresetI:         "i",
	PresetU:         "u",
	PresetE:         "e",
	PresetO:         "o",
	PresetBlink:     "blink",
	PresetJoy:       "joy",
	PresetAngry:     "angry",
	PresetSorrow:    "sorrow",
	PresetFun:       "fun",
	PresetLookUp:    "lookup",
	PresetLookDown:  "lookdown",
	PresetLookLeft:  "lookleft",
	PresetLookRight: "lookright",
	PresetBlinkL:    "blink_l",
	PresetBlinkR:    "blink_r",
}

func BlendShapePresetFromString(s string) (BlendShapePreset, bool) {
	return lookup[BlendShapePreset](blendShapePresetStrings, s)
}

func (p BlendShapePreset) String() string { return name(blendShapePresetStrings, p) }
func (p BlendShapePreset) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

////////////////////////////////////////////////////////////////

// SecondaryAnimation is the VRM 0.x spring bone configuration.
type SecondaryAnimation struct {
	BoneGroups     []BoneGroup         `json:"boneGroups,omitempty"`
	ColliderGroups []VRM0ColliderGroup `json:"colliderGroups,omitempty"`
}

// BoneGroup is a set of spring chains sharing physical parameters. Each of
// Bones is the root of a chain.
type BoneGroup struct {
	Comment        string   `json:"comment,omitempty"`
	Stiffness      float32  `json:"stiffiness"`
	GravityPower   float32  `json:"gravityPower"`
	GravityDir     XYZ      `json:"gravityDir"`
	DragForce      float32  `json:"dragForce"`
	Center         *uint32  `json:"center,omitempty"`
	HitRadius      float32  `json:"hitRadius"`
	Bones          []uint32 `json:"bones,omitempty"`
	ColliderGroups []uint32 `json:"colliderGroups,omitempty"`
}

// VRM0ColliderGroup is a set of spheres attached to a node.
type VRM0ColliderGroup struct {
	Node      uint32         `json:"node"`
	Colliders []VRM0Collider `json:"colliders,omitempty"`
}

// VRM0Collider is a sphere in the local space of its group's node.
type VRM0Collider struct {
	Offset XYZ     `json:"offset"`
	Radius float32 `json:"radius"`
}

////////////////////////////////////////////////////////////////

// MaterialProperty holds the Unity shader properties of a material, in the
// order of the document's materials.
type MaterialProperty struct {
	Name              string               `json:"name,omitempty"`
	Shader            string               `json:"shader,omitempty"`
	RenderQueue       int32                `json:"renderQueue,omitempty"`
	FloatProperties   map[string]float32   `json:"floatProperties,omitempty"`
	VectorProperties  map[string][]float32 `json:"vectorProperties,omitempty"`
	TextureProperties map[string]uint32    `json:"textureProperties,omitempty"`
	KeywordMap        map[string]bool      `json:"keywordMap,omitempty"`
	TagMap            map[string]string    `json:"tagMap,omitempty"`
}
