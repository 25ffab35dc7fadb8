package gltf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VRM1 is the VRMC_vrm extension, describing a humanoid avatar.
type VRM1 struct {
	SpecVersion string       `json:"specVersion"`
	Meta        VRM1Meta     `json:"meta"`
	Humanoid    VRM1Humanoid `json:"humanoid"`
	FirstPerson *FirstPerson `json:"firstPerson,omitempty"`
	LookAt      *LookAt      `json:"lookAt,omitempty"`
	Expressions *Expressions `json:"expressions,omitempty"`
}

// VRM1Meta holds the avatar's metadata and license.
type VRM1Meta struct {
	Name                 string   `json:"name"`
	Version              string   `json:"version,omitempty"`
	Authors              []string `json:"authors"`
	CopyrightInformation string   `json:"copyrightInformation,omitempty"`
	ContactInformation   string   `json:"contactInformation,omitempty"`
	References           []string `json:"references,omitempty"`
	ThirdPartyLicenses   string   `json:"thirdPartyLicenses,omitempty"`
	ThumbnailImage       *uint32  `json:"thumbnailImage,omitempty"`
	LicenseURL           string   `json:"licenseUrl"`

	AvatarPermission               AvatarPermission `json:"avatarPermission,omitempty"`
	AllowExcessivelyViolentUsage   bool             `json:"allowExcessivelyViolentUsage,omitempty"`
	AllowExcessivelySexualUsage    bool             `json:"allowExcessivelySexualUsage,omitempty"`
	CommercialUsage                CommercialUsage  `json:"commercialUsage,omitempty"`
	AllowPoliticalOrReligiousUsage bool             `json:"allowPoliticalOrReligiousUsage,omitempty"`
	AllowAntisocialOrHateUsage     bool             `json:"allowAntisocialOrHateUsage,omitempty"`
	CreditNotation                 CreditNotation   `json:"creditNotation,omitempty"`
	AllowRedistribution            bool             `json:"allowRedistribution,omitempty"`
	Modification                   Modification     `json:"modification,omitempty"`
	OtherLicenseURL                string           `json:"otherLicenseUrl,omitempty"`
}

// AvatarPermission is who may perform as the avatar. The zero value is the
// default, onlyAuthor.
type AvatarPermission byte

const (
	PermissionOnlyAuthor AvatarPermission = iota
	PermissionOnlySeparatelyLicensedPerson
	PermissionEveryone
)

var avatarPermissionStrings = []string{
	PermissionOnlyAuthor:                   "onlyAuthor",
	PermissionOnlySeparatelyLicensedPerson: "onlySeparatelyLicensedPerson",
	PermissionEveryone:                     "everyone",
}

func AvatarPermissionFromString(s string) (AvatarPermission, bool) {
	return lookup[AvatarPermission](avatarPermissionStrings, s)
}

func (p AvatarPermission) String() string { return name(avatarPermissionStrings, p) }
func (p AvatarPermission) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// CommercialUsage is the permitted commercial use of the avatar. The zero
// value is the default, personalNonProfit.
type CommercialUsage byte

const (
	CommercialPersonalNonProfit CommercialUsage = iota
	CommercialPersonalProfit
	CommercialCorporation
)

var commercialUsageStrings = []string{
	CommercialPersonalNonProfit: "personalNonProfit",
	CommercialPersonalProfit:    "personalProfit",
	CommercialCorporation:       "corporation",
}

func CommercialUsageFromString(s string) (CommercialUsage, bool) {
	return lookup[CommercialUsage](commercialUsageStrings, s)
}

func (u CommercialUsage) String() string { return name(commercialUsageStrings, u) }
func (u CommercialUsage) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// CreditNotation is whether crediting the author is required. The zero value
// is the default, required.
type CreditNotation byte

const (
	CreditRequired CreditNotation = iota
	CreditUnnecessary
)

var creditNotationStrings = []string{
	CreditRequired:    "required",
	CreditUnnecessary: "unnecessary",
}

func CreditNotationFromString(s string) (CreditNotation, bool) {
	return lookup[CreditNotation](creditNotationStrings, s)
}

func (c CreditNotation) String() string { return name(creditNotationStrings, c) }
func (c CreditNotation) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Modification is the permitted modification of the avatar. The zero value
// is the default, prohibited.
type Modification byte

const (
	ModificationProhibited Modification = iota
	ModificationAllow
	ModificationAllowRedistribution
)

var modificationStrings = []string{
	ModificationProhibited:          "prohibited",
	ModificationAllow:               "allowModification",
	ModificationAllowRedistribution: "allowModificationRedistribution",
}

func ModificationFromString(s string) (Modification, bool) {
	return lookup[Modification](modificationStrings, s)
}

func (m Modification) String() string { return name(modificationStrings, m) }
func (m Modification) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

////////////////////////////////////////////////////////////////

// RequiredHumanBones lists the bones every VRM humanoid must map.
var RequiredHumanBones = []string{
	"hips", "spine", "head",
	"leftUpperArm", "leftLowerArm", "leftHand",
	"rightUpperArm", "rightLowerArm", "rightHand",
	"leftUpperLeg", "leftLowerLeg", "leftFoot",
	"rightUpperLeg", "rightLowerLeg", "rightFoot",
}

// VRM1Humanoid maps humanoid bone names, such as "hips" or "leftHand", to
// nodes.
type VRM1Humanoid struct {
	HumanBones map[string]HumanBone `json:"humanBones"`
}

// HumanBone binds a humanoid bone to a node.
type HumanBone struct {
	Node uint32 `json:"node"`
}

// MissingBones returns the required bones that h does not map, in the order
// of RequiredHumanBones.
func (h *VRM1Humanoid) MissingBones() []string {
	var missing []string
	for _, bone := range RequiredHumanBones {
		if _, ok := h.HumanBones[bone]; !ok {
			missing = append(missing, bone)
		}
	}
	return missing
}

////////////////////////////////////////////////////////////////

// FirstPerson configures mesh visibility for first-person views.
type FirstPerson struct {
	MeshAnnotations []MeshAnnotation `json:"meshAnnotations,omitempty"`
}

// MeshAnnotation sets the first-person visibility of a node's mesh.
type MeshAnnotation struct {
	Node uint32          `json:"node"`
	Type FirstPersonType `json:"type"`
}

// FirstPersonType is the visibility of a mesh in first-person and
// third-person views. The zero value is auto.
type FirstPersonType byte

const (
	FirstPersonAuto FirstPersonType = iota
	FirstPersonBoth
	FirstPersonThirdPersonOnly
	FirstPersonFirstPersonOnly
)

var firstPersonTypeStrings = []string{
	FirstPersonAuto:            "auto",
	FirstPersonBoth:            "both",
	FirstPersonThirdPersonOnly: "thirdPersonOnly",
	FirstPersonFirstPersonOnly: "firstPersonOnly",
}

func FirstPersonTypeFromString(s string) (FirstPersonType, bool) {
	return lookup[FirstPersonType](firstPersonTypeStrings, s)
}

func (t FirstPersonType) String() string { return name(firstPersonTypeStrings, t) }
func (t FirstPersonType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// LookAt configures how the eyes follow a target.
type LookAt struct {
	OffsetFromHeadBone      *mgl32.Vec3 `json:"offsetFromHeadBone,omitempty"`
	Type                    LookAtType  `json:"type,omitempty"`
	RangeMapHorizontalInner *RangeMap   `json:"rangeMapHorizontalInner,omitempty"`
	RangeMapHorizontalOuter *RangeMap   `json:"rangeMapHorizontalOuter,omitempty"`
	RangeMapVerticalDown    *RangeMap   `json:"rangeMapVerticalDown,omitempty"`
	RangeMapVerticalUp      *RangeMap   `json:"rangeMapVerticalUp,omitempty"`
}

func (l *LookAt) OffsetFromHeadBoneOrDefault() mgl32.Vec3 {
	return orDefault(l.OffsetFromHeadBone, mgl32.Vec3{})
}

// RangeMap maps a look-at angle in degrees to a bone rotation or an
// expression weight.
type RangeMap struct {
	InputMaxValue *float32 `json:"inputMaxValue,omitempty"`
	OutputScale   *float32 `json:"outputScale,omitempty"`
}

// InputMaxValueOrDefault returns the input range, 90 degrees by default.
func (r *RangeMap) InputMaxValueOrDefault() float32 {
	return orDefault(r.InputMaxValue, 90)
}

// OutputScaleOrDefault returns the output scale, 10 by default.
func (r *RangeMap) OutputScaleOrDefault() float32 {
	return orDefault(r.OutputScale, 10)
}

// LookAtType is whether look-at drives bones or expressions. The zero value
// is bone.
type LookAtType byte

const (
	LookAtBone LookAtType = iota
	LookAtExpression
)

var lookAtTypeStrings = []string{
	LookAtBone:       "bone",
	LookAtExpression: "expression",
}

func LookAtTypeFromString(s string) (LookAtType, bool) {
	return lookup[LookAtType](lookAtTypeStrings, s)
}

func (t LookAtType) String() string { return name(lookAtTypeStrings, t) }
func (t LookAtType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

////////////////////////////////////////////////////////////////

// PresetExpressions lists the names of the preset expressions.
var PresetExpressions = []string{
	"happy", "angry", "sad", "relaxed", "surprised",
	"aa", "ih", "ou", "ee", "oh",
	"blink", "blinkLeft", "blinkRight",
	"lookUp", "lookDown", "lookLeft", "lookRight",
	"neutral",
}

// IsPresetExpression returns whether name is one of PresetExpressions.
func IsPresetExpression(name string) bool {
	for _, p := range PresetExpressions {
		if p == name {
			return true
		}
	}
	return false
}

// Expressions holds preset and custom facial expressions by name.
type Expressions struct {
	Preset map[string]Expression `json:"preset,omitempty"`
	Custom map[string]Expression `json:"custom,omitempty"`
}

// Expression is a weighted combination of morph targets, material colors, and
// texture transforms.
type Expression struct {
	MorphTargetBinds      []MorphTargetBind      `json:"morphTargetBinds,omitempty"`
	MaterialColorBinds    []MaterialColorBind    `json:"materialColorBinds,omitempty"`
	TextureTransformBinds []TextureTransformBind `json:"textureTransformBinds,omitempty"`
	IsBinary              bool                   `json:"isBinary,omitempty"`
	OverrideBlink         ExpressionOverride     `json:"overrideBlink,omitempty"`
	OverrideLookAt        ExpressionOverride     `json:"overrideLookAt,omitempty"`
	OverrideMouth         ExpressionOverride     `json:"overrideMouth,omitempty"`
}

// MorphTargetBind drives a morph target of a node's mesh.
type MorphTargetBind struct {
	Node   uint32  `json:"node"`
	Index  uint32  `json:"index"`
	Weight float32 `json:"weight"`
}

// MaterialColorBind drives a color property of a material.
type MaterialColorBind struct {
	Material    uint32            `json:"material"`
	Type        MaterialColorType `json:"type"`
	TargetValue mgl32.Vec4        `json:"targetValue"`
}

// TextureTransformBind drives the texture transform of a material.
type TextureTransformBind struct {
	Material uint32      `json:"material"`
	Scale    *mgl32.Vec2 `json:"scale,omitempty"`
	Offset   *mgl32.Vec2 `json:"offset,omitempty"`
}

func (b *TextureTransformBind) ScaleOrDefault() mgl32.Vec2 {
	return orDefault(b.Scale, mgl32.Vec2{1, 1})
}

func (b *TextureTransformBind) OffsetOrDefault() mgl32.Vec2 {
	return orDefault(b.Offset, mgl32.Vec2{})
}

// MaterialColorType is the material property a MaterialColorBind drives.
type MaterialColorType byte

const (
	MaterialColor MaterialColorType = iota
	MaterialEmissionColor
	MaterialShadeColor
	MaterialMatcapColor
	MaterialRimColor
	MaterialOutlineColor
)

var materialColorTypeStrings = []string{
	MaterialColor:         "color",
	MaterialEmissionColor: "emissionColor",
	MaterialShadeColor:    "shadeColor",
	MaterialMatcapColor:   "matcapColor",
	MaterialRimColor:      "rimColor",
	MaterialOutlineColor:  "outlineColor",
}

func MaterialColorTypeFromString(s string) (MaterialColorType, bool) {
	return lookup[MaterialColorType](materialColorTypeStrings, s)
}

func (t MaterialColorType) String() string { return name(materialColorTypeStrings, t) }
func (t MaterialColorType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ExpressionOverride is how an active expression suppresses blink, look-at,
// or mouth expressions. The zero value is the default, none.
type ExpressionOverride byte

const (
	OverrideNone ExpressionOverride = iota
	OverrideBlock
	OverrideBlend
)

var expressionOverrideStrings = []string{
	OverrideNone:  "none",
	OverrideBlock: "block",
	OverrideBlend: "blend",
}

func ExpressionOverrideFromString(s string) (ExpressionOverride, bool) {
	return lookup[ExpressionOverride](expressionOverrideStrings, s)
}

func (o ExpressionOverride) String() string { return name(expressionOverrideStrings, o) }
func (o ExpressionOverride) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
