package gltf

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Names of the extensions the decoder understands.
const (
	ExtDracoMeshCompression      = "KHR_draco_mesh_compression"
	ExtLightsPunctual            = "KHR_lights_punctual"
	ExtMaterialsAnisotropy       = "KHR_materials_anisotropy"
	ExtMaterialsClearcoat        = "KHR_materials_clearcoat"
	ExtMaterialsDispersion       = "KHR_materials_dispersion"
	ExtMaterialsEmissiveStrength = "KHR_materials_emissive_strength"
	ExtMaterialsIOR              = "KHR_materials_ior"
	ExtMaterialsIridescence      = "KHR_materials_iridescence"
	ExtMaterialsSheen            = "KHR_materials_sheen"
	ExtMaterialsSpecular         = "KHR_materials_specular"
	ExtMaterialsTransmission     = "KHR_materials_transmission"
	ExtMaterialsUnlit            = "KHR_materials_unlit"
	ExtMaterialsVolume           = "KHR_materials_volume"
	ExtTextureTransform          = "KHR_texture_transform"
	ExtVRM0                      = "VRM"
	ExtVRM1                      = "VRMC_vrm"
	ExtSpringBone                = "VRMC_springBone"
	ExtMaterialsMToon            = "VRMC_materials_mtoon"
)

// SupportedExtensions lists every extension name the decoder understands.
var SupportedExtensions = []string{
	ExtDracoMeshCompression,
	ExtLightsPunctual,
	ExtMaterialsAnisotropy,
	ExtMaterialsClearcoat,
	ExtMaterialsDispersion,
	ExtMaterialsEmissiveStrength,
	ExtMaterialsIOR,
	ExtMaterialsIridescence,
	ExtMaterialsSheen,
	ExtMaterialsSpecular,
	ExtMaterialsTransmission,
	ExtMaterialsUnlit,
	ExtMaterialsVolume,
	ExtTextureTransform,
	ExtVRM0,
	ExtVRM1,
	ExtSpringBone,
	ExtMaterialsMToon,
}

// IsSupportedExtension returns whether name is in SupportedExtensions.
func IsSupportedExtension(name string) bool {
	for _, ext := range SupportedExtensions {
		if ext == name {
			return true
		}
	}
	return false
}

////////////////////////////////////////////////////////////////

// TextureTransform is the KHR_texture_transform extension.
type TextureTransform struct {
	Offset   *mgl32.Vec2 `json:"offset,omitempty"`
	Rotation float32     `json:"rotation,omitempty"`
	Scale    *mgl32.Vec2 `json:"scale,omitempty"`
	// TexCoord overrides the texture coordinate set of the reference.
	TexCoord *uint32 `json:"texCoord,omitempty"`
}

func (t *TextureTransform) OffsetOrDefault() mgl32.Vec2 {
	return orDefault(t.Offset, mgl32.Vec2{})
}

func (t *TextureTransform) ScaleOrDefault() mgl32.Vec2 {
	return orDefault(t.Scale, mgl32.Vec2{1, 1})
}

// Matrix returns the transform as a 3x3 matrix applied to texture
// coordinates, computed as translation * rotation * scale.
func (t *TextureTransform) Matrix() mgl32.Mat3 {
	o := t.OffsetOrDefault()
	s := t.ScaleOrDefault()
	sin, cos := math.Sincos(float64(t.Rotation))
	r := mgl32.Mat3{
		float32(cos), float32(-sin), 0,
		float32(sin), float32(cos), 0,
		0, 0, 1,
	}
	return mgl32.Translate2D(o[0], o[1]).Mul3(r).Mul3(mgl32.Scale2D(s[0], s[1]))
}

////////////////////////////////////////////////////////////////

// MaterialExtensions holds the recognized extensions of a material.
type MaterialExtensions struct {
	Anisotropy       *Anisotropy       `json:"KHR_materials_anisotropy,omitempty"`
	Clearcoat        *Clearcoat        `json:"KHR_materials_clearcoat,omitempty"`
	Dispersion       *Dispersion       `json:"KHR_materials_dispersion,omitempty"`
	EmissiveStrength *EmissiveStrength `json:"KHR_materials_emissive_strength,omitempty"`
	IOR              *IOR              `json:"KHR_materials_ior,omitempty"`
	Iridescence      *Iridescence      `json:"KHR_materials_iridescence,omitempty"`
	Sheen            *Sheen            `json:"KHR_materials_sheen,omitempty"`
	Specular         *Specular         `json:"KHR_materials_specular,omitempty"`
	Transmission     *Transmission     `json:"KHR_materials_transmission,omitempty"`
	Unlit            *Unlit            `json:"KHR_materials_unlit,omitempty"`
	Volume           *Volume           `json:"KHR_materials_volume,omitempty"`
	MToon            *MToon            `json:"VRMC_materials_mtoon,omitempty"`
}

// Unlit is the KHR_materials_unlit extension. It has no properties; its
// presence selects the unlit shading model.
type Unlit struct{}

// Anisotropy is the KHR_materials_anisotropy extension.
type Anisotropy struct {
	Strength float32      `json:"anisotropyStrength,omitempty"`
	Rotation float32      `json:"anisotropyRotation,omitempty"`
	Texture  *TextureInfo `json:"anisotropyTexture,omitempty"`
}

// Clearcoat is the KHR_materials_clearcoat extension.
type Clearcoat struct {
	Factor           float32            `json:"clearcoatFactor,omitempty"`
	Texture          *TextureInfo       `json:"clearcoatTexture,omitempty"`
	RoughnessFactor  float32            `json:"clearcoatRoughnessFactor,omitempty"`
	RoughnessTexture *TextureInfo       `json:"clearcoatRoughnessTexture,omitempty"`
	NormalTexture    *NormalTextureInfo `json:"clearcoatNormalTexture,omitempty"`
}

// Dispersion is the KHR_materials_dispersion extension.
type Dispersion struct {
	Dispersion float32 `json:"dispersion,omitempty"`
}

// EmissiveStrength is the KHR_materials_emissive_strength extension.
type EmissiveStrength struct {
	EmissiveStrength *float32 `json:"emissiveStrength,omitempty"`
}

// StrengthOrDefault returns the emissive strength, 1 by default.
func (e *EmissiveStrength) StrengthOrDefault() float32 {
	return orDefault(e.EmissiveStrength, 1)
}

// IOR is the KHR_materials_ior extension.
type IOR struct {
	IOR *float32 `json:"ior,omitempty"`
}

// IOROrDefault returns the index of refraction, 1.5 by default.
func (i *IOR) IOROrDefault() float32 {
	return orDefault(i.IOR, 1.5)
}

// Iridescence is the KHR_materials_iridescence extension.
type Iridescence struct {
	Factor           float32      `json:"iridescenceFactor,omitempty"`
	Texture          *TextureInfo `json:"iridescenceTexture,omitempty"`
	IOR              *float32     `json:"iridescenceIor,omitempty"`
	ThicknessMinimum *float32     `json:"iridescenceThicknessMinimum,omitempty"`
	ThicknessMaximum *float32     `json:"iridescenceThicknessMaximum,omitempty"`
	ThicknessTexture *TextureInfo `json:"iridescenceThicknessTexture,omitempty"`
}

// IOROrDefault returns the index of refraction of the thin film, 1.3 by
// default.
func (i *Iridescence) IOROrDefault() float32 {
	return orDefault(i.IOR, 1.3)
}

// ThicknessMinimumOrDefault returns the minimum film thickness in
// nanometers, 100 by default.
func (i *Iridescence) ThicknessMinimumOrDefault() float32 {
	return orDefault(i.ThicknessMinimum, 100)
}

// ThicknessMaximumOrDefault returns the maximum film thickness in
// nanometers, 400 by default.
func (i *Iridescence) ThicknessMaximumOrDefault() float32 {
	return orDefault(i.ThicknessMaximum, 400)
}

// Sheen is the KHR_materials_sheen extension.
type Sheen struct {
	ColorFactor      *mgl32.Vec3  `json:"sheenColorFactor,omitempty"`
	ColorTexture     *TextureInfo `json:"sheenColorTexture,omitempty"`
	RoughnessFactor  float32      `json:"sheenRoughnessFactor,omitempty"`
	RoughnessTexture *TextureInfo `json:"sheenRoughnessTexture,omitempty"`
}

func (s *Sheen) ColorFactorOrDefault() mgl32.Vec3 {
	return orDefault(s.ColorFactor, mgl32.Vec3{})
}

// Specular is the KHR_materials_specular extension.
type Specular struct {
	Factor       *float32     `json:"specularFactor,omitempty"`
	Texture      *TextureInfo `json:"specularTexture,omitempty"`
	ColorFactor  *mgl32.Vec3  `json:"specularColorFactor,omitempty"`
	ColorTexture *TextureInfo `json:"specularColorTexture,omitempty"`
}

func (s *Specular) FactorOrDefault() float32 {
	return orDefault(s.Factor, 1)
}

func (s *Specular) ColorFactorOrDefault() mgl32.Vec3 {
	return orDefault(s.ColorFactor, mgl32.Vec3{1, 1, 1})
}

// Transmission is the KHR_materials_transmission extension.
type Transmission struct {
	Factor  float32      `json:"transmissionFactor,omitempty"`
	Texture *TextureInfo `json:"transmissionTexture,omitempty"`
}

// Volume is the KHR_materials_volume extension.
type Volume struct {
	ThicknessFactor  float32      `json:"thicknessFactor,omitempty"`
	ThicknessTexture *TextureInfo `json:"thicknessTexture,omitempty"`
	// AttenuationDistance is nil for an infinite distance.
	AttenuationDistance *float32    `json:"attenuationDistance,omitempty"`
	AttenuationColor    *mgl32.Vec3 `json:"attenuationColor,omitempty"`
}

// AttenuationDistanceOrDefault returns the attenuation distance, +Inf by
// default.
func (v *Volume) AttenuationDistanceOrDefault() float32 {
	return orDefault(v.AttenuationDistance, float32(math.Inf(1)))
}

func (v *Volume) AttenuationColorOrDefault() mgl32.Vec3 {
	return orDefault(v.AttenuationColor, mgl32.Vec3{1, 1, 1})
}

////////////////////////////////////////////////////////////////

// LightsPunctual is the root-level KHR_lights_punctual extension.
type LightsPunctual struct {
	Lights []Light `json:"lights"`
}

// Light is a punctual light source. Lights are attached to nodes through the
// node-level extension.
type Light struct {
	Name      string      `json:"name,omitempty"`
	Color     *mgl32.Vec3 `json:"color,omitempty"`
	Intensity *float32    `json:"intensity,omitempty"`
	Type      LightType   `json:"type"`
	// Range is nil for an unlimited range.
	Range *float32 `json:"range,omitempty"`
	Spot  *Spot    `json:"spot,omitempty"`
}

func (l *Light) ColorOrDefault() mgl32.Vec3 {
	return orDefault(l.Color, mgl32.Vec3{1, 1, 1})
}

func (l *Light) IntensityOrDefault() float32 {
	return orDefault(l.Intensity, 1)
}

// Spot holds the cone of a spot light, in radians.
type Spot struct {
	InnerConeAngle float32  `json:"innerConeAngle,omitempty"`
	OuterConeAngle *float32 `json:"outerConeAngle,omitempty"`
}

// OuterConeAngleOrDefault returns the outer cone angle, π/4 by default.
func (s *Spot) OuterConeAngleOrDefault() float32 {
	return orDefault(s.OuterConeAngle, math.Pi/4)
}

// NodeExtensions holds the recognized extensions of a node.
type NodeExtensions struct {
	LightsPunctual *NodeLight `json:"KHR_lights_punctual,omitempty"`
}

// NodeLight attaches a light of the root-level KHR_lights_punctual
// extension to a node.
type NodeLight struct {
	Light uint32 `json:"light"`
}
