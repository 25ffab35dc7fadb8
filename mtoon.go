package gltf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MToon is the VRMC_materials_mtoon extension, a toon shading model layered
// over the material's PBR base color.
type MToon struct {
	SpecVersion string `json:"specVersion"`

	TransparentWithZWrite   bool  `json:"transparentWithZWrite,omitempty"`
	RenderQueueOffsetNumber int32 `json:"renderQueueOffsetNumber,omitempty"`

	ShadeColorFactor     *mgl32.Vec3              `json:"shadeColorFactor,omitempty"`
	ShadeMultiplyTexture *TextureInfo             `json:"shadeMultiplyTexture,omitempty"`
	ShadingShiftFactor   float32                  `json:"shadingShiftFactor,omitempty"`
	ShadingShiftTexture  *ShadingShiftTextureInfo `json:"shadingShiftTexture,omitempty"`
	ShadingToonyFactor   *float32                 `json:"shadingToonyFactor,omitempty"`
	GIEqualizationFactor *float32                 `json:"giEqualizationFactor,omitempty"`

	MatcapFactor  *mgl32.Vec3  `json:"matcapFactor,omitempty"`
	MatcapTexture *TextureInfo `json:"matcapTexture,omitempty"`

	ParametricRimColorFactor        *mgl32.Vec3  `json:"parametricRimColorFactor,omitempty"`
	RimMultiplyTexture              *TextureInfo `json:"rimMultiplyTexture,omitempty"`
	RimLightingMixFactor            *float32     `json:"rimLightingMixFactor,omitempty"`
	ParametricRimFresnelPowerFactor *float32     `json:"parametricRimFresnelPowerFactor,omitempty"`
	ParametricRimLiftFactor         float32      `json:"parametricRimLiftFactor,omitempty"`

	OutlineWidthMode            OutlineWidthMode `json:"outlineWidthMode,omitempty"`
	OutlineWidthFactor          float32          `json:"outlineWidthFactor,omitempty"`
	OutlineWidthMultiplyTexture *TextureInfo     `json:"outlineWidthMultiplyTexture,omitempty"`
	OutlineColorFactor          *mgl32.Vec3      `json:"outlineColorFactor,omitempty"`
	OutlineLightingMixFactor    *float32         `json:"outlineLightingMixFactor,omitempty"`

	UVAnimationMaskTexture         *TextureInfo `json:"uvAnimationMaskTexture,omitempty"`
	UVAnimationScrollXSpeedFactor  float32      `json:"uvAnimationScrollXSpeedFactor,omitempty"`
	UVAnimationScrollYSpeedFactor  float32      `json:"uvAnimationScrollYSpeedFactor,omitempty"`
	UVAnimationRotationSpeedFactor float32      `json:"uvAnimationRotationSpeedFactor,omitempty"`
}

func (m *MToon) ShadeColorFactorOrDefault() mgl32.Vec3 {
	return orDefault(m.ShadeColorFactor, mgl32.Vec3{})
}

func (m *MToon) ShadingToonyFactorOrDefault() float32 {
	return orDefault(m.ShadingToonyFactor, 0.9)
}

func (m *MToon) GIEqualizationFactorOrDefault() float32 {
	return orDefault(m.GIEqualizationFactor, 0.9)
}

func (m *MToon) MatcapFactorOrDefault() mgl32.Vec3 {
	return orDefault(m.MatcapFactor, mgl32.Vec3{1, 1, 1})
}

func (m *MToon) ParametricRimColorFactorOrDefault() mgl32.Vec3 {
	return orDefault(m.ParametricRimColorFactor, mgl32.Vec3{})
}

func (m *MToon) RimLightingMixFactorOrDefault() float32 {
	return orDefault(m.RimLightingMixFactor, 1)
}

func (m *MToon) ParametricRimFresnelPowerFactorOrDefault() float32 {
	return orDefault(m.ParametricRimFresnelPowerFactor, 5)
}

func (m *MToon) OutlineColorFactorOrDefault() mgl32.Vec3 {
	return orDefault(m.OutlineColorFactor, mgl32.Vec3{})
}

func (m *MToon) OutlineLightingMixFactorOrDefault() float32 {
	return orDefault(m.OutlineLightingMixFactor, 1)
}

// ShadingShiftTextureInfo is a reference to the shading shift texture of an
// MToon material.
type ShadingShiftTextureInfo struct {
	TextureInfo
	Scale *float32 `json:"scale,omitempty"`
}

// ScaleOrDefault returns the shading shift scale, 1 by default.
func (t *ShadingShiftTextureInfo) ScaleOrDefault() float32 {
	return orDefault(t.Scale, 1)
}

// OutlineWidthMode selects how the MToon outline width is measured. The
// zero value is the default, none.
type OutlineWidthMode byte

const (
	OutlineWidthNone OutlineWidthMode = iota
	OutlineWidthWorldCoordinates
	OutlineWidthScreenCoordinates
)

var outlineWidthModeStrings = []string{
	OutlineWidthNone:              "none",
	OutlineWidthWorldCoordinates:  "worldCoordinates",
	OutlineWidthScreenCoordinates: "screenCoordinates",
}

func OutlineWidthModeFromString(s string) (OutlineWidthMode, bool) {
	return lookup[OutlineWidthMode](outlineWidthModeStrings, s)
}

func (m OutlineWidthMode) String() string { return name(outlineWidthModeStrings, m) }
func (m OutlineWidthMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
