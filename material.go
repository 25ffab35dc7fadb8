package gltf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material describes the appearance of a primitive.
type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTextureInfo    `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTextureInfo `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *mgl32.Vec3           `json:"emissiveFactor,omitempty"`
	AlphaMode            AlphaMode             `json:"alphaMode,omitempty"`
	AlphaCutoff          *float32              `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                  `json:"doubleSided,omitempty"`

	Extensions *MaterialExtensions `json:"extensions,omitempty"`
}

// EmissiveFactorOrDefault returns the emissive color, black by default.
func (m *Material) EmissiveFactorOrDefault() mgl32.Vec3 {
	if m.EmissiveFactor == nil {
		return mgl32.Vec3{}
	}
	return *m.EmissiveFactor
}

// AlphaCutoffOrDefault returns the alpha cutoff, 0.5 by default.
func (m *Material) AlphaCutoffOrDefault() float32 {
	return orDefault(m.AlphaCutoff, 0.5)
}

// MetallicRoughness returns the PBR parameters of the material. When the
// material has none, the defaults are returned.
func (m *Material) MetallicRoughness() PBRMetallicRoughness {
	if m.PBRMetallicRoughness == nil {
		return PBRMetallicRoughness{}
	}
	return *m.PBRMetallicRoughness
}

// PBRMetallicRoughness holds the parameters of the metallic-roughness
// material model.
type PBRMetallicRoughness struct {
	BaseColorFactor          *mgl32.Vec4  `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *TextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float32     `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float32     `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *TextureInfo `json:"metallicRoughnessTexture,omitempty"`
}

// BaseColorFactorOrDefault returns the base color, opaque white by default.
func (p *PBRMetallicRoughness) BaseColorFactorOrDefault() mgl32.Vec4 {
	if p.BaseColorFactor == nil {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return *p.BaseColorFactor
}

// MetallicFactorOrDefault returns the metalness, 1 by default.
func (p *PBRMetallicRoughness) MetallicFactorOrDefault() float32 {
	return orDefault(p.MetallicFactor, 1)
}

// RoughnessFactorOrDefault returns the roughness, 1 by default.
func (p *PBRMetallicRoughness) RoughnessFactorOrDefault() float32 {
	return orDefault(p.RoughnessFactor, 1)
}

// TextureInfo is a reference to a texture.
type TextureInfo struct {
	Index    uint32 `json:"index"`
	TexCoord uint32 `json:"texCoord,omitempty"`

	Extensions *TextureInfoExtensions `json:"extensions,omitempty"`
}

// Transform returns the KHR_texture_transform extension of the reference, or
// nil.
func (t *TextureInfo) Transform() *TextureTransform {
	if t.Extensions == nil {
		return nil
	}
	return t.Extensions.TextureTransform
}

// TextureInfoExtensions holds the recognized extensions of a texture
// reference.
type TextureInfoExtensions struct {
	TextureTransform *TextureTransform `json:"KHR_texture_transform,omitempty"`
}

// NormalTextureInfo is a reference to a tangent-space normal texture.
type NormalTextureInfo struct {
	TextureInfo
	Scale *float32 `json:"scale,omitempty"`
}

// ScaleOrDefault returns the normal scale, 1 by default.
func (t *NormalTextureInfo) ScaleOrDefault() float32 {
	return orDefault(t.Scale, 1)
}

// OcclusionTextureInfo is a reference to an occlusion texture.
type OcclusionTextureInfo struct {
	TextureInfo
	Strength *float32 `json:"strength,omitempty"`
}

// StrengthOrDefault returns the occlusion strength, 1 by default.
func (t *OcclusionTextureInfo) StrengthOrDefault() float32 {
	return orDefault(t.Strength, 1)
}

////////////////////////////////////////////////////////////////

// Texture combines an image with a sampler.
type Texture struct {
	Sampler *uint32 `json:"sampler,omitempty"`
	Source  *uint32 `json:"source,omitempty"`
	Name    string  `json:"name,omitempty"`
}

// Image is image data used by textures, located by URI or by buffer view.
type Image struct {
	URI        string  `json:"uri,omitempty"`
	MimeType   string  `json:"mimeType,omitempty"`
	BufferView *uint32 `json:"bufferView,omitempty"`
	Name       string  `json:"name,omitempty"`
}

// Sampler holds texture filtering and wrapping modes. A zero filter means
// the filter is unspecified.
type Sampler struct {
	MagFilter MagFilter `json:"magFilter,omitempty"`
	MinFilter MinFilter `json:"minFilter,omitempty"`
	WrapS     *WrapMode `json:"wrapS,omitempty"`
	WrapT     *WrapMode `json:"wrapT,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// WrapSOrDefault returns the S wrapping mode, REPEAT by default.
func (s *Sampler) WrapSOrDefault() WrapMode {
	return orDefault(s.WrapS, WrapRepeat)
}

// WrapTOrDefault returns the T wrapping mode, REPEAT by default.
func (s *Sampler) WrapTOrDefault() WrapMode {
	return orDefault(s.WrapT, WrapRepeat)
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
