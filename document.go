// Package gltf models a decoded glTF 2.0 document, including the VRM 0.x,
// VRM 1.0 (VRMC_vrm), VRMC_springBone, VRMC_materials_mtoon, and KHR_*
// extensions.
//
// A Document refers between its entities with plain indices into the
// corresponding slices. Documents are produced by the "json" sub-package,
// optionally unwrapped from a binary container by the "glb" sub-package, and
// their buffers are materialized by the "load" sub-package.
//
// Optional fields whose default is not the zero value are pointers; each has
// a method returning the value or the published default.
package gltf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Document is the root object of a glTF asset.
type Document struct {
	ExtensionsUsed     []string `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string `json:"extensionsRequired,omitempty"`

	Accessors   []Accessor   `json:"accessors,omitempty"`
	Animations  []Animation  `json:"animations,omitempty"`
	Asset       Asset        `json:"asset"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Cameras     []Camera     `json:"cameras,omitempty"`
	Images      []Image      `json:"images,omitempty"`
	Materials   []Material   `json:"materials,omitempty"`
	Meshes      []Mesh       `json:"meshes,omitempty"`
	Nodes       []Node       `json:"nodes,omitempty"`
	Samplers    []Sampler    `json:"samplers,omitempty"`
	Scene       *uint32      `json:"scene,omitempty"`
	Scenes      []Scene      `json:"scenes,omitempty"`
	Skins       []Skin       `json:"skins,omitempty"`
	Textures    []Texture    `json:"textures,omitempty"`

	Extensions *DocumentExtensions `json:"extensions,omitempty"`
}

// DocumentExtensions holds the recognized root-level extensions. A nil field
// means the extension was absent.
type DocumentExtensions struct {
	LightsPunctual *LightsPunctual `json:"KHR_lights_punctual,omitempty"`
	VRM0           *VRM0           `json:"VRM,omitempty"`
	VRM1           *VRM1           `json:"VRMC_vrm,omitempty"`
	SpringBone     *SpringBone     `json:"VRMC_springBone,omitempty"`
}

// Lights returns the KHR_lights_punctual lights, if any.
func (d *Document) Lights() []Light {
	if d.Extensions == nil || d.Extensions.LightsPunctual == nil {
		return nil
	}
	return d.Extensions.LightsPunctual.Lights
}

// VRM0 returns the VRM 0.x extension, or nil.
func (d *Document) VRM0() *VRM0 {
	if d.Extensions == nil {
		return nil
	}
	return d.Extensions.VRM0
}

// VRM1 returns the VRMC_vrm extension, or nil.
func (d *Document) VRM1() *VRM1 {
	if d.Extensions == nil {
		return nil
	}
	return d.Extensions.VRM1
}

// SpringBone returns the VRMC_springBone extension, or nil.
func (d *Document) SpringBone() *SpringBone {
	if d.Extensions == nil {
		return nil
	}
	return d.Extensions.SpringBone
}

// IsExtensionUsed returns whether name is listed in extensionsUsed.
func (d *Document) IsExtensionUsed(name string) bool {
	for _, ext := range d.ExtensionsUsed {
		if ext == name {
			return true
		}
	}
	return false
}

// Asset is metadata about the glTF asset.
type Asset struct {
	Copyright  string `json:"copyright,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
}

// Scene is a set of root nodes.
type Scene struct {
	Nodes []uint32 `json:"nodes,omitempty"`
	Name  string   `json:"name,omitempty"`
}

////////////////////////////////////////////////////////////////

// Node is an element of the node hierarchy. A node's transform is either
// Matrix, or the composition of Translation, Rotation, and Scale.
type Node struct {
	Camera      *uint32     `json:"camera,omitempty"`
	Children    []uint32    `json:"children,omitempty"`
	Skin        *uint32     `json:"skin,omitempty"`
	Matrix      *mgl32.Mat4 `json:"matrix,omitempty"`
	Mesh        *uint32     `json:"mesh,omitempty"`
	Rotation    *mgl32.Vec4 `json:"rotation,omitempty"`
	Scale       *mgl32.Vec3 `json:"scale,omitempty"`
	Translation *mgl32.Vec3 `json:"translation,omitempty"`
	Weights     []float32   `json:"weights,omitempty"`
	Name        string      `json:"name,omitempty"`

	Extensions *NodeExtensions `json:"extensions,omitempty"`
}

// Light returns the index of the node's KHR_lights_punctual light.
func (n *Node) Light() (light uint32, ok bool) {
	if n.Extensions == nil || n.Extensions.LightsPunctual == nil {
		return 0, false
	}
	return n.Extensions.LightsPunctual.Light, true
}

// MatrixOrDefault returns the node's matrix, or the identity.
func (n *Node) MatrixOrDefault() mgl32.Mat4 {
	if n.Matrix == nil {
		return mgl32.Ident4()
	}
	return *n.Matrix
}

// TranslationOrDefault returns the node's translation, or the origin.
func (n *Node) TranslationOrDefault() mgl32.Vec3 {
	if n.Translation == nil {
		return mgl32.Vec3{}
	}
	return *n.Translation
}

// RotationOrDefault returns the node's rotation quaternion as (x, y, z, w),
// or the identity rotation.
func (n *Node) RotationOrDefault() mgl32.Vec4 {
	if n.Rotation == nil {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	return *n.Rotation
}

// ScaleOrDefault returns the node's scale, or unit scale.
func (n *Node) ScaleOrDefault() mgl32.Vec3 {
	if n.Scale == nil {
		return mgl32.Vec3{1, 1, 1}
	}
	return *n.Scale
}

// LocalMatrix returns the node's transform relative to its parent. Matrix
// takes precedence when present; otherwise the result is T * R * S.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	if n.Matrix != nil {
		return *n.Matrix
	}
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	q := mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}
	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// Skin is a set of joints used for vertex skinning.
type Skin struct {
	InverseBindMatrices *uint32  `json:"inverseBindMatrices,omitempty"`
	Skeleton            *uint32  `json:"skeleton,omitempty"`
	Joints              []uint32 `json:"joints"`
	Name                string   `json:"name,omitempty"`
}

////////////////////////////////////////////////////////////////

// Camera is a projection used to view the scene.
type Camera struct {
	Orthographic *Orthographic `json:"orthographic,omitempty"`
	Perspective  *Perspective  `json:"perspective,omitempty"`
	Type         CameraType    `json:"type"`
	Name         string        `json:"name,omitempty"`
}

// Orthographic is an orthographic projection.
type Orthographic struct {
	XMag  float32 `json:"xmag"`
	YMag  float32 `json:"ymag"`
	ZFar  float32 `json:"zfar"`
	ZNear float32 `json:"znear"`
}

// Perspective is a perspective projection. A nil ZFar is an infinite
// projection; a nil AspectRatio uses the aspect ratio of the viewport.
type Perspective struct {
	AspectRatio *float32 `json:"aspectRatio,omitempty"`
	YFov        float32  `json:"yfov"`
	ZFar        *float32 `json:"zfar,omitempty"`
	ZNear       float32  `json:"znear"`
}

////////////////////////////////////////////////////////////////

// Animation is a keyframe animation.
type Animation struct {
	Channels []AnimationChannel `json:"channels"`
	Samplers []AnimationSampler `json:"samplers"`
	Name     string             `json:"name,omitempty"`
}

// AnimationChannel targets a node property with one of the animation's
// samplers.
type AnimationChannel struct {
	Sampler uint32          `json:"sampler"`
	Target  AnimationTarget `json:"target"`
}

// AnimationTarget is the node and property animated by a channel. Node is
// nil when an extension supplies the target.
type AnimationTarget struct {
	Node *uint32       `json:"node,omitempty"`
	Path AnimationPath `json:"path"`
}

// AnimationSampler pairs keyframe times with output values.
type AnimationSampler struct {
	Input         uint32        `json:"input"`
	Interpolation Interpolation `json:"interpolation,omitempty"`
	Output        uint32        `json:"output"`
}
