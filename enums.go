package gltf

import (
	"strconv"
)

// ComponentType is the numeric type of each component of an accessor
// element. Values are the GL enumerants used on the wire.
type ComponentType uint32

const (
	ComponentByte          ComponentType = 5120
	ComponentUnsignedByte  ComponentType = 5121
	ComponentShort         ComponentType = 5122
	ComponentUnsignedShort ComponentType = 5123
	ComponentUnsignedInt   ComponentType = 5125
	ComponentFloat         ComponentType = 5126
)

var componentTypeStrings = map[ComponentType]string{
	ComponentByte:          "BYTE",
	ComponentUnsignedByte:  "UNSIGNED_BYTE",
	ComponentShort:         "SHORT",
	ComponentUnsignedShort: "UNSIGNED_SHORT",
	ComponentUnsignedInt:   "UNSIGNED_INT",
	ComponentFloat:         "FLOAT",
}

// Valid returns whether t is one of the six defined component types.
func (t ComponentType) Valid() bool {
	_, ok := componentTypeStrings[t]
	return ok
}

// String returns the name of the component type, or the numeric value if the
// type is not valid.
func (t ComponentType) String() string {
	if s, ok := componentTypeStrings[t]; ok {
		return s
	}
	return strconv.FormatUint(uint64(t), 10)
}

// Size returns the size of one component in bytes, or 0 for an invalid type.
func (t ComponentType) Size() int {
	switch t {
	case ComponentByte, ComponentUnsignedByte:
		return 1
	case ComponentShort, ComponentUnsignedShort:
		return 2
	case ComponentUnsignedInt, ComponentFloat:
		return 4
	default:
		return 0
	}
}

// Normalizable returns whether values of the type may be normalized to
// floats. FLOAT and UNSIGNED_INT are never normalized.
func (t ComponentType) Normalizable() bool {
	switch t {
	case ComponentByte, ComponentUnsignedByte, ComponentShort, ComponentUnsignedShort:
		return true
	}
	return false
}

////////////////////////////////////////////////////////////////

// AccessorType specifies whether an accessor element is a scalar, vector, or
// matrix.
type AccessorType byte

const (
	AccessorScalar AccessorType = iota
	AccessorVec2
	AccessorVec3
	AccessorVec4
	AccessorMat2
	AccessorMat3
	AccessorMat4
)

var accessorTypeStrings = []string{
	AccessorScalar: "SCALAR",
	AccessorVec2:   "VEC2",
	AccessorVec3:   "VEC3",
	AccessorVec4:   "VEC4",
	AccessorMat2:   "MAT2",
	AccessorMat3:   "MAT3",
	AccessorMat4:   "MAT4",
}

var accessorTypeComponents = []int{
	AccessorScalar: 1,
	AccessorVec2:   2,
	AccessorVec3:   3,
	AccessorVec4:   4,
	AccessorMat2:   4,
	AccessorMat3:   9,
	AccessorMat4:   16,
}

// AccessorTypeFromString returns the AccessorType named by s.
func AccessorTypeFromString(s string) (AccessorType, bool) {
	return lookup[AccessorType](accessorTypeStrings, s)
}

func (t AccessorType) String() string {
	return name(accessorTypeStrings, t)
}

// Components returns the number of components per element.
func (t AccessorType) Components() int {
	if int(t) < len(accessorTypeComponents) {
		return accessorTypeComponents[t]
	}
	return 0
}

func (t AccessorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

////////////////////////////////////////////////////////////////

// PrimitiveMode is the topology of a mesh primitive.
type PrimitiveMode uint32

const (
	ModePoints PrimitiveMode = iota
	ModeLines
	ModeLineLoop
	ModeLineStrip
	ModeTriangles
	ModeTriangleStrip
	ModeTriangleFan
)

var primitiveModeStrings = []string{
	ModePoints:        "POINTS",
	ModeLines:         "LINES",
	ModeLineLoop:      "LINE_LOOP",
	ModeLineStrip:     "LINE_STRIP",
	ModeTriangles:     "TRIANGLES",
	ModeTriangleStrip: "TRIANGLE_STRIP",
	ModeTriangleFan:   "TRIANGLE_FAN",
}

func (m PrimitiveMode) Valid() bool {
	return int(m) < len(primitiveModeStrings)
}

func (m PrimitiveMode) String() string {
	if m.Valid() {
		return primitiveModeStrings[m]
	}
	return strconv.FormatUint(uint64(m), 10)
}

// PrimitiveCount returns the number of primitives drawn from n vertices or
// indices.
func (m PrimitiveMode) PrimitiveCount(n int) int {
	switch m {
	case ModeTriangles:
		return n / 3
	case ModeTriangleStrip, ModeTriangleFan:
		n -= 2
	case ModeLineStrip:
		n--
	case ModeLines:
		return n / 2
	}
	if n < 0 {
		return 0
	}
	return n
}

////////////////////////////////////////////////////////////////

// BufferViewTarget hints the GPU buffer type a buffer view is meant for.
type BufferViewTarget uint32

const (
	TargetArrayBuffer        BufferViewTarget = 34962
	TargetElementArrayBuffer BufferViewTarget = 34963
)

func (t BufferViewTarget) Valid() bool {
	return t == TargetArrayBuffer || t == TargetElementArrayBuffer
}

// MagFilter is a texture magnification filter.
type MagFilter uint32

const (
	MagNearest MagFilter = 9728
	MagLinear  MagFilter = 9729
)

func (f MagFilter) Valid() bool {
	return f == MagNearest || f == MagLinear
}

// MinFilter is a texture minification filter.
type MinFilter uint32

const (
	MinNearest              MinFilter = 9728
	MinLinear               MinFilter = 9729
	MinNearestMipmapNearest MinFilter = 9984
	MinLinearMipmapNearest  MinFilter = 9985
	MinNearestMipmapLinear  MinFilter = 9986
	MinLinearMipmapLinear   MinFilter = 9987
)

func (f MinFilter) Valid() bool {
	switch f {
	case MinNearest, MinLinear,
		MinNearestMipmapNearest, MinLinearMipmapNearest,
		MinNearestMipmapLinear, MinLinearMipmapLinear:
		return true
	}
	return false
}

// WrapMode is a texture coordinate wrapping mode.
type WrapMode uint32

const (
	WrapClampToEdge    WrapMode = 33071
	WrapMirroredRepeat WrapMode = 33648
	WrapRepeat         WrapMode = 10497
)

func (w WrapMode) Valid() bool {
	return w == WrapClampToEdge || w == WrapMirroredRepeat || w == WrapRepeat
}

////////////////////////////////////////////////////////////////

// AlphaMode determines how the alpha value of a material is interpreted. The
// zero value is the default, OPAQUE.
type AlphaMode byte

const (
	AlphaOpaque AlphaMode = iota
	AlphaMask
	AlphaBlend
)

var alphaModeStrings = []string{
	AlphaOpaque: "OPAQUE",
	AlphaMask:   "MASK",
	AlphaBlend:  "BLEND",
}

func AlphaModeFromString(s string) (AlphaMode, bool) {
	return lookup[AlphaMode](alphaModeStrings, s)
}

func (m AlphaMode) String() string { return name(alphaModeStrings, m) }
func (m AlphaMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Interpolation is the interpolation algorithm of an animation sampler. The
// zero value is the default, LINEAR.
type Interpolation byte

const (
	InterpolationLinear Interpolation = iota
	InterpolationStep
	InterpolationCubicSpline
)

var interpolationStrings = []string{
	InterpolationLinear:      "LINEAR",
	InterpolationStep:        "STEP",
	InterpolationCubicSpline: "CUBICSPLINE",
}

func InterpolationFromString(s string) (Interpolation, bool) {
	return lookup[Interpolation](interpolationStrings, s)
}

func (i Interpolation) String() string { return name(interpolationStrings, i) }
func (i Interpolation) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// AnimationPath is the node property animated by a channel.
type AnimationPath byte

const (
	PathTranslation AnimationPath = iota
	PathRotation
	PathScale
	PathWeights
)

var animationPathStrings = []string{
	PathTranslation: "translation",
	PathRotation:    "rotation",
	PathScale:       "scale",
	PathWeights:     "weights",
}

func AnimationPathFromString(s string) (AnimationPath, bool) {
	return lookup[AnimationPath](animationPathStrings, s)
}

func (p AnimationPath) String() string { return name(animationPathStrings, p) }
func (p AnimationPath) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// CameraType selects the projection of a camera.
type CameraType byte

const (
	CameraPerspective CameraType = iota
	CameraOrthographic
)

var cameraTypeStrings = []string{
	CameraPerspective:  "perspective",
	CameraOrthographic: "orthographic",
}

func CameraTypeFromString(s string) (CameraType, bool) {
	return lookup[CameraType](cameraTypeStrings, s)
}

func (t CameraType) String() string { return name(cameraTypeStrings, t) }
func (t CameraType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// LightType is the kind of a KHR_lights_punctual light.
type LightType byte

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

var lightTypeStrings = []string{
	LightDirectional: "directional",
	LightPoint:       "point",
	LightSpot:        "spot",
}

func LightTypeFromString(s string) (LightType, bool) {
	return lookup[LightType](lightTypeStrings, s)
}

func (t LightType) String() string { return name(lightTypeStrings, t) }
func (t LightType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

////////////////////////////////////////////////////////////////

func lookup[T ~byte](table []string, s string) (T, bool) {
	for i, name := range table {
		if name == s {
			return T(i), true
		}
	}
	return 0, false
}

func name[T ~byte](table []string, v T) string {
	if int(v) < len(table) {
		return table[v]
	}
	return "Invalid"
}
