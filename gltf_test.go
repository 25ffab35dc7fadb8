package gltf_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vrmkit/gltf"
)

func TestPrimitiveCount(t *testing.T) {
	tests := []struct {
		mode gltf.PrimitiveMode
		n    int
		want int
	}{
		{gltf.ModePoints, 5, 5},
		{gltf.ModeLines, 5, 2},
		{gltf.ModeLineLoop, 5, 5},
		{gltf.ModeLineStrip, 5, 4},
		{gltf.ModeLineStrip, 0, 0},
		{gltf.ModeTriangles, 7, 2},
		{gltf.ModeTriangleStrip, 5, 3},
		{gltf.ModeTriangleFan, 5, 3},
		{gltf.ModeTriangleFan, 1, 0},
	}
	for _, test := range tests {
		if got := test.mode.PrimitiveCount(test.n); got != test.want {
			t.Errorf("%s with %d vertices: expected %d, got %d", test.mode, test.n, test.want, got)
		}
	}
}

func TestSemantic(t *testing.T) {
	if s := gltf.SemanticSet(gltf.SemanticTexCoord, 1); s != "TEXCOORD_1" {
		t.Errorf("unexpected semantic %q", s)
	}
	tests := []struct {
		name     string
		semantic string
		set      int
		ok       bool
	}{
		{"TEXCOORD_0", "TEXCOORD", 0, true},
		{"JOINTS_12", "JOINTS", 12, true},
		{"_CUSTOM_ID", "_CUSTOM_ID", 0, false},
		{"POSITION", "POSITION", 0, false},
		{"COLOR_-1", "COLOR_-1", 0, false},
	}
	for _, test := range tests {
		semantic, set, ok := gltf.SplitSemantic(test.name)
		if semantic != test.semantic || set != test.set || ok != test.ok {
			t.Errorf("%s: got %q, %d, %t", test.name, semantic, set, ok)
		}
	}
}

func TestAttributeNames(t *testing.T) {
	a := gltf.Attributes{"TEXCOORD_0": 2, "NORMAL": 1, "POSITION": 0, "COLOR_0": 3}
	want := []string{"COLOR_0", "NORMAL", "POSITION", "TEXCOORD_0"}
	if got := a.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := gltf.Attributes(nil).Names(); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
}

func TestComponentType(t *testing.T) {
	tests := []struct {
		typ          gltf.ComponentType
		name         string
		size         int
		normalizable bool
	}{
		{gltf.ComponentByte, "BYTE", 1, true},
		{gltf.ComponentUnsignedByte, "UNSIGNED_BYTE", 1, true},
		{gltf.ComponentShort, "SHORT", 2, true},
		{gltf.ComponentUnsignedShort, "UNSIGNED_SHORT", 2, true},
		{gltf.ComponentUnsignedInt, "UNSIGNED_INT", 4, false},
		{gltf.ComponentFloat, "FLOAT", 4, false},
		{gltf.ComponentType(5124), "5124", 0, false},
	}
	for _, test := range tests {
		if s := test.typ.String(); s != test.name {
			t.Errorf("expected name %q, got %q", test.name, s)
		}
		if n := test.typ.Size(); n != test.size {
			t.Errorf("%s: expected size %d, got %d", test.name, test.size, n)
		}
		if b := test.typ.Normalizable(); b != test.normalizable {
			t.Errorf("%s: expected normalizable %t", test.name, test.normalizable)
		}
		if b := test.typ.Valid(); b != (test.size != 0) {
			t.Errorf("%s: unexpected validity %t", test.name, b)
		}
	}
}

func TestAccessorType(t *testing.T) {
	for name, n := range map[string]int{
		"SCALAR": 1, "VEC2": 2, "VEC3": 3, "VEC4": 4,
		"MAT2": 4, "MAT3": 9, "MAT4": 16,
	} {
		typ, ok := gltf.AccessorTypeFromString(name)
		if !ok {
			t.Errorf("%s: not recognized", name)
			continue
		}
		if typ.String() != name || typ.Components() != n {
			t.Errorf("%s: got %s with %d components", name, typ, typ.Components())
		}
	}
	if _, ok := gltf.AccessorTypeFromString("vec3"); ok {
		t.Error("expected lowercase name to be rejected")
	}
	if s := gltf.AccessorType(100).String(); s != "Invalid" {
		t.Errorf("unexpected invalid name %q", s)
	}

	a := gltf.Accessor{ComponentType: gltf.ComponentUnsignedShort, Type: gltf.AccessorVec3, Count: 5}
	if a.ElementSize() != 6 || a.ByteLength() != 30 {
		t.Errorf("unexpected sizes %d, %d", a.ElementSize(), a.ByteLength())
	}
}

func near(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}

func TestLocalMatrix(t *testing.T) {
	var n gltf.Node
	if m := n.LocalMatrix(); m != mgl32.Ident4() {
		t.Errorf("expected identity, got %v", m)
	}

	n = gltf.Node{
		Translation: &mgl32.Vec3{1, 2, 3},
		Scale:       &mgl32.Vec3{2, 2, 2},
	}
	if p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, n.LocalMatrix()); !near(p, mgl32.Vec3{3, 4, 5}) {
		t.Errorf("unexpected scaled point %v", p)
	}

	// A quarter turn about Z.
	s := float32(math.Sqrt2 / 2)
	n = gltf.Node{Rotation: &mgl32.Vec4{0, 0, s, s}}
	if p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, n.LocalMatrix()); !near(p, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("unexpected rotated point %v", p)
	}

	m := mgl32.Translate3D(7, 8, 9)
	n = gltf.Node{Matrix: &m, Translation: &mgl32.Vec3{1, 2, 3}}
	if n.LocalMatrix() != m {
		t.Error("expected matrix to take precedence over translation")
	}
}

func TestTextureTransformMatrix(t *testing.T) {
	tr := gltf.TextureTransform{
		Offset: &mgl32.Vec2{0.5, 0.25},
		Scale:  &mgl32.Vec2{2, 3},
	}
	p := tr.Matrix().Mul3x1(mgl32.Vec3{1, 1, 1})
	if !near(p, mgl32.Vec3{2.5, 3.25, 1}) {
		t.Errorf("unexpected transformed coordinate %v", p)
	}
	var id gltf.TextureTransform
	if m := id.Matrix(); !m.ApproxEqual(mgl32.Ident3()) {
		t.Errorf("expected identity, got %v", m)
	}
}

func TestDefaults(t *testing.T) {
	var light gltf.Light
	if light.ColorOrDefault() != (mgl32.Vec3{1, 1, 1}) || light.IntensityOrDefault() != 1 {
		t.Error("unexpected light defaults")
	}
	var spot gltf.Spot
	if spot.OuterConeAngleOrDefault() != math.Pi/4 {
		t.Error("unexpected outer cone angle default")
	}
	var vol gltf.Volume
	if !math.IsInf(float64(vol.AttenuationDistanceOrDefault()), 1) {
		t.Error("expected infinite attenuation distance")
	}
	var ior gltf.IOR
	if ior.IOROrDefault() != 1.5 {
		t.Error("unexpected ior default")
	}
	var joint gltf.SpringJoint
	if joint.StiffnessOrDefault() != 1 || joint.DragForceOrDefault() != 0.5 || joint.GravityDirOrDefault() != (mgl32.Vec3{0, -1, 0}) {
		t.Error("unexpected spring joint defaults")
	}
	var mtoon gltf.MToon
	if mtoon.ShadingToonyFactorOrDefault() != 0.9 || mtoon.ParametricRimFresnelPowerFactorOrDefault() != 5 {
		t.Error("unexpected mtoon defaults")
	}
	var rm gltf.RangeMap
	if rm.InputMaxValueOrDefault() != 90 || rm.OutputScaleOrDefault() != 10 {
		t.Error("unexpected range map defaults")
	}
	var mat gltf.Material
	if mat.AlphaCutoffOrDefault() != 0.5 {
		t.Error("unexpected alpha cutoff default")
	}
	if pbr := mat.MetallicRoughness(); pbr.BaseColorFactorOrDefault() != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Error("unexpected base color default")
	}
}

func TestMissingBones(t *testing.T) {
	h1 := gltf.VRM1Humanoid{HumanBones: map[string]gltf.HumanBone{}}
	for _, bone := range gltf.RequiredHumanBones {
		h1.HumanBones[bone] = gltf.HumanBone{}
	}
	if m := h1.MissingBones(); m != nil {
		t.Errorf("unexpected missing bones %v", m)
	}
	delete(h1.HumanBones, "head")
	delete(h1.HumanBones, "hips")
	if m := h1.MissingBones(); !reflect.DeepEqual(m, []string{"hips", "head"}) {
		t.Errorf("unexpected missing bones %v", m)
	}

	var h0 gltf.VRM0Humanoid
	for _, bone := range gltf.RequiredHumanBones {
		h0.HumanBones = append(h0.HumanBones, gltf.VRM0HumanBone{Bone: bone})
	}
	if m := h0.MissingBones(); !reflect.DeepEqual(m, []string{"chest", "neck"}) {
		t.Errorf("unexpected missing bones %v", m)
	}
}

func TestExtensions(t *testing.T) {
	for _, name := range []string{gltf.ExtVRM0, gltf.ExtVRM1, gltf.ExtSpringBone, gltf.ExtMaterialsMToon, gltf.ExtDracoMeshCompression} {
		if !gltf.IsSupportedExtension(name) {
			t.Errorf("%s: expected to be supported", name)
		}
	}
	if gltf.IsSupportedExtension("EXT_meshopt_compression") {
		t.Error("unexpected support for EXT_meshopt_compression")
	}

	doc := gltf.Document{ExtensionsUsed: []string{gltf.ExtVRM1}}
	if !doc.IsExtensionUsed(gltf.ExtVRM1) || doc.IsExtensionUsed(gltf.ExtVRM0) {
		t.Error("unexpected IsExtensionUsed result")
	}
	if doc.VRM0() != nil || doc.VRM1() != nil || doc.SpringBone() != nil || doc.Lights() != nil {
		t.Error("expected absent extensions")
	}
}
