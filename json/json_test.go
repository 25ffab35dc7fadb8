package json

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
)

// full exercises every object type and recognized extension.
const full = `{
	"extensionsUsed": ["KHR_lights_punctual", "KHR_materials_unlit", "VRMC_vrm", "VRMC_springBone", "VRMC_materials_mtoon", "KHR_texture_transform", "KHR_draco_mesh_compression"],
	"extensionsRequired": ["KHR_texture_transform"],
	"asset": {"version": "2.0", "generator": "test", "copyright": "none", "minVersion": "2.0"},
	"scene": 0,
	"scenes": [{"nodes": [0], "name": "main"}],
	"nodes": [
		{"children": [1, 2], "name": "root", "translation": [1, 2, 3], "rotation": [0, 0, 0, 1], "scale": [2, 2, 2]},
		{"mesh": 0, "skin": 0, "weights": [0.5], "extensions": {"KHR_lights_punctual": {"light": 1}}},
		{"camera": 0, "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 4,5,6,1]}
	],
	"skins": [{"joints": [0, 1], "inverseBindMatrices": 3, "skeleton": 0}],
	"cameras": [
		{"type": "perspective", "perspective": {"yfov": 0.75, "znear": 0.125, "aspectRatio": 1.5}},
		{"type": "orthographic", "orthographic": {"xmag": 1, "ymag": 1, "zfar": 100, "znear": 0.5}}
	],
	"meshes": [{
		"name": "mesh",
		"weights": [0.25],
		"primitives": [
			{"attributes": {"POSITION": 0, "TEXCOORD_0": 1}, "indices": 2, "material": 0, "mode": 4, "targets": [{"POSITION": 4}]},
			{"attributes": {"POSITION": 0}, "mode": 6, "extensions": {"KHR_draco_mesh_compression": {"bufferView": 2, "attributes": {"POSITION": 0}}}}
		]
	}],
	"accessors": [
		{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "max": [1, 1, 0], "min": [0, 0, 0]},
		{"bufferView": 1, "byteOffset": 4, "componentType": 5123, "normalized": true, "count": 3, "type": "VEC2"},
		{"bufferView": 1, "componentType": 5125, "count": 3, "type": "SCALAR", "name": "indices"},
		{"componentType": 5126, "count": 2, "type": "MAT4"},
		{"componentType": 5126, "count": 3, "type": "VEC3", "sparse": {
			"count": 1,
			"indices": {"bufferView": 1, "componentType": 5121},
			"values": {"bufferView": 0, "byteOffset": 12}
		}}
	],
	"bufferViews": [
		{"buffer": 0, "byteLength": 36, "target": 34962},
		{"buffer": 0, "byteOffset": 36, "byteLength": 24, "byteStride": 8, "name": "view"},
		{"buffer": 1, "byteLength": 8}
	],
	"buffers": [
		{"byteLength": 60},
		{"uri": "data:application/octet-stream;base64,AAAAAAAAAAA=", "byteLength": 8, "name": "inline"}
	],
	"animations": [{
		"name": "spin",
		"channels": [{"sampler": 0, "target": {"node": 0, "path": "rotation"}}],
		"samplers": [{"input": 0, "output": 0, "interpolation": "STEP"}]
	}],
	"materials": [{
		"name": "skin",
		"pbrMetallicRoughness": {
			"baseColorFactor": [1, 0.5, 0.5, 1],
			"baseColorTexture": {"index": 0, "texCoord": 1, "extensions": {"KHR_texture_transform": {"offset": [0.5, 0], "rotation": 0.25, "scale": [2, 2], "texCoord": 0}}},
			"metallicFactor": 0,
			"roughnessFactor": 0.5
		},
		"normalTexture": {"index": 0, "scale": 0.5},
		"occlusionTexture": {"index": 0, "strength": 0.75},
		"emissiveTexture": {"index": 0},
		"emissiveFactor": [1, 1, 0],
		"alphaMode": "MASK",
		"alphaCutoff": 0.25,
		"doubleSided": true,
		"extensions": {
			"KHR_materials_unlit": {},
			"KHR_materials_emissive_strength": {"emissiveStrength": 4},
			"KHR_materials_ior": {"ior": 1.25},
			"KHR_materials_specular": {"specularFactor": 0.5, "specularColorFactor": [1, 0, 0]},
			"KHR_materials_clearcoat": {"clearcoatFactor": 1, "clearcoatNormalTexture": {"index": 0, "scale": 2}},
			"KHR_materials_sheen": {"sheenColorFactor": [0.5, 0.5, 0.5], "sheenRoughnessFactor": 0.25},
			"KHR_materials_transmission": {"transmissionFactor": 0.5},
			"KHR_materials_volume": {"thicknessFactor": 1, "attenuationDistance": 2, "attenuationColor": [1, 0.5, 0]},
			"KHR_materials_iridescence": {"iridescenceFactor": 1, "iridescenceIor": 1.5, "iridescenceThicknessMaximum": 500},
			"KHR_materials_anisotropy": {"anisotropyStrength": 0.5, "anisotropyRotation": 1},
			"KHR_materials_dispersion": {"dispersion": 0.125},
			"VRMC_materials_mtoon": {
				"specVersion": "1.0",
				"transparentWithZWrite": true,
				"renderQueueOffsetNumber": -2,
				"shadeColorFactor": [0.5, 0.5, 0.5],
				"shadingShiftTexture": {"index": 0, "scale": 0.5},
				"shadingToonyFactor": 0.5,
				"matcapTexture": {"index": 0},
				"parametricRimFresnelPowerFactor": 2,
				"outlineWidthMode": "worldCoordinates",
				"outlineWidthFactor": 0.125,
				"outlineColorFactor": [0, 0, 0],
				"uvAnimationScrollXSpeedFactor": 1
			}
		}
	}],
	"textures": [{"sampler": 0, "source": 0, "name": "tex"}],
	"images": [{"bufferView": 2, "mimeType": "image/png", "name": "img"}, {"uri": "tex.png"}],
	"samplers": [{"magFilter": 9729, "minFilter": 9987, "wrapS": 33071, "wrapT": 33648, "name": "smp"}],
	"extensions": {
		"KHR_lights_punctual": {"lights": [
			{"type": "directional", "color": [1, 0.5, 0.25], "intensity": 2},
			{"type": "spot", "name": "spot", "range": 10, "spot": {"innerConeAngle": 0.25, "outerConeAngle": 0.5}}
		]},
		"VRMC_vrm": {
			"specVersion": "1.0",
			"meta": {
				"name": "avatar",
				"version": "1",
				"authors": ["someone"],
				"licenseUrl": "https://vrm.dev/licenses/1.0/",
				"thumbnailImage": 1,
				"references": ["ref"],
				"avatarPermission": "everyone",
				"commercialUsage": "corporation",
				"creditNotation": "unnecessary",
				"modification": "allowModificationRedistribution",
				"allowRedistribution": true
			},
			"humanoid": {"humanBones": {"hips": {"node": 0}, "head": {"node": 1}}},
			"firstPerson": {"meshAnnotations": [{"node": 1, "type": "thirdPersonOnly"}]},
			"lookAt": {
				"offsetFromHeadBone": [0, 0.0625, 0],
				"type": "expression",
				"rangeMapHorizontalInner": {"inputMaxValue": 45, "outputScale": 1}
			},
			"expressions": {
				"preset": {
					"happy": {
						"morphTargetBinds": [{"node": 1, "index": 0, "weight": 1}],
						"isBinary": true,
						"overrideBlink": "block"
					}
				},
				"custom": {
					"wink": {
						"materialColorBinds": [{"material": 0, "type": "rimColor", "targetValue": [1, 0, 0, 1]}],
						"textureTransformBinds": [{"material": 0, "scale": [2, 2]}],
						"overrideMouth": "blend"
					}
				}
			}
		},
		"VRMC_springBone": {
			"specVersion": "1.0",
			"colliders": [
				{"node": 0, "shape": {"sphere": {"offset": [0, 1, 0], "radius": 0.5}}},
				{"node": 1, "shape": {"capsule": {"radius": 0.25, "tail": [0, 0, 1]}}}
			],
			"colliderGroups": [{"name": "body", "colliders": [0, 1]}],
			"springs": [{
				"name": "hair",
				"center": 0,
				"colliderGroups": [0],
				"joints": [
					{"node": 1, "hitRadius": 0.125, "stiffness": 2, "gravityPower": 1, "gravityDir": [0, 0, -1], "dragForce": 0.25},
					{"node": 2}
				]
			}]
		}
	}
}`

func TestRoundTrip(t *testing.T) {
	doc, err := Decode([]byte(full))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	b, err := Encode(doc)
	if err != nil {
		t.Fatalf("encode: %s", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode encoded: %s\n%s", err, b)
	}
	if !reflect.DeepEqual(doc, got) {
		t.Errorf("document changed after round trip:\n%s", b)
	}
}

func TestDecodeFull(t *testing.T) {
	doc, err := Decode([]byte(full))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	if doc.Scene == nil || *doc.Scene != 0 {
		t.Errorf("unexpected scene %v", doc.Scene)
	}
	if n := doc.Nodes[2].LocalMatrix().Col(3); n != (mgl32.Vec4{4, 5, 6, 1}) {
		t.Errorf("unexpected matrix translation %v", n)
	}
	if light, ok := doc.Nodes[1].Light(); !ok || light != 1 {
		t.Errorf("unexpected node light %d, %t", light, ok)
	}
	if cam := doc.Cameras[1]; cam.Type != gltf.CameraOrthographic || cam.Orthographic == nil || cam.Orthographic.ZFar != 100 {
		t.Errorf("unexpected camera %+v", cam)
	}

	prim := doc.Meshes[0].Primitives[1]
	if prim.ModeOrDefault() != gltf.ModeTriangleFan {
		t.Errorf("unexpected mode %s", prim.ModeOrDefault())
	}
	if d := prim.Draco(); d == nil || d.BufferView != 2 || d.Attributes[gltf.SemanticPosition] != 0 {
		t.Errorf("unexpected draco extension %+v", d)
	}

	acc := doc.Accessors[1]
	if acc.ComponentType != gltf.ComponentUnsignedShort || !acc.Normalized || acc.Type != gltf.AccessorVec2 || acc.ByteOffset != 4 {
		t.Errorf("unexpected accessor %+v", acc)
	}
	if s := doc.Accessors[4].Sparse; s == nil || s.Indices.ComponentType != gltf.ComponentUnsignedByte || s.Values.ByteOffset != 12 {
		t.Errorf("unexpected sparse %+v", s)
	}
	if doc.Accessors[3].BufferView != nil {
		t.Errorf("expected accessor without buffer view")
	}
	if v := doc.BufferViews[1]; v.ByteStride == nil || *v.ByteStride != 8 || v.Stride(4) != 8 {
		t.Errorf("unexpected buffer view %+v", v)
	}
	if !doc.Buffers[0].IsEmbedded() || doc.Buffers[1].IsEmbedded() {
		t.Errorf("unexpected buffer uris")
	}
	if s := doc.Animations[0].Samplers[0]; s.Interpolation != gltf.InterpolationStep {
		t.Errorf("unexpected interpolation %s", s.Interpolation)
	}

	mat := doc.Materials[0]
	if mat.AlphaMode != gltf.AlphaMask || mat.AlphaCutoffOrDefault() != 0.25 {
		t.Errorf("unexpected alpha %s %g", mat.AlphaMode, mat.AlphaCutoffOrDefault())
	}
	pbr := mat.MetallicRoughness()
	if pbr.MetallicFactorOrDefault() != 0 || pbr.RoughnessFactorOrDefault() != 0.5 {
		t.Errorf("unexpected pbr %+v", pbr)
	}
	if tr := pbr.BaseColorTexture.Transform(); tr == nil || tr.Rotation != 0.25 || tr.OffsetOrDefault() != (mgl32.Vec2{0.5, 0}) {
		t.Errorf("unexpected texture transform %+v", tr)
	}
	exts := mat.Extensions
	if exts == nil || exts.Unlit == nil || exts.MToon == nil || exts.Clearcoat == nil {
		t.Fatalf("missing material extensions %+v", exts)
	}
	if exts.Clearcoat.NormalTexture.ScaleOrDefault() != 2 {
		t.Errorf("unexpected clearcoat normal scale")
	}
	if exts.MToon.OutlineWidthMode != gltf.OutlineWidthWorldCoordinates || exts.MToon.RenderQueueOffsetNumber != -2 {
		t.Errorf("unexpected mtoon %+v", exts.MToon)
	}

	if l := doc.Lights(); len(l) != 2 || l[1].Type != gltf.LightSpot || l[1].Spot.OuterConeAngleOrDefault() != 0.5 {
		t.Errorf("unexpected lights %+v", l)
	}

	vrm := doc.VRM1()
	if vrm == nil {
		t.Fatal("missing VRMC_vrm")
	}
	if vrm.Meta.AvatarPermission != gltf.PermissionEveryone || vrm.Meta.Modification != gltf.ModificationAllowRedistribution {
		t.Errorf("unexpected meta %+v", vrm.Meta)
	}
	if b, ok := vrm.Humanoid.HumanBones["head"]; !ok || b.Node != 1 {
		t.Errorf("unexpected head bone %+v", b)
	}
	if e := vrm.Expressions.Custom["wink"]; e.OverrideMouth != gltf.OverrideBlend || e.MaterialColorBinds[0].Type != gltf.MaterialRimColor {
		t.Errorf("unexpected custom expression %+v", e)
	}
	if vrm.LookAt.Type != gltf.LookAtExpression || vrm.LookAt.RangeMapHorizontalInner.InputMaxValueOrDefault() != 45 {
		t.Errorf("unexpected look at %+v", vrm.LookAt)
	}

	sb := doc.SpringBone()
	if sb == nil || len(sb.Springs) != 1 {
		t.Fatal("missing VRMC_springBone")
	}
	if sb.Colliders[1].Shape.Capsule == nil || sb.Colliders[1].Shape.Sphere != nil {
		t.Errorf("unexpected collider shape %+v", sb.Colliders[1].Shape)
	}
	joint := sb.Springs[0].Joints[1]
	if joint.StiffnessOrDefault() != 1 || joint.DragForceOrDefault() != 0.5 || joint.GravityDirOrDefault() != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("unexpected joint defaults %+v", joint)
	}
}

func TestDecodeDefaults(t *testing.T) {
	doc, err := Decode([]byte(`{
		"asset": {"version": "2.0"},
		"materials": [{}],
		"samplers": [{}],
		"meshes": [{"primitives": [{"attributes": {}}]}],
		"accessors": [{"componentType": 5120, "count": 1, "type": "SCALAR"}],
		"bufferViews": [{"buffer": 0, "byteLength": 4}],
		"animations": [{"channels": [], "samplers": [{"input": 0, "output": 1}]}]
	}`))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	mat := doc.Materials[0]
	if mat.Extensions != nil || mat.PBRMetallicRoughness != nil {
		t.Errorf("expected nil optional members")
	}
	if mat.AlphaMode != gltf.AlphaOpaque || mat.AlphaCutoffOrDefault() != 0.5 || mat.DoubleSided {
		t.Errorf("unexpected alpha defaults")
	}
	if mat.EmissiveFactorOrDefault() != (mgl32.Vec3{}) {
		t.Errorf("unexpected emissive default")
	}
	pbr := mat.MetallicRoughness()
	if pbr.BaseColorFactorOrDefault() != (mgl32.Vec4{1, 1, 1, 1}) || pbr.MetallicFactorOrDefault() != 1 || pbr.RoughnessFactorOrDefault() != 1 {
		t.Errorf("unexpected pbr defaults")
	}
	if s := doc.Samplers[0]; s.WrapSOrDefault() != gltf.WrapRepeat || s.WrapTOrDefault() != gltf.WrapRepeat || s.MagFilter != 0 {
		t.Errorf("unexpected sampler defaults %+v", s)
	}
	if p := doc.Meshes[0].Primitives[0]; p.ModeOrDefault() != gltf.ModeTriangles || p.Attributes == nil || p.Targets != nil {
		t.Errorf("unexpected primitive defaults %+v", p)
	}
	if a := doc.Accessors[0]; a.Normalized || a.ByteOffset != 0 || a.Sparse != nil || a.Max != nil {
		t.Errorf("unexpected accessor defaults %+v", a)
	}
	if v := doc.BufferViews[0]; v.ByteOffset != 0 || v.ByteStride != nil || v.Stride(12) != 12 {
		t.Errorf("unexpected buffer view defaults %+v", v)
	}
	if a := doc.Animations[0]; a.Channels == nil || len(a.Channels) != 0 || a.Samplers[0].Interpolation != gltf.InterpolationLinear {
		t.Errorf("unexpected animation defaults %+v", a)
	}
	if doc.Nodes != nil || doc.Extensions != nil {
		t.Errorf("expected absent arrays and extensions to be nil")
	}
}

func TestDecodeUnknownExtension(t *testing.T) {
	doc, err := Decode([]byte(`{
		"asset": {"version": "2.0"},
		"extensionsUsed": ["EXT_unknown"],
		"extensions": {"EXT_unknown": {"value": [1, 2, 3]}},
		"materials": [{"extensions": {"EXT_unknown": 1}}]
	}`))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if doc.Extensions != nil || doc.Materials[0].Extensions != nil {
		t.Errorf("expected unknown extensions to be ignored")
	}
	if !doc.IsExtensionUsed("EXT_unknown") {
		t.Errorf("expected extension to be listed as used")
	}
}

func TestDecodeVRM0(t *testing.T) {
	doc, err := Decode([]byte(`{
		"asset": {"version": "2.0"},
		"extensions": {"VRM": {
			"exporterVersion": "UniVRM-0.99",
			"meta": {"title": "avatar", "texture": -1, "allowedUserName": "Everyone", "violentUssageName": "Disallow", "commercialUssageName": "Allow", "licenseName": "CC_BY"},
			"humanoid": {"humanBones": [{"bone": "hips", "node": 3}, {"bone": "head", "node": 7, "useDefaultValues": true}]},
			"firstPerson": {"firstPersonBone": 7, "firstPersonBoneOffset": {"x": 0, "y": 0.0625, "z": 0}, "lookAtTypeName": "BlendShape"},
			"blendShapeMaster": {"blendShapeGroups": [{"name": "Joy", "presetName": "joy", "binds": [{"mesh": 0, "index": 2, "weight": 100}]}]},
			"secondaryAnimation": {
				"boneGroups": [{"stiffiness": 1, "gravityPower": 0, "gravityDir": {"x": 0, "y": -1, "z": 0}, "dragForce": 0.5, "center": -1, "hitRadius": 0.125, "bones": [4]}],
				"colliderGroups": [{"node": 3, "colliders": [{"offset": {"x": 0, "y": 0.5, "z": 0}, "radius": 0.25}]}]
			},
			"materialProperties": [{"name": "body", "shader": "VRM/MToon", "renderQueue": 2000, "floatProperties": {"_Cutoff": 0.5}, "vectorProperties": {"_Color": [1, 1, 1, 1]}, "textureProperties": {"_MainTex": 0}, "keywordMap": {"_ALPHATEST_ON": true}, "tagMap": {"RenderType": "Opaque"}}]
		}}
	}`))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	vrm := doc.VRM0()
	if vrm == nil {
		t.Fatal("missing VRM extension")
	}
	if vrm.Meta.Texture != nil {
		t.Errorf("expected negative texture index to decode as nil")
	}
	if vrm.Meta.ViolentUsage != gltf.UsageDisallow || vrm.Meta.SexualUsage != gltf.UsageUnset || vrm.Meta.CommercialUsage != gltf.UsageAllow {
		t.Errorf("unexpected usage %+v", vrm.Meta)
	}
	if node, ok := vrm.Humanoid.Bone("head"); !ok || node != 7 {
		t.Errorf("unexpected head bone %d, %t", node, ok)
	}
	if fp := vrm.FirstPerson; fp.FirstPersonBone == nil || *fp.FirstPersonBone != 7 || fp.LookAtTypeName != gltf.LookAtTypeBlendShape {
		t.Errorf("unexpected first person %+v", fp)
	}
	if fp := vrm.FirstPerson; fp.FirstPersonBoneOffset.Vec() != (mgl32.Vec3{0, 0.0625, 0}) {
		t.Errorf("unexpected first person offset %+v", fp.FirstPersonBoneOffset)
	}
	g := vrm.BlendShapeMaster.BlendShapeGroups[0]
	if g.PresetName != gltf.PresetJoy || g.Binds[0].Weight != 100 {
		t.Errorf("unexpected blend shape group %+v", g)
	}
	bg := vrm.SecondaryAnimation.BoneGroups[0]
	if bg.Center != nil || bg.Stiffness != 1 || bg.GravityDir.Y != -1 {
		t.Errorf("unexpected bone group %+v", bg)
	}
	mp := vrm.MaterialProperties[0]
	if mp.FloatProperties["_Cutoff"] != 0.5 || !mp.KeywordMap["_ALPHATEST_ON"] || mp.TagMap["RenderType"] != "Opaque" {
		t.Errorf("unexpected material property %+v", mp)
	}

	b, err := Encode(doc)
	if err != nil {
		t.Fatalf("encode: %s", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode encoded: %s", err)
	}
	if !reflect.DeepEqual(doc, got) {
		t.Errorf("document changed after round trip:\n%s", b)
	}
}

func TestDecodeErrors(t *testing.T) {
	const asset = `"asset":{"version":"2.0"}`
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"missing version", `{"asset":{}}`,
			errors.MissingFieldError{Path: "root.asset.version"}},
		{"missing asset", `{}`,
			errors.MissingFieldError{Path: "root.asset"}},
		{"null version", `{"asset":{"version":null}}`,
			errors.MissingFieldError{Path: "root.asset.version"}},
		{"root type", `[]`,
			errors.InvalidTypeError{Path: "root", Expected: "object", Got: "array"}},
		{"version type", `{"asset":{"version":2}}`,
			errors.InvalidTypeError{Path: "root.asset.version", Expected: "string", Got: "number"}},
		{"negative index", `{` + asset + `,"nodes":[{},{"mesh":-1}]}`,
			errors.InvalidTypeError{Path: "root.nodes[1].mesh", Expected: "unsigned integer", Got: "number"}},
		{"fractional index", `{` + asset + `,"scene":1.5}`,
			errors.InvalidTypeError{Path: "root.scene", Expected: "integer", Got: "number"}},
		{"component type", `{` + asset + `,"accessors":[{"componentType":9999,"count":1,"type":"SCALAR"}]}`,
			errors.InvalidEnumValueError{Path: "root.accessors[0].componentType", Value: uint32(9999)}},
		{"negative component type", `{` + asset + `,"accessors":[{"componentType":-1,"count":1,"type":"SCALAR"}]}`,
			errors.InvalidEnumValueError{Path: "root.accessors[0].componentType", Value: int64(-1)}},
		{"accessor type", `{` + asset + `,"accessors":[{"componentType":5126,"count":1,"type":"VEC5"}]}`,
			errors.InvalidEnumValueError{Path: "root.accessors[0].type", Value: "VEC5"}},
		{"sparse index type", `{` + asset + `,"accessors":[{"componentType":5126,"count":1,"type":"SCALAR","sparse":{"count":1,"indices":{"bufferView":0,"componentType":5126},"values":{"bufferView":0}}}]}`,
			errors.InvalidEnumValueError{Path: "root.accessors[0].sparse.indices.componentType", Value: uint32(5126)}},
		{"vector length", `{` + asset + `,"nodes":[{"translation":[1,2]}]}`,
			errors.InvalidTypeError{Path: "root.nodes[0].translation", Expected: "array of 3 numbers", Got: "array"}},
		{"primitive mode", `{` + asset + `,"meshes":[{"primitives":[{"attributes":{},"mode":7}]}]}`,
			errors.InvalidEnumValueError{Path: "root.meshes[0].primitives[0].mode", Value: uint32(7)}},
		{"required extension", `{` + asset + `,"extensionsRequired":["EXT_meshopt_compression"]}`,
			errors.UnsupportedExtensionError{Name: "EXT_meshopt_compression"}},
		{"extension member", `{` + asset + `,"materials":[{"extensions":{"KHR_materials_ior":{"ior":"high"}}}]}`,
			errors.InvalidTypeError{Path: "root.materials[0].extensions.KHR_materials_ior.ior", Expected: "number", Got: "string"}},
		{"collider without shape", `{` + asset + `,"extensions":{"VRMC_springBone":{"specVersion":"1.0","colliders":[{"node":0,"shape":{}}]}}}`,
			errors.MissingFieldError{Path: "root.extensions.VRMC_springBone.colliders[0].shape.sphere"}},
		{"collider with two shapes", `{` + asset + `,"extensions":{"VRMC_springBone":{"specVersion":"1.0","colliders":[{"node":0,"shape":{"sphere":{},"capsule":{}}}]}}}`,
			errors.InvalidTypeError{Path: "root.extensions.VRMC_springBone.colliders[0].shape", Expected: "one of sphere or capsule", Got: "both"}},
		{"vrm1 meta", `{` + asset + `,"extensions":{"VRMC_vrm":{"specVersion":"1.0","meta":{"name":"a","authors":[]},"humanoid":{"humanBones":{}}}}}`,
			errors.MissingFieldError{Path: "root.extensions.VRMC_vrm.meta.licenseUrl"}},
		{"vrm1 enum", `{` + asset + `,"extensions":{"VRMC_vrm":{"specVersion":"1.0","meta":{"name":"a","authors":[],"licenseUrl":"x","commercialUsage":"anyone"},"humanoid":{"humanBones":{}}}}}`,
			errors.InvalidEnumValueError{Path: "root.extensions.VRMC_vrm.meta.commercialUsage", Value: "anyone"}},
	}
	for _, test := range tests {
		_, err := Decode([]byte(test.input))
		if err != test.err {
			t.Errorf("%s: expected error %q, got %v", test.name, test.err, err)
		}
	}
}

func TestDecodeMemberOrder(t *testing.T) {
	const input = `{"asset":{"version":"2.0"},"meshes":[{"primitives":[{"attributes":{"TEXCOORD_0":"c","POSITION":"a","NORMAL":"b"}}]}]}`
	want := errors.InvalidTypeError{Path: "root.meshes[0].primitives[0].attributes.NORMAL", Expected: "number", Got: "string"}
	for i := 0; i < 20; i++ {
		if _, err := Decode([]byte(input)); err != want {
			t.Fatalf("expected error %q, got %v", want, err)
		}
	}
}

func TestDecodeSyntaxErrors(t *testing.T) {
	for _, input := range []string{
		``,
		`{"asset":`,
		`{"asset":{"version":"2.0"}} {}`,
		`{"asset":{"version":"2.0"},}`,
	} {
		_, err := Decode([]byte(input))
		var serr errors.JSONSyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: expected JSONSyntaxError, got %v", input, err)
		}
	}
}

func TestIntegerForms(t *testing.T) {
	doc, err := Decode([]byte(`{"asset":{"version":"2.0"},"scene":2.0,"buffers":[{"byteLength":1e3}]}`))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if *doc.Scene != 2 || doc.Buffers[0].ByteLength != 1000 {
		t.Errorf("unexpected integers %d %d", *doc.Scene, doc.Buffers[0].ByteLength)
	}
}

func TestPath(t *testing.T) {
	p := RootPath.Key("meshes").Index(2).Key("primitives").Index(0)
	if s := p.String(); s != "root.meshes[2].primitives[0]" {
		t.Errorf("unexpected path %q", s)
	}
}
