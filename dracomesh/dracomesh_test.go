package dracomesh

import (
	"bytes"
	"testing"

	"github.com/qmuntal/draco-go/draco"
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		values interface{}
		typ    gltf.ComponentType
		data   []byte
		err    bool
	}{
		{[]int8{-1, 2}, gltf.ComponentByte, []byte{0xFF, 2}, false},
		{[]uint8{1, 2}, gltf.ComponentUnsignedByte, []byte{1, 2}, false},
		{[]int16{-2}, gltf.ComponentShort, []byte{0xFE, 0xFF}, false},
		{[]uint16{0x0102}, gltf.ComponentUnsignedShort, []byte{2, 1}, false},
		{[]uint32{0x01020304}, gltf.ComponentUnsignedInt, []byte{4, 3, 2, 1}, false},
		{[]int32{5}, gltf.ComponentUnsignedInt, []byte{5, 0, 0, 0}, false},
		{[]float32{1}, gltf.ComponentFloat, []byte{0, 0, 0x80, 0x3F}, false},
		{[]int32{1, -1}, 0, nil, true},
		{[]float64{1}, 0, nil, true},
		{[]uint64{1}, 0, nil, true},
		{[]bool{true}, 0, nil, true},
	}
	for _, test := range tests {
		data, typ, err := encode(test.values)
		if test.err {
			if err == nil {
				t.Errorf("%T: expected error", test.values)
			}
			continue
		}
		if err != nil {
			t.Errorf("%T: unexpected error: %s", test.values, err)
			continue
		}
		if typ != test.typ {
			t.Errorf("%T: expected type %v, got %v", test.values, test.typ, typ)
		}
		if !bytes.Equal(data, test.data) {
			t.Errorf("%T: expected %v, got %v", test.values, test.data, data)
		}
	}
}

func TestRoleNames(t *testing.T) {
	var r roleCounter
	types := []draco.GeometryAttrType{
		draco.GAT_POSITION,
		draco.GAT_TEX_COORD,
		draco.GAT_GENERIC,
		draco.GAT_COLOR,
		draco.GAT_TEX_COORD,
		draco.GAT_NORMAL,
	}
	want := []string{"POSITION", "TEXCOORD_0", "", "COLOR_0", "TEXCOORD_1", "NORMAL"}
	for i, typ := range types {
		if got := r.name(typ); got != want[i] {
			t.Errorf("attribute %d: expected %q, got %q", i, want[i], got)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := (Decoder{}).DecodeMesh(nil, nil); err == nil {
		t.Errorf("empty data: expected error")
	}
	_, err := (Decoder{}).DecodeMesh([]byte{1, 2, 3}, gltf.Attributes{"POSITION": 0})
	var derr *draco.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected draco error, got %v", err)
	}
}
