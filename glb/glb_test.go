package glb

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
)

func app(bs ...interface{}) []byte {
	var s []byte
	for _, b := range bs {
		switch b := b.(type) {
		case string:
			s = append(s, b...)
		case []byte:
			s = append(s, b...)
		case byte:
			s = append(s, b)
		case uint32:
			s = binary.LittleEndian.AppendUint32(s, b)
		case ChunkType:
			s = binary.LittleEndian.AppendUint32(s, uint32(b))
		}
	}
	return s
}

const minimalJSON = `{"asset":{"version":"2.0"}}`

// minimal is a container holding minimalJSON padded to 28 bytes, and a 4-byte
// binary chunk.
var minimal = app(
	Magic, uint32(2), uint32(60),
	uint32(28), ChunkJSON, minimalJSON, " ",
	uint32(4), ChunkBIN, []byte{0, 1, 2, 3},
)

func TestDecode(t *testing.T) {
	doc, bin, warn, err := Decoder{}.Decode(bytes.NewReader(minimal))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if doc.Asset.Version != "2.0" {
		t.Errorf("expected version %q, got %q", "2.0", doc.Asset.Version)
	}
	if !bytes.Equal(bin, []byte{0, 1, 2, 3}) {
		t.Errorf("unexpected binary chunk % 02X", bin)
	}
}

func TestDecodePlainJSON(t *testing.T) {
	for _, text := range []string{minimalJSON, "  " + minimalJSON + "\n"} {
		doc, bin, warn, err := Decoder{}.Decode(strings.NewReader(text))
		if err != nil {
			t.Fatalf("%q: unexpected error: %s", text, err)
		}
		if warn != nil || bin != nil {
			t.Errorf("%q: expected no warning and no binary chunk", text)
		}
		if doc.Asset.Version != "2.0" {
			t.Errorf("%q: unexpected version %q", text, doc.Asset.Version)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		cause error
	}{
		{"truncated header", app(Magic, uint32(2)), errors.ErrTruncated},
		{"no chunks", app(Magic, uint32(2), uint32(12)), errors.ErrTruncated},
		{"truncated chunk header", app(Magic, uint32(2), uint32(16), uint32(4)), errors.ErrTruncated},
		{"truncated chunk", app(Magic, uint32(2), uint32(24), uint32(4), ChunkJSON, "{}"), errors.ErrTruncated},
		{"binary first", app(Magic, uint32(2), uint32(24), uint32(4), ChunkBIN, "abcd"), errors.ErrChunkType},
		{"binary third", app(Magic, uint32(2), uint32(48),
			uint32(4), ChunkJSON, "{}  ",
			uint32(0), ChunkType(0x12345678),
			uint32(4), ChunkBIN, "abcd",
		), errors.ErrChunkType},
		{"second JSON", app(Magic, uint32(2), uint32(36),
			uint32(4), ChunkJSON, "{}  ",
			uint32(4), ChunkJSON, "{}  ",
		), errors.ErrChunkType},
	}
	for _, test := range tests {
		_, _, err := Decoder{}.Read(bytes.NewReader(test.input))
		var cerr errors.ContainerFormatError
		if !errors.As(err, &cerr) {
			t.Errorf("%s: expected ContainerFormatError, got %v", test.name, err)
			continue
		}
		if !errors.Is(err, test.cause) {
			t.Errorf("%s: expected cause %q, got %q", test.name, test.cause, cerr.Cause)
		}
	}
}

func TestReadWarnings(t *testing.T) {
	// Version 1, wrong length, and an unknown chunk.
	input := app(
		Magic, uint32(1), uint32(100),
		uint32(28), ChunkJSON, minimalJSON, " ",
		uint32(4), ChunkBIN, []byte{0, 1, 2, 3},
		uint32(4), ChunkType(0x54584554), "text",
	)
	c, warn, err := Decoder{}.Read(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	errs, ok := warn.(errors.Errors)
	if !ok || len(errs) != 3 {
		t.Fatalf("expected 3 warnings, got %v", warn)
	}
	if v, ok := errs[0].(errors.ErrUnsupportedVersion); !ok || v != 1 {
		t.Errorf("expected version warning, got %v", errs[0])
	}
	if w, ok := errs[1].(ChunkWarning); !ok || w.Type.String() != "TEXT" {
		t.Errorf("expected chunk warning, got %v", errs[1])
	}
	if w, ok := errs[2].(LengthWarning); !ok || w.Actual != int64(len(input)) {
		t.Errorf("expected length warning, got %v", errs[2])
	}
	if len(c.Chunks) != 3 || !bytes.Equal(c.BIN, []byte{0, 1, 2, 3}) {
		t.Errorf("unexpected chunks %v", c.Chunks)
	}

	if _, _, err := (Decoder{Strict: true}).Read(bytes.NewReader(input)); err == nil {
		t.Errorf("expected error in strict mode")
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestReadInputError(t *testing.T) {
	r := io.MultiReader(bytes.NewReader(app(Magic, uint32(2))), failReader{})
	_, _, err := Decoder{}.Read(r)
	var ierr errors.InputError
	if !errors.As(err, &ierr) || !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected InputError, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	doc := &gltf.Document{
		Asset:   gltf.Asset{Version: "2.0", Generator: "test"},
		Buffers: []gltf.Buffer{{ByteLength: 3}},
	}
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, doc, []byte{7, 8, 9}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	b := buf.Bytes()
	if len(b)%4 != 0 {
		t.Errorf("container length %d is not aligned", len(b))
	}
	if n := binary.LittleEndian.Uint32(b[8:12]); int(n) != len(b) {
		t.Errorf("header length %d, expected %d", n, len(b))
	}

	c, warn, err := Decoder{Strict: true}.Read(bytes.NewReader(b))
	if err != nil || warn != nil {
		t.Fatalf("unexpected error %v, warning %v", err, warn)
	}
	for _, chunk := range c.Chunks {
		if chunk.Offset%4 != 0 || len(chunk.Data)%4 != 0 {
			t.Errorf("chunk %s at %d with length %d is not aligned", chunk.Type, chunk.Offset, len(chunk.Data))
		}
	}
	if !bytes.Equal(c.BIN, []byte{7, 8, 9, 0}) {
		t.Errorf("unexpected binary chunk % 02X", c.BIN)
	}
	if !bytes.HasSuffix(bytes.TrimRight(c.JSON, " "), []byte("}")) {
		t.Errorf("JSON chunk not padded with spaces: %q", c.JSON)
	}

	got, _, _, err := Decoder{}.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.Asset != doc.Asset || len(got.Buffers) != 1 || got.Buffers[0] != doc.Buffers[0] {
		t.Errorf("decoded document does not match: %+v", got)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if _, err := (Decoder{}).Dump(&buf, bytes.NewReader(minimal)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Magic: glTF (67 6C 54 46)",
		"Version: 2",
		"Length: 60",
		"#0: JSON (4A 53 4F 4E)",
		`"version": "2.0"`,
		"#1: BIN. (42 49 4E 00)",
		"| 00 01 02 03 |....|",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}
}

func TestDumpInvalidJSON(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		warns int
	}{
		{"plain", []byte(`{"asset":`), 1},
		{"chunk", app(
			Magic, uint32(1), uint32(24),
			uint32(4), ChunkJSON, `{"a `,
		), 2},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		warn, err := (Decoder{}).Dump(&buf, bytes.NewReader(test.input))
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		errs, ok := warn.(errors.Errors)
		if !ok || len(errs) != test.warns {
			t.Errorf("%s: expected %d warnings, got %v", test.name, test.warns, warn)
			continue
		}
		var jerr errors.JSONSyntaxError
		if !errors.As(errs[len(errs)-1], &jerr) {
			t.Errorf("%s: expected JSONSyntaxError last, got %v", test.name, warn)
		}
		if !strings.Contains(buf.String(), "(invalid: ") {
			t.Errorf("%s: dump does not quote invalid JSON:\n%s", test.name, buf.String())
		}
	}
}

func TestChunkType(t *testing.T) {
	if s := ChunkJSON.String(); s != "JSON" {
		t.Errorf("expected JSON, got %q", s)
	}
	if s := ChunkBIN.String(); s != "BIN." {
		t.Errorf("expected BIN., got %q", s)
	}
}
