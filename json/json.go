// The json package is used to encode and decode glTF documents to and from
// the glTF JSON format.
//
// Decoding parses the text into a generic tree, then extracts each object
// with the primitives of this package, so that schema violations are
// reported with the path of the offending value.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
)

// Encode returns the glTF JSON representation of doc.
func Encode(doc *gltf.Document) (b []byte, err error) {
	return json.Marshal(doc)
}

// EncodeIndent is like Encode, but indents the output.
func EncodeIndent(doc *gltf.Document, prefix, indent string) (b []byte, err error) {
	return json.MarshalIndent(doc, prefix, indent)
}

// Decode decodes a glTF document from JSON text. The first schema violation
// aborts decoding.
func Decode(b []byte) (doc *gltf.Document, err error) {
	v, err := Parse(b)
	if err != nil {
		return nil, err
	}
	d, err := DecodeDocument(Value{Path: RootPath, V: v})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Parse parses JSON text into a generic tree, with numbers represented as
// json.Number. Malformed text fails with JSONSyntaxError.
func Parse(b []byte) (v interface{}, err error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, syntaxError(dec, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, syntaxError(dec, err)
	}
	return v, nil
}

func syntaxError(dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		offset = serr.Offset
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.JSONSyntaxError{Offset: offset, Cause: err}
}
