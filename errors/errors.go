// The errors package provides additional error primitives, and the error
// types produced while decoding and loading glTF documents.
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func New(text string) error {
	return errors.New(text)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Errors is a list of errors.
type Errors []error

// Errors formats the list by separating each message with a newline. Each
// produced line, including lines within messages, is prefixed with a tab.
func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	default:
		var buf strings.Builder
		buf.WriteString("multiple errors:")
		for _, err := range errs {
			buf.WriteString("\n\t")
			msg := err.Error()
			msg = strings.ReplaceAll(msg, "\n", "\n\t")
			buf.WriteString(msg)
		}
		return buf.String()
	}
}

// Unwrap returns the list, so that Is and As examine each error.
func (errs Errors) Unwrap() []error {
	return errs
}

// Append returns errs with each err appended to it. Arguments that are nil are
// skipped.
func (errs Errors) Append(err ...error) Errors {
	for _, err := range err {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Return prepares errs to be returned by a function by returning nil if errs is
// empty.
func (errs Errors) Return() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Union receives a number of errors and combines them into one Errors. Any errs
// that are Errors are concatenated directly. Returns nil if all errs are nil or
// empty.
func Union(errs ...error) error {
	var e Errors
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
			continue
		case Errors:
			e = e.Append(err...)
		default:
			e = append(e, err)
		}
	}
	return e.Return()
}

////////////////////////////////////////////////////////////////

var (
	// Indicates a chunk of an unexpected type, or chunks in the wrong order.
	ErrChunkType = errors.New("unexpected chunk type")
	// Indicates that the stream ended inside a header or chunk.
	ErrTruncated = errors.New("unexpected end of data")
	// Indicates that a buffer without a URI was used, but no binary chunk was
	// supplied.
	ErrNoBinaryChunk = errors.New("buffer has no uri and no binary chunk is present")
)

// ErrUnsupportedVersion indicates a GLB container version other than 2.
type ErrUnsupportedVersion uint32

func (err ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported GLB version %d", uint32(err))
}

// InputError wraps an error that occurred while opening or reading an input.
type InputError struct {
	// Path is the file or URI being read, if known.
	Path string

	Cause error
}

func (err InputError) Error() string {
	var s strings.Builder
	s.WriteString("input error")
	if err.Path != "" {
		s.WriteString(" ")
		s.WriteString(strconv.Quote(err.Path))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err InputError) Unwrap() error {
	return err.Cause
}

// ContainerFormatError wraps an error in the binary GLB envelope.
type ContainerFormatError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err ContainerFormatError) Error() string {
	var s strings.Builder
	s.WriteString("container format error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err ContainerFormatError) Unwrap() error {
	return err.Cause
}

// JSONSyntaxError wraps an error produced while parsing malformed JSON text.
type JSONSyntaxError struct {
	// Offset is the byte offset within the JSON text, or -1 if unknown.
	Offset int64

	Cause error
}

func (err JSONSyntaxError) Error() string {
	var s strings.Builder
	s.WriteString("JSON syntax error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err JSONSyntaxError) Unwrap() error {
	return err.Cause
}

// MissingFieldError indicates that a required field is absent or null.
type MissingFieldError struct {
	// Path locates the field, such as "root.asset.version".
	Path string
}

func (err MissingFieldError) Error() string {
	return "missing required field " + err.Path
}

// InvalidTypeError indicates that a field has a JSON type other than the one
// expected.
type InvalidTypeError struct {
	Path     string
	Expected string
	Got      string
}

func (err InvalidTypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", err.Path, err.Expected, err.Got)
}

// InvalidEnumValueError indicates that a field holds a value outside of its
// enumeration.
type InvalidEnumValueError struct {
	Path  string
	Value interface{}
}

func (err InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: invalid enum value %#v", err.Path, err.Value)
}

// UnsupportedExtensionError indicates that the document requires an
// extension that is not understood.
type UnsupportedExtensionError struct {
	Name string
}

func (err UnsupportedExtensionError) Error() string {
	return "unsupported required extension " + strconv.Quote(err.Name)
}

// CompressedMeshDecodeError wraps an error that occurred while decoding a
// compressed mesh primitive.
type CompressedMeshDecodeError struct {
	Mesh      int
	Primitive int

	Cause error
}

func (err CompressedMeshDecodeError) Error() string {
	msg := fmt.Sprintf("decoding compressed primitive %d of mesh %d", err.Primitive, err.Mesh)
	if err.Cause != nil {
		msg += ": " + err.Cause.Error()
	}
	return msg
}

func (err CompressedMeshDecodeError) Unwrap() error {
	return err.Cause
}

// ReferenceError indicates an index that is out of range of the array it
// refers into.
type ReferenceError struct {
	// Path locates the referring field.
	Path  string
	Index int
	// Len is the length of the referenced array.
	Len int
}

func (err ReferenceError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", err.Path, err.Index, err.Len)
}

// RangeError indicates a byte range that does not fit within its backing
// bytes.
type RangeError struct {
	Path string
	// Need is the number of bytes required.
	Need int
	// Have is the number of bytes available.
	Have int
}

func (err RangeError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, have %d", err.Path, err.Need, err.Have)
}
