package json

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vrmkit/gltf/errors"
)

// Path locates a value within a document, such as
// "root.materials[2].pbrMetallicRoughness". A Path is never modified; Key and
// Index return extended copies.
type Path string

// RootPath is the path of the top-level object.
const RootPath Path = "root"

// Key returns the path of member key of the object at p.
func (p Path) Key(key string) Path {
	return p + "." + Path(key)
}

// Index returns the path of element i of the array at p.
func (p Path) Index(i int) Path {
	return p + "[" + Path(strconv.Itoa(i)) + "]"
}

func (p Path) String() string {
	return string(p)
}

// Value is a node of a generic JSON tree, as produced by encoding/json with
// numbers kept as json.Number, paired with its location.
type Value struct {
	Path Path
	V    interface{}
}

// Decoder converts a generic value to a typed one.
type Decoder[T any] func(v Value) (T, error)

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return "unknown"
	}
}

func (v Value) typeError(expected string) error {
	return errors.InvalidTypeError{Path: v.Path.String(), Expected: expected, Got: typeName(v.V)}
}

func (v Value) number() (json.Number, error) {
	switch n := v.V.(type) {
	case json.Number:
		return n, nil
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
	}
	return "", v.typeError("number")
}

// integer parses v as an integer. Integral numbers written with a fraction or
// exponent, such as 2.0, are accepted.
func (v Value) integer(bits int) (int64, error) {
	n, err := v.number()
	if err != nil {
		return 0, err
	}
	if i, err := strconv.ParseInt(string(n), 10, bits); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
		return 0, v.typeError("integer")
	}
	i := int64(f)
	if bits < 64 && (i < -1<<(bits-1) || i > 1<<(bits-1)-1) {
		return 0, v.typeError("integer")
	}
	return i, nil
}

////////////////////////////////////////////////////////////////

// String decodes a JSON string.
func String(v Value) (string, error) {
	s, ok := v.V.(string)
	if !ok {
		return "", v.typeError("string")
	}
	return s, nil
}

// Bool decodes a JSON boolean.
func Bool(v Value) (bool, error) {
	b, ok := v.V.(bool)
	if !ok {
		return false, v.typeError("boolean")
	}
	return b, nil
}

// Float32 decodes a JSON number.
func Float32(v Value) (float32, error) {
	n, err := v.number()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(string(n), 32)
	if err != nil {
		return 0, v.typeError("number")
	}
	return float32(f), nil
}

// Int32 decodes a JSON number that is a signed 32-bit integer.
func Int32(v Value) (int32, error) {
	i, err := v.integer(32)
	return int32(i), err
}

// Uint32 decodes a JSON number that is an unsigned 32-bit integer. Indices
// and counts are decoded with Uint32.
func Uint32(v Value) (uint32, error) {
	i, err := v.integer(64)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > math.MaxUint32 {
		return 0, v.typeError("unsigned integer")
	}
	return uint32(i), nil
}

// Floats returns a Decoder of an array of exactly n numbers.
func Floats(n int) Decoder[[]float32] {
	return func(v Value) ([]float32, error) {
		a, err := ArrayOf(Float32)(v)
		if err != nil {
			return nil, err
		}
		if len(a) != n {
			return nil, v.typeError("array of " + strconv.Itoa(n) + " numbers")
		}
		return a, nil
	}
}

// Vec2 decodes an array of 2 numbers.
func Vec2(v Value) (mgl32.Vec2, error) {
	var r mgl32.Vec2
	a, err := Floats(len(r))(v)
	copy(r[:], a)
	return r, err
}

// Vec3 decodes an array of 3 numbers.
func Vec3(v Value) (mgl32.Vec3, error) {
	var r mgl32.Vec3
	a, err := Floats(len(r))(v)
	copy(r[:], a)
	return r, err
}

// Vec4 decodes an array of 4 numbers.
func Vec4(v Value) (mgl32.Vec4, error) {
	var r mgl32.Vec4
	a, err := Floats(len(r))(v)
	copy(r[:], a)
	return r, err
}

// Mat4 decodes an array of 16 numbers in column-major order.
func Mat4(v Value) (mgl32.Mat4, error) {
	var r mgl32.Mat4
	a, err := Floats(len(r))(v)
	copy(r[:], a)
	return r, err
}

// ArrayOf returns a Decoder that decodes each element of a JSON array with
// dec. An empty array decodes to an empty, non-nil slice.
func ArrayOf[T any](dec Decoder[T]) Decoder[[]T] {
	return func(v Value) ([]T, error) {
		a, ok := v.V.([]interface{})
		if !ok {
			return nil, v.typeError("array")
		}
		r := make([]T, len(a))
		for i, e := range a {
			var err error
			if r[i], err = dec(Value{Path: v.Path.Index(i), V: e}); err != nil {
				return nil, err
			}
		}
		return r, nil
	}
}

// MapOf returns a Decoder that decodes each member of a JSON object with dec.
// Members are decoded in key order, so the reported failure is that of the
// least key.
func MapOf[T any](dec Decoder[T]) Decoder[map[string]T] {
	return func(v Value) (map[string]T, error) {
		m, ok := v.V.(map[string]interface{})
		if !ok {
			return nil, v.typeError("object")
		}
		r := make(map[string]T, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			t, err := dec(Value{Path: v.Path.Key(k), V: m[k]})
			if err != nil {
				return nil, err
			}
			r[k] = t
		}
		return r, nil
	}
}

// ObjectOf returns a Decoder of a JSON object whose members are extracted by
// fn.
func ObjectOf[T any](fn func(o *Object) T) Decoder[T] {
	return func(v Value) (T, error) {
		o, err := v.Object()
		if err != nil {
			var zero T
			return zero, err
		}
		t := fn(o)
		return t, o.Err()
	}
}

// IntEnum returns a Decoder of an integer enumeration. Values for which Valid
// returns false fail with InvalidEnumValueError.
func IntEnum[T interface {
	~uint32
	Valid() bool
}]() Decoder[T] {
	return func(v Value) (T, error) {
		n, err := Uint32(v)
		if err != nil {
			if i, ierr := v.integer(64); ierr == nil {
				return 0, errors.InvalidEnumValueError{Path: v.Path.String(), Value: i}
			}
			return 0, err
		}
		if !T(n).Valid() {
			return 0, errors.InvalidEnumValueError{Path: v.Path.String(), Value: n}
		}
		return T(n), nil
	}
}

// StringEnum returns a Decoder of a string enumeration looked up with
// fromString. Strings that fromString does not recognize fail with
// InvalidEnumValueError.
func StringEnum[T any](fromString func(string) (T, bool)) Decoder[T] {
	return func(v Value) (T, error) {
		var zero T
		s, err := String(v)
		if err != nil {
			return zero, err
		}
		t, ok := fromString(s)
		if !ok {
			return zero, errors.InvalidEnumValueError{Path: v.Path.String(), Value: s}
		}
		return t, nil
	}
}

////////////////////////////////////////////////////////////////

// Object is a JSON object being decoded into a typed value. The first error
// produced by an extraction is retained, and subsequent extractions do
// nothing and return zero values.
type Object struct {
	Path Path
	m    map[string]interface{}
	err  error
}

// Object returns v as an Object.
func (v Value) Object() (*Object, error) {
	m, ok := v.V.(map[string]interface{})
	if !ok {
		return nil, v.typeError("object")
	}
	return &Object{Path: v.Path, m: m}, nil
}

// Err returns the first error that occurred while extracting members.
func (o *Object) Err() error {
	return o.err
}

// Add sets the error of the object if it has not yet been set.
func (o *Object) Add(err error) (failed bool) {
	if o.err == nil {
		o.err = err
	}
	return o.err != nil
}

// Member returns the member key. ok is false if the member is absent or null,
// or if an error has already occurred.
func (o *Object) Member(key string) (v Value, ok bool) {
	if o.err != nil {
		return Value{}, false
	}
	e, ok := o.m[key]
	if !ok || e == nil {
		return Value{}, false
	}
	return Value{Path: o.Path.Key(key), V: e}, true
}

// Required decodes member key with dec. If the member is absent or null, the
// object fails with MissingFieldError.
func Required[T any](o *Object, key string, dec Decoder[T]) (t T) {
	if o.err != nil {
		return t
	}
	v, ok := o.Member(key)
	if !ok {
		o.Add(errors.MissingFieldError{Path: o.Path.Key(key).String()})
		return t
	}
	t, err := dec(v)
	if o.Add(err) {
		var zero T
		return zero
	}
	return t
}

// Optional decodes member key with dec, returning nil if the member is absent
// or null.
func Optional[T any](o *Object, key string, dec Decoder[T]) *T {
	v, ok := o.Member(key)
	if !ok {
		return nil
	}
	t, err := dec(v)
	if o.Add(err) {
		return nil
	}
	return &t
}

// Default decodes member key with dec, returning the zero value of T if the
// member is absent or null.
func Default[T any](o *Object, key string, dec Decoder[T]) (t T) {
	if p := Optional(o, key, dec); p != nil {
		t = *p
	}
	return t
}

// List decodes member key as an array of elements decoded with dec. An
// absent, null, or empty array decodes to nil.
func List[T any](o *Object, key string, dec Decoder[T]) []T {
	a := Default(o, key, ArrayOf(dec))
	if len(a) == 0 {
		return nil
	}
	return a
}

// Dict decodes member key as an object of members decoded with dec. An
// absent, null, or empty object decodes to nil.
func Dict[T any](o *Object, key string, dec Decoder[T]) map[string]T {
	m := Default(o, key, MapOf(dec))
	if len(m) == 0 {
		return nil
	}
	return m
}

// Extension decodes the member Name of an "extensions" object into the
// corresponding field of an extensions struct.
type Extension[T any] struct {
	Name   string
	Decode func(v Value, ext *T) error
}

// Extensions decodes the "extensions" member of the object. Each member named
// in table is decoded into the result; other members are ignored. Returns nil
// if no member of table is present.
func Extensions[T any](o *Object, table []Extension[T]) *T {
	v, ok := o.Member("extensions")
	if !ok {
		return nil
	}
	exts, err := v.Object()
	if o.Add(err) {
		return nil
	}
	var r T
	var found bool
	for _, ext := range table {
		ev, ok := exts.Member(ext.Name)
		if !ok {
			continue
		}
		if o.Add(ext.Decode(ev, &r)) {
			return nil
		}
		found = true
	}
	if !found {
		return nil
	}
	return &r
}

// Field returns an Extension that decodes member name with dec and stores the
// result in the field of the extensions struct selected by field.
func Field[E, T any](name string, dec Decoder[T], field func(ext *E) **T) Extension[E] {
	return Extension[E]{
		Name: name,
		Decode: func(v Value, ext *E) error {
			t, err := dec(v)
			if err != nil {
				return err
			}
			*field(ext) = &t
			return nil
		},
	}
}
