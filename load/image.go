package load

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/vrmkit/gltf/errors"
	"github.com/vrmkit/gltf/json"
	"golang.org/x/crypto/blake2b"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// image loads the encoded data of image i from its buffer view or URI, and
// reads the dimensions from its header when the format is recognized.
func (m *materializer) image(i int) error {
	img := &m.doc.Images[i]
	path := json.RootPath.Key("images").Index(i)
	out := &Image{MimeType: img.MimeType}

	switch {
	case img.BufferView != nil:
		data, err := m.viewBytes(path.Key("bufferView"), *img.BufferView)
		if err != nil {
			return err
		}
		out.Data = data
	case img.URI != "":
		data, mediaType, err := m.loader.readURI(img.URI)
		if err != nil {
			return err
		}
		out.Data = data
		if out.MimeType == "" {
			out.MimeType = mediaType
		}
	default:
		return errors.MissingFieldError{Path: path.Key("uri").String()}
	}

	if cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Data)); err == nil {
		out.Format = format
		out.Width = cfg.Width
		out.Height = cfg.Height
		if out.MimeType == "" {
			out.MimeType = "image/" + format
		}
	}
	out.Digest = blake2b.Sum256(out.Data)
	m.out.Images[i] = out
	return nil
}
