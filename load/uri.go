package load

import (
	"encoding/base64"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/vrmkit/gltf/errors"
)

// readURI returns the content of a buffer or image URI. mediaType is the
// media type of a data URI, and is otherwise empty.
//
// A data URI holds its payload after the first comma, base64 encoded when
// the header ends with ";base64". Any other URI is a path, percent-encoded
// and slash-separated, that is read directly when absolute and otherwise
// relative to BasePath.
func (l *Loader) readURI(uri string) (data []byte, mediaType string, err error) {
	if strings.HasPrefix(uri, "data:") {
		return decodeDataURI(uri)
	}

	name, err := url.PathUnescape(uri)
	if err != nil {
		name = uri
	}
	name = filepath.FromSlash(name)
	if !filepath.IsAbs(name) {
		name = filepath.Join(l.BasePath, name)
	}

	readFile := l.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	if data, err = readFile(name); err != nil {
		return nil, "", errors.InputError{Path: name, Cause: err}
	}
	return data, "", nil
}

func decodeDataURI(uri string) (data []byte, mediaType string, err error) {
	header, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return nil, "", errors.InputError{Path: truncateURI(uri), Cause: errors.New("data URI has no payload")}
	}
	header, isBase64 := strings.CutSuffix(header, ";base64")
	mediaType, _, _ = strings.Cut(header, ";")
	if !isBase64 {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, "", errors.InputError{Path: truncateURI(uri), Cause: err}
		}
		return []byte(s), mediaType, nil
	}
	if data, err = base64.StdEncoding.DecodeString(payload); err != nil {
		return nil, "", errors.InputError{Path: truncateURI(uri), Cause: err}
	}
	return data, mediaType, nil
}

// truncateURI shortens a data URI for use in an error message.
func truncateURI(uri string) string {
	const max = 32
	if len(uri) <= max {
		return uri
	}
	return uri[:max] + "..."
}
