package html

import (
	"bytes"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/fwojciec/justext"
)

// Decode converts raw HTML bytes into a UTF-8 string. When name is empty
// the encoding is sniffed from a byte order mark, a meta tag near the top
// of the document, or the charset parameter of contentType, falling back
// to windows-1252. A non-empty name forces that encoding; an unknown name
// returns EINVALID.
func Decode(raw []byte, contentType, name string) (string, error) {
	if name != "" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return "", justext.Errorf(justext.EINVALID, "unknown encoding %q", name)
		}
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", justext.Errorf(justext.EINVALID, "failed to decode as %q: %v", name, err)
		}
		return string(decoded), nil
	}

	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", justext.Errorf(justext.EINVALID, "failed to detect encoding: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", justext.Errorf(justext.EINVALID, "failed to decode: %v", err)
	}
	return string(decoded), nil
}
