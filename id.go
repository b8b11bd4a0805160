package pdoc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// idExt is the extension appended to an Id to form its filename.
const idExt = ".yaml"

// Id is an opaque, filename-safe, human-typable entity identifier. It
// names an entity's file and is copied by value into the records that
// reference it.
type Id string

// NewId validates raw as an identifier: it must be non-empty and safe
// to use verbatim as a filename stem.
func NewId(raw string) (Id, error) {
	if raw == "" {
		return "", fmt.Errorf("identifier is empty")
	}
	if raw == "." || raw == ".." {
		return "", fmt.Errorf("identifier %q is reserved", raw)
	}
	if strings.ContainsAny(raw, "/\\\x00") {
		return "", fmt.Errorf("identifier %q contains filename-unsafe characters", raw)
	}
	return Id(raw), nil
}

// String returns the identifier in its decodable form.
func (id Id) String() string { return string(id) }

// Filename returns the name of the file holding the entity named by id.
func (id Id) Filename() string { return string(id) + idExt }

// IdFromFilename decodes the Id encoded in a file path, inverting
// Filename. It fails if the basename has the wrong extension or does
// not validate as an Id.
func IdFromFilename(path string) (Id, error) {
	base := filepath.Base(path)
	stem, ok := strings.CutSuffix(base, idExt)
	if !ok {
		return "", fmt.Errorf("filename %q does not end in %q", base, idExt)
	}
	id, err := NewId(stem)
	if err != nil {
		return "", fmt.Errorf("filename %q does not encode an identifier: %w", base, err)
	}
	return id, nil
}
