package document

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/styledot/pkg/errors"
)

// Format identifies a document encoding.
type Format int

const (
	// FormatUnknown is the zero value, never valid for a decode.
	FormatUnknown Format = iota
	// FormatJSON decodes/encodes JSON objects in document order.
	FormatJSON
	// FormatYAML decodes/encodes YAML mappings in document order.
	FormatYAML
	// FormatTOML decodes TOML tables; keys sort lexically per level.
	FormatTOML
	// FormatXML decodes/encodes XML element trees in document order.
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatUnknown, errors.Newf(errors.ErrDocFormat,
			"unknown document format %q", s)
	}
}

// DetectFormat picks the format from a file name's extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatUnknown, errors.Newf(errors.ErrDocFormat,
			"cannot detect document format: %s has no extension", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return FormatUnknown, errors.Newf(errors.ErrDocFormat,
			"unsupported document extension %q", ext)
	}
	return f, nil
}
