package document

import (
	"os"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/logging"
)

// Decode parses data in the given format and flattens it into a Document.
func Decode(data []byte, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatJSON, FormatYAML, FormatTOML:
		var m *docMap
		switch format {
		case FormatJSON:
			m, err = decodeJSON(data)
		case FormatYAML:
			m, err = decodeYAML(data)
		case FormatTOML:
			m, err = decodeTOML(data)
		}
		if err != nil {
			return nil, err
		}
		doc, err = documentFrom(m, format)
	case FormatXML:
		doc, err = decodeXML(data)
	default:
		return nil, errors.Newf(errors.ErrDocFormat,
			"cannot decode format %q", format)
	}
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("document")
	logger.Debug().
		Stringer("format", format).
		Int("entries", doc.Len()).
		Msg("document decoded")
	return doc, nil
}

// DecodeFile reads path and decodes it, picking the format from the file
// extension.
func DecodeFile(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocParse,
			"cannot read document %s", path)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocParse,
			"cannot decode document %s", path)
	}
	return doc, nil
}
