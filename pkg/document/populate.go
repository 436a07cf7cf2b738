package document

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/styledot/pkg/styles"
)

// Populate feeds every entry of the document into the sheet, in order.
// Each Set call is independent: a failing entry is recorded and the rest
// still apply. The returned error joins all per-entry failures.
func Populate(s *styles.Sheet[interface{}], doc *Document) error {
	return Apply(s, doc, func(v interface{}) (interface{}, error) {
		return v, nil
	})
}

// Apply is Populate for typed sheets: convert turns each raw payload into
// the sheet's value type. A conversion failure skips only that entry.
func Apply[T any](s *styles.Sheet[T], doc *Document, convert func(interface{}) (T, error)) error {
	var errs []error
	for _, e := range doc.entries {
		v, err := convert(e.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %s: %w", e.Path, err))
			continue
		}
		if err := s.Set(e.Path, e.States, v); err != nil {
			errs = append(errs, fmt.Errorf("entry %s: %w", e.Path, err))
		}
	}
	return stderrors.Join(errs...)
}

// LoadFile decodes path and returns a fresh sheet populated with its
// rules.
func LoadFile(path string, opts ...styles.Option) (*styles.Sheet[interface{}], error) {
	doc, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	s := styles.New[interface{}](opts...)
	if err := Populate(s, doc); err != nil {
		return nil, err
	}
	return s, nil
}
