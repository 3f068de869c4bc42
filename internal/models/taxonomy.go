package models

import (
	"fmt"

	"guangoku.dev/internal/i18n"
)

// CategoryID is the stable slug of a top-level project category
type CategoryID string

// TagID is the stable slug of a tag. Every CategoryID is also a valid TagID.
type TagID string

// Category is a top-level, mutually exclusive project classification
type Category struct {
	ID    CategoryID `json:"id" yaml:"id"`
	Label i18n.Text  `json:"label" yaml:"label"`
	Icon  string     `json:"icon" yaml:"icon"`
}

// TagKind says where a tag came from
type TagKind uint8

const (
	// KindCategory tags are lifted from a Category and always filterable
	KindCategory TagKind = iota
	// KindContent tags are authored on their own
	KindContent
)

func (k TagKind) String() string {
	if k == KindCategory {
		return "category"
	}
	return "content"
}

// MarshalText implements encoding.TextMarshaler
func (k TagKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *TagKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "category":
		*k = KindCategory
	case "content":
		*k = KindContent
	default:
		return fmt.Errorf("unknown tag kind %q", b)
	}
	return nil
}

// Tag is a non-exclusive label attached to a project
type Tag struct {
	ID         TagID     `json:"id" yaml:"id"`
	Label      i18n.Text `json:"label" yaml:"label"`
	Filterable bool      `json:"filterable" yaml:"filterable"`
	Kind       TagKind   `json:"kind" yaml:"-"`
}

// ContentTag is the authoring form of a tag that is not a category
type ContentTag struct {
	ID         TagID
	Label      i18n.Text
	Filterable bool
}
