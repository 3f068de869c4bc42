// Package i18n holds the two-language primitives every piece of user-facing
// content is built from.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two supported display languages. The zero value is
// English.
type Language uint8

const (
	English Language = iota
	Chinese
)

// Languages lists every supported language in display order
var Languages = []Language{English, Chinese}

// Code returns the wire token for the language ("en" or "zh")
func (l Language) Code() string {
	switch l {
	case English:
		return "en"
	case Chinese:
		return "zh"
	}
	panic(fmt.Sprintf("i18n: unknown language %d", uint8(l)))
}

func (l Language) String() string {
	return l.Code()
}

// MarshalText implements encoding.TextMarshaler
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Language) UnmarshalText(b []byte) error {
	parsed, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("invalid language: %q", string(b))
	}
	*l = parsed
	return nil
}

// Parse converts a wire token into a Language. Anything other than "en" or
// "zh" is rejected.
func Parse(code string) (Language, bool) {
	switch code {
	case "en":
		return English, true
	case "zh":
		return Chinese, true
	}
	return English, false
}

// Opposite returns the other supported language
func Opposite(l Language) Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Bilingual pairs the English and Chinese renditions of the same value.
type Bilingual[T any] struct {
	En T `json:"en" yaml:"en"`
	Zh T `json:"zh" yaml:"zh"`
}

// Text is a bilingual string
type Text = Bilingual[string]

// Array is a bilingual list of strings, used for multi-line content
type Array = Bilingual[[]string]

// Resolve returns the rendition of b in the requested language. Every
// user-visible bilingual field goes through here.
func Resolve[T any](b Bilingual[T], l Language) T {
	switch l {
	case English:
		return b.En
	case Chinese:
		return b.Zh
	}
	panic(fmt.Sprintf("i18n: unknown language %d", uint8(l)))
}

// Complete reports whether both renditions of a text are non-blank.
func Complete(t Text) bool {
	return strings.TrimSpace(t.En) != "" && strings.TrimSpace(t.Zh) != ""
}

// FromAcceptLanguage picks a language from an Accept-Language header. Only the
// most preferred entry counts: a Chinese variant selects Chinese, anything
// else English. ok is false when the header is empty or unparseable.
func FromAcceptLanguage(header string) (Language, bool) {
	if strings.TrimSpace(header) == "" {
		return English, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return English, false
	}
	base, _ := tags[0].Base()
	if base.String() == "zh" {
		return Chinese, true
	}
	return English, true
}

var readTime = Bilingual[string]{
	En: "%d min read",
	Zh: "%d分钟阅读",
}

// FormatReadTime renders an estimated reading time
func FormatReadTime(minutes int, l Language) string {
	return fmt.Sprintf(Resolve(readTime, l), minutes)
}
