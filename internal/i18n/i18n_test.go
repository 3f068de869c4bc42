package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveText(t *testing.T) {
	resume := Text{En: "Resume", Zh: "简历"}

	assert.Equal(t, "Resume", Resolve(resume, English))
	assert.Equal(t, "简历", Resolve(resume, Chinese))
}

func TestResolveArray(t *testing.T) {
	highlights := Array{
		En: []string{"one", "two"},
		Zh: []string{"一", "二"},
	}

	assert.Equal(t, []string{"one", "two"}, Resolve(highlights, English))
	assert.Equal(t, []string{"一", "二"}, Resolve(highlights, Chinese))
}

func TestResolveUnknownLanguagePanics(t *testing.T) {
	assert.Panics(t, func() {
		Resolve(Text{En: "a", Zh: "b"}, Language(7))
	})
}

func TestParse(t *testing.T) {
	lang, ok := Parse("en")
	assert.True(t, ok)
	assert.Equal(t, English, lang)

	lang, ok = Parse("zh")
	assert.True(t, ok)
	assert.Equal(t, Chinese, lang)

	for _, bad := range []string{"", "EN", "fr", "zh-CN", " en"} {
		_, ok := Parse(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Chinese, Opposite(English))
	assert.Equal(t, English, Opposite(Chinese))
}

func TestLanguageJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Language{"lang": Chinese})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lang":"zh"}`, string(out))

	var in struct {
		Lang Language `json:"lang"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lang":"en"}`), &in))
	assert.Equal(t, English, in.Lang)

	assert.Error(t, json.Unmarshal([]byte(`{"lang":"de"}`), &in))
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Language
		ok     bool
	}{
		{"zh-CN,zh;q=0.9,en;q=0.8", Chinese, true},
		{"zh-TW", Chinese, true},
		{"en-US,en;q=0.9", English, true},
		{"fr-FR,zh;q=0.5", English, true},
		{"", English, false},
		{"   ", English, false},
	}

	for _, tt := range tests {
		got, ok := FromAcceptLanguage(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}

func TestComplete(t *testing.T) {
	assert.True(t, Complete(Text{En: "a", Zh: "甲"}))
	assert.False(t, Complete(Text{En: "a"}))
	assert.False(t, Complete(Text{En: " ", Zh: "甲"}))
}

func TestFormatReadTime(t *testing.T) {
	assert.Equal(t, "8 min read", FormatReadTime(8, English))
	assert.Equal(t, "8分钟阅读", FormatReadTime(8, Chinese))
}
