package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestWriteSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var out bytes.Buffer

	require.NoError(t, writeSnapshot(dir, &out))
	assert.Contains(t, out.String(), "Done! 4 projects, 3 posts")

	raw, err := os.ReadFile(filepath.Join(dir, "content.yaml"))
	require.NoError(t, err)
	var fromYAML Snapshot
	require.NoError(t, yaml.Unmarshal(raw, &fromYAML))
	assert.Len(t, fromYAML.Projects, 4)
	assert.Equal(t, "FlashMind", fromYAML.Projects[2].Title.En)
	assert.Len(t, fromYAML.ArtPieces, 3)
	assert.Equal(t, "高级数据工程师", fromYAML.Resume.Experience[0].Title.Zh)

	raw, err = os.ReadFile(filepath.Join(dir, "projects.zh.json"))
	require.NoError(t, err)
	var cards []projectCard
	require.NoError(t, json.Unmarshal(raw, &cards))
	require.Len(t, cards, 4)
	assert.Equal(t, "章鱼女孩", cards[0].Title)
	assert.Equal(t, "octopus-girl", cards[0].Slug)

	assert.FileExists(t, filepath.Join(dir, "content.json"))
	assert.FileExists(t, filepath.Join(dir, "projects.en.json"))
}

func TestGenerateRequiresOut(t *testing.T) {
	cmd := newGenerateCmd()
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
