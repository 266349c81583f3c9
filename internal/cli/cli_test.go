package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery-app/internal/config"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedValidate_OK(t *testing.T) {
	path := writeFile(t, `
recipes:
  - name: Overnight Oats
    description: No-cook breakfast
    ingredients: ["1 cup oats", "1 cup milk"]
    instructions: ["Combine", "Refrigerate overnight"]
    imageUrl: https://images.example.com/oats.jpg
    videoUrl: https://videos.example.com/oats
    preparationTime: 5
`)

	stdout, _, err := runCommand(t, "seed", "validate", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "1 recipe(s) OK")
	assert.Contains(t, stdout, "Overnight Oats (5 min)")
}

func TestSeedValidate_ReportsIssues(t *testing.T) {
	path := writeFile(t, `
recipes:
  - name: Broken
    description: bad urls
    ingredients: [x]
    instructions: [y]
    imageUrl: nope
    preparationTime: -4
`)

	_, stderr, err := runCommand(t, "seed", "validate", path)

	require.Error(t, err)
	assert.Contains(t, stderr, "recipes.0.imageUrl: Invalid url")
	assert.Contains(t, stderr, "recipes.0.preparationTime")
}

func TestSeedValidate_RequiresFile(t *testing.T) {
	_, _, err := runCommand(t, "seed", "validate")
	assert.Error(t, err)
}

func TestServeFlags_Override(t *testing.T) {
	cfg := &config.Config{Port: "5000", Log: config.LogConfig{Level: "info", Format: "text"}}
	flags := &serveFlags{port: "9000", logFormat: "json"}

	flags.apply(cfg)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Seed.RecipesFile)
}

func TestNewStore_FromSeedFile(t *testing.T) {
	path := writeFile(t, `
recipes:
  - name: Toast
    description: Bread, but warm
    ingredients: [bread]
    instructions: [Toast it]
    imageUrl: https://images.example.com/toast.jpg
`)
	cfg := &config.Config{Seed: config.SeedConfig{RecipesFile: path}}

	s, err := newStore(cfg)

	require.NoError(t, err)
	require.Len(t, s.Recipes(), 1)
	assert.Equal(t, "Toast", s.Recipes()[0].Name)

	s, err = newStore(&config.Config{})
	require.NoError(t, err)
	assert.Len(t, s.Recipes(), 2)
}
