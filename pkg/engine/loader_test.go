package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSimpleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.fsx", "let x = 1\n")

	loader := NewFileLoader(dir)
	file, err := loader.Load("main.fsx")
	require.NoError(t, err)

	assert.Equal(t, path, file.Path)
	assert.Equal(t, "let x = 1\n", file.Source)
	assert.Empty(t, file.Dependencies)
	assert.False(t, file.LoadedAt.IsZero())
}

func TestLoadResolvesAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.fsx", "")

	loader := NewFileLoader("/somewhere/else")
	file, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, file.Path)
}

func TestLoadWithDependencies(t *testing.T) {
	dir := t.TempDir()
	dep := writeFile(t, dir, "widgets.fsx", "let gauge = 1\n")
	writeFile(t, dir, "main.fsx", "#load \"widgets.fsx\"\nlet x = 1\n")

	loader := NewFileLoader(dir)
	file, err := loader.Load("main.fsx")
	require.NoError(t, err)

	assert.Equal(t, []string{dep}, file.Dependencies)

	cached, ok := loader.Get(dep)
	require.True(t, ok)
	assert.Equal(t, "let gauge = 1\n", cached.Source)
}

func TestLoadTransitiveDependencies(t *testing.T) {
	dir := t.TempDir()
	c := writeFile(t, dir, "c.fsx", "")
	b := writeFile(t, dir, "b.fsx", "#load \"c.fsx\"\n")
	writeFile(t, dir, "a.fsx", "#load \"b.fsx\"\n")

	loader := NewFileLoader(dir)
	_, err := loader.Load("a.fsx")
	require.NoError(t, err)

	deps := loader.Dependencies("a.fsx")
	assert.Equal(t, []string{b, c}, deps)
}

func TestLoadDependencyRelativeToDeclaringFile(t *testing.T) {
	dir := t.TempDir()
	dep := writeFile(t, dir, "lib/helpers.fsx", "")
	writeFile(t, dir, "lib/widgets.fsx", "#load \"helpers.fsx\"\n")
	writeFile(t, dir, "main.fsx", "#load \"lib/widgets.fsx\"\n")

	loader := NewFileLoader(dir)
	_, err := loader.Load("main.fsx")
	require.NoError(t, err)

	_, ok := loader.Get(dep)
	assert.True(t, ok)
}

func TestLoadNotFound(t *testing.T) {
	loader := NewFileLoader(t.TempDir())
	_, err := loader.Load("missing.fsx")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLoadNotFound))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "widgets"), 0755))

	loader := NewFileLoader(dir)
	_, err := loader.Load("widgets")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLoadOther))
}

func TestLoadMissingDependency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.fsx", "#load \"gone.fsx\"\n")

	loader := NewFileLoader(dir)
	_, err := loader.Load("main.fsx")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLoadNotFound))

	// the failed entry must not linger in the cache
	_, ok := loader.Get("main.fsx")
	assert.False(t, ok)
}

func TestLoadDirectiveParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"missing quotes", "#load widgets.fsx\n"},
		{"unterminated quote", "#load \"widgets.fsx\n"},
		{"empty path", "#load \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "main.fsx", tt.source)

			loader := NewFileLoader(dir)
			_, err := loader.Load("main.fsx")
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeLoadParse))
		})
	}
}

func TestLoadDependencyCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.fsx", "#load \"b.fsx\"\n")
	writeFile(t, dir, "b.fsx", "#load \"a.fsx\"\n")

	loader := NewFileLoader(dir)
	file, err := loader.Load("a.fsx")
	require.NoError(t, err)
	assert.Len(t, file.Dependencies, 1)
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.fsx", "original\n")

	loader := NewFileLoader(dir)
	_, err := loader.Load("main.fsx")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("changed\n"), 0644))

	file, err := loader.Load("main.fsx")
	require.NoError(t, err)
	assert.Equal(t, "original\n", file.Source)
}

func TestInvalidateSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.fsx", "original\n")

	loader := NewFileLoader(dir)
	_, err := loader.Load("main.fsx")
	require.NoError(t, err)

	dropped := loader.Invalidate("main.fsx")
	assert.Equal(t, []string{path}, dropped)

	_, ok := loader.Get("main.fsx")
	assert.False(t, ok)
}

func TestInvalidateDependents(t *testing.T) {
	dir := t.TempDir()
	dep := writeFile(t, dir, "widgets.fsx", "")
	entry := writeFile(t, dir, "main.fsx", "#load \"widgets.fsx\"\n")
	other := writeFile(t, dir, "other.fsx", "")

	loader := NewFileLoader(dir)
	_, err := loader.Load("main.fsx")
	require.NoError(t, err)
	_, err = loader.Load("other.fsx")
	require.NoError(t, err)

	dropped := loader.Invalidate("widgets.fsx")
	assert.ElementsMatch(t, []string{dep, entry}, dropped)

	_, ok := loader.Get(entry)
	assert.False(t, ok)
	_, ok = loader.Get(other)
	assert.True(t, ok)
}

func TestInvalidateUnknownPath(t *testing.T) {
	loader := NewFileLoader(t.TempDir())
	assert.Empty(t, loader.Invalidate("never-loaded.fsx"))
}
