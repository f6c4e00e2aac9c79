package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sofmeright/lintcomposer/src/compose"
	"github.com/sofmeright/lintcomposer/src/preset"
	"github.com/sofmeright/lintcomposer/src/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	s := &store.Store{RootDir: t.TempDir()}
	r := compose.Build(compose.Options{"strict": true, "react": true}, []string{"**/dist"})

	path, err := s.Put(r)
	require.NoError(t, err)
	fp, err := r.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.RootDir, ".lintcomposer/resolved", fp[:2], fp+".json"), path)

	got, err := s.Get(fp)
	require.NoError(t, err)
	assert.Equal(t, []preset.Name{"react", "strict"}, got.Presets)
	assert.Equal(t, []string{"**/dist"}, got.Ignores)
	assert.Equal(t, preset.SeverityError, got.Flatten("")["no-console"].Severity)
	gotFP, err := got.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fp, gotFP, "round trip keeps the fingerprint")

	current, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, got, current)
}

func TestStore_CurrentFollowsLatestPut(t *testing.T) {
	t.Parallel()

	s := &store.Store{RootDir: t.TempDir()}
	_, err := s.Put(compose.Build(compose.Options{"strict": true}, nil))
	require.NoError(t, err)
	_, err = s.Put(compose.Build(compose.Options{"nextjs": true}, nil))
	require.NoError(t, err)

	current, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, []preset.Name{"nextjs"}, current.Presets)
}

func TestStore_Missing(t *testing.T) {
	t.Parallel()

	s := &store.Store{RootDir: t.TempDir()}

	_, err := s.Get("abcdef")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get("")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Current()
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	s := &store.Store{RootDir: t.TempDir()}
	r := compose.Build(nil, nil)
	_, err := s.Put(r)
	require.NoError(t, err)

	fp, err := r.Fingerprint()
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	_, err = s.Get(fp)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEnsureGitignore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("node_modules/"), 0o644))

	store.EnsureGitignore(dir)
	store.EnsureGitignore(dir)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "node_modules/\n.lintcomposer/\n", string(data))
}
