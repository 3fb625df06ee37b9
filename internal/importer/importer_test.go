package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FindsPDFs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "permata_sep_2025.pdf"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "permata_aug_2025.PDF"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "permata_aug_2025.PDF", files[0].Name)
	assert.Equal(t, "permata_sep_2025.pdf", files[1].Name)
	assert.Equal(t, int64(4), files[1].Size)
	assert.Equal(t, filepath.Join(dir, "permata_sep_2025.pdf"), files[1].Path)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, ProcessedDir)
	require.NoError(t, os.MkdirAll(processed, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.pdf"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "old.pdf"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "new.pdf", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("data"), 0o644))

	paths, err := Resolve([]string{"single.pdf", dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"single.pdf", filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")}, paths)
}

func TestResolve_EmptyDir(t *testing.T) {
	_, err := Resolve([]string{t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no PDF files")
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "stmt.pdf")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	dst, err := MarkProcessed(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProcessedDir, "stmt.pdf"), dst)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(dst)
	assert.NoError(t, err)
}

func TestMarkProcessed_Missing(t *testing.T) {
	_, err := MarkProcessed(filepath.Join(t.TempDir(), "gone.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moving gone.pdf")
}
