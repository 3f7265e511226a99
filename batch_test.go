package digitmap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/digitmap/digits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	hidden := filepath.Join(dir, ".hidden")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.Mkdir(hidden, 0o755))

	writeDigits(t, dir, "pi.txt", "3.14159")
	writeDigits(t, dir, "notes.md", "1.234")
	writeDigits(t, sub, "e.TXT", "2.71828")
	writeDigits(t, hidden, "phi.txt", "1.618")

	out := new(bytes.Buffer)
	require.NoError(t, New(out, discard(), nil).Batch(dir, DefaultConfig()))

	for i := 1; i <= 4; i++ {
		n := string(rune('0' + i))
		assert.FileExists(t, filepath.Join(dir, "pi_"+n+".png"))
		assert.FileExists(t, filepath.Join(sub, "e_"+n+".png"))
		assert.NoFileExists(t, filepath.Join(dir, "notes_"+n+".png"))
		assert.NoFileExists(t, filepath.Join(hidden, "phi_"+n+".png"))
	}

	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 8)
}

func TestBatchWriteError(t *testing.T) {
	dir := t.TempDir()
	writeDigits(t, dir, "pi.txt", "3.14159")
	writeDigits(t, dir, "e.txt", "2.71828")

	// A directory where the first image should go can't be created as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pi_1.png"), 0o755))

	err := New(new(bytes.Buffer), discard(), nil).Batch(dir, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pi_1.png")
	assert.NoFileExists(t, filepath.Join(dir, "pi_2.png"))
}

func TestBatchError(t *testing.T) {
	// Root ignores permissions so there is nothing to test
	if os.Geteuid() == 0 {
		t.Skip("running as root")
	}

	dir := t.TempDir()
	writeDigits(t, dir, "pi.txt", "3.14159")

	require.NoError(t, os.Chmod(dir, 0o555))
	defer os.Chmod(dir, 0o755)

	err := New(new(bytes.Buffer), discard(), nil).Batch(dir, DefaultConfig())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, digits.ErrNotFound)
}
