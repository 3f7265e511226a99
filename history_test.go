package digitmap

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/bodgit/digitmap/digits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	dir := t.TempDir()

	h, err := NewHistory(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	defer h.Close()

	cfg := DefaultConfig()
	cfg.Input = writeDigits(t, dir, "pi.txt", "3.14159")
	cfg.Output = filepath.Join(dir, "pi")

	g := New(io.Discard, discard(), h)

	results, err := g.Generate(cfg)
	require.NoError(t, err)

	// Running again replaces rather than duplicates
	_, err = g.Generate(cfg)
	require.NoError(t, err)

	records, err := h.Renders()
	require.NoError(t, err)
	require.Len(t, records, len(results))

	for i, r := range records {
		assert.Equal(t, cfg.Input, r.Source)
		assert.Equal(t, 5, r.Digits)
		assert.Equal(t, results[i], r.Result)
	}
}

func TestHistoryAddSource(t *testing.T) {
	h, err := NewHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer h.Close()

	id1, err := h.AddSource("a.txt", digits.Sequence("123"))
	require.NoError(t, err)

	id2, err := h.AddSource("b.txt", digits.Sequence("123"))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	id3, err := h.AddSource("c.txt", digits.Sequence("1234"))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)

	records, err := h.Renders()
	require.NoError(t, err)
	assert.Empty(t, records)
}
