package digits

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ErrNotFound is returned when the input file does not exist
var ErrNotFound = errors.New("digits: file not found")

const separator = '.'

// NotFoundError records the path of a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The file '%s' was not found.", e.Path)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func extract(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if i := bytes.IndexByte(b, separator); i >= 0 {
		b = b[i+1:]
		// Only the run between the first and any second point is used
		if j := bytes.IndexByte(b, separator); j >= 0 {
			b = b[:j]
		}
	}
	return b
}

// Read reads all of r and returns at most limit characters from it. The limit
// counts characters, not bytes.
func Read(r io.Reader, limit int) (Sequence, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b = extract(b)

	n, i := 0, 0
	for i < len(b) && n < limit {
		_, size := utf8.DecodeRune(b[i:])
		i += size
		n++
	}

	return Sequence(bytes.Runes(b[:i])), nil
}

// ReadFile opens the file at path and returns at most limit digits from it.
// If the file does not exist the returned error matches ErrNotFound.
func ReadFile(path string, limit int) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	return Read(f, limit)
}
