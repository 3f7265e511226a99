/*
Package digitmap is a library for turning long runs of decimal digits, such
as the digits of pi, into images.

Each digit becomes a single pixel colored according to a scheme and the
pixels are laid out row by row in an image with a roughly 16:9 aspect ratio.
One image is written for every scheme.
*/
package digitmap

import (
	"crypto/sha1"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"sync"

	"github.com/bodgit/digitmap/digits"
	"github.com/bodgit/digitmap/layout"
	"github.com/bodgit/digitmap/palette"
	"github.com/bodgit/digitmap/preview"
	"github.com/bodgit/digitmap/render"
)

const (
	// DefaultInput is the digit file read when none is given
	DefaultInput = "phi-1_000_000.txt"
	// DefaultOutput is the base name of the generated images
	DefaultOutput = "phi_1M"
	// DefaultLimit is the maximum number of digits used
	DefaultLimit = 1000000
)

// Config controls a single run.
type Config struct {
	// Input is the path of the digit file
	Input string
	// Output is the base name of each image, the scheme number and
	// extension are appended
	Output string
	// Limit is the maximum number of digits to use, zero for all of them
	Limit  int
	Format render.Format
	// Preview writes an additional thumbnail of each image
	Preview      bool
	PreviewWidth int
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Input:        DefaultInput,
		Output:       DefaultOutput,
		Limit:        DefaultLimit,
		Format:       render.PNG,
		PreviewWidth: preview.DefaultWidth,
	}
}

// Result describes one generated image.
type Result struct {
	Scheme string
	File   string
	Width  int
	Height int
	SHA1   string
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(b)
}

// Generator renders digit files into images.
type Generator struct {
	out     io.Writer
	logger  *log.Logger
	history *History

	// Schemes are the color schemes used, in output order. It defaults to
	// palette.Schemes().
	Schemes []palette.Scheme
}

// New returns a Generator that reports each saved image to out. history may
// be nil in which case nothing is recorded.
func New(out io.Writer, logger *log.Logger, history *History) *Generator {
	return &Generator{
		out:     &syncWriter{w: out},
		logger:  logger,
		history: history,
		Schemes: palette.Schemes(),
	}
}

func writeImage(file string, m *image.Paletted, f render.Format) (sum string, err error) {
	w, err := os.Create(file)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	h := sha1.New()
	if err := render.Encode(io.MultiWriter(w, h), m, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

func outputFile(base string, n int, suffix string, f render.Format) string {
	return fmt.Sprintf("%s_%d%s%s", base, n, suffix, f.Ext())
}

// Generate reads the digits named by cfg and writes one image per scheme.
// It stops at the first error.
func (g *Generator) Generate(cfg Config) ([]Result, error) {
	s, err := digits.ReadFile(cfg.Input, cfg.Limit)
	if err != nil {
		return nil, err
	}

	g.logger.Printf("Read %d digits from \"%s\"\n", len(s), cfg.Input)
	if n := s.Invalid(); n > 0 {
		g.logger.Printf("%d characters in \"%s\" are not digits and will be black\n", n, cfg.Input)
	}

	var source int64
	if g.history != nil {
		if source, err = g.history.AddSource(cfg.Input, s); err != nil {
			return nil, err
		}
	}

	width, height := layout.Plan(len(s))

	results := make([]Result, 0, len(g.Schemes))
	for i, scheme := range g.Schemes {
		file := outputFile(cfg.Output, i+1, "", cfg.Format)

		m := render.Render(s, scheme, width, height)
		sum, err := writeImage(file, m, cfg.Format)
		if err != nil {
			return results, err
		}
		fmt.Fprintf(g.out, "Image saved as %s, Dimensions: %dx%d\n", file, width, height)

		r := Result{
			Scheme: scheme.Name,
			File:   file,
			Width:  width,
			Height: height,
			SHA1:   sum,
		}
		results = append(results, r)

		if g.history != nil {
			if err := g.history.AddRender(source, r); err != nil {
				return results, err
			}
		}

		if cfg.Preview {
			pm := preview.Thumbnail(m, cfg.PreviewWidth)
			file := outputFile(cfg.Output, i+1, "_preview", cfg.Format)
			if err := render.WriteFile(file, pm, cfg.Format); err != nil {
				return results, err
			}
			g.logger.Printf("Preview saved as %s, Dimensions: %dx%d\n", file, pm.Bounds().Dx(), pm.Bounds().Dy())
		}
	}

	return results, nil
}
