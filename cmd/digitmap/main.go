package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/digitmap"
	"github.com/bodgit/digitmap/palette"
	"github.com/bodgit/digitmap/render"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitError(err error) error {
	return cli.NewExitError(fmt.Sprintf("Error: %v", err), 1)
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}
	return logger
}

func openHistory(c *cli.Context) (*digitmap.History, error) {
	if c.String("db") == "" {
		return nil, nil
	}
	return digitmap.NewHistory(c.String("db"))
}

func config(c *cli.Context) (digitmap.Config, error) {
	cfg := digitmap.DefaultConfig()
	cfg.Input = c.String("input")
	cfg.Output = c.String("output")
	cfg.Limit = c.Int("limit")
	cfg.Preview = c.Bool("preview")
	cfg.PreviewWidth = c.Int("preview-width")

	f, err := render.ParseFormat(c.String("format"))
	if err != nil {
		return cfg, err
	}
	cfg.Format = f

	return cfg, nil
}

// run sets up a generator from the global flags and calls fn with it
func run(c *cli.Context, fn func(*digitmap.Generator, digitmap.Config) error) error {
	cfg, err := config(c)
	if err != nil {
		return exitError(err)
	}

	h, err := openHistory(c)
	if err != nil {
		return exitError(err)
	}
	if h != nil {
		defer h.Close()
	}

	g := digitmap.New(c.App.Writer, newLogger(c), h)
	if err := fn(g, cfg); err != nil {
		return exitError(err)
	}

	return nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Name = "digitmap"
	app.Usage = "Render digits of a number as images"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Value:   digitmap.DefaultInput,
			Usage:   "file containing the digits",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   digitmap.DefaultOutput,
			Usage:   "base name of the generated images",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Value:   digitmap.DefaultLimit,
			Usage:   "maximum number of digits to use",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   render.PNG.String(),
			Usage:   "image format; png, bmp, tiff or gif",
		},
		&cli.BoolFlag{
			Name:  "preview",
			Usage: "also write a thumbnail of each image",
		},
		&cli.IntFlag{
			Name:  "preview-width",
			Value: digitmap.DefaultConfig().PreviewWidth,
			Usage: "maximum width of each thumbnail",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"DIGITMAP_DB"},
			Usage:   "path to history database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		return run(c, func(g *digitmap.Generator, cfg digitmap.Config) error {
			_, err := g.Generate(cfg)
			return err
		})
	}

	app.Commands = []*cli.Command{
		{
			Name:        "batch",
			Usage:       "Render every .txt file in a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return run(c, func(g *digitmap.Generator, cfg digitmap.Config) error {
					return g.Batch(c.Args().First(), cfg)
				})
			},
		},
		{
			Name:        "history",
			Usage:       "List previously generated images",
			Description: "",
			Action: func(c *cli.Context) error {
				h, err := openHistory(c)
				if err != nil {
					return exitError(err)
				}
				if h == nil {
					return exitError(errors.New("no history database, use --db"))
				}
				defer h.Close()

				records, err := h.Renders()
				if err != nil {
					return exitError(err)
				}

				for _, r := range records {
					fmt.Fprintf(c.App.Writer, "%s\t%s\t%d\t%s\t%dx%d\t%s\n", r.File, r.Scheme, r.Digits, r.Source, r.Width, r.Height, r.SHA1)
				}

				return nil
			},
		},
		{
			Name:        "palettes",
			Usage:       "Show the color schemes",
			Description: "",
			Action: func(c *cli.Context) error {
				for i, s := range palette.Schemes() {
					fmt.Fprintf(c.App.Writer, "%d %-10s", i+1, s.Name)
					for d := '0'; d <= '9'; d++ {
						fmt.Fprintf(c.App.Writer, " %c:%s", d, s.Hex(d))
					}
					fmt.Fprintln(c.App.Writer)
				}
				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
