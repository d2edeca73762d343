package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/bodgit/fontworker"
	"github.com/bodgit/fontworker/colors"
	"github.com/bodgit/fontworker/raster"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

const offsetsDescription = `Each image has a companion offsets file of 17 lines. The first line holds the
5 header bytes of the font in decimal, separated by spaces. Each of the other
16 lines holds 16 glyphs, laid out as in the image and separated by tabs. A
glyph is written as the space before it and the space after it, separated by
a single space, followed by a description of the glyph.`

func description() string {
	return fmt.Sprintf(`Export a Heroes of Might and Magic FNT font to an image and an offsets file,
or import them back to a font.

Colors are one of %s or 6 hexadecimal digits giving an RGB value.

Images are written as %s, chosen by the file extension.

%s`, strings.Join(colors.Names(), ", "), strings.Join(raster.Formats(), ", "), offsetsDescription)
}

func newFontWorker(c *cli.Context) (*fontworker.FontWorker, error) {
	var cs [4]colors.Color
	for i, name := range []string{"bg", "fg", "shadow", "outline"} {
		color, err := colors.ForName(c.String(name))
		if err != nil {
			return nil, err
		}
		cs[i] = color
	}

	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return fontworker.New(colors.NewSet(cs[0], cs[1], cs[2], cs[3]), logger), nil
}

func main() {
	app := cli.NewApp()

	app.Name = "fontworker"
	app.Usage = "Heroes of Might and Magic FNT font editing utility"
	app.Description = description()
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "fg",
			EnvVars: []string{"FONTWORKER_FG"},
			Value:   "red",
			Usage:   "foreground color",
		},
		&cli.StringFlag{
			Name:    "bg",
			EnvVars: []string{"FONTWORKER_BG"},
			Value:   "white",
			Usage:   "background color",
		},
		&cli.StringFlag{
			Name:    "shadow",
			EnvVars: []string{"FONTWORKER_SHADOW"},
			Value:   "black",
			Usage:   "text shadow color",
		},
		&cli.StringFlag{
			Name:    "outline",
			EnvVars: []string{"FONTWORKER_OUTLINE"},
			Value:   "blue",
			Usage:   "glyph outline color",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "export",
			Usage:       "Export a font to an image and offsets file",
			Description: "The image defaults to the font file name with a .png extension and the\noffsets to the image file name with a .txt extension.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "font",
					Aliases:  []string{"f"},
					Usage:    "font file",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "image",
					Aliases: []string{"i"},
					Usage:   "image file",
				},
				&cli.StringFlag{
					Name:    "offsets",
					Aliases: []string{"o"},
					Usage:   "offsets file",
				},
			},
			Action: func(c *cli.Context) error {
				fw, err := newFontWorker(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := fw.Export(c.String("font"), c.String("image"), c.String("offsets")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import an image and offsets file to a font",
			Description: "The font defaults to the image file name with a .fnt extension and the\noffsets to the image file name with a .txt extension.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "font",
					Aliases: []string{"f"},
					Usage:   "font file",
				},
				&cli.StringFlag{
					Name:     "image",
					Aliases:  []string{"i"},
					Usage:    "image file",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "offsets",
					Aliases: []string{"o"},
					Usage:   "offsets file",
				},
			},
			Action: func(c *cli.Context) error {
				fw, err := newFontWorker(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := fw.Import(c.String("font"), c.String("image"), c.String("offsets")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Export every font found in a directory",
			Description: "Each font is exported to a .png image and a .txt offsets file next to it.\nHidden files and directories are skipped.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: fontworker.DefaultWorkers,
					Usage: "number of fonts to export at once",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				fw, err := newFontWorker(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()

				if err := fw.ExportDir(ctx, c.Args().First(), c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
