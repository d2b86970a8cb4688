package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/bitpress/lzss"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

var log = logrus.New()

// codecFlags returns the flags shared by every command. Encoder and
// decoder must be run with the same values; the file format does not
// record them.
func codecFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "offset-bits",
			Usage: "Width of the back-reference distance field",
			Value: 10,
		},
		cli.IntFlag{
			Name:  "length-bits",
			Usage: "Width of the back-reference length field",
			Value: 6,
		},
		cli.IntFlag{
			Name:  "min-length",
			Usage: "Shortest run encoded as a back-reference",
			Value: 2,
		},
		cli.BoolFlag{
			Name:  "fast",
			Usage: "Use the hash-based match finder instead of the exhaustive one",
		},
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "lzss"
	app.Usage = "compress, decompress and verify files with bit-packed LZSS"
	app.ArgsUsage = "<file>"
	app.Flags = codecFlags()
	app.Action = verify
	app.Commands = []cli.Command{
		{
			Name:      "pack",
			Usage:     "Compress a file to <file>.lzss",
			ArgsUsage: "<file>",
			Flags:     codecFlags(),
			Action:    pack,
		},
		{
			Name:      "unpack",
			Usage:     "Decompress a <file>.lzss back to <file>",
			ArgsUsage: "<file>.lzss",
			Flags:     codecFlags(),
			Action:    unpack,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func makeConfig(ctx *cli.Context) (lzss.Config, error) {
	return lzss.NewConfig(
		uint8(ctx.Int("offset-bits")),
		uint8(ctx.Int("length-bits")),
		uint32(ctx.Int("min-length")),
	)
}

func encode(ctx *cli.Context, cfg lzss.Config, data []byte) []byte {
	if ctx.Bool("fast") {
		return cfg.EncodeWith(lzss.NewHashMatchFinder(cfg), data)
	}
	return cfg.Encode(data)
}

func inputFile(ctx *cli.Context) (string, []byte, error) {
	if ctx.NArg() != 1 {
		return "", nil, fmt.Errorf("expecting exactly one file argument, got %d", ctx.NArg())
	}
	path := ctx.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, data, nil
}

// verify round-trips the file through encode and decode and checks that
// the result matches the original byte for byte.
func verify(ctx *cli.Context) error {
	path, data, err := inputFile(ctx)
	if err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	compressed := encode(ctx, cfg, data)
	decoded, err := cfg.Decode(compressed)
	if err != nil {
		return err
	}
	if !bytes.Equal(decoded, data) {
		return fmt.Errorf("verification failed: decoded output differs from %s", path)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"in":    len(data),
		"out":   len(compressed),
		"ratio": ratio(len(data), len(compressed)),
	}).Info("round trip ok")
	return nil
}

func pack(ctx *cli.Context) error {
	path, data, err := inputFile(ctx)
	if err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	compressed := encode(ctx, cfg, data)
	out := path + ".lzss"
	if err := os.WriteFile(out, compressed, 0o644); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":  out,
		"in":    len(data),
		"out":   len(compressed),
		"ratio": ratio(len(data), len(compressed)),
	}).Info("packed")
	return nil
}

func unpack(ctx *cli.Context) error {
	path, data, err := inputFile(ctx)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".lzss") {
		return fmt.Errorf("expecting a .lzss file, got %s", path)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	decoded, err := cfg.Decode(data)
	if err != nil {
		return err
	}
	out := strings.TrimSuffix(path, ".lzss")
	if err := os.WriteFile(out, decoded, 0o644); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file": out,
		"in":   len(data),
		"out":  len(decoded),
	}).Info("unpacked")
	return nil
}

func ratio(in, out int) string {
	if out == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", float64(in)/float64(out))
}
