// Command yaz0dec extracts every Yaz0 block embedded in a file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"

	"github.com/woozymasta/yaz0"
	"github.com/woozymasta/yaz0/internal/sink"
)

type config struct {
	src         string
	outDir      string
	codec       sink.Codec
	jobs        int
	skipCorrupt bool
	maxSize     uint64
	verbose     bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("yaz0dec: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		var be *yaz0.BlockError
		if errors.As(err, &be) {
			log.Printf("block %d at offset 0x%X failed", be.Index, be.Offset)
		}
		log.Print(err)
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("yaz0dec", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: yaz0dec [flags] file")
		fs.PrintDefaults()
	}

	cfg := &config{}
	var codec string
	fs.StringVar(&cfg.outDir, "o", ".", "output directory")
	fs.StringVar(&codec, "codec", string(sink.CodecNone), "store blocks as none, zstd, lz4, snappy, brotli or gzip")
	fs.IntVar(&cfg.jobs, "j", runtime.GOMAXPROCS(0), "blocks decoded in parallel")
	fs.BoolVar(&cfg.skipCorrupt, "skip-corrupt", false, "skip blocks that fail to decode instead of aborting")
	fs.Uint64Var(&cfg.maxSize, "max-size", 0, "reject blocks declaring more decoded bytes than this (0 = no limit)")
	fs.BoolVar(&cfg.verbose, "v", false, "report every block")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one input file")
	}
	cfg.src = fs.Arg(0)

	c, err := sink.ParseCodec(codec)
	if err != nil {
		return nil, err
	}
	cfg.codec = c

	if cfg.maxSize > math.MaxUint32 {
		return nil, fmt.Errorf("max-size %d does not fit in 32 bits", cfg.maxSize)
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.src)
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("input %s: 0x%X bytes", cfg.src, len(data))
	}

	opts := &yaz0.Options{
		Concurrency:  cfg.jobs,
		SkipCorrupt:  cfg.skipCorrupt,
		MaxBlockSize: uint32(cfg.maxSize), // #nosec G115 -- range checked in parseFlags
		OnSkip: func(e *yaz0.BlockError) {
			log.Printf("skipping %v", e)
		},
	}

	results, err := yaz0.DecodeAll(ctx, data, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return err
	}

	namer := sink.NewNamer(cfg.src, cfg.outDir, cfg.codec)
	for _, r := range results {
		path := namer.Name(r.Index)
		if cfg.verbose {
			log.Printf("writing %s: 0x%X bytes from 0x%X source bytes at 0x%X, xxh32 %08x",
				path, len(r.Data), r.CompressedSize(), r.Offset, r.Digest)
		}
		if err := sink.WriteFile(path, r.Data, cfg.codec); err != nil {
			return err
		}
	}

	log.Printf("%s: %d block(s) extracted", cfg.src, len(results))

	return nil
}
