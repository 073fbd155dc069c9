// Command fileinfo opens, reads and closes a sample in-memory file and
// prints a summary of it.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lesiw.io/file"
)

var sample = []byte{114, 117, 115, 116, 33}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	f := file.NewWithData("f1.txt", sample)
	if err := run(context.Background(), os.Stdout, cfg, f); err != nil {
		log.Fatal().Err(err).Str("file", f.Name()).Msg("Failed to read file")
	}
}

func run(ctx context.Context, w io.Writer, cfg config, f *file.File) error {
	ctx = file.WithFaults(ctx, cfg.Faults)

	err := retry(ctx, cfg.Retries, "open", f.Open)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	if err != nil {
		return errors.Wrap(err, "failed to read file")
	}

	err = retry(ctx, cfg.Retries, "close", f.Close)
	if err != nil {
		return errors.Wrap(err, "failed to close file")
	}

	_, err = fmt.Fprintf(w, "%#v\n%v\n%s is %d bytes long\n%s\n",
		f, f, f.Name(), n, lossyString(buf.Bytes()))
	return errors.Wrap(err, "failed to write summary")
}

// retry calls fn until it succeeds, fails with a non-transient error, or
// has been retried attempts times.
func retry(
	ctx context.Context, attempts int, op string,
	fn func(context.Context) error,
) error {
	var err error
	for i := range attempts + 1 {
		if err = fn(ctx); err == nil || !file.Transient(err) {
			return err
		}
		log.Debug().Err(err).Str("op", op).Int("attempt", i+1).
			Msg("Transient fault")
	}
	return err
}
