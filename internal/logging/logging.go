package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes
type Options struct {
	File       string // empty logs to stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Verbose    bool // when false and no file is set, logs are discarded
}

// New builds the application logger. With a file configured, output is
// rotated by lumberjack. The returned closer must be closed on exit.
func New(opts Options) (*log.Logger, io.Closer) {
	flags := log.LstdFlags | log.Lmicroseconds

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		return log.New(rotator, "", flags), rotator
	}

	if opts.Verbose {
		return log.New(os.Stderr, "", flags), nopCloser{}
	}
	return log.New(io.Discard, "", flags), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
