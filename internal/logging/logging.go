// Package logging builds the zerolog logger used by worldclock.
//
// Every logger writes JSON to a rotating file under ~/.worldclock/logs.
// Console output goes to stderr and is turned off while the clock TUI owns
// the terminal, since any stray line would corrupt the screen.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
)

// Options selects level and outputs.
type Options struct {
	Verbose bool
	Quiet   bool
	// Console enables stderr output.
	Console bool
	// LogFile is the rotating log file path. Empty disables the file.
	LogFile string
}

//nolint:gochecknoglobals // One-time zerolog configuration
var (
	configureOnce sync.Once
	globalMu      sync.Mutex
)

// configureGlobals sets zerolog global field names. Safe for concurrent use.
func configureGlobals() {
	configureOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.MessageFieldName = "event"
	})
}

// Init builds the logger described by opts. The returned closer flushes and
// closes the log file; it is never nil.
//
// Log levels:
//   - Verbose: debug
//   - Quiet: warn
//   - default: info
//
// A log file that cannot be created is not fatal: the logger continues with
// console output only and the error is returned alongside it.
func Init(opts Options) (zerolog.Logger, io.Closer, error) {
	configureGlobals()

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, consoleWriter())
	}

	closer := io.Closer(nopCloser{})
	var fileErr error
	if opts.LogFile != "" {
		lj, err := newFileWriter(opts.LogFile)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, lj)
			closer = lj
		}
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}

	logger := build(w, opts)
	setGlobal(logger)
	return logger, closer, fileErr
}

// InitWithWriter builds a logger that writes JSON to w. Tests use it.
func InitWithWriter(opts Options, w io.Writer) zerolog.Logger {
	configureGlobals()
	logger := build(w, opts)
	setGlobal(logger)
	return logger
}

func build(w io.Writer, opts Options) zerolog.Logger {
	return zerolog.New(w).Level(Level(opts.Verbose, opts.Quiet)).With().Timestamp().Logger()
}

// setGlobal points the zerolog/log package logger at logger.
func setGlobal(logger zerolog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	log.Logger = logger
}

// Level determines the log level from the verbosity flags.
func Level(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// consoleWriter uses the human readable writer on a color TTY and JSON
// otherwise.
func consoleWriter() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// newFileWriter creates the rotating log file writer.
func newFileWriter(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
