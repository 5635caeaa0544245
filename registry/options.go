package registry

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/safealloc/internal/logger"
	"github.com/joshuapare/safealloc/rawmem"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvBackend = "SAFEALLOC_BACKEND" // mmap or heap
	EnvLimit   = "SAFEALLOC_LIMIT"   // byte budget, 0 for none
)

// Options configures a Registry.
type Options struct {
	// Allocator supplies and reclaims the raw memory.
	// Default: rawmem.NewMmap()
	Allocator rawmem.Allocator

	// Limit caps the number of requested bytes tracked at once by wrapping
	// Allocator in rawmem.Limited. A zero-size Acquire spends 1 byte of the
	// budget (its backing byte) while adding 0 to Stats.LiveBytes.
	// Set to 0 for no cap.
	// Default: 0
	Limit int64

	// Exit terminates the process. Tests replace it with a recorder.
	// Default: os.Exit
	Exit func(code int)

	// Logger receives diagnostics (misses, free failures, teardowns).
	// Default: the package logger, which discards output unless enabled
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Allocator == nil {
		o.Allocator = rawmem.NewMmap()
	}
	if o.Limit > 0 {
		o.Allocator = rawmem.NewLimited(o.Allocator, o.Limit)
	}
	if o.Exit == nil {
		o.Exit = os.Exit
	}
	if o.Logger == nil {
		o.Logger = logger.L
	}
	return o
}

// OptionsFromEnv builds Options from SAFEALLOC_BACKEND and SAFEALLOC_LIMIT
// and enables logging from SAFEALLOC_LOG. Unrecognized values are logged and
// ignored.
func OptionsFromEnv() Options {
	if err := logger.InitFromEnv(); err != nil {
		logger.Warn("ignoring log level", "var", logger.EnvVar, "err", err)
	}

	var opts Options
	switch v := strings.ToLower(os.Getenv(EnvBackend)); v {
	case "", "mmap":
		opts.Allocator = rawmem.NewMmap()
	case "heap":
		opts.Allocator = rawmem.NewHeap()
	default:
		logger.Warn("ignoring unknown backend", "var", EnvBackend, "value", v)
	}

	if v := os.Getenv(EnvLimit); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			logger.Warn("ignoring invalid limit", "var", EnvLimit, "value", v)
		} else {
			opts.Limit = n
		}
	}
	return opts
}
