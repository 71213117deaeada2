package bitmap

import (
	"errors"
	"log/slog"
)

const (
	// DefaultInitialBits is the initial bit-length hint of a new BitVector.
	DefaultInitialBits = 10000

	// DefaultMaxBits is the default bit limit of a BitVector: 512 MiB of words.
	DefaultMaxBits = 1 << 32

	// DefaultMaxGrowWords caps the number of words a single growth step appends.
	DefaultMaxGrowWords = 10000

	// DefaultGroupWidth is the number of characters per digit group when
	// memory is preferred over speed.
	DefaultGroupWidth = 2

	// SpeedGroupWidth is the number of characters per digit group when
	// WithPreferSpeed(true) is set.
	SpeedGroupWidth = 4
)

type vectorOptions struct {
	initialBits  uint64
	maxGrowWords int
	maxBits      uint64
}

// VectorOption configures a BitVector.
type VectorOption func(*vectorOptions)

// WithInitialBits sets the initial bit-length hint.
// The vector starts with (bits>>6)+1 words, which is also the first growth unit.
func WithInitialBits(bits uint64) VectorOption {
	return func(o *vectorOptions) {
		o.initialBits = bits
	}
}

// WithMaxGrowWords sets the growth ceiling: the growth unit doubles on every
// growth step but never beyond n words. Values below 1 keep the default.
func WithMaxGrowWords(n int) VectorOption {
	return func(o *vectorOptions) {
		if n < 1 {
			n = DefaultMaxGrowWords
		}
		o.maxGrowWords = n
	}
}

// WithMaxBits sets the bit limit: positions at or beyond n can never be turned
// on. Zero keeps the default.
func WithMaxBits(n uint64) VectorOption {
	return func(o *vectorOptions) {
		if n == 0 {
			n = DefaultMaxBits
		}
		o.maxBits = n
	}
}

func applyVectorOptions(optFns []VectorOption) vectorOptions {
	o := vectorOptions{
		initialBits:  DefaultInitialBits,
		maxGrowWords: DefaultMaxGrowWords,
		maxBits:      DefaultMaxBits,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type options struct {
	encode           EncodeFunc
	preferSpeed      bool
	groupWidth       int
	vectorOptions    []VectorOption
	metricsCollector MetricsCollector
	logger           *Logger

	// errs collects option validation failures; New reports them together.
	errs []error
}

// Option configures a CompoundBitmap.
type Option func(*options)

// WithEncoder sets the function that turns raw strings into digit strings.
// Passing nil makes New fail with ErrNilEncoder.
//
// Example:
//
//	cb, err := bitmap.New(bitmap.WithEncoder(func(s string) (string, int, error) {
//	    var b strings.Builder
//	    for i := 0; i < len(s); i++ {
//	        fmt.Fprintf(&b, "%03d", s[i])
//	    }
//	    return b.String(), 3, nil
//	}))
func WithEncoder(fn EncodeFunc) Option {
	return func(o *options) {
		if fn == nil {
			o.errs = append(o.errs, ErrNilEncoder)
			return
		}
		o.encode = fn
	}
}

// WithPreferSpeed selects the default group width.
//
// When true, four characters make up one group: fewer but bigger bitmaps,
// faster lookups, much higher memory use for long strings.
// When false (the default), two characters make up one group.
func WithPreferSpeed(preferSpeed bool) Option {
	return func(o *options) {
		o.preferSpeed = preferSpeed
	}
}

// WithGroupWidth overrides the number of characters per group.
// Zero keeps the default derived from WithPreferSpeed; negative values make
// New fail with an *InvalidGroupWidthError.
func WithGroupWidth(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.errs = append(o.errs, &InvalidGroupWidthError{Width: n})
			return
		}
		o.groupWidth = n
	}
}

// WithVectorOptions configures every BitVector the compound bitmap creates.
func WithVectorOptions(optFns ...VectorOption) Option {
	return func(o *options) {
		o.vectorOptions = append(o.vectorOptions, optFns...)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitmap.BasicMetricsCollector{}
//	cb, _ := bitmap.New(bitmap.WithMetricsCollector(metrics))
//	// ... use cb ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Hits: %d\n", stats.QueryCount, stats.QueryHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitmap.NewJSONLogger(slog.LevelDebug)
//	cb, _ := bitmap.New(bitmap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		encode:           DefaultEncoder,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if len(o.errs) > 0 {
		return o, errors.Join(o.errs...)
	}

	if o.groupWidth == 0 {
		o.groupWidth = DefaultGroupWidth
		if o.preferSpeed {
			o.groupWidth = SpeedGroupWidth
		}
	}
	return o, nil
}
