package maxtri

import "go.uber.org/zap"

// Defaults for a Counter built without options.
const (
	// DefaultIncludeCache enables the symmetry cache.
	DefaultIncludeCache = true

	// DefaultCacheCapacity keeps every shape (no eviction).
	DefaultCacheCapacity = 0
)

const panicCacheCapacityInvalid = "maxtri: WithCacheCapacity: capacity must be non-negative"

// Option configures a Counter.
type Option func(*options)

type options struct {
	includeCache  bool
	cacheCapacity int
	logger        *zap.Logger
}

func defaultOptions() options {
	return options{
		includeCache:  DefaultIncludeCache,
		cacheCapacity: DefaultCacheCapacity,
		logger:        zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCache toggles the symmetry cache. Results are identical either way; the
// cache only changes how much work is done.
func WithCache(include bool) Option {
	return func(o *options) { o.includeCache = include }
}

// WithCacheCapacity bounds the number of shapes kept by the cache of one
// reference triangle. 0 means unbounded. Panics on negative values.
func WithCacheCapacity(capacity int) Option {
	if capacity < 0 {
		panic(panicCacheCapacityInvalid)
	}

	return func(o *options) { o.cacheCapacity = capacity }
}

// WithLogger sets the logger. A nil logger is replaced by a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
