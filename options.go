package sysprim

import "time"

// Strategy selects the facility that backs an aligned buffer.
type Strategy uint8

const (
	// StrategyAuto picks pages for requests at or above the mmap threshold
	// and the heap for everything else.
	StrategyAuto Strategy = iota
	// StrategyHeap over-allocates on the Go heap and shifts to the first
	// aligned address.
	StrategyHeap
	// StrategyPages uses an anonymous mapping from the operating system.
	StrategyPages
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyHeap:
		return "heap"
	case StrategyPages:
		return "pages"
	default:
		return "unknown"
	}
}

const (
	// misuseInterval and misuseBurst bound how often misuse reaches the log.
	misuseInterval = time.Second
	misuseBurst    = 10
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	memoryLimit      int64
	mmapThreshold    int
	strategy         Strategy
	defaultAlignment int
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		strategy:         StrategyAuto,
		defaultAlignment: SSEInstructionAlignment,
	}
}

// Option configures an Allocator.
type Option func(*options)

// WithLogger sets the logger for page mappings and misuse reports.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics sink.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryLimit caps the usable bytes outstanding at once. Requests that
// would exceed it fail with ErrOutOfMemory. Zero or negative means no limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMmapThreshold makes StrategyAuto map requests of at least bytes
// directly from the operating system. Zero or negative disables mapping.
//
// Mapped buffers do not burden the garbage collector and go back to the
// operating system as soon as they are freed, at the cost of a system call
// per allocation and page-granular footprint.
func WithMmapThreshold(bytes int) Option {
	return func(o *options) {
		o.mmapThreshold = bytes
	}
}

// WithStrategy forces a facility for every allocation.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithDefaultAlignment replaces SSEInstructionAlignment as the alignment used
// when Alloc is called with alignment 0. Pass PreferredAlignment() to match
// the widest vector unit of the executing CPU.
func WithDefaultAlignment(alignment int) Option {
	return func(o *options) {
		o.defaultAlignment = alignment
	}
}
