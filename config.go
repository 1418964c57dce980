package parquetcore

// Default tuning values, following the teacher's config.go convention of
// naming every default a reader ships with.
const (
	DefaultBufferSize    = 1 * 1024 * 1024
	DefaultPrefetchFiles = 2
	DefaultFleetWorkers  = 4
)

// ReaderConfig carries tuning knobs for Open, built the way the teacher's
// Config/*Option pair is: a plain struct plus functional options, rather than
// a builder type.
type ReaderConfig struct {
	// BufferSize is stored on the config only; no byte source reads it, so
	// neither io.ReaderAt- nor mmap-backed sources change with it.
	BufferSize int
	// PrefetchFiles is stored on the config only; NewFileFleet does not read
	// it and takes its prefetch window as an argument instead.
	PrefetchFiles int
	// Columns restricts decoding to these leaf column indices; nil (the
	// default) projects every column in the schema.
	Columns []int
}

// DefaultReaderConfig returns a ReaderConfig initialized with this module's
// defaults.
func DefaultReaderConfig() *ReaderConfig {
	return &ReaderConfig{
		BufferSize:    DefaultBufferSize,
		PrefetchFiles: DefaultPrefetchFiles,
	}
}

// Option configures a ReaderConfig. Options compose the way the teacher's
// ReaderOption values do, applied left to right over the defaults.
type Option func(*ReaderConfig)

// WithBufferSize sets ReaderConfig.BufferSize.
func WithBufferSize(n int) Option {
	return func(c *ReaderConfig) { c.BufferSize = n }
}

// WithPrefetchFiles sets ReaderConfig.PrefetchFiles.
func WithPrefetchFiles(n int) Option {
	return func(c *ReaderConfig) { c.PrefetchFiles = n }
}

// WithColumns restricts a reader to the given leaf column indices.
func WithColumns(columns ...int) Option {
	return func(c *ReaderConfig) { c.Columns = columns }
}

func newReaderConfig(opts []Option) *ReaderConfig {
	cfg := DefaultReaderConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
