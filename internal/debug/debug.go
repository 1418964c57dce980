// Package debug provides a build-tag-gated logging hook used when the reader
// opens a file. It carries no dependency on
// the application's logging stack; production builds compile the hook out
// entirely (see debug_disabled.go).
package debug

// Format writes a formatted trace line when the parquetcore.debug build tag
// is enabled; it is a no-op otherwise. Call sites should treat it as free.
func Format(format string, args ...any) {
	format_(format, args...)
}

// Enabled reports whether debug tracing was compiled into the binary.
func Enabled() bool {
	return enabled
}
