//go:build !parquetcore.debug

package debug

const enabled = false

func format_(format string, args ...any) {}
