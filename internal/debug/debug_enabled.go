//go:build parquetcore.debug

package debug

import (
	"fmt"
	"os"
)

const enabled = true

func format_(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "parquetcore: "+format+"\n", args...)
}
