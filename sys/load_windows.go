//go:build windows && (!cgo || fcdlopen)

package sys

import "fmt"

// Linkage names the symbol resolution mode compiled in.
const Linkage = "dlopen"

func load() (*Lib, error) {
	return nil, fmt.Errorf("%w: run-time loading is not supported on windows", ErrNotLoaded)
}
