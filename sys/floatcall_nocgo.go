//go:build !cgo && !windows

package sys

// bindFloatCalls is a no-op without cgo: purego's own call path passes
// floating point arguments in registers.
func bindFloatCalls(lib *Lib, handle uintptr) error {
	return nil
}
