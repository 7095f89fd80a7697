package fontconfig

import (
	"sync"

	"github.com/npillmayer/fontconfig/sys"
)

var (
	libLock     sync.Mutex
	libOverride *sys.Lib
)

// library returns the fontconfig function table, loading it on first use.
func library() (*sys.Lib, error) {
	libLock.Lock()
	lib := libOverride
	libLock.Unlock()
	if lib != nil {
		return lib, nil
	}
	lib, err := sys.Load()
	if err != nil {
		return nil, WrapError(err, ELIBRARY, "cannot load fontconfig (%s linkage)", sys.Linkage)
	}
	return lib, nil
}

// fc returns the function table for operations on existing handles or for
// constructors. Handles cannot exist without a loaded library; constructors
// called without one panic.
func fc() *sys.Lib {
	lib, err := library()
	if err != nil {
		tracer().Errorf(err.Error())
		panic(err)
	}
	return lib
}

// Available reports whether the fontconfig library can be used. It returns
// an error with code ELIBRARY if not.
func Available() error {
	_, err := library()
	return err
}

// Linkage tells how the fontconfig symbols are resolved: "static" for cgo
// builds, "dlopen" otherwise.
func Linkage() string {
	return sys.Linkage
}

// useLibrary replaces the function table until restore is called.
func useLibrary(lib *sys.Lib) (restore func()) {
	libLock.Lock()
	prev := libOverride
	libOverride = lib
	libLock.Unlock()
	return func() {
		libLock.Lock()
		libOverride = prev
		libLock.Unlock()
	}
}
