//go:build (!cgo || fcdlopen) && !windows

package sys

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
)

// Linkage names the symbol resolution mode compiled in.
const Linkage = "dlopen"

func load() (*Lib, error) {
	name := LibraryName()
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: dlopen %s: %v", ErrNotLoaded, name, err)
	}
	tracer().Infof("opened %s", name)
	lib := &Lib{}
	v := reflect.ValueOf(lib).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		sym := "Fc" + field.Name
		if _, err := purego.Dlsym(handle, sym); err != nil {
			if field.Tag.Get("fc") == "optional" {
				tracer().Infof("%s does not export optional %s", name, sym)
				continue
			}
			return nil, fmt.Errorf("%w: %s lacks symbol %s", ErrNotLoaded, name, sym)
		}
		purego.RegisterLibFunc(v.Field(i).Addr().Interface(), handle, sym)
	}
	if err := bindFloatCalls(lib, handle); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotLoaded, name, err)
	}
	return lib, nil
}
