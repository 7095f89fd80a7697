package fontconfig

import "github.com/npillmayer/fontconfig/sys"

// ObjectSet is an owned set of object names. It selects which objects
// FontList and Filter copy into their results.
type ObjectSet struct {
	os *sys.ObjectSet
}

// NewObjectSet creates an empty object set.
func NewObjectSet() *ObjectSet {
	os := fc().ObjectSetCreate()
	mustHandle(os == nil, "object set")
	return &ObjectSet{os}
}

// BuildObjectSet creates an object set containing names.
func BuildObjectSet(names ...string) *ObjectSet {
	os := NewObjectSet()
	for _, name := range names {
		os.Add(name)
	}
	return os
}

// Add adds an object name.
func (os *ObjectSet) Add(name string) {
	must(fc().ObjectSetAdd(os.raw(), name), "adding %q to object set", name)
}

// Destroy releases the set. It is safe to call Destroy more than once.
func (os *ObjectSet) Destroy() {
	if os == nil || os.os == nil {
		return
	}
	fc().ObjectSetDestroy(os.os)
	os.os = nil
}

func (os *ObjectSet) raw() *sys.ObjectSet {
	if os == nil || os.os == nil {
		panic("fontconfig: use of nil or destroyed object set")
	}
	return os.os
}

// rawOrNil maps a nil set to NULL, which fontconfig reads as "all objects".
func (os *ObjectSet) rawOrNil() *sys.ObjectSet {
	if os == nil {
		return nil
	}
	return os.raw()
}
