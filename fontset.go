package fontconfig

import (
	"fmt"

	"github.com/npillmayer/fontconfig/sys"
)

// FontSetRef is a borrowed font set, e.g. the configuration's own list of
// fonts.
type FontSetRef struct {
	s *sys.FontSet
}

// FontSet is an owned, growable list of patterns. Patterns pushed into a
// font set are owned by it. Clients must call Destroy when done.
type FontSet struct {
	FontSetRef
}

func ownFontSet(s *sys.FontSet) *FontSet {
	mustHandle(s == nil, "font set")
	return &FontSet{FontSetRef{s}}
}

// NewFontSet creates an empty font set.
func NewFontSet() *FontSet {
	return ownFontSet(fc().FontSetCreate())
}

// Destroy releases the font set and every pattern in it. It is safe to call
// Destroy more than once.
func (fs *FontSet) Destroy() {
	if fs == nil || fs.s == nil {
		return
	}
	fc().FontSetDestroy(fs.s)
	fs.s = nil
}

// Ref returns a borrowed view of fs.
func (fs *FontSet) Ref() FontSetRef {
	return fs.FontSetRef
}

func (fs *FontSet) raw() *sys.FontSet {
	if fs == nil || fs.s == nil {
		panic("fontconfig: use of nil or destroyed font set")
	}
	return fs.s
}

// Push appends p to the set. The set takes ownership: p is invalidated and
// must not be used or destroyed afterwards.
func (fs *FontSet) Push(p *Pattern) {
	must(fc().FontSetAdd(fs.raw(), p.raw()), "pushing pattern to font set")
	p.p = nil
}

// Len returns the number of patterns in the set.
func (ref FontSetRef) Len() int {
	return ref.s.Len()
}

// IsEmpty returns true if the set holds no patterns.
func (ref FontSetRef) IsEmpty() bool {
	return ref.Len() == 0
}

// At returns the pattern at position i, borrowed from the set.
func (ref FontSetRef) At(i int) PatternRef {
	if i < 0 || i >= ref.Len() {
		panic(fmt.Sprintf("fontconfig: font set index %d out of range [0,%d)", i, ref.Len()))
	}
	return PatternRef{ref.s.At(i)}
}

// Reference returns the pattern at position i as an owned pattern, sharing
// the underlying object with the set. Destroying it leaves the set intact.
func (ref FontSetRef) Reference(i int) *Pattern {
	p := ref.At(i)
	fc().PatternReference(p.raw())
	return ownPattern(p.p)
}

// Iter returns an iterator over the patterns of the set. Iteration does not
// modify the set and may be repeated.
func (ref FontSetRef) Iter() *FontSetIterator {
	return &FontSetIterator{fs: ref}
}

// Patterns returns all patterns of the set, borrowed from the set.
func (ref FontSetRef) Patterns() []PatternRef {
	pats := make([]PatternRef, ref.Len())
	for i := range pats {
		pats[i] = PatternRef{ref.s.At(i)}
	}
	return pats
}

// Print dumps the set to stdout, in fontconfig's debug format.
func (ref FontSetRef) Print() {
	if ref.s == nil {
		return
	}
	fc().FontSetPrint(ref.s)
}

// FontSetIterator iterates over the patterns of a font set.
type FontSetIterator struct {
	fs FontSetRef
	i  int
}

// Next returns the next pattern, or false at the end of the set.
func (it *FontSetIterator) Next() (PatternRef, bool) {
	if it.i >= it.fs.Len() {
		return PatternRef{}, false
	}
	p := it.fs.At(it.i)
	it.i++
	return p, true
}

// QueryFile scans a font file and returns a pattern for each face found.
// An index < 0 selects all faces (including named instances of variable
// fonts). Files without usable faces yield an error with code ENOMATCH.
func QueryFile(path string, index int) (*FontSet, error) {
	lib := fc()
	if lib.FreeTypeQueryAll == nil {
		return nil, Error(ELIBRARY, "FcFreeTypeQueryAll not supported by this fontconfig")
	}
	id := sys.AllFaces
	if index >= 0 {
		id = uint32(index)
	}
	fs := NewFontSet()
	var count int32
	n := lib.FreeTypeQueryAll(path, id, nil, &count, fs.raw())
	if n == 0 || fs.IsEmpty() {
		fs.Destroy()
		return nil, Error(ENOMATCH, "no fonts found in %s", path)
	}
	tracer().Debugf("%s has %d face(s)", path, count)
	return fs, nil
}
