package fontconfig

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/npillmayer/fontconfig/sys"
)

// CharSetRef is a borrowed character set, owned either by a pattern or by
// fontconfig itself (see LangCharSet).
type CharSetRef struct {
	c *sys.CharSet
}

// CharSet is an owned set of Unicode code points.
// Clients must call Destroy when done with a character set.
type CharSet struct {
	CharSetRef
}

func (ref CharSetRef) raw() *sys.CharSet {
	if ref.c == nil {
		panic("fontconfig: use of nil or destroyed charset")
	}
	return ref.c
}

// IsNil returns true for the zero CharSetRef.
func (ref CharSetRef) IsNil() bool {
	return ref.c == nil
}

func ownCharSet(c *sys.CharSet, what string) *CharSet {
	mustHandle(c == nil, what)
	return &CharSet{CharSetRef{c}}
}

// NewCharSet creates an empty character set.
func NewCharSet() *CharSet {
	return ownCharSet(fc().CharSetCreate(), "charset")
}

// CharSetOf creates a character set containing runes.
func CharSetOf(runes ...rune) *CharSet {
	cs := NewCharSet()
	for _, r := range runes {
		cs.AddChar(r)
	}
	return cs
}

// Destroy releases the character set. It is safe to call Destroy more than
// once.
func (cs *CharSet) Destroy() {
	if cs == nil || cs.c == nil {
		return
	}
	fc().CharSetDestroy(cs.c)
	cs.c = nil
}

// Ref returns a borrowed view of cs.
func (cs *CharSet) Ref() CharSetRef {
	return cs.CharSetRef
}

// AddChar adds r to the set.
func (cs *CharSet) AddChar(r rune) {
	must(fc().CharSetAddChar(cs.raw(), uint32(r)), "adding %U to charset", r)
}

// DelChar removes r from the set.
func (cs *CharSet) DelChar(r rune) {
	must(fc().CharSetDelChar(cs.raw(), uint32(r)), "removing %U from charset", r)
}

// Merge adds all code points of other to cs. It returns true if cs changed.
func (cs *CharSet) Merge(other CharSetRef) bool {
	var changed sys.Bool
	must(fc().CharSetMerge(cs.raw(), other.raw(), &changed), "merging charsets")
	return changed == sys.True
}

// HasChar returns true if r is in the set.
func (ref CharSetRef) HasChar(r rune) bool {
	return fc().CharSetHasChar(ref.raw(), uint32(r)) == sys.True
}

// Count returns the number of code points in the set.
func (ref CharSetRef) Count() int {
	return int(fc().CharSetCount(ref.raw()))
}

// IsEmpty returns true if the set contains no code points.
func (ref CharSetRef) IsEmpty() bool {
	return ref.Count() == 0
}

// IsSubset returns true if every code point of ref is contained in other.
func (ref CharSetRef) IsSubset(other CharSetRef) bool {
	return fc().CharSetIsSubset(ref.raw(), other.raw()) == sys.True
}

// Equal returns true if both sets contain the same code points.
func (ref CharSetRef) Equal(other CharSetRef) bool {
	return fc().CharSetEqual(ref.raw(), other.raw()) == sys.True
}

// Union returns a new set with the code points of both sets.
func (ref CharSetRef) Union(other CharSetRef) *CharSet {
	return ownCharSet(fc().CharSetUnion(ref.raw(), other.raw()), "charset union")
}

// Intersect returns a new set with the code points common to both sets.
func (ref CharSetRef) Intersect(other CharSetRef) *CharSet {
	return ownCharSet(fc().CharSetIntersect(ref.raw(), other.raw()), "charset intersection")
}

// Subtract returns a new set with the code points of ref not in other.
func (ref CharSetRef) Subtract(other CharSetRef) *CharSet {
	return ownCharSet(fc().CharSetSubtract(ref.raw(), other.raw()), "charset difference")
}

// IntersectCount returns the size of the intersection of both sets.
func (ref CharSetRef) IntersectCount(other CharSetRef) int {
	return int(fc().CharSetIntersectCount(ref.raw(), other.raw()))
}

// SubtractCount returns the number of code points in ref but not in other.
func (ref CharSetRef) SubtractCount(other CharSetRef) int {
	return int(fc().CharSetSubtractCount(ref.raw(), other.raw()))
}

// Copy returns an independent owned copy. (FcCharSetCopy merely adds a
// reference to the same set, which would alias mutations.)
func (ref CharSetRef) Copy() *CharSet {
	cs := NewCharSet()
	cs.Merge(ref)
	return cs
}

// Iter returns an iterator over the code points of the set, in ascending
// order. The set must not change during iteration.
func (ref CharSetRef) Iter() *CharSetIterator {
	return &CharSetIterator{lib: fc(), c: ref.raw()}
}

// Runes returns all code points of the set in ascending order.
func (ref CharSetRef) Runes() []rune {
	runes := make([]rune, 0, ref.Count())
	it := ref.Iter()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		runes = append(runes, r)
	}
	return runes
}

// String lists the set as hexadecimal code point ranges, e.g. "61-63 5b57".
func (ref CharSetRef) String() string {
	if ref.c == nil {
		return "<nil charset>"
	}
	var b strings.Builder
	first, last := rune(-1), rune(-1)
	flush := func() {
		if first < 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if first == last {
			fmt.Fprintf(&b, "%x", first)
		} else {
			fmt.Fprintf(&b, "%x-%x", first, last)
		}
	}
	it := ref.Iter()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		if r == last+1 && first >= 0 {
			last = r
			continue
		}
		flush()
		first, last = r, r
	}
	flush()
	return b.String()
}

// CharSetIterator walks the pages of a character set. fontconfig hands out
// a page as MapSize words of 32 bits each; every set bit is a code point.
type CharSetIterator struct {
	lib     *sys.Lib
	c       *sys.CharSet
	page    sys.Page
	next    uint32 // base of the page after the current one
	base    uint32 // base of the current page
	word    int    // index into page
	bits    uint32 // unconsumed bits of page[word]
	started bool
	done    bool
}

// Next returns the next code point, or false when the set is exhausted.
func (it *CharSetIterator) Next() (rune, bool) {
	if it.done {
		return 0, false
	}
	if !it.started {
		it.started = true
		it.base = it.lib.CharSetFirstPage(it.c, &it.page, &it.next)
		if !it.startPage() {
			return 0, false
		}
	}
	for it.bits == 0 {
		it.word++
		if it.word == sys.MapSize {
			it.base = it.lib.CharSetNextPage(it.c, &it.page, &it.next)
			if !it.startPage() {
				return 0, false
			}
			continue
		}
		it.bits = it.page[it.word]
	}
	bit := uint32(bits.TrailingZeros32(it.bits))
	it.bits &= it.bits - 1
	return rune(it.base + uint32(it.word)*32 + bit), true
}

func (it *CharSetIterator) startPage() bool {
	if it.base == sys.CharSetDone {
		it.done = true
		return false
	}
	it.word = 0
	it.bits = it.page[0]
	return true
}
