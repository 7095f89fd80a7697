package fontconfig

import (
	"strings"

	"github.com/npillmayer/fontconfig/sys"
)

// StringSet is an owned set of strings. Clients must call Destroy when done.
type StringSet struct {
	s *sys.StrSet
}

func ownStringSet(s *sys.StrSet) *StringSet {
	mustHandle(s == nil, "string set")
	return &StringSet{s}
}

func (set *StringSet) raw() *sys.StrSet {
	if set == nil || set.s == nil {
		panic("fontconfig: use of nil or destroyed string set")
	}
	return set.s
}

// NewStringSet creates an empty string set.
func NewStringSet() *StringSet {
	return ownStringSet(fc().StrSetCreate())
}

// Destroy releases the set. It is safe to call Destroy more than once.
func (set *StringSet) Destroy() {
	if set == nil || set.s == nil {
		return
	}
	fc().StrSetDestroy(set.s)
	set.s = nil
}

// Add adds s to the set.
func (set *StringSet) Add(s string) {
	must(fc().StrSetAdd(set.raw(), s), "adding %q to string set", s)
}

// Del removes s. It returns false if s was not a member.
func (set *StringSet) Del(s string) bool {
	return fc().StrSetDel(set.raw(), s) == sys.True
}

// Member returns true if s is in the set.
func (set *StringSet) Member(s string) bool {
	return fc().StrSetMember(set.raw(), s) == sys.True
}

// Equal returns true if both sets hold the same strings.
func (set *StringSet) Equal(other *StringSet) bool {
	return fc().StrSetEqual(set.raw(), other.raw()) == sys.True
}

// Iter returns a single-pass iterator over the set. The set must outlive
// the iterator.
func (set *StringSet) Iter() *StringList {
	l := fc().StrListCreate(set.raw())
	mustHandle(l == nil, "string list")
	return &StringList{l: l}
}

// Strings returns the members in insertion order.
func (set *StringSet) Strings() []string {
	return set.Iter().drain()
}

func (set *StringSet) String() string {
	return "{" + strings.Join(set.Strings(), ", ") + "}"
}

// StringList is a cursor over a string set. It is released by Done, which
// Next calls implicitly when the list is exhausted.
type StringList struct {
	l *sys.StrList
}

// Next returns the next string, or false at the end of the list.
func (list *StringList) Next() (string, bool) {
	if list.l == nil {
		return "", false
	}
	s := fc().StrListNext(list.l)
	if s == nil {
		list.Done()
		return "", false
	}
	return sys.GoString(s), true
}

// Reset rewinds the cursor to the first string.
func (list *StringList) Reset() {
	if list.l != nil {
		fc().StrListFirst(list.l)
	}
}

// Done releases the list. It is safe to call Done more than once.
func (list *StringList) Done() {
	if list.l == nil {
		return
	}
	fc().StrListDone(list.l)
	list.l = nil
}

func (list *StringList) drain() []string {
	var strs []string
	for s, ok := list.Next(); ok; s, ok = list.Next() {
		strs = append(strs, s)
	}
	return strs
}
