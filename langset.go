package fontconfig

import (
	"sort"
	"strings"

	"github.com/npillmayer/fontconfig/sys"
	"golang.org/x/text/language"
)

// LangResult is the outcome of comparing languages.
type LangResult = sys.LangResult

const (
	LangEqual              = sys.LangEqual
	LangDifferentTerritory = sys.LangDifferentTerritory
	LangDifferentCountry   = sys.LangDifferentCountry
	LangDifferentLang      = sys.LangDifferentLang
)

// LangSetRef is a borrowed language set.
type LangSetRef struct {
	ls *sys.LangSet
}

// LangSet is an owned set of languages, each an RFC 3066 style tag such as
// "en" or "pt-br". Clients must call Destroy when done.
type LangSet struct {
	LangSetRef
}

func (ref LangSetRef) raw() *sys.LangSet {
	if ref.ls == nil {
		panic("fontconfig: use of nil or destroyed langset")
	}
	return ref.ls
}

func ownLangSet(ls *sys.LangSet) *LangSet {
	mustHandle(ls == nil, "langset")
	return &LangSet{LangSetRef{ls}}
}

// NewLangSet creates an empty language set.
func NewLangSet() *LangSet {
	return ownLangSet(fc().LangSetCreate())
}

// LangSetOf creates a language set containing langs.
func LangSetOf(langs ...string) *LangSet {
	ls := NewLangSet()
	for _, lang := range langs {
		ls.Add(lang)
	}
	return ls
}

// Destroy releases the language set. It is safe to call Destroy more than
// once.
func (ls *LangSet) Destroy() {
	if ls == nil || ls.ls == nil {
		return
	}
	fc().LangSetDestroy(ls.ls)
	ls.ls = nil
}

// Ref returns a borrowed view of ls.
func (ls *LangSet) Ref() LangSetRef {
	return ls.LangSetRef
}

// Add adds a language.
func (ls *LangSet) Add(lang string) {
	must(fc().LangSetAdd(ls.raw(), lang), "adding language %q", lang)
}

// AddTag adds a BCP 47 language tag.
func (ls *LangSet) AddTag(tag language.Tag) {
	ls.Add(strings.ToLower(tag.String()))
}

// Del removes a language. It returns false if lang was not in the set or if
// the fontconfig library is too old to support removal.
func (ls *LangSet) Del(lang string) bool {
	lib := fc()
	if lib.LangSetDel == nil {
		tracer().Errorf("FcLangSetDel not supported by this fontconfig")
		return false
	}
	return lib.LangSetDel(ls.raw(), lang) == sys.True
}

// Compare compares two language sets. The result is LangEqual if they share
// a language, LangDifferentTerritory if they share a language only with
// different territories, and LangDifferentLang otherwise.
func (ref LangSetRef) Compare(other LangSetRef) LangResult {
	return fc().LangSetCompare(ref.raw(), other.raw())
}

// Contains returns true if every language of other is covered by ref.
func (ref LangSetRef) Contains(other LangSetRef) bool {
	return fc().LangSetContains(ref.raw(), other.raw()) == sys.True
}

// Equal returns true if both sets hold exactly the same languages.
func (ref LangSetRef) Equal(other LangSetRef) bool {
	return fc().LangSetEqual(ref.raw(), other.raw()) == sys.True
}

// HasLang compares lang against every language in the set and returns the
// best result.
func (ref LangSetRef) HasLang(lang string) LangResult {
	return fc().LangSetHasLang(ref.raw(), lang)
}

// Hash returns a hash value of the set.
func (ref LangSetRef) Hash() uint32 {
	return fc().LangSetHash(ref.raw())
}

// Copy returns an owned copy.
func (ref LangSetRef) Copy() *LangSet {
	return ownLangSet(fc().LangSetCopy(ref.raw()))
}

// Langs returns the languages as an owned string set.
func (ref LangSetRef) Langs() *StringSet {
	return ownStringSet(fc().LangSetGetLangs(ref.raw()))
}

// Strings returns the languages, sorted.
func (ref LangSetRef) Strings() []string {
	set := ref.Langs()
	defer set.Destroy()
	langs := set.Strings()
	sort.Strings(langs)
	return langs
}

// Tags returns the languages as BCP 47 tags. Entries x/text cannot parse
// are skipped.
func (ref LangSetRef) Tags() []language.Tag {
	langs := ref.Strings()
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			tracer().Debugf("skipping language %q: %v", lang, err)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func (ref LangSetRef) String() string {
	if ref.ls == nil {
		return "<nil langset>"
	}
	return strings.Join(ref.Strings(), "|")
}

// LangCharSet returns the character set fontconfig requires a font to cover
// to support lang. The set belongs to fontconfig and must not be modified.
func LangCharSet(lang string) (CharSetRef, bool) {
	c := fc().LangGetCharSet(lang)
	return CharSetRef{c}, c != nil
}

// DefaultLangs returns the languages of the user's locale, as determined by
// fontconfig. Older libraries lacking FcGetDefaultLangs yield nil.
func DefaultLangs() []string {
	lib := fc()
	if lib.GetDefaultLangs == nil {
		return nil
	}
	set := ownStringSet(lib.GetDefaultLangs())
	defer set.Destroy()
	return set.Strings()
}
