package fontconfig

import (
	"strings"

	"github.com/npillmayer/fontconfig/sys"
)

// PatternRef is a borrowed pattern. It is handed out by font sets and by
// (*Pattern).Ref and must not be used after its owner has been destroyed.
type PatternRef struct {
	p *sys.Pattern
}

// Pattern is an owned fontconfig pattern, i.e. a set of object names, each
// associated with a list of typed values. Patterns are used to request fonts
// as well as to describe fonts found.
//
// Clients must call Destroy when done with a pattern.
type Pattern struct {
	PatternRef
}

func (ref PatternRef) raw() *sys.Pattern {
	if ref.p == nil {
		panic("fontconfig: use of nil or destroyed pattern")
	}
	return ref.p
}

// IsNil returns true for the zero PatternRef.
func (ref PatternRef) IsNil() bool {
	return ref.p == nil
}

func ownPattern(p *sys.Pattern) *Pattern {
	return &Pattern{PatternRef{p}}
}

// NewPattern creates an empty pattern.
func NewPattern() *Pattern {
	p := fc().PatternCreate()
	mustHandle(p == nil, "pattern")
	return ownPattern(p)
}

// ParsePattern converts a font name in fontconfig syntax, such as
// "DejaVu Sans-12:bold", into a pattern. It returns an error with code
// EPARSE if fontconfig cannot parse the name.
func ParsePattern(name string) (*Pattern, error) {
	p := fc().NameParse(name)
	if p == nil {
		return nil, Error(EPARSE, "cannot parse font name %q", name)
	}
	tracer().Debugf("parsed pattern %q", name)
	return ownPattern(p), nil
}

// Destroy releases the pattern. It is safe to call Destroy more than once.
func (pat *Pattern) Destroy() {
	if pat == nil || pat.p == nil {
		return
	}
	fc().PatternDestroy(pat.p)
	pat.p = nil
}

// Ref returns a borrowed view of pat.
func (pat *Pattern) Ref() PatternRef {
	return pat.PatternRef
}

// Duplicate returns an owned deep copy.
func (ref PatternRef) Duplicate() *Pattern {
	p := fc().PatternDuplicate(ref.raw())
	mustHandle(p == nil, "pattern copy")
	return ownPattern(p)
}

// --- Adding values ---------------------------------------------------------

// AddString appends a string value to object.
func (pat *Pattern) AddString(object string, s string) {
	must(fc().PatternAddString(pat.raw(), object, s), "adding %s=%q", object, s)
}

// AddInteger appends an integer value to object.
func (pat *Pattern) AddInteger(object string, i int) {
	must(fc().PatternAddInteger(pat.raw(), object, int32(i)), "adding %s=%d", object, i)
}

// AddDouble appends a floating point value to object.
func (pat *Pattern) AddDouble(object string, d float64) {
	must(fc().PatternAddDouble(pat.raw(), object, d), "adding %s=%g", object, d)
}

// AddBool appends a boolean value to object.
func (pat *Pattern) AddBool(object string, b bool) {
	must(fc().PatternAddBool(pat.raw(), object, sys.BoolOf(b)), "adding %s=%v", object, b)
}

// AddMatrix appends a matrix value to object. The matrix is copied.
func (pat *Pattern) AddMatrix(object string, m Matrix) {
	must(fc().PatternAddMatrix(pat.raw(), object, m.raw()), "adding matrix %s", object)
}

// AddCharSet appends a character set to object. The pattern takes its own
// reference; the caller keeps ownership of c.
func (pat *Pattern) AddCharSet(object string, c CharSetRef) {
	must(fc().PatternAddCharSet(pat.raw(), object, c.raw()), "adding charset %s", object)
}

// AddLangSet appends a language set to object. The language set is copied.
func (pat *Pattern) AddLangSet(object string, ls *LangSet) {
	must(fc().PatternAddLangSet(pat.raw(), object, ls.raw()), "adding langset %s", object)
}

// Del removes all values of object. It returns false if there were none.
func (pat *Pattern) Del(object string) bool {
	return fc().PatternDel(pat.raw(), object) == sys.True
}

// Remove removes the value at position id of object.
func (pat *Pattern) Remove(object string, id int) bool {
	return fc().PatternRemove(pat.raw(), object, int32(id)) == sys.True
}

// DefaultSubstitute fills in defaults for unset values, e.g. weight, slant
// and size.
func (pat *Pattern) DefaultSubstitute() {
	fc().DefaultSubstitute(pat.raw())
}

// --- Getting values --------------------------------------------------------

// GetString returns the first string value of object.
func (ref PatternRef) GetString(object string) (string, error) {
	return ref.GetStringAt(object, 0)
}

// GetStringAt returns the string value at position n of object.
func (ref PatternRef) GetStringAt(object string, n int) (string, error) {
	var s *byte
	r := fc().PatternGetString(ref.raw(), object, int32(n), &s)
	if err := resultError(r, object, n); err != nil {
		return "", err
	}
	return sys.GoString(s), nil
}

// GetInteger returns the first integer value of object.
func (ref PatternRef) GetInteger(object string) (int, error) {
	return ref.GetIntegerAt(object, 0)
}

// GetIntegerAt returns the integer value at position n of object.
func (ref PatternRef) GetIntegerAt(object string, n int) (int, error) {
	var i int32
	r := fc().PatternGetInteger(ref.raw(), object, int32(n), &i)
	if err := resultError(r, object, n); err != nil {
		return 0, err
	}
	return int(i), nil
}

// GetDouble returns the first floating point value of object.
func (ref PatternRef) GetDouble(object string) (float64, error) {
	return ref.GetDoubleAt(object, 0)
}

// GetDoubleAt returns the floating point value at position n of object.
func (ref PatternRef) GetDoubleAt(object string, n int) (float64, error) {
	var d float64
	r := fc().PatternGetDouble(ref.raw(), object, int32(n), &d)
	if err := resultError(r, object, n); err != nil {
		return 0, err
	}
	return d, nil
}

// GetBool returns the first boolean value of object.
func (ref PatternRef) GetBool(object string) (bool, error) {
	return ref.GetBoolAt(object, 0)
}

// GetBoolAt returns the boolean value at position n of object.
func (ref PatternRef) GetBoolAt(object string, n int) (bool, error) {
	var b sys.Bool
	r := fc().PatternGetBool(ref.raw(), object, int32(n), &b)
	if err := resultError(r, object, n); err != nil {
		return false, err
	}
	return b != sys.False, nil
}

// GetMatrix returns a copy of the first matrix value of object.
func (ref PatternRef) GetMatrix(object string) (Matrix, error) {
	return ref.GetMatrixAt(object, 0)
}

// GetMatrixAt returns a copy of the matrix value at position n of object.
func (ref PatternRef) GetMatrixAt(object string, n int) (Matrix, error) {
	var m *sys.Matrix
	r := fc().PatternGetMatrix(ref.raw(), object, int32(n), &m)
	if err := resultError(r, object, n); err != nil {
		return IdentityMatrix(), err
	}
	return Matrix(*m), nil
}

// GetCharSet returns the first character set of object. The result is
// owned by the pattern.
func (ref PatternRef) GetCharSet(object string) (CharSetRef, error) {
	return ref.GetCharSetAt(object, 0)
}

// GetCharSetAt returns the character set at position n of object. The
// result is owned by the pattern.
func (ref PatternRef) GetCharSetAt(object string, n int) (CharSetRef, error) {
	var c *sys.CharSet
	r := fc().PatternGetCharSet(ref.raw(), object, int32(n), &c)
	if err := resultError(r, object, n); err != nil {
		return CharSetRef{}, err
	}
	return CharSetRef{c}, nil
}

// GetLangSet returns a copy of the first language set of object. The
// caller owns the copy.
func (ref PatternRef) GetLangSet(object string) (*LangSet, error) {
	return ref.GetLangSetAt(object, 0)
}

// GetLangSetAt returns a copy of the language set at position n of object.
func (ref PatternRef) GetLangSetAt(object string, n int) (*LangSet, error) {
	var ls *sys.LangSet
	r := fc().PatternGetLangSet(ref.raw(), object, int32(n), &ls)
	if err := resultError(r, object, n); err != nil {
		return nil, err
	}
	return LangSetRef{ls}.Copy(), nil
}

// --- Convenience getters ---------------------------------------------------

// Family returns the (first) family name.
func (ref PatternRef) Family() (string, error) {
	return ref.GetString(FAMILY)
}

// Style returns the (first) style name, e.g. "Bold Italic".
func (ref PatternRef) Style() (string, error) {
	return ref.GetString(STYLE)
}

// FullName returns the full font name, e.g. "DejaVu Sans Bold".
func (ref PatternRef) FullName() (string, error) {
	return ref.GetString(FULLNAME)
}

// File returns the path of the font file.
func (ref PatternRef) File() (string, error) {
	return ref.GetString(FILE)
}

// FaceIndex returns the index of the face within the font file.
func (ref PatternRef) FaceIndex() (int, error) {
	return ref.GetInteger(INDEX)
}

// Slant returns one of the SLANT_… values.
func (ref PatternRef) Slant() (int, error) {
	return ref.GetInteger(SLANT)
}

// Weight returns one of the WEIGHT_… values.
func (ref PatternRef) Weight() (int, error) {
	return ref.GetInteger(WEIGHT)
}

// Width returns one of the WIDTH_… values.
func (ref PatternRef) Width() (int, error) {
	return ref.GetInteger(WIDTH)
}

// FontFormat returns the format of the font file.
func (ref PatternRef) FontFormat() (FontFormat, error) {
	s, err := ref.GetString(FONTFORMAT)
	if err != nil {
		return FormatUnknown, err
	}
	return ParseFontFormat(s)
}

// --- Comparison ------------------------------------------------------------

// Equal returns true if both patterns hold exactly the same values.
func (ref PatternRef) Equal(other PatternRef) bool {
	return fc().PatternEqual(ref.raw(), other.raw()) == sys.True
}

// Hash returns a hash value over all values of the pattern.
func (ref PatternRef) Hash() uint32 {
	return fc().PatternHash(ref.raw())
}

// --- Matching --------------------------------------------------------------

// FontMatch returns the font in the configuration which best matches the
// pattern. The pattern should have been run through Config.Substitute and
// DefaultSubstitute before; Config.Match does both. A nil cfg selects the
// current configuration.
func (ref PatternRef) FontMatch(cfg *Config) (*Pattern, error) {
	var result sys.Result
	p := fc().FontMatch(cfg.handle(), ref.raw(), &result)
	if p == nil {
		return nil, resultError(orNoMatch(result), "<font>", 0)
	}
	return ownPattern(p), nil
}

// FontSort returns the fonts of the configuration sorted by closeness to
// the pattern. With trim set, fonts not adding to the Unicode coverage of
// better matching fonts are left out.
func (ref PatternRef) FontSort(cfg *Config, trim bool) (*FontSet, error) {
	var result sys.Result
	fs := fc().FontSort(cfg.handle(), ref.raw(), sys.BoolOf(trim), nil, &result)
	if fs == nil {
		return nil, resultError(orNoMatch(result), "<font>", 0)
	}
	return ownFontSet(fs), nil
}

// FontSortWithCharSet is FontSort, returning in addition the union of the
// character sets of all fonts in the result. The caller owns both.
func (ref PatternRef) FontSortWithCharSet(cfg *Config, trim bool) (*FontSet, *CharSet, error) {
	var result sys.Result
	var csp *sys.CharSet
	fs := fc().FontSort(cfg.handle(), ref.raw(), sys.BoolOf(trim), &csp, &result)
	if fs == nil {
		return nil, nil, resultError(orNoMatch(result), "<font>", 0)
	}
	return ownFontSet(fs), &CharSet{CharSetRef{csp}}, nil
}

// FontList returns all fonts of the configuration matching the pattern,
// reduced to the objects in os. A nil os keeps all objects.
func (ref PatternRef) FontList(cfg *Config, os *ObjectSet) (*FontSet, error) {
	fs := fc().FontList(cfg.handle(), ref.raw(), os.rawOrNil())
	if fs == nil {
		return nil, Error(EOUTOFMEMORY, "font listing failed")
	}
	return ownFontSet(fs), nil
}

// RenderPrepare merges the request pattern with a matched font, producing
// the pattern an application would render with.
func (ref PatternRef) RenderPrepare(cfg *Config, font PatternRef) *Pattern {
	p := fc().FontRenderPrepare(cfg.handle(), ref.raw(), font.raw())
	mustHandle(p == nil, "render pattern")
	return ownPattern(p)
}

// Filter returns a copy of the pattern reduced to the objects in os.
// A nil os copies everything.
func (ref PatternRef) Filter(os *ObjectSet) *Pattern {
	p := fc().PatternFilter(ref.raw(), os.rawOrNil())
	mustHandle(p == nil, "filtered pattern")
	return ownPattern(p)
}

func orNoMatch(r sys.Result) sys.Result {
	if r == sys.ResultMatch {
		return sys.ResultNoMatch
	}
	return r
}

// --- Output ----------------------------------------------------------------

// Format expands a fontconfig format template, e.g. "%{family}: %{style}".
// See FcPatternFormat(3) for the template syntax.
func (ref PatternRef) Format(template string) (string, error) {
	lib := fc()
	s := lib.PatternFormat(ref.raw(), template)
	if s == nil {
		return "", Error(EPARSE, "invalid format template %q", template)
	}
	defer lib.StrFree(s)
	return sys.GoString(s), nil
}

// Unparse converts the pattern to fontconfig name syntax.
func (ref PatternRef) Unparse() string {
	lib := fc()
	s := lib.NameUnparse(ref.raw())
	if s == nil {
		return ""
	}
	defer lib.StrFree(s)
	return sys.GoString(s)
}

func (ref PatternRef) String() string {
	if ref.p == nil {
		return "<nil pattern>"
	}
	return ref.Unparse()
}

// Print dumps the pattern to stdout, in fontconfig's debug format.
func (ref PatternRef) Print() {
	fc().PatternPrint(ref.raw())
}

// SameFamily compares the family of the pattern case-insensitively to name.
func (ref PatternRef) SameFamily(name string) bool {
	for n := 0; ; n++ {
		fam, err := ref.GetStringAt(FAMILY, n)
		if err != nil {
			return false
		}
		if strings.EqualFold(fam, name) {
			return true
		}
	}
}
