package sys

import "unsafe"

// Bool is FcBool, a C int.
type Bool int32

const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Result is FcResult.
type Result int32

const (
	ResultMatch        Result = 0
	ResultNoMatch      Result = 1
	ResultTypeMismatch Result = 2
	ResultNoId         Result = 3
	ResultOutOfMemory  Result = 4
)

// Type is FcType, the type tag of a pattern value.
type Type int32

const (
	TypeUnknown Type = -1
	TypeVoid    Type = 0
	TypeInteger Type = 1
	TypeDouble  Type = 2
	TypeString  Type = 3
	TypeBool    Type = 4
	TypeMatrix  Type = 5
	TypeCharSet Type = 6
	TypeFTFace  Type = 7
	TypeLangSet Type = 8
	TypeRange   Type = 9
)

// MatchKind is FcMatchKind.
type MatchKind int32

const (
	MatchPattern MatchKind = 0
	MatchFont    MatchKind = 1
	MatchScan    MatchKind = 2
)

// LangResult is FcLangResult.
type LangResult int32

const (
	LangEqual              LangResult = 0
	LangDifferentCountry   LangResult = 1
	LangDifferentTerritory LangResult = 1
	LangDifferentLang      LangResult = 2
)

// SetName is FcSetName.
type SetName int32

const (
	SetSystem      SetName = 0
	SetApplication SetName = 1
)

// Opaque handles. Values of these types only ever live in C memory.
type (
	Config    struct{ _ [0]byte }
	Pattern   struct{ _ [0]byte }
	CharSet   struct{ _ [0]byte }
	LangSet   struct{ _ [0]byte }
	ObjectSet struct{ _ [0]byte }
	StrSet    struct{ _ [0]byte }
	StrList   struct{ _ [0]byte }
	Blanks    struct{ _ [0]byte }
)

// Matrix has the layout of FcMatrix.
type Matrix struct {
	XX, XY, YX, YY float64
}

// FontSet has the layout of FcFontSet.
type FontSet struct {
	NFont int32
	SFont int32
	Fonts **Pattern
}

// Len returns the number of patterns in the set.
func (fs *FontSet) Len() int {
	if fs == nil {
		return 0
	}
	return int(fs.NFont)
}

// At returns the pattern pointer at position i. The caller checks bounds.
func (fs *FontSet) At(i int) *Pattern {
	return unsafe.Slice(fs.Fonts, fs.NFont)[i]
}

// Character set pages hold MapSize words of 32 bits, i.e. 256 code points.
const (
	MapSize     = 8
	CharSetDone = ^uint32(0)
)

// Page is the bitmap of one character set page.
type Page [MapSize]uint32

// AllFaces asks FcFreeTypeQueryAll for every face in a file.
const AllFaces = ^uint32(0)
