package fontconfig

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// Pattern object names, as defined in fontconfig.h.
const (
	FAMILY          = "family"
	STYLE           = "style"
	SLANT           = "slant"
	WEIGHT          = "weight"
	SIZE            = "size"
	ASPECT          = "aspect"
	PIXEL_SIZE      = "pixelsize"
	SPACING         = "spacing"
	FOUNDRY         = "foundry"
	ANTIALIAS       = "antialias"
	HINTING         = "hinting"
	HINT_STYLE      = "hintstyle"
	VERTICAL_LAYOUT = "verticallayout"
	AUTOHINT        = "autohint"
	GLOBAL_ADVANCE  = "globaladvance"
	WIDTH           = "width"
	FILE            = "file"
	INDEX           = "index"
	FT_FACE         = "ftface"
	RASTERIZER      = "rasterizer"
	OUTLINE         = "outline"
	SCALABLE        = "scalable"
	COLOR           = "color"
	VARIABLE        = "variable"
	SCALE           = "scale"
	SYMBOL          = "symbol"
	DPI             = "dpi"
	RGBA            = "rgba"
	MINSPACE        = "minspace"
	SOURCE          = "source"
	CHARSET         = "charset"
	LANG            = "lang"
	FONTVERSION     = "fontversion"
	FULLNAME        = "fullname"
	FAMILYLANG      = "familylang"
	STYLELANG       = "stylelang"
	FULLNAMELANG    = "fullnamelang"
	CAPABILITY      = "capability"
	FONTFORMAT      = "fontformat"
	EMBOLDEN        = "embolden"
	EMBEDDED_BITMAP = "embeddedbitmap"
	DECORATIVE      = "decorative"
	LCD_FILTER      = "lcdfilter"
	FONT_FEATURES   = "fontfeatures"
	FONT_VARIATIONS = "fontvariations"
	NAMELANG        = "namelang"
	PRGNAME         = "prgname"
	HASH            = "hash"
	POSTSCRIPT_NAME = "postscriptname"
	FONT_HAS_HINT   = "fonthashint"
	ORDER           = "order"
	MATRIX          = "matrix"
	CHAR_WIDTH      = "charwidth"
	CHAR_HEIGHT     = "charheight"
)

// Values of WEIGHT.
const (
	WEIGHT_THIN       = 0
	WEIGHT_EXTRALIGHT = 40
	WEIGHT_ULTRALIGHT = WEIGHT_EXTRALIGHT
	WEIGHT_LIGHT      = 50
	WEIGHT_DEMILIGHT  = 55
	WEIGHT_SEMILIGHT  = WEIGHT_DEMILIGHT
	WEIGHT_BOOK       = 75
	WEIGHT_REGULAR    = 80
	WEIGHT_NORMAL     = WEIGHT_REGULAR
	WEIGHT_MEDIUM     = 100
	WEIGHT_DEMIBOLD   = 180
	WEIGHT_SEMIBOLD   = WEIGHT_DEMIBOLD
	WEIGHT_BOLD       = 200
	WEIGHT_EXTRABOLD  = 205
	WEIGHT_ULTRABOLD  = WEIGHT_EXTRABOLD
	WEIGHT_BLACK      = 210
	WEIGHT_HEAVY      = WEIGHT_BLACK
	WEIGHT_EXTRABLACK = 215
	WEIGHT_ULTRABLACK = WEIGHT_EXTRABLACK
)

// Values of SLANT.
const (
	SLANT_ROMAN   = 0
	SLANT_ITALIC  = 100
	SLANT_OBLIQUE = 110
)

// Values of WIDTH.
const (
	WIDTH_ULTRACONDENSED = 50
	WIDTH_EXTRACONDENSED = 63
	WIDTH_CONDENSED      = 75
	WIDTH_SEMICONDENSED  = 87
	WIDTH_NORMAL         = 100
	WIDTH_SEMIEXPANDED   = 113
	WIDTH_EXPANDED       = 125
	WIDTH_EXTRAEXPANDED  = 150
	WIDTH_ULTRAEXPANDED  = 200
)

// Values of SPACING.
const (
	PROPORTIONAL = 0
	DUAL         = 90
	MONO         = 100
	CHARCELL     = 110
)

// Values of RGBA.
const (
	RGBA_UNKNOWN = 0
	RGBA_RGB     = 1
	RGBA_BGR     = 2
	RGBA_VRGB    = 3
	RGBA_VBGR    = 4
	RGBA_NONE    = 5
)

// Values of HINT_STYLE.
const (
	HINT_NONE   = 0
	HINT_SLIGHT = 1
	HINT_MEDIUM = 2
	HINT_FULL   = 3
)

// Values of LCD_FILTER.
const (
	LCD_NONE    = 0
	LCD_DEFAULT = 1
	LCD_LIGHT   = 2
	LCD_LEGACY  = 3
)

// ValueType is the type of values fontconfig stores for an object.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInteger
	TypeDouble
	TypeBool
	TypeMatrix
	TypeCharSet
	TypeLangSet
	TypeRange
	TypeFTFace
)

func (vt ValueType) String() string {
	switch vt {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	case TypeMatrix:
		return "matrix"
	case TypeCharSet:
		return "charset"
	case TypeLangSet:
		return "langset"
	case TypeRange:
		return "range"
	case TypeFTFace:
		return "ftface"
	}
	return "unknown"
}

var objectTypes = map[string]ValueType{
	FAMILY: TypeString, STYLE: TypeString, SLANT: TypeInteger, WEIGHT: TypeRange,
	SIZE: TypeRange, ASPECT: TypeDouble, PIXEL_SIZE: TypeDouble, SPACING: TypeInteger,
	FOUNDRY: TypeString, ANTIALIAS: TypeBool, HINTING: TypeBool, HINT_STYLE: TypeInteger,
	VERTICAL_LAYOUT: TypeBool, AUTOHINT: TypeBool, GLOBAL_ADVANCE: TypeBool,
	WIDTH: TypeRange, FILE: TypeString, INDEX: TypeInteger, FT_FACE: TypeFTFace,
	RASTERIZER: TypeString, OUTLINE: TypeBool, SCALABLE: TypeBool, COLOR: TypeBool,
	VARIABLE: TypeBool, SCALE: TypeDouble, SYMBOL: TypeBool, DPI: TypeDouble,
	RGBA: TypeInteger, MINSPACE: TypeBool, SOURCE: TypeString, CHARSET: TypeCharSet,
	LANG: TypeLangSet, FONTVERSION: TypeInteger, FULLNAME: TypeString,
	FAMILYLANG: TypeString, STYLELANG: TypeString, FULLNAMELANG: TypeString,
	CAPABILITY: TypeString, FONTFORMAT: TypeString, EMBOLDEN: TypeBool,
	EMBEDDED_BITMAP: TypeBool, DECORATIVE: TypeBool, LCD_FILTER: TypeInteger,
	FONT_FEATURES: TypeString, FONT_VARIATIONS: TypeString, NAMELANG: TypeString,
	PRGNAME: TypeString, HASH: TypeString, POSTSCRIPT_NAME: TypeString,
	FONT_HAS_HINT: TypeBool, ORDER: TypeInteger, MATRIX: TypeMatrix,
	CHAR_WIDTH: TypeInteger, CHAR_HEIGHT: TypeInteger,
}

var (
	objectTrie     *trie.Trie
	objectTrieOnce sync.Once
)

func objectIndex() *trie.Trie {
	objectTrieOnce.Do(func() {
		objectTrie = trie.New()
		for name, vt := range objectTypes {
			objectTrie.Add(name, vt)
		}
	})
	return objectTrie
}

// ObjectNames returns the names of all objects fontconfig knows about,
// sorted alphabetically.
func ObjectNames() []string {
	names := make([]string, 0, len(objectTypes))
	for name := range objectTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownObject returns true if name is a predefined object name.
// Fontconfig accepts other names as well; they are just not interpreted.
func IsKnownObject(name string) bool {
	_, ok := objectIndex().Find(strings.ToLower(name))
	return ok
}

// ObjectType returns the value type of a predefined object.
func ObjectType(name string) (ValueType, bool) {
	node, ok := objectIndex().Find(strings.ToLower(name))
	if !ok {
		return 0, false
	}
	return node.Meta().(ValueType), true
}

// CompleteObject returns all object names starting with prefix, sorted.
func CompleteObject(prefix string) []string {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return ObjectNames()
	}
	names := objectIndex().PrefixSearch(prefix)
	sort.Strings(names)
	return names
}
