package sys

import (
	"errors"
	"os"
	"runtime"
	"sync"
)

// Lib is the function table of the fontconfig library. Field F resolves to
// the C symbol "FcF". Entries tagged optional may be nil when the loaded
// library predates them.
//
// String arguments are copied by fontconfig; callers may pass Go strings.
// Returned *byte values point into C memory.
type Lib struct {
	Init       func() Bool
	Fini       func()
	GetVersion func() int32

	ConfigGetCurrent        func() *Config
	ConfigSubstitute        func(config *Config, p *Pattern, kind MatchKind) Bool
	ConfigSubstituteWithPat func(config *Config, p *Pattern, pPat *Pattern, kind MatchKind) Bool
	ConfigAppFontAddFile    func(config *Config, file string) Bool
	ConfigAppFontAddDir     func(config *Config, dir string) Bool
	ConfigAppFontClear      func(config *Config)
	ConfigGetFontDirs       func(config *Config) *StrList
	ConfigGetConfigFiles    func(config *Config) *StrList
	ConfigGetFonts          func(config *Config, set SetName) *FontSet
	ConfigUptoDate          func(config *Config) Bool
	ConfigGetRescanInterval func(config *Config) int32

	DefaultSubstitute func(p *Pattern)
	FontMatch         func(config *Config, p *Pattern, result *Result) *Pattern
	FontSort          func(config *Config, p *Pattern, trim Bool, csp **CharSet, result *Result) *FontSet
	FontList          func(config *Config, p *Pattern, os *ObjectSet) *FontSet
	FontRenderPrepare func(config *Config, pat *Pattern, font *Pattern) *Pattern
	FontSetMatch      func(config *Config, sets **FontSet, nsets int32, p *Pattern, result *Result) *Pattern

	NameParse   func(name string) *Pattern
	NameUnparse func(p *Pattern) *byte
	StrFree     func(s *byte)

	PatternCreate     func() *Pattern
	PatternDuplicate  func(p *Pattern) *Pattern
	PatternReference  func(p *Pattern)
	PatternDestroy    func(p *Pattern)
	PatternEqual      func(pa *Pattern, pb *Pattern) Bool
	PatternHash       func(p *Pattern) uint32
	PatternDel        func(p *Pattern, object string) Bool
	PatternRemove     func(p *Pattern, object string, id int32) Bool
	PatternFilter     func(p *Pattern, os *ObjectSet) *Pattern
	PatternFormat     func(p *Pattern, format string) *byte
	PatternPrint      func(p *Pattern)
	PatternAddInteger func(p *Pattern, object string, i int32) Bool
	PatternAddDouble  func(p *Pattern, object string, d float64) Bool
	PatternAddString  func(p *Pattern, object string, s string) Bool
	PatternAddBool    func(p *Pattern, object string, b Bool) Bool
	PatternAddMatrix  func(p *Pattern, object string, m *Matrix) Bool
	PatternAddCharSet func(p *Pattern, object string, c *CharSet) Bool
	PatternAddLangSet func(p *Pattern, object string, ls *LangSet) Bool
	PatternGetInteger func(p *Pattern, object string, n int32, i *int32) Result
	PatternGetDouble  func(p *Pattern, object string, n int32, d *float64) Result
	PatternGetString  func(p *Pattern, object string, n int32, s **byte) Result
	PatternGetBool    func(p *Pattern, object string, n int32, b *Bool) Result
	PatternGetMatrix  func(p *Pattern, object string, n int32, m **Matrix) Result
	PatternGetCharSet func(p *Pattern, object string, n int32, c **CharSet) Result
	PatternGetLangSet func(p *Pattern, object string, n int32, ls **LangSet) Result

	CharSetCreate         func() *CharSet
	CharSetDestroy        func(c *CharSet)
	CharSetAddChar        func(c *CharSet, ucs4 uint32) Bool
	CharSetDelChar        func(c *CharSet, ucs4 uint32) Bool
	CharSetCopy           func(c *CharSet) *CharSet
	CharSetEqual          func(a *CharSet, b *CharSet) Bool
	CharSetIntersect      func(a *CharSet, b *CharSet) *CharSet
	CharSetUnion          func(a *CharSet, b *CharSet) *CharSet
	CharSetSubtract       func(a *CharSet, b *CharSet) *CharSet
	CharSetMerge          func(a *CharSet, b *CharSet, changed *Bool) Bool
	CharSetHasChar        func(c *CharSet, ucs4 uint32) Bool
	CharSetCount          func(c *CharSet) uint32
	CharSetIntersectCount func(a *CharSet, b *CharSet) uint32
	CharSetSubtractCount  func(a *CharSet, b *CharSet) uint32
	CharSetIsSubset       func(a *CharSet, b *CharSet) Bool
	CharSetFirstPage      func(c *CharSet, page *Page, next *uint32) uint32
	CharSetNextPage       func(c *CharSet, page *Page, next *uint32) uint32

	LangSetCreate   func() *LangSet
	LangSetDestroy  func(ls *LangSet)
	LangSetCopy     func(ls *LangSet) *LangSet
	LangSetAdd      func(ls *LangSet, lang string) Bool
	LangSetDel      func(ls *LangSet, lang string) Bool `fc:"optional"`
	LangSetCompare  func(a *LangSet, b *LangSet) LangResult
	LangSetContains func(a *LangSet, b *LangSet) Bool
	LangSetEqual    func(a *LangSet, b *LangSet) Bool
	LangSetHasLang  func(ls *LangSet, lang string) LangResult
	LangSetGetLangs func(ls *LangSet) *StrSet
	LangSetHash     func(ls *LangSet) uint32
	LangGetCharSet  func(lang string) *CharSet
	GetDefaultLangs func() *StrSet `fc:"optional"`

	FontSetCreate  func() *FontSet
	FontSetDestroy func(s *FontSet)
	FontSetAdd     func(s *FontSet, p *Pattern) Bool
	FontSetPrint   func(s *FontSet)

	ObjectSetCreate  func() *ObjectSet
	ObjectSetAdd     func(os *ObjectSet, object string) Bool
	ObjectSetDestroy func(os *ObjectSet)

	MatrixMultiply func(result *Matrix, a *Matrix, b *Matrix)
	MatrixRotate   func(m *Matrix, c float64, s float64)
	MatrixScale    func(m *Matrix, sx float64, sy float64)
	MatrixShear    func(m *Matrix, sh float64, sv float64)
	MatrixEqual    func(a *Matrix, b *Matrix) Bool

	StrSetCreate  func() *StrSet
	StrSetAdd     func(set *StrSet, s string) Bool
	StrSetDel     func(set *StrSet, s string) Bool
	StrSetMember  func(set *StrSet, s string) Bool
	StrSetEqual   func(a *StrSet, b *StrSet) Bool
	StrSetDestroy func(set *StrSet)
	StrListCreate func(set *StrSet) *StrList
	StrListFirst  func(list *StrList)
	StrListNext   func(list *StrList) *byte
	StrListDone   func(list *StrList)

	FreeTypeQueryAll func(file string, id uint32, blanks *Blanks, count *int32, set *FontSet) uint32 `fc:"optional"`
}

// ErrNotLoaded is returned by Load if the fontconfig library is not usable.
var ErrNotLoaded = errors.New("fontconfig library not loaded")

var (
	loading     sync.Once
	loadedLib   *Lib
	loadErr     error
	libraryName = defaultLibraryName()
	nameMutex   sync.Mutex
)

// Load returns the process-wide function table, resolving it on first use.
// Subsequent calls return the same table (or the same error).
func Load() (*Lib, error) {
	loading.Do(func() {
		loadedLib, loadErr = load()
		if loadErr != nil {
			tracer().Errorf("cannot load fontconfig (%s): %v", Linkage, loadErr)
			return
		}
		tracer().Debugf("fontconfig function table ready (%s)", Linkage)
	})
	return loadedLib, loadErr
}

// SetLibraryName overrides the shared object opened in dlopen mode. It has
// no effect after the first call to Load, nor in static mode.
func SetLibraryName(name string) {
	if name == "" {
		return
	}
	nameMutex.Lock()
	defer nameMutex.Unlock()
	libraryName = name
}

// LibraryName returns the shared object name used in dlopen mode.
func LibraryName() string {
	nameMutex.Lock()
	defer nameMutex.Unlock()
	return libraryName
}

func defaultLibraryName() string {
	if name := os.Getenv("FONTCONFIG_LIBRARY"); name != "" {
		return name
	}
	switch runtime.GOOS {
	case "darwin", "ios":
		return "libfontconfig.1.dylib"
	case "windows":
		return "libfontconfig-1.dll"
	}
	return "libfontconfig.so.1"
}
