//go:build cgo && !fcdlopen

package sys

/*
#cgo pkg-config: fontconfig freetype2
#include <stdlib.h>
#include <fontconfig/fontconfig.h>
#include <fontconfig/fcfreetype.h>
*/
import "C"

import "unsafe"

// Linkage names the symbol resolution mode compiled in.
const Linkage = "static"

func cstr(s string) *C.char { return C.CString(s) }
func ustr(s *C.char) *C.FcChar8 { return (*C.FcChar8)(unsafe.Pointer(s)) }
func free(s *C.char) { C.free(unsafe.Pointer(s)) }
func ccfg(c *Config) *C.FcConfig { return (*C.FcConfig)(unsafe.Pointer(c)) }
func cpat(p *Pattern) *C.FcPattern { return (*C.FcPattern)(unsafe.Pointer(p)) }
func gpat(p *C.FcPattern) *Pattern { return (*Pattern)(unsafe.Pointer(p)) }
func ccs(c *CharSet) *C.FcCharSet { return (*C.FcCharSet)(unsafe.Pointer(c)) }
func gcs(c *C.FcCharSet) *CharSet { return (*CharSet)(unsafe.Pointer(c)) }
func cls(l *LangSet) *C.FcLangSet { return (*C.FcLangSet)(unsafe.Pointer(l)) }
func cfs(s *FontSet) *C.FcFontSet { return (*C.FcFontSet)(unsafe.Pointer(s)) }
func gfs(s *C.FcFontSet) *FontSet { return (*FontSet)(unsafe.Pointer(s)) }
func cos(o *ObjectSet) *C.FcObjectSet { return (*C.FcObjectSet)(unsafe.Pointer(o)) }
func cmx(m *Matrix) *C.FcMatrix { return (*C.FcMatrix)(unsafe.Pointer(m)) }
func css(s *StrSet) *C.FcStrSet { return (*C.FcStrSet)(unsafe.Pointer(s)) }
func gss(s *C.FcStrSet) *StrSet { return (*StrSet)(unsafe.Pointer(s)) }
func csl(l *StrList) *C.FcStrList { return (*C.FcStrList)(unsafe.Pointer(l)) }
func gsl(l *C.FcStrList) *StrList { return (*StrList)(unsafe.Pointer(l)) }
func cres(r *Result) *C.FcResult { return (*C.FcResult)(unsafe.Pointer(r)) }
func gstr(s *C.FcChar8) *byte { return (*byte)(unsafe.Pointer(s)) }

func load() (*Lib, error) {
	return &Lib{
		Init:       func() Bool { return Bool(C.FcInit()) },
		Fini:       func() { C.FcFini() },
		GetVersion: func() int32 { return int32(C.FcGetVersion()) },

		ConfigGetCurrent: func() *Config {
			return (*Config)(unsafe.Pointer(C.FcConfigGetCurrent()))
		},
		ConfigSubstitute: func(config *Config, p *Pattern, kind MatchKind) Bool {
			return Bool(C.FcConfigSubstitute(ccfg(config), cpat(p), C.FcMatchKind(kind)))
		},
		ConfigSubstituteWithPat: func(config *Config, p *Pattern, pPat *Pattern, kind MatchKind) Bool {
			return Bool(C.FcConfigSubstituteWithPat(ccfg(config), cpat(p), cpat(pPat), C.FcMatchKind(kind)))
		},
		ConfigAppFontAddFile: func(config *Config, file string) Bool {
			f := cstr(file)
			defer free(f)
			return Bool(C.FcConfigAppFontAddFile(ccfg(config), ustr(f)))
		},
		ConfigAppFontAddDir: func(config *Config, dir string) Bool {
			d := cstr(dir)
			defer free(d)
			return Bool(C.FcConfigAppFontAddDir(ccfg(config), ustr(d)))
		},
		ConfigAppFontClear: func(config *Config) { C.FcConfigAppFontClear(ccfg(config)) },
		ConfigGetFontDirs: func(config *Config) *StrList {
			return gsl(C.FcConfigGetFontDirs(ccfg(config)))
		},
		ConfigGetConfigFiles: func(config *Config) *StrList {
			return gsl(C.FcConfigGetConfigFiles(ccfg(config)))
		},
		ConfigGetFonts: func(config *Config, set SetName) *FontSet {
			return gfs(C.FcConfigGetFonts(ccfg(config), C.FcSetName(set)))
		},
		ConfigUptoDate: func(config *Config) Bool { return Bool(C.FcConfigUptoDate(ccfg(config))) },
		ConfigGetRescanInterval: func(config *Config) int32 {
			return int32(C.FcConfigGetRescanInterval(ccfg(config)))
		},

		DefaultSubstitute: func(p *Pattern) { C.FcDefaultSubstitute(cpat(p)) },
		FontMatch: func(config *Config, p *Pattern, result *Result) *Pattern {
			return gpat(C.FcFontMatch(ccfg(config), cpat(p), cres(result)))
		},
		FontSort: func(config *Config, p *Pattern, trim Bool, csp **CharSet, result *Result) *FontSet {
			return gfs(C.FcFontSort(ccfg(config), cpat(p), C.FcBool(trim),
				(**C.FcCharSet)(unsafe.Pointer(csp)), cres(result)))
		},
		FontList: func(config *Config, p *Pattern, os *ObjectSet) *FontSet {
			return gfs(C.FcFontList(ccfg(config), cpat(p), cos(os)))
		},
		FontRenderPrepare: func(config *Config, pat *Pattern, font *Pattern) *Pattern {
			return gpat(C.FcFontRenderPrepare(ccfg(config), cpat(pat), cpat(font)))
		},
		FontSetMatch: func(config *Config, sets **FontSet, nsets int32, p *Pattern, result *Result) *Pattern {
			return gpat(C.FcFontSetMatch(ccfg(config), (**C.FcFontSet)(unsafe.Pointer(sets)),
				C.int(nsets), cpat(p), cres(result)))
		},

		NameParse: func(name string) *Pattern {
			n := cstr(name)
			defer free(n)
			return gpat(C.FcNameParse(ustr(n)))
		},
		NameUnparse: func(p *Pattern) *byte { return gstr(C.FcNameUnparse(cpat(p))) },
		StrFree:     func(s *byte) { C.FcStrFree((*C.FcChar8)(unsafe.Pointer(s))) },

		PatternCreate:    func() *Pattern { return gpat(C.FcPatternCreate()) },
		PatternDuplicate: func(p *Pattern) *Pattern { return gpat(C.FcPatternDuplicate(cpat(p))) },
		PatternReference: func(p *Pattern) { C.FcPatternReference(cpat(p)) },
		PatternDestroy:   func(p *Pattern) { C.FcPatternDestroy(cpat(p)) },
		PatternEqual: func(pa *Pattern, pb *Pattern) Bool {
			return Bool(C.FcPatternEqual(cpat(pa), cpat(pb)))
		},
		PatternHash: func(p *Pattern) uint32 { return uint32(C.FcPatternHash(cpat(p))) },
		PatternDel: func(p *Pattern, object string) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternDel(cpat(p), o))
		},
		PatternRemove: func(p *Pattern, object string, id int32) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternRemove(cpat(p), o, C.int(id)))
		},
		PatternFilter: func(p *Pattern, os *ObjectSet) *Pattern {
			return gpat(C.FcPatternFilter(cpat(p), cos(os)))
		},
		PatternFormat: func(p *Pattern, format string) *byte {
			f := cstr(format)
			defer free(f)
			return gstr(C.FcPatternFormat(cpat(p), ustr(f)))
		},
		PatternPrint: func(p *Pattern) { C.FcPatternPrint(cpat(p)) },
		PatternAddInteger: func(p *Pattern, object string, i int32) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternAddInteger(cpat(p), o, C.int(i)))
		},
		PatternAddDouble: func(p *Pattern, object string, d float64) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternAddDouble(cpat(p), o, C.double(d)))
		},
		PatternAddString: func(p *Pattern, object string, s string) Bool {
			o, v := cstr(object), cstr(s)
			defer free(o)
			defer free(v)
			return Bool(C.FcPatternAddString(cpat(p), o, ustr(v)))
		},
		PatternAddBool: func(p *Pattern, object string, b Bool) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternAddBool(cpat(p), o, C.FcBool(b)))
		},
		PatternAddMatrix: func(p *Pattern, object string, m *Matrix) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternAddMatrix(cpat(p), o, cmx(m)))
		},
		PatternAddCharSet: func(p *Pattern, object string, c *CharSet) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternAddCharSet(cpat(p), o, ccs(c)))
		},
		PatternAddLangSet: func(p *Pattern, object string, ls *LangSet) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcPatternAddLangSet(cpat(p), o, cls(ls)))
		},
		PatternGetInteger: func(p *Pattern, object string, n int32, i *int32) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetInteger(cpat(p), o, C.int(n), (*C.int)(unsafe.Pointer(i))))
		},
		PatternGetDouble: func(p *Pattern, object string, n int32, d *float64) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetDouble(cpat(p), o, C.int(n), (*C.double)(unsafe.Pointer(d))))
		},
		PatternGetString: func(p *Pattern, object string, n int32, s **byte) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetString(cpat(p), o, C.int(n), (**C.FcChar8)(unsafe.Pointer(s))))
		},
		PatternGetBool: func(p *Pattern, object string, n int32, b *Bool) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetBool(cpat(p), o, C.int(n), (*C.FcBool)(unsafe.Pointer(b))))
		},
		PatternGetMatrix: func(p *Pattern, object string, n int32, m **Matrix) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetMatrix(cpat(p), o, C.int(n), (**C.FcMatrix)(unsafe.Pointer(m))))
		},
		PatternGetCharSet: func(p *Pattern, object string, n int32, c **CharSet) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetCharSet(cpat(p), o, C.int(n), (**C.FcCharSet)(unsafe.Pointer(c))))
		},
		PatternGetLangSet: func(p *Pattern, object string, n int32, ls **LangSet) Result {
			o := cstr(object)
			defer free(o)
			return Result(C.FcPatternGetLangSet(cpat(p), o, C.int(n), (**C.FcLangSet)(unsafe.Pointer(ls))))
		},

		CharSetCreate:  func() *CharSet { return gcs(C.FcCharSetCreate()) },
		CharSetDestroy: func(c *CharSet) { C.FcCharSetDestroy(ccs(c)) },
		CharSetAddChar: func(c *CharSet, ucs4 uint32) Bool {
			return Bool(C.FcCharSetAddChar(ccs(c), C.FcChar32(ucs4)))
		},
		CharSetDelChar: func(c *CharSet, ucs4 uint32) Bool {
			return Bool(C.FcCharSetDelChar(ccs(c), C.FcChar32(ucs4)))
		},
		CharSetCopy:      func(c *CharSet) *CharSet { return gcs(C.FcCharSetCopy(ccs(c))) },
		CharSetEqual:     func(a *CharSet, b *CharSet) Bool { return Bool(C.FcCharSetEqual(ccs(a), ccs(b))) },
		CharSetIntersect: func(a *CharSet, b *CharSet) *CharSet { return gcs(C.FcCharSetIntersect(ccs(a), ccs(b))) },
		CharSetUnion:     func(a *CharSet, b *CharSet) *CharSet { return gcs(C.FcCharSetUnion(ccs(a), ccs(b))) },
		CharSetSubtract:  func(a *CharSet, b *CharSet) *CharSet { return gcs(C.FcCharSetSubtract(ccs(a), ccs(b))) },
		CharSetMerge: func(a *CharSet, b *CharSet, changed *Bool) Bool {
			return Bool(C.FcCharSetMerge(ccs(a), ccs(b), (*C.FcBool)(unsafe.Pointer(changed))))
		},
		CharSetHasChar: func(c *CharSet, ucs4 uint32) Bool {
			return Bool(C.FcCharSetHasChar(ccs(c), C.FcChar32(ucs4)))
		},
		CharSetCount: func(c *CharSet) uint32 { return uint32(C.FcCharSetCount(ccs(c))) },
		CharSetIntersectCount: func(a *CharSet, b *CharSet) uint32 {
			return uint32(C.FcCharSetIntersectCount(ccs(a), ccs(b)))
		},
		CharSetSubtractCount: func(a *CharSet, b *CharSet) uint32 {
			return uint32(C.FcCharSetSubtractCount(ccs(a), ccs(b)))
		},
		CharSetIsSubset: func(a *CharSet, b *CharSet) Bool { return Bool(C.FcCharSetIsSubset(ccs(a), ccs(b))) },
		CharSetFirstPage: func(c *CharSet, page *Page, next *uint32) uint32 {
			return uint32(C.FcCharSetFirstPage(ccs(c), (*C.FcChar32)(unsafe.Pointer(&page[0])),
				(*C.FcChar32)(unsafe.Pointer(next))))
		},
		CharSetNextPage: func(c *CharSet, page *Page, next *uint32) uint32 {
			return uint32(C.FcCharSetNextPage(ccs(c), (*C.FcChar32)(unsafe.Pointer(&page[0])),
				(*C.FcChar32)(unsafe.Pointer(next))))
		},

		LangSetCreate:  func() *LangSet { return (*LangSet)(unsafe.Pointer(C.FcLangSetCreate())) },
		LangSetDestroy: func(ls *LangSet) { C.FcLangSetDestroy(cls(ls)) },
		LangSetCopy: func(ls *LangSet) *LangSet {
			return (*LangSet)(unsafe.Pointer(C.FcLangSetCopy(cls(ls))))
		},
		LangSetAdd: func(ls *LangSet, lang string) Bool {
			l := cstr(lang)
			defer free(l)
			return Bool(C.FcLangSetAdd(cls(ls), ustr(l)))
		},
		LangSetDel: func(ls *LangSet, lang string) Bool {
			l := cstr(lang)
			defer free(l)
			return Bool(C.FcLangSetDel(cls(ls), ustr(l)))
		},
		LangSetCompare: func(a *LangSet, b *LangSet) LangResult {
			return LangResult(C.FcLangSetCompare(cls(a), cls(b)))
		},
		LangSetContains: func(a *LangSet, b *LangSet) Bool { return Bool(C.FcLangSetContains(cls(a), cls(b))) },
		LangSetEqual:    func(a *LangSet, b *LangSet) Bool { return Bool(C.FcLangSetEqual(cls(a), cls(b))) },
		LangSetHasLang: func(ls *LangSet, lang string) LangResult {
			l := cstr(lang)
			defer free(l)
			return LangResult(C.FcLangSetHasLang(cls(ls), ustr(l)))
		},
		LangSetGetLangs: func(ls *LangSet) *StrSet { return gss(C.FcLangSetGetLangs(cls(ls))) },
		LangSetHash:     func(ls *LangSet) uint32 { return uint32(C.FcLangSetHash(cls(ls))) },
		LangGetCharSet: func(lang string) *CharSet {
			l := cstr(lang)
			defer free(l)
			return gcs(C.FcLangGetCharSet(ustr(l)))
		},
		GetDefaultLangs: func() *StrSet { return gss(C.FcGetDefaultLangs()) },

		FontSetCreate:  func() *FontSet { return gfs(C.FcFontSetCreate()) },
		FontSetDestroy: func(s *FontSet) { C.FcFontSetDestroy(cfs(s)) },
		FontSetAdd:     func(s *FontSet, p *Pattern) Bool { return Bool(C.FcFontSetAdd(cfs(s), cpat(p))) },
		FontSetPrint:   func(s *FontSet) { C.FcFontSetPrint(cfs(s)) },

		ObjectSetCreate: func() *ObjectSet { return (*ObjectSet)(unsafe.Pointer(C.FcObjectSetCreate())) },
		ObjectSetAdd: func(os *ObjectSet, object string) Bool {
			o := cstr(object)
			defer free(o)
			return Bool(C.FcObjectSetAdd(cos(os), o))
		},
		ObjectSetDestroy: func(os *ObjectSet) { C.FcObjectSetDestroy(cos(os)) },

		MatrixMultiply: func(result *Matrix, a *Matrix, b *Matrix) { C.FcMatrixMultiply(cmx(result), cmx(a), cmx(b)) },
		MatrixRotate:   func(m *Matrix, c float64, s float64) { C.FcMatrixRotate(cmx(m), C.double(c), C.double(s)) },
		MatrixScale:    func(m *Matrix, sx float64, sy float64) { C.FcMatrixScale(cmx(m), C.double(sx), C.double(sy)) },
		MatrixShear:    func(m *Matrix, sh float64, sv float64) { C.FcMatrixShear(cmx(m), C.double(sh), C.double(sv)) },
		MatrixEqual:    func(a *Matrix, b *Matrix) Bool { return Bool(C.FcMatrixEqual(cmx(a), cmx(b))) },

		StrSetCreate: func() *StrSet { return gss(C.FcStrSetCreate()) },
		StrSetAdd: func(set *StrSet, s string) Bool {
			v := cstr(s)
			defer free(v)
			return Bool(C.FcStrSetAdd(css(set), ustr(v)))
		},
		StrSetDel: func(set *StrSet, s string) Bool {
			v := cstr(s)
			defer free(v)
			return Bool(C.FcStrSetDel(css(set), ustr(v)))
		},
		StrSetMember: func(set *StrSet, s string) Bool {
			v := cstr(s)
			defer free(v)
			return Bool(C.FcStrSetMember(css(set), ustr(v)))
		},
		StrSetEqual:   func(a *StrSet, b *StrSet) Bool { return Bool(C.FcStrSetEqual(css(a), css(b))) },
		StrSetDestroy: func(set *StrSet) { C.FcStrSetDestroy(css(set)) },
		StrListCreate: func(set *StrSet) *StrList { return gsl(C.FcStrListCreate(css(set))) },
		StrListFirst:  func(list *StrList) { C.FcStrListFirst(csl(list)) },
		StrListNext:   func(list *StrList) *byte { return gstr(C.FcStrListNext(csl(list))) },
		StrListDone:   func(list *StrList) { C.FcStrListDone(csl(list)) },

		FreeTypeQueryAll: func(file string, id uint32, blanks *Blanks, count *int32, set *FontSet) uint32 {
			f := cstr(file)
			defer free(f)
			return uint32(C.FcFreeTypeQueryAll(ustr(f), C.uint(id), (*C.FcBlanks)(unsafe.Pointer(blanks)),
				(*C.int)(unsafe.Pointer(count)), cfs(set)))
		},
	}, nil
}
