package fontconfig

import (
	"sort"
	"unsafe"

	"github.com/npillmayer/fontconfig/sys"
)

// fakeFc is a function table without a native library behind it. It keeps
// just enough state to test ownership and translation logic.
type fakeFc struct {
	inits, finis int
	appDirs      []string
	destroyed    map[*sys.Pattern]int
	fontsets     map[*sys.FontSet][]*sys.Pattern
	getResult    sys.Result
	pages        map[uint32]sys.Page // base → bitmap
	bases        []uint32
}

func fakePattern() *sys.Pattern {
	return (*sys.Pattern)(unsafe.Pointer(new(uint64)))
}

func fakeCharSet() *sys.CharSet {
	return (*sys.CharSet)(unsafe.Pointer(new(uint64)))
}

func newFake() (*fakeFc, *sys.Lib) {
	f := &fakeFc{
		destroyed: make(map[*sys.Pattern]int),
		fontsets:  make(map[*sys.FontSet][]*sys.Pattern),
		getResult: sys.ResultMatch,
	}
	lib := &sys.Lib{
		Init:       func() sys.Bool { f.inits++; return sys.True },
		Fini:       func() { f.finis++ },
		GetVersion: func() int32 { return 21401 },
		ConfigAppFontAddDir: func(_ *sys.Config, dir string) sys.Bool {
			f.appDirs = append(f.appDirs, dir)
			return sys.True
		},
		NameParse:     func(name string) *sys.Pattern { return nil },
		PatternCreate: func() *sys.Pattern { return fakePattern() },
		PatternDestroy: func(p *sys.Pattern) {
			f.destroyed[p]++
		},
		PatternAddString: func(*sys.Pattern, string, string) sys.Bool { return sys.False },
		PatternGetString: func(_ *sys.Pattern, _ string, _ int32, s **byte) sys.Result {
			return f.getResult
		},
		FontMatch: func(_ *sys.Config, _ *sys.Pattern, result *sys.Result) *sys.Pattern {
			*result = sys.ResultNoMatch
			return nil
		},
		FontSetCreate: func() *sys.FontSet {
			fs := &sys.FontSet{}
			f.fontsets[fs] = nil
			return fs
		},
		FontSetAdd: func(fs *sys.FontSet, p *sys.Pattern) sys.Bool {
			pats := append(f.fontsets[fs], p)
			f.fontsets[fs] = pats
			fs.Fonts = &pats[0]
			fs.NFont, fs.SFont = int32(len(pats)), int32(cap(pats))
			return sys.True
		},
		FontSetDestroy: func(fs *sys.FontSet) {
			for _, p := range f.fontsets[fs] {
				f.destroyed[p]++
			}
			delete(f.fontsets, fs)
		},
		CharSetFirstPage: func(_ *sys.CharSet, page *sys.Page, next *uint32) uint32 {
			return f.page(0, page, next)
		},
		CharSetNextPage: func(_ *sys.CharSet, page *sys.Page, next *uint32) uint32 {
			for i, base := range f.bases {
				if base == *next {
					return f.page(i, page, next)
				}
			}
			return sys.CharSetDone
		},
		CharSetCount: func(*sys.CharSet) uint32 { return 0 },
	}
	return f, lib
}

func (f *fakeFc) page(i int, page *sys.Page, next *uint32) uint32 {
	if i >= len(f.bases) {
		return sys.CharSetDone
	}
	*page = f.pages[f.bases[i]]
	if i+1 < len(f.bases) {
		*next = f.bases[i+1]
	} else {
		*next = sys.CharSetDone
	}
	return f.bases[i]
}

// setRunes lays out runes as fontconfig does: one 256 code point page per
// populated block, 8 words of 32 bits each.
func (f *fakeFc) setRunes(runes ...rune) {
	f.pages = make(map[uint32]sys.Page)
	f.bases = nil
	for _, r := range runes {
		base := uint32(r) &^ 0xff
		page, ok := f.pages[base]
		if !ok {
			f.bases = append(f.bases, base)
		}
		off := uint32(r) & 0xff
		page[off/32] |= 1 << (off % 32)
		f.pages[base] = page
	}
	sort.Slice(f.bases, func(i, j int) bool { return f.bases[i] < f.bases[j] })
}
