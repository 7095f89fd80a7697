package fontconfig

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontconfig/sys"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCounter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	fake, lib := newFake()
	defer useLibrary(lib)()
	c1, err := New()
	require.NoError(t, err)
	c2, err := New()
	require.NoError(t, err)
	assert.Equal(t, 1, fake.inits, "expected exactly one FcInit")
	c1.Close()
	assert.Equal(t, 0, fake.finis, "dropping one of two handles must not finalize")
	c1.Close()
	assert.Equal(t, 0, fake.finis, "second Close must be a no-op")
	c2.Close()
	assert.Equal(t, 1, fake.finis, "dropping the last handle must finalize")
	c3, err := New()
	require.NoError(t, err)
	assert.Equal(t, 2, fake.inits)
	c3.Close()
	assert.Equal(t, 2, fake.finis)
}

func TestInitFailureAsserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	_, lib := newFake()
	lib.Init = func() sys.Bool { return sys.False }
	defer useLibrary(lib)()
	assert.Panics(t, func() { New() })
	assert.Equal(t, 0, initCount)
}

func TestConfigureAppFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	fake, lib := newFake()
	defer useLibrary(lib)()
	defer func() { appFontDirs = nil }()
	sep := string(filepath.ListSeparator)
	Configure(testconfig.Conf{
		"fontconfig.library":  sys.LibraryName(),
		"fontconfig.appfonts": "/opt/fonts" + sep + " " + sep + "/home/me/fonts",
	})
	cfg, err := New()
	require.NoError(t, err)
	defer cfg.Close()
	assert.Equal(t, []string{"/opt/fonts", "/home/me/fonts"}, fake.appDirs)
}

func TestParseFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	_, lib := newFake()
	defer useLibrary(lib)()
	p, err := ParsePattern("::::")
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, EPARSE, Code(err))
}

func TestGetterResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	fake, lib := newFake()
	defer useLibrary(lib)()
	pat := NewPattern()
	defer pat.Destroy()
	for r, want := range map[sys.Result]error{
		sys.ResultNoMatch:      ErrNoMatch,
		sys.ResultTypeMismatch: ErrTypeMismatch,
		sys.ResultNoId:         ErrNoID,
		sys.ResultOutOfMemory:  ErrOutOfMemory,
	} {
		fake.getResult = r
		_, err := pat.GetStringAt(FAMILY, 1)
		assert.True(t, errors.Is(err, want), "result %d: got %v", r, err)
	}
	_, err := pat.FontMatch(nil)
	assert.True(t, errors.Is(err, ErrNoMatch))
	assert.Panics(t, func() { pat.AddString(FAMILY, "Foo") }, "failing add must assert")
}

func TestDestroyIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	fake, lib := newFake()
	defer useLibrary(lib)()
	pat := NewPattern()
	raw := pat.p
	pat.Destroy()
	pat.Destroy()
	assert.Equal(t, 1, fake.destroyed[raw])
	assert.True(t, pat.IsNil())
	assert.Panics(t, func() { pat.Hash() }, "use after Destroy must panic")
	var nilpat *Pattern
	assert.NotPanics(t, func() { nilpat.Destroy() })
}

func TestPushTransfersOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	fake, lib := newFake()
	defer useLibrary(lib)()
	fs := NewFontSet()
	pat := NewPattern()
	raw := pat.p
	fs.Push(pat)
	assert.True(t, pat.IsNil(), "pushed pattern must be invalidated")
	pat.Destroy() // no-op
	assert.Equal(t, 0, fake.destroyed[raw])
	assert.Equal(t, 1, fs.Len())
	for pass := 0; pass < 2; pass++ {
		n := 0
		it := fs.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			assert.Equal(t, raw, p.p)
			n++
		}
		assert.Equal(t, 1, n, "pass %d", pass)
	}
	assert.Len(t, fs.Patterns(), 1)
	assert.Panics(t, func() { fs.At(1) })
	fs.Destroy()
	fs.Destroy()
	assert.Equal(t, 1, fake.destroyed[raw], "font set must destroy its patterns once")
}

func TestCharSetIteratorPages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	fake, lib := newFake()
	defer useLibrary(lib)()
	fake.setRunes('😐', '汉', 'a', '字', 'c', 'b', 0xff, 0x100, 0x1f)
	cs := CharSetRef{fakeCharSet()}
	assert.Equal(t, []rune{0x1f, 'a', 'b', 'c', 0xff, 0x100, '字', '汉', '😐'}, cs.Runes())
	fake.setRunes()
	assert.Empty(t, cs.Runes())
	assert.Equal(t, "", cs.String())
	fake.setRunes('a', 'b', 'c', 'x', 0x5b57)
	assert.Equal(t, "61-63 78 5b57", cs.String())
}
