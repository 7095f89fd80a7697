package locate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

func useFinders(fs ...finder) (restore func()) {
	findersLock.Lock()
	prev := finders
	finders = fs
	findersLock.Unlock()
	return func() {
		findersLock.Lock()
		finders = prev
		findersLock.Unlock()
	}
}

type countingFinder struct {
	calls int
	font  fontconfig.Font
}

func (cf *countingFinder) find(name string, style xfont.Style, weight xfont.Weight) (fontconfig.Font, error) {
	cf.calls++
	if cf.font.Path == "" {
		return fontconfig.Font{}, NotFound(name)
	}
	return cf.font, nil
}

func TestResolveFallsBackAndCaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.locate")
	defer teardown()
	//
	missing := &countingFinder{}
	system := &countingFinder{font: fontconfig.Font{Name: "Gentium-R", Path: "/fonts/Gentium-R.ttf"}}
	defer useFinders(finder{"fc", missing.find}, finder{"sys", system.find})()
	registry := NewRegistry()
	r := resolve(registry, "Gentium", xfont.StyleNormal, xfont.WeightNormal)
	require.NoError(t, r.err)
	assert.Equal(t, "/fonts/Gentium-R.ttf", r.font.Path)
	assert.Equal(t, 1, missing.calls)
	assert.Equal(t, 1, system.calls)
	r = resolve(registry, "gentium", xfont.StyleNormal, xfont.WeightNormal)
	require.NoError(t, r.err)
	assert.Equal(t, 1, system.calls, "second lookup must be served by the registry")
	assert.Equal(t, 1, registry.Len())
	registry.LogFontList()
}

func TestResolveNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.locate")
	defer teardown()
	//
	missing := &countingFinder{}
	defer useFinders(finder{"fc", missing.find})()
	promise := ResolveFont("No Such Font", xfont.StyleItalic, xfont.WeightBold)
	_, err := promise.Font()
	assert.True(t, errors.Is(err, fontconfig.ErrNoMatch))
	assert.Equal(t, fontconfig.ENOMATCH, fontconfig.Code(err))
	assert.Equal(t, "font not found: No Such Font", fontconfig.UserMessage(err))
}

func TestResolveCancel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.locate")
	defer teardown()
	//
	release := make(chan struct{})
	slow := func(name string, style xfont.Style, weight xfont.Weight) (fontconfig.Font, error) {
		<-release
		return fontconfig.Font{}, NotFound(name)
	}
	defer useFinders(finder{"slow", slow})()
	defer close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := ResolveFont("Slow Font", xfont.StyleNormal, xfont.WeightNormal).FontWithContext(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestResolveWithFontconfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.locate")
	defer teardown()
	//
	if err := fontconfig.Available(); err != nil {
		t.Skipf("fontconfig not usable: %v", err)
	}
	f, err := findFontConfigFont("DejaVu Sans", xfont.StyleNormal, xfont.WeightNormal)
	if err != nil {
		t.Skipf("DejaVu Sans not installed: %v", err)
	}
	assert.NotEmpty(t, f.Path)
	_, err = findFontConfigFont("No Such Font 4711", xfont.StyleNormal, xfont.WeightNormal)
	assert.Error(t, err, "substituted families must be rejected")
}

func TestLookupsShareOneConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.locate")
	defer teardown()
	//
	if err := fontconfig.Available(); err != nil {
		t.Skipf("fontconfig not usable: %v", err)
	}
	defer Release()
	first, err := fontConfig()
	require.NoError(t, err)
	second, err := fontConfig()
	require.NoError(t, err)
	assert.Same(t, first, second, "lookups must not re-initialize fontconfig")
	Release()
	Release() // must be harmless
	third, err := fontConfig()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestRegistryKeepsFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.locate")
	defer teardown()
	//
	registry := NewRegistry()
	registry.StoreFont("a", fontconfig.Font{Path: "/1"})
	registry.StoreFont("a", fontconfig.Font{Path: "/2"})
	registry.StoreFont("b", fontconfig.Font{})
	f, ok := registry.Font("a")
	assert.True(t, ok)
	assert.Equal(t, "/1", f.Path)
	_, ok = registry.Font("b")
	assert.False(t, ok)
	assert.Same(t, GlobalRegistry(), GlobalRegistry())
}

func TestNormalizeFontname(t *testing.T) {
	assert.Equal(t, "dejavu_sans", NormalizeFontname(" DejaVu Sans ", xfont.StyleNormal, xfont.WeightNormal))
	assert.Equal(t, "dejavu_sans-italic-bold", NormalizeFontname("DejaVu Sans", xfont.StyleOblique, xfont.WeightBlack))
	assert.Equal(t, "gentiumplus-r-light", NormalizeFontname("GentiumPlus-R.ttf", xfont.StyleNormal, xfont.WeightThin))
}

func TestGuessStyleAndWeight(t *testing.T) {
	s, w := GuessStyleAndWeight("/usr/share/fonts/DejaVuSans-Bold.ttf")
	assert.Equal(t, xfont.StyleNormal, s)
	assert.Equal(t, xfont.WeightBold, w)
	s, w = GuessStyleAndWeight("DejaVuSans-BoldOblique.ttf")
	assert.Equal(t, xfont.StyleItalic, s)
	assert.Equal(t, xfont.WeightBold, w)
	s, w = GuessStyleAndWeight("Calibri.ttf")
	assert.Equal(t, xfont.StyleNormal, s)
	assert.Equal(t, xfont.WeightNormal, w)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("/fonts/DejaVuSans-Bold.ttf", "DejaVu Sans", xfont.StyleNormal, xfont.WeightBold))
	assert.True(t, Matches("/fonts/DejaVuSans-Bold.ttf", "dejavu sans", xfont.StyleNormal, xfont.WeightSemiBold))
	assert.False(t, Matches("/fonts/DejaVuSans-Bold.ttf", "DejaVu Sans", xfont.StyleNormal, xfont.WeightNormal))
	assert.False(t, Matches("/fonts/DejaVuSerif.ttf", "DejaVu Sans", xfont.StyleNormal, xfont.WeightNormal))
	assert.True(t, Matches("/fonts/DejaVuSans-Oblique.ttf", "DejaVu Sans", xfont.StyleItalic, xfont.WeightNormal))
}
