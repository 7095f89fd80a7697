package locate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontconfig"
	xfont "golang.org/x/image/font"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	return fontconfig.Error(fontconfig.ENOMATCH, "font not found: %s", name)
}

// finder looks up a font in one particular place.
type finder struct {
	name string
	find func(name string, style xfont.Style, weight xfont.Weight) (fontconfig.Font, error)
}

var (
	findersLock sync.Mutex
	finders     = []finder{
		{"fontconfig", findFontConfigFont},
		{"system", findSystemFont},
	}
)

func currentFinders() []finder {
	findersLock.Lock()
	defer findersLock.Unlock()
	return finders
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font fontconfig.Font
	err  error
}

// FontPromise is the result of ResolveFont.
type FontPromise interface {
	Font() (fontconfig.Font, error)
	FontWithContext(ctx context.Context) (fontconfig.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (fontconfig.Font, error)
}

// Font blocks until the font is located.
func (loader fontLoader) Font() (fontconfig.Font, error) {
	return loader.await(context.Background())
}

// FontWithContext blocks until the font is located or ctx is done.
func (loader fontLoader) FontWithContext(ctx context.Context) (fontconfig.Font, error) {
	return loader.await(ctx)
}

// ResolveFont locates a font file for a family name with a given style and
// weight. Fonts found are stored in the global registry.
func ResolveFont(name string, style xfont.Style, weight xfont.Weight) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		ch <- resolve(GlobalRegistry(), name, style, weight)
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (fontconfig.Font, error) {
			select {
			case <-ctx.Done():
				return fontconfig.Font{}, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func resolve(registry *Registry, name string, style xfont.Style, weight xfont.Weight) fontPlusErr {
	key := NormalizeFontname(name, style, weight)
	if f, ok := registry.Font(key); ok {
		tracer().Debugf("registry has font %s", key)
		return fontPlusErr{font: f}
	}
	for _, fdr := range currentFinders() {
		f, err := fdr.find(name, style, weight)
		if err != nil {
			tracer().Debugf("%s lookup for %s: %v", fdr.name, key, err)
			continue
		}
		tracer().Infof("%s lookup found %s for %s", fdr.name, f.Path, key)
		registry.StoreFont(key, f)
		return fontPlusErr{font: f}
	}
	return fontPlusErr{err: NotFound(name)}
}

var (
	sharedConfigLock sync.Mutex
	sharedConfig     *fontconfig.Config
)

// fontConfig acquires fontconfig on first use and keeps it for subsequent
// lookups. A failed acquisition is retried on the next call.
func fontConfig() (*fontconfig.Config, error) {
	sharedConfigLock.Lock()
	defer sharedConfigLock.Unlock()
	if sharedConfig == nil {
		cfg, err := fontconfig.New()
		if err != nil {
			return nil, err
		}
		sharedConfig = cfg
	}
	return sharedConfig, nil
}

// Release drops the fontconfig handle held for lookups. Fonts already
// located stay in the registry; a later lookup acquires fontconfig again.
func Release() {
	sharedConfigLock.Lock()
	defer sharedConfigLock.Unlock()
	sharedConfig.Close()
	sharedConfig = nil
}

// findFontConfigFont asks fontconfig for the best match. fontconfig will
// always come up with some font; matches of a different family are rejected.
func findFontConfigFont(name string, style xfont.Style, weight xfont.Weight) (fontconfig.Font, error) {
	cfg, err := fontConfig()
	if err != nil {
		return fontconfig.Font{}, err
	}
	pat := fontconfig.NewPattern()
	defer pat.Destroy()
	pat.AddString(fontconfig.FAMILY, name)
	pat.AddXStyle(style)
	pat.AddXWeight(weight)
	match, err := cfg.Match(pat.Ref())
	if err != nil {
		return fontconfig.Font{}, err
	}
	defer match.Destroy()
	if !match.SameFamily(name) {
		fam, _ := match.Family()
		return fontconfig.Font{}, fmt.Errorf("fontconfig substituted %q for %q", fam, name)
	}
	return fontconfig.FontFromPattern(match.Ref())
}

// findSystemFont searches the system font directories by file name.
func findSystemFont(name string, style xfont.Style, weight xfont.Weight) (fontconfig.Font, error) {
	for _, fpath := range findfont.List() {
		if Matches(fpath, name, style, weight) {
			return fontFromPath(name, fpath), nil
		}
	}
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return fontconfig.Font{}, NotFound(name)
	}
	return fontFromPath(name, fpath), nil
}

func fontFromPath(family, fpath string) fontconfig.Font {
	base := filepath.Base(fpath)
	return fontconfig.Font{
		Name:   strings.TrimSuffix(base, filepath.Ext(base)),
		Family: family,
		Path:   fpath,
	}
}
