package fontconfig

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/npillmayer/fontconfig/sys"
	"github.com/npillmayer/schuko"
)

// MatchKind selects the rule set applied by Config.Substitute.
type MatchKind = sys.MatchKind

const (
	MatchPattern = sys.MatchPattern // rules for font requests
	MatchFont    = sys.MatchFont    // rules for fonts found
	MatchScan    = sys.MatchScan    // rules applied while scanning font files
)

// SetName selects one of the font sets of a configuration.
type SetName = sys.SetName

const (
	SetSystem      = sys.SetSystem
	SetApplication = sys.SetApplication
)

// Config is a handle for the current fontconfig configuration.
//
// Fontconfig is initialized when the first Config is created and shut down
// when the last one is closed. Handles themselves are not safe for concurrent
// use, see fontconfig's own documentation on thread safety.
type Config struct {
	lib    *sys.Lib
	closed bool
}

var (
	initLock    sync.Mutex
	initCount   int
	appFontDirs []string
)

// New acquires the fontconfig library. Clients must call Close when done.
// It returns an error with code ELIBRARY if fontconfig cannot be loaded.
func New() (*Config, error) {
	lib, err := library()
	if err != nil {
		return nil, err
	}
	initLock.Lock()
	defer initLock.Unlock()
	if initCount == 0 {
		must(lib.Init(), "FcInit")
		tracer().Infof("fontconfig initialized, version %d (%s)", lib.GetVersion(), sys.Linkage)
		for _, dir := range appFontDirs {
			if lib.ConfigAppFontAddDir(nil, dir) == sys.False {
				tracer().Errorf("cannot add application font directory %s", dir)
			}
		}
	}
	initCount++
	return &Config{lib: lib}, nil
}

// Close releases the handle. The last Close shuts fontconfig down. It is
// safe to call Close more than once.
func (cfg *Config) Close() {
	if cfg == nil || cfg.closed {
		return
	}
	cfg.closed = true
	initLock.Lock()
	defer initLock.Unlock()
	initCount--
	if initCount == 0 {
		cfg.lib.Fini()
		tracer().Infof("fontconfig finalized")
	}
}

// handle is always NULL, which fontconfig reads as the current configuration.
// It is valid for a nil *Config.
func (cfg *Config) handle() *sys.Config {
	return nil
}

// Configure takes settings from an application configuration:
//
//	fontconfig.library   shared object to open in dlopen mode
//	fontconfig.appfonts  list of font directories, separated by the OS path list separator
//
// Configure must be called before the first call to New.
func Configure(conf schuko.Configuration) {
	if conf == nil {
		return
	}
	if name := conf.GetString("fontconfig.library"); name != "" {
		tracer().Debugf("config[fontconfig.library] = %s", name)
		sys.SetLibraryName(name)
	}
	if dirs := conf.GetString("fontconfig.appfonts"); dirs != "" {
		tracer().Debugf("config[fontconfig.appfonts] = %s", dirs)
		initLock.Lock()
		defer initLock.Unlock()
		appFontDirs = appFontDirs[:0]
		for _, dir := range filepath.SplitList(dirs) {
			if dir = strings.TrimSpace(dir); dir != "" {
				appFontDirs = append(appFontDirs, dir)
			}
		}
	}
}

// --- Substitution and matching ---------------------------------------------

// Substitute applies the configuration's rules of the given kind to p.
func (cfg *Config) Substitute(p *Pattern, kind MatchKind) {
	must(fc().ConfigSubstitute(cfg.handle(), p.raw(), kind), "substitution of kind %d", kind)
}

// SubstituteWithPat applies the configuration's rules of the given kind to
// p. For kind MatchFont, pat is the pattern originally requested.
func (cfg *Config) SubstituteWithPat(p *Pattern, pat PatternRef, kind MatchKind) {
	must(fc().ConfigSubstituteWithPat(cfg.handle(), p.raw(), pat.raw(), kind),
		"substitution of kind %d", kind)
}

// Match returns the font which best matches p, after applying configuration
// and default substitutions to a copy of p.
func (cfg *Config) Match(p PatternRef) (*Pattern, error) {
	req := p.Duplicate()
	defer req.Destroy()
	cfg.Substitute(req, MatchPattern)
	req.DefaultSubstitute()
	return req.FontMatch(cfg)
}

// Sort returns all fonts sorted by closeness to p, after applying
// substitutions to a copy of p.
func (cfg *Config) Sort(p PatternRef, trim bool) (*FontSet, error) {
	req := p.Duplicate()
	defer req.Destroy()
	cfg.Substitute(req, MatchPattern)
	req.DefaultSubstitute()
	return req.FontSort(cfg, trim)
}

// Find looks up a font by family and, optionally, style (e.g. "Bold").
func (cfg *Config) Find(family string, style string) (Font, error) {
	pat := NewPattern()
	defer pat.Destroy()
	pat.AddString(FAMILY, family)
	if style != "" {
		pat.AddString(STYLE, style)
	}
	match, err := cfg.Match(pat.Ref())
	if err != nil {
		return Font{}, err
	}
	defer match.Destroy()
	tracer().Debugf("%s:%s matched %s", family, style, match)
	return FontFromPattern(match.Ref())
}

// ListFonts returns the fonts matching p, reduced to the objects in os. A
// zero p lists all fonts, a nil os keeps all objects.
func (cfg *Config) ListFonts(p PatternRef, os *ObjectSet) (*FontSet, error) {
	if p.IsNil() {
		all := NewPattern()
		defer all.Destroy()
		p = all.Ref()
	}
	return p.FontList(cfg, os)
}

// FontSetMatch returns the best match for p among the given font sets.
// Unlike Match, no substitution is performed.
func (cfg *Config) FontSetMatch(sets []FontSetRef, p PatternRef) (*Pattern, error) {
	raws := make([]*sys.FontSet, 0, len(sets))
	for _, s := range sets {
		if s.s != nil {
			raws = append(raws, s.s)
		}
	}
	if len(raws) == 0 {
		return nil, Error(ENOMATCH, "no font sets to match against")
	}
	var result sys.Result
	m := fc().FontSetMatch(cfg.handle(), &raws[0], int32(len(raws)), p.raw(), &result)
	if m == nil {
		return nil, resultError(orNoMatch(result), "<font>", 0)
	}
	return ownPattern(m), nil
}

// Fonts returns one of the configuration's font sets. The set belongs to
// the configuration and may be empty.
func (cfg *Config) Fonts(set SetName) FontSetRef {
	return FontSetRef{fc().ConfigGetFonts(cfg.handle(), set)}
}

// --- Application fonts -----------------------------------------------------

// AppFontAddFile adds a font file to the application font set.
func (cfg *Config) AppFontAddFile(path string) error {
	if fc().ConfigAppFontAddFile(cfg.handle(), path) == sys.False {
		return Error(ENOMATCH, "cannot add font file %s", path)
	}
	return nil
}

// AppFontAddDir adds all fonts below dir to the application font set.
func (cfg *Config) AppFontAddDir(dir string) error {
	if fc().ConfigAppFontAddDir(cfg.handle(), dir) == sys.False {
		return Error(ENOMATCH, "cannot add font directory %s", dir)
	}
	return nil
}

// AppFontClear empties the application font set.
func (cfg *Config) AppFontClear() {
	fc().ConfigAppFontClear(cfg.handle())
}

// --- Introspection ---------------------------------------------------------

// FontDirs returns the directories scanned for fonts.
func (cfg *Config) FontDirs() []string {
	l := fc().ConfigGetFontDirs(cfg.handle())
	if l == nil {
		return nil
	}
	return (&StringList{l: l}).drain()
}

// ConfigFiles returns the configuration files loaded.
func (cfg *Config) ConfigFiles() []string {
	l := fc().ConfigGetConfigFiles(cfg.handle())
	if l == nil {
		return nil
	}
	return (&StringList{l: l}).drain()
}

// UptoDate returns false if font files or directories changed since the
// configuration was loaded.
func (cfg *Config) UptoDate() bool {
	return fc().ConfigUptoDate(cfg.handle()) == sys.True
}

// RescanInterval returns the interval at which fontconfig checks for
// changed fonts. Zero disables rescanning.
func (cfg *Config) RescanInterval() time.Duration {
	return time.Duration(fc().ConfigGetRescanInterval(cfg.handle())) * time.Second
}
