package locate

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about fonts already located.
type Registry struct {
	sync.Mutex
	fonts map[string]fontconfig.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// located fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]fontconfig.Font),
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f fontconfig.Font) {
	if f.Path == "" {
		tracer().Errorf("registry cannot store font without a path")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Name, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns the font stored under a normalized name.
func (fr *Registry) Font(normalizedName string) (fontconfig.Font, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[normalizedName]
	return f, ok
}

// Len returns the number of fonts in the registry.
func (fr *Registry) Len() int {
	fr.Lock()
	defer fr.Unlock()
	return len(fr.fonts)
}

// LogFontList is a helper function to dump the list of known fonts in a
// registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	keys := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tracer().Infof("--- registered fonts ---")
	for _, k := range keys {
		tracer().Infof("font [%s] = %v", k, fr.fonts[k])
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname produces a registry key from a font name, a style and a
// weight, e.g. "dejavu_sans-italic-bold".
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightThin, xfont.WeightLight, xfont.WeightExtraLight:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold, xfont.WeightBlack:
		fname += "-bold"
	}
	return fname
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = filepath.Base(fontfilename)
	ext := filepath.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight", "extralight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "book", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "extrabold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		case "italic", "oblique", "i":
			return xfont.StyleItalic, xfont.WeightNormal
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight. Blanks in pattern are ignored.
func Matches(fontfilename, pattern string, style xfont.Style, weight xfont.Weight) bool {
	basename := filepath.Base(fontfilename)
	basename = basename[:len(basename)-len(filepath.Ext(basename))]
	basename = strings.ToLower(basename)
	pattern = strings.ToLower(strings.ReplaceAll(pattern, " ", ""))
	if !strings.Contains(strings.ReplaceAll(basename, " ", ""), pattern) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	return normalStyle(s) == normalStyle(style) && normalWeight(w) == normalWeight(weight)
}

func normalStyle(s xfont.Style) xfont.Style {
	if s == xfont.StyleOblique {
		return xfont.StyleItalic
	}
	return s
}

func normalWeight(w xfont.Weight) xfont.Weight {
	switch {
	case w < xfont.WeightNormal:
		return xfont.WeightLight
	case w > xfont.WeightMedium:
		return xfont.WeightBold
	}
	return xfont.WeightNormal
}
