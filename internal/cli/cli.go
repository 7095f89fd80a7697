/*
Package cli holds the plumbing shared by the command line tools: tracing
setup, terminal output and argument handling.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// TraceKey is the tracing key of the command line tools.
const TraceKey = "fontconfig.cli"

// Tracer traces with key 'fontconfig.cli'.
func Tracer() tracing.Trace {
	return tracing.Select(TraceKey)
}

// Setup configures tracing and terminal output. level is one of
// Debug, Info or Error and applies to all fontconfig tracers.
func Setup(level string) {
	initDisplay()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.fontconfig":        level,
		"trace.fontconfig.sys":    level,
		"trace.fontconfig.locate": level,
		"trace.fontconfig.cli":    level,
		"fontconfig.library":      os.Getenv("FONTCONFIG_LIBRARY"),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	fontconfig.Configure(conf)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Acquire opens fontconfig or exits with an error message.
func Acquire() *fontconfig.Config {
	cfg, err := fontconfig.New()
	if err != nil {
		pterm.Error.Println(fontconfig.UserMessage(err))
		os.Exit(2)
	}
	return cfg
}

// PrintVersion prints the version of the fontconfig library in use.
func PrintVersion(tool string) {
	pterm.Printfln("%s: fontconfig version %s (%s)", tool, fontconfig.VersionString(), fontconfig.Linkage())
}

// PatternFromArgs parses the first argument as a pattern; no arguments
// yield an empty pattern. The remaining arguments are returned as element
// names. An unparsable pattern is fatal.
func PatternFromArgs(args []string) (*fontconfig.Pattern, []string) {
	if len(args) == 0 {
		return fontconfig.NewPattern(), nil
	}
	pat, err := fontconfig.ParsePattern(args[0])
	if err != nil {
		panic(fmt.Sprintf("unable to parse the pattern %q: %v", args[0], err))
	}
	return pat, args[1:]
}

// ObjectSetFor builds an object set from element names; none yields nil.
func ObjectSetFor(elements []string) *fontconfig.ObjectSet {
	if len(elements) == 0 {
		return nil
	}
	for _, e := range elements {
		if !fontconfig.IsKnownObject(e) {
			Tracer().Infof("%q is not a predefined object name", e)
		}
	}
	return fontconfig.BuildObjectSet(elements...)
}

// FilterPattern reduces pat to the given elements. With elements present,
// pat is destroyed and the filtered copy returned; otherwise pat is returned
// unchanged.
func FilterPattern(pat *fontconfig.Pattern, elements []string) *fontconfig.Pattern {
	objects := ObjectSetFor(elements)
	if objects == nil {
		return pat
	}
	defer objects.Destroy()
	filtered := pat.Filter(objects)
	pat.Destroy()
	return filtered
}

// Output prints a pattern according to the flags common to all tools:
// verbose dumps it, brief dumps it without charset and languages, a format
// template expands it, otherwise defaultFormat is used.
func Output(p fontconfig.PatternRef, verbose, brief bool, format, defaultFormat string) string {
	switch {
	case verbose:
		p.Print()
		return ""
	case brief:
		dup := p.Duplicate()
		defer dup.Destroy()
		dup.Del(fontconfig.CHARSET)
		dup.Del(fontconfig.LANG)
		dup.Print()
		return ""
	}
	if format == "" {
		format = defaultFormat
	}
	s, err := p.Format(Unescape(format))
	if err != nil {
		Tracer().Errorf(err.Error())
		return ""
	}
	return s
}

// Unescape replaces \n and \t in format strings given on the command line.
func Unescape(format string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(format)
}

// SetTraceLevel sets the level of t from a flag value.
func SetTraceLevel(t tracing.Trace, level string) {
	switch strings.ToLower(level) {
	case "debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "info":
		t.SetTraceLevel(tracing.LevelInfo)
	default:
		t.SetTraceLevel(tracing.LevelError)
	}
}
