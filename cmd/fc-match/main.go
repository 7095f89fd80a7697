/*
Command fc-match shows the fonts fontconfig selects for a pattern.

	fc-match [-s|-a] [-v|-b|-f FORMAT] [pattern] [element…]

Without -s or -a only the best match is shown. -s shows the sorted list of
fonts, trimmed to those adding Unicode coverage, -a shows all fonts sorted.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/fontconfig/internal/cli"
)

func main() {
	sortFonts := flag.Bool("s", false, "Display sorted list of matches")
	all := flag.Bool("a", false, "Display unpruned sorted list of matches")
	verbose := flag.Bool("v", false, "Display entire font pattern verbosely")
	brief := flag.Bool("b", false, "Display entire font pattern briefly")
	format := flag.String("f", "", "Use the given output format")
	version := flag.Bool("V", false, "Display font config version and exit")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	cli.Setup(*tlevel)
	if *version {
		cli.PrintVersion("fc-match")
		return
	}
	cfg := cli.Acquire()
	defer cfg.Close()
	//
	pat, elements := cli.PatternFromArgs(flag.Args())
	defer pat.Destroy()
	cfg.Substitute(pat, fontconfig.MatchPattern)
	pat.DefaultSubstitute()
	defaultFormat := "%{=fcmatch}\n"
	if len(elements) > 0 {
		defaultFormat = "%{=unparse}\n"
	}
	objects := cli.ObjectSetFor(elements)
	defer objects.Destroy()
	//
	var fonts *fontconfig.FontSet
	if *sortFonts || *all {
		var err error
		if fonts, err = pat.FontSort(cfg, !*all); err != nil {
			cli.Tracer().Errorf(err.Error())
			os.Exit(1)
		}
	} else {
		match, err := pat.FontMatch(cfg)
		if err != nil {
			cli.Tracer().Errorf(err.Error())
			os.Exit(1)
		}
		fonts = fontconfig.NewFontSet()
		fonts.Push(match)
	}
	defer fonts.Destroy()
	it := fonts.Iter()
	for font, ok := it.Next(); ok; font, ok = it.Next() {
		render := pat.RenderPrepare(cfg, font)
		if objects != nil {
			filtered := render.Filter(objects)
			render.Destroy()
			render = filtered
		}
		fmt.Print(cli.Output(render.Ref(), *verbose, *brief, *format, defaultFormat))
		render.Destroy()
	}
}
