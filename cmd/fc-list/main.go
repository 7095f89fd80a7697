/*
Command fc-list lists the fonts fontconfig knows about.

	fc-list [-v|-b|-f FORMAT|-q|-sort] [pattern] [element…]

Fonts matching pattern are listed, reduced to the elements given (family,
style and file by default). With -q nothing is printed, and the exit status
is 1 if no font matched.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/fontconfig/internal/cli"
)

func main() {
	verbose := flag.Bool("v", false, "Display entire font pattern verbosely")
	brief := flag.Bool("b", false, "Display entire font pattern briefly")
	format := flag.String("f", "", "Use the given output format")
	quiet := flag.Bool("q", false, "Suppress all normal output, exit 1 if no fonts matched")
	sorted := flag.Bool("sort", false, "Print unique lines, sorted")
	version := flag.Bool("V", false, "Display font config version and exit")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	cli.Setup(*tlevel)
	if *version {
		cli.PrintVersion("fc-list")
		return
	}
	cfg := cli.Acquire()
	defer cfg.Close()
	//
	pat, elements := cli.PatternFromArgs(flag.Args())
	defer pat.Destroy()
	defaultFormat := "%{=fclist}\n"
	if len(elements) > 0 {
		defaultFormat = "%{=unparse}\n"
	} else if !*verbose && !*brief && *format == "" {
		elements = []string{fontconfig.FAMILY, fontconfig.STYLE, fontconfig.FILE}
	}
	objects := cli.ObjectSetFor(elements)
	defer objects.Destroy()
	fonts, err := cfg.ListFonts(pat.Ref(), objects)
	if err != nil {
		cli.Tracer().Errorf(err.Error())
		os.Exit(2)
	}
	defer fonts.Destroy()
	cli.Tracer().Infof("%d fonts match %s", fonts.Len(), pat)
	if *quiet {
		if fonts.IsEmpty() {
			os.Exit(1)
		}
		return
	}
	lines := treeset.NewWithStringComparator()
	it := fonts.Iter()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		s := cli.Output(p, *verbose, *brief, *format, defaultFormat)
		if s == "" {
			continue
		}
		if *sorted {
			lines.Add(s)
		} else {
			fmt.Print(s)
		}
	}
	for _, line := range lines.Values() {
		fmt.Print(line.(string))
	}
}
