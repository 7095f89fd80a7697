/*
Command fc-pattern parses a pattern and shows it, optionally after applying
configuration and default substitutions.

	fc-pattern [-c] [-d] [-f FORMAT] [pattern] [element…]
*/
package main

import (
	"flag"
	"fmt"

	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/fontconfig/internal/cli"
)

func main() {
	config := flag.Bool("c", false, "Perform config substitution on pattern")
	defaults := flag.Bool("d", false, "Perform default substitution on pattern")
	format := flag.String("f", "", "Use the given output format")
	version := flag.Bool("V", false, "Display font config version and exit")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	cli.Setup(*tlevel)
	if *version {
		cli.PrintVersion("fc-pattern")
		return
	}
	cfg := cli.Acquire()
	defer cfg.Close()
	//
	pat, elements := cli.PatternFromArgs(flag.Args())
	defer func() { pat.Destroy() }()
	if *config {
		cfg.Substitute(pat, fontconfig.MatchPattern)
	}
	if *defaults {
		pat.DefaultSubstitute()
	}
	pat = cli.FilterPattern(pat, elements)
	if *format == "" {
		pat.Print()
		return
	}
	fmt.Print(cli.Output(pat.Ref(), false, false, *format, ""))
}
