/*
Command fc-query shows the patterns fontconfig derives from font files.

	fc-query [-i INDEX] [-b] [-f FORMAT] file…

Files which cannot be queried are reported and skipped.
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
	index := flag.Int("i", -1, "Query face number INDEX (default: all faces)")
	brief := flag.Bool("b", false, "Display font pattern briefly")
	format := flag.String("f", "", "Use the given output format")
	version := flag.Bool("V", false, "Display font config version and exit")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	cli.Setup(*tlevel)
	if *version {
		cli.PrintVersion("fc-query")
		return
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: fc-query [-i INDEX] [-b] [-f FORMAT] file…")
		os.Exit(1)
	}
	cfg := cli.Acquire()
	defer cfg.Close()
	//
	for _, file := range flag.Args() {
		faces, err := fontconfig.QueryFile(file, *index)
		if err != nil {
			cli.Tracer().Errorf("%s: %s", file, fontconfig.UserMessage(err))
			continue
		}
		it := faces.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			fmt.Print(cli.Output(p, *format == "" && !*brief, *brief, *format, ""))
		}
		faces.Destroy()
	}
}
