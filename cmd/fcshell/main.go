/*
Command fcshell is an interactive shell to build fontconfig patterns and
run them against the font configuration.

Type 'help' for a list of commands; <tab> completes commands and object
names.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/fontconfig/internal/cli"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

func tracer() tracing.Trace {
	return cli.Tracer()
}

func main() {
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	pattern := flag.String("pattern", "", "Initial pattern")
	flag.Parse()
	cli.Setup("Error") // will set the correct level later
	pterm.Info.Println("Welcome to the fontconfig shell")
	cfg, err := fontconfig.New()
	if err != nil {
		pterm.Error.Println(fontconfig.UserMessage(err))
		os.Exit(2)
	}
	defer cfg.Close()
	pterm.Info.Printfln("fontconfig %s (%s)", fontconfig.VersionString(), fontconfig.Linkage())
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "fc > ",
		AutoComplete: completer{},
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, cfg: cfg, pattern: fontconfig.NewPattern()}
	defer func() { intp.pattern.Destroy() }()
	if *pattern != "" {
		intp.execute(Command{op: PARSE, args: []string{*pattern}})
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	cli.SetTraceLevel(tracer(), *tlevel)
	intp.REPL() // go into interactive mode
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	cfg     *fontconfig.Config
	pattern *fontconfig.Pattern
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if cmd.op == QUIT {
			break
		}
		intp.execute(cmd)
	}
	pterm.Info.Println("Good bye!")
}

// Command codes
const (
	QUIT int = iota
	HELP
	NEW
	PARSE
	ADD
	DEL
	SHOW
	SUBST
	MATCH
	SORT
	LIST
	FORMAT
	OBJECTS
)

var commands = map[string]int{
	"quit": QUIT, "help": HELP, "new": NEW, "parse": PARSE, "add": ADD,
	"del": DEL, "show": SHOW, "subst": SUBST, "match": MATCH, "sort": SORT,
	"list": LIST, "format": FORMAT, "objects": OBJECTS,
}

// Command is a parsed input line.
type Command struct {
	op   int
	args []string
}

func parseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	op, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
	cmd := Command{op: op, args: fields[1:]}
	switch op {
	case PARSE, FORMAT:
		// keep blanks of the argument
		cmd.args = []string{strings.TrimSpace(line[len(fields[0]):])}
	case ADD:
		if len(cmd.args) < 2 {
			return cmd, errors.New("usage: add <object> <value>")
		}
	case DEL:
		if len(cmd.args) != 1 {
			return cmd, errors.New("usage: del <object>")
		}
	}
	tracer().Debugf("command = %v", cmd)
	return cmd, nil
}

// execute runs a command. Failed fontconfig assertions are reported and do
// not end the session.
func (intp *Intp) execute(cmd Command) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Println(fmt.Sprint(r))
		}
	}()
	switch cmd.op {
	case HELP:
		help()
	case NEW:
		intp.replacePattern(fontconfig.NewPattern())
	case PARSE:
		p, err := fontconfig.ParsePattern(cmd.args[0])
		if err != nil {
			pterm.Error.Println(fontconfig.UserMessage(err))
			return
		}
		intp.replacePattern(p)
		pterm.Printfln("pattern = %s", intp.pattern)
	case ADD:
		if err := addValue(intp.pattern, cmd.args[0], strings.Join(cmd.args[1:], " ")); err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		pterm.Printfln("pattern = %s", intp.pattern)
	case DEL:
		if !intp.pattern.Del(cmd.args[0]) {
			pterm.Printfln("pattern has no %s", cmd.args[0])
		}
	case SHOW:
		showPattern(intp.pattern.Ref())
	case SUBST:
		intp.cfg.Substitute(intp.pattern, fontconfig.MatchPattern)
		intp.pattern.DefaultSubstitute()
		pterm.Printfln("pattern = %s", intp.pattern)
	case MATCH:
		match, err := intp.cfg.Match(intp.pattern.Ref())
		if err != nil {
			pterm.Error.Println(fontconfig.UserMessage(err))
			return
		}
		defer match.Destroy()
		font, err := fontconfig.FontFromPattern(match.Ref())
		if err != nil {
			pterm.Error.Println(fontconfig.UserMessage(err))
			return
		}
		pterm.Printfln("%s", font)
	case SORT:
		fonts, err := intp.cfg.Sort(intp.pattern.Ref(), true)
		if err != nil {
			pterm.Error.Println(fontconfig.UserMessage(err))
			return
		}
		defer fonts.Destroy()
		printFonts(fonts.Ref(), count(cmd.args, 10), "%{=fcmatch}\n")
	case LIST:
		fonts, err := intp.cfg.ListFonts(intp.pattern.Ref(), nil)
		if err != nil {
			pterm.Error.Println(fontconfig.UserMessage(err))
			return
		}
		defer fonts.Destroy()
		pterm.Printfln("%d fonts match", fonts.Len())
		printFonts(fonts.Ref(), count(cmd.args, 10), "%{=fclist}\n")
	case FORMAT:
		s, err := intp.pattern.Format(cli.Unescape(cmd.args[0]))
		if err != nil {
			pterm.Error.Println(fontconfig.UserMessage(err))
			return
		}
		pterm.Println(s)
	case OBJECTS:
		prefix := ""
		if len(cmd.args) > 0 {
			prefix = cmd.args[0]
		}
		pterm.Println(strings.Join(fontconfig.CompleteObject(prefix), " "))
	}
}

func (intp *Intp) replacePattern(p *fontconfig.Pattern) {
	intp.pattern.Destroy()
	intp.pattern = p
}

func count(args []string, dflt int) int {
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			return n
		}
	}
	return dflt
}

func printFonts(fonts fontconfig.FontSetRef, n int, format string) {
	it := fonts.Iter()
	for p, ok := it.Next(); ok && n > 0; p, ok = it.Next() {
		s, _ := p.Format(format)
		pterm.Print(s)
		n--
	}
}

// addValue converts value according to the type fontconfig expects for
// object. Unknown objects get a string value.
func addValue(pat *fontconfig.Pattern, object, value string) error {
	vt, ok := fontconfig.ObjectType(object)
	if !ok {
		vt = fontconfig.TypeString
	}
	switch vt {
	case fontconfig.TypeInteger:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s needs an integer: %w", object, err)
		}
		pat.AddInteger(object, i)
	case fontconfig.TypeDouble, fontconfig.TypeRange:
		d, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s needs a number: %w", object, err)
		}
		pat.AddDouble(object, d)
	case fontconfig.TypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s needs true or false: %w", object, err)
		}
		pat.AddBool(object, b)
	case fontconfig.TypeMatrix:
		var m fontconfig.Matrix
		if _, err := fmt.Sscan(value, &m.XX, &m.XY, &m.YX, &m.YY); err != nil {
			return fmt.Errorf("%s needs 4 numbers: %w", object, err)
		}
		pat.AddMatrix(object, m)
	case fontconfig.TypeCharSet:
		cs := fontconfig.CharSetOf([]rune(value)...)
		defer cs.Destroy()
		pat.AddCharSet(object, cs.Ref())
	case fontconfig.TypeLangSet:
		ls := fontconfig.LangSetOf(strings.Fields(value)...)
		defer ls.Destroy()
		pat.AddLangSet(object, ls)
	case fontconfig.TypeString:
		pat.AddString(object, value)
	default:
		return fmt.Errorf("cannot add values of type %s", vt)
	}
	return nil
}

func showPattern(p fontconfig.PatternRef) {
	data := pterm.TableData{{"object", "type", "values"}}
	for _, name := range fontconfig.ObjectNames() {
		vt, _ := fontconfig.ObjectType(name)
		var value string
		if vt == fontconfig.TypeCharSet {
			cs, err := p.GetCharSet(name)
			if err != nil {
				continue
			}
			value = fmt.Sprintf("%d code points", cs.Count())
		} else {
			value, _ = p.Format("%{" + name + "}")
		}
		if value == "" {
			continue
		}
		data = append(data, []string{name, vt.String(), value})
	}
	if len(data) == 1 {
		pterm.Println("pattern is empty")
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func help() {
	pterm.Println(`Commands:
  new                   start with an empty pattern
  parse <name>          parse a font name, e.g. "DejaVu Sans-12:bold"
  add <object> <value>  add a value, e.g. "add weight 200"
  del <object>          remove all values of an object
  show                  show the pattern
  subst                 apply configuration and default substitutions
  match                 show the best matching font
  sort [n]              show the n best matching fonts
  list [n]              list fonts matching the pattern
  format <template>     expand a format template, e.g. "%{family}"
  objects [prefix]      list object names
  quit                  leave the shell`)
}

// completer completes command names at the start of a line and object names
// after 'add', 'del' and 'objects'.
type completer struct{}

// Do implements readline.AutoCompleter.
func (completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields := strings.Fields(text)
	word := ""
	if len(fields) > 0 && !strings.HasSuffix(text, " ") {
		word = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}
	var candidates []string
	switch {
	case len(fields) == 0:
		for name := range commands {
			if strings.HasPrefix(name, word) {
				candidates = append(candidates, name)
			}
		}
	case len(fields) == 1:
		switch fields[0] {
		case "add", "del", "objects":
			candidates = fontconfig.CompleteObject(word)
		}
	}
	suffixes := make([][]rune, 0, len(candidates))
	for _, c := range candidates {
		suffixes = append(suffixes, []rune(strings.TrimPrefix(c, strings.ToLower(word))+" "))
	}
	return suffixes, len([]rune(word))
}
