/*
feat-tool is an interactive CLI for inspecting the typographic features of
OpenType fonts: list a font's feature catalog, shape sample text with one
feature engaged, and render per-character coverage tables.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
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
	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/otfeat/fontstore"
	"github.com/npillmayer/otfeat/otcat"
	"github.com/npillmayer/otfeat/otcover"
	"github.com/npillmayer/otfeat/otshape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otfeat'
func tracer() tracing.Trace {
	return tracing.Select("otfeat")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.otfeat":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "default", "Font to load (name or design tag)")
	fontdir := flag.String("dir", "", "Load fonts from a directory instead of the system")
	size := flag.Float64("size", 12, "Point size")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the OpenType feature tool")
	//
	// set up REPL
	repl, err := readline.New("feat > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	var store fontstore.Store = fontstore.NewSystemStore()
	if *fontdir != "" {
		store = fontstore.NewDirStore(*fontdir)
	}
	intp := &Intp{
		repl:     repl,
		resolver: fontstore.NewResolver(store),
		shaper:   otshape.NewTypesettingShaper(),
		catalogs: otcat.NewCache(),
		size:     *size,
	}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
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

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	resolver *fontstore.Resolver
	shaper   otshape.Shaper
	catalogs *otcat.Cache
	font     *otfeat.Font
	size     float64
}

func (intp *Intp) loadFont(identifier string) error {
	f, err := intp.resolver.Resolve(identifier, intp.size)
	if err != nil {
		if errors.Is(err, fontstore.ErrFontNotFound) {
			pterm.Error.Printf("font not loaded: %s\n", identifier)
			pterm.Info.Println("try 'list' for available fonts")
		}
		return err
	}
	intp.font = f
	pterm.Info.Printf("loaded font '%s'\n", f.Fontname)
	return nil
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
		quit, err := intp.execute(strings.Fields(line))
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(args []string) (quit bool, err error) {
	switch args[0] {
	case "quit":
		return true, nil
	case "help":
		help()
	case "font":
		if len(args) < 2 {
			return false, errors.New("usage: font <name|design-tag>")
		}
		err = intp.loadFont(strings.Join(args[1:], " "))
		if errors.Is(err, fontstore.ErrFontNotFound) {
			err = nil // already reported; REPL continues with previous font
		}
	case "list":
		intp.printAvailable()
	case "features":
		intp.printCatalog()
	case "has":
		var typeID, selectorID uint16
		if typeID, selectorID, err = parsePair(args[1:]); err == nil {
			ix := intp.catalogs.Index(intp.font)
			pterm.Printf("has(%d, %d) = %v\n", typeID, selectorID, ix.Has(typeID, selectorID))
		}
	case "apply":
		err = intp.applyFeature(args[1:])
	case "coverage":
		err = intp.printCoverage(args[1:])
	default:
		err = fmt.Errorf("unknown command: %s (try 'help')", args[0])
	}
	return false, err
}

func (intp *Intp) printAvailable() {
	families := intp.resolver.ListAvailable()
	data := pterm.TableData{{"Family", "Members"}}
	for family, members := range families {
		data = append(data, []string{family, strings.Join(members, ", ")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) printCatalog() {
	cat := intp.catalogs.Catalog(intp.font)
	if len(cat) == 0 {
		pterm.Info.Println("font declares no features")
		return
	}
	data := pterm.TableData{{"Type", "Name", "Selectors"}}
	for _, ft := range cat {
		sels := make([]string, 0, len(ft.Selectors))
		for _, sel := range ft.Selectors {
			sels = append(sels, fmt.Sprintf("%d=%s", sel.ID, sel.Name))
		}
		data = append(data, []string{
			strconv.Itoa(int(ft.ID)), ft.Name, strings.Join(sels, ", "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) applyFeature(args []string) error {
	if len(args) < 3 {
		return errors.New("usage: apply <type> <selector> <text>")
	}
	typeID, selectorID, err := parsePair(args[:2])
	if err != nil {
		return err
	}
	text := strings.Join(args[2:], " ")
	baseline, featured, err := otshape.ApplyFeature(intp.shaper, intp.font, text, typeID, selectorID)
	if err != nil {
		return err
	}
	pterm.Printf("baseline: %v\n", baseline.GIDs())
	pterm.Printf("featured: %v\n", featured.GIDs())
	if baseline.Equal(featured) {
		pterm.Info.Println("feature has no effect on this text")
	}
	return nil
}

func (intp *Intp) printCoverage(args []string) error {
	typeID, selectorID, err := parsePair(args)
	if err != nil {
		return err
	}
	result, err := otcover.Analyze(intp.shaper, intp.font, typeID, selectorID, otcover.DefaultClasses())
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Class", "Changed"}}
	for _, class := range otcover.DefaultClasses() {
		var changed []rune
		for _, rec := range result[class.Name] {
			if rec.Changed {
				changed = append(changed, rec.Char)
			}
		}
		display := string(changed)
		if display == "" {
			display = "-"
		}
		data = append(data, []string{class.Name, display})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func parsePair(args []string) (typeID, selectorID uint16, err error) {
	if len(args) < 2 {
		return 0, 0, errors.New("expected <type> <selector>")
	}
	t, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("feature type: %v", err)
	}
	s, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("feature selector: %v", err)
	}
	return uint16(t), uint16(s), nil
}

func help() {
	pterm.Println(`
	font <name|tag>          load a font (explicit name, or default | rounded | monospaced | serif)
	list                     list available fonts, family by family
	features                 show the loaded font's feature catalog
	has <type> <selector>    availability of one (type, selector) pair
	apply <type> <selector> <text>
	                         shape text baseline vs. feature-activated
	coverage <type> <selector>
	                         which digits/letters/symbols the feature changes
	quit                     leave (also <ctrl>D)
	`)
}
