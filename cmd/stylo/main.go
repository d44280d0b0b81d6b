// stylo resolves named styles from layered style sheets.
//
// Usage:
//
//	stylo -sheet theme.yaml button
//	stylo -sheet base.yaml -sheet brand.toml -mod size=large -mod disabled button
//	stylo -sheet theme.yaml -extra color=196 -format json button
//	cat theme.yaml | stylo -sheet - -list
//	stylo -browse
//
// Sheets come from -sheet flags, STYLO_SHEETS or the sheets list in
// .stylo.yaml. Later sheets extend earlier ones key by key.
//
// Output formats:
//
//	preview  styled card with a rendered sample (default when TTY)
//	plain    key=value lines (default when piped)
//	json     resolved style as JSON, key order kept
//	yaml     resolved style as YAML, key order kept
//
// Exit codes: 0 on success, 1 when resolution fails, 2 on usage or
// configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/stylo/internal/config"
	"github.com/dkoosis/stylo/internal/version"
	"github.com/dkoosis/stylo/pkg/browse"
	"github.com/dkoosis/stylo/pkg/render"
	"github.com/dkoosis/stylo/pkg/sheet"
	"github.com/dkoosis/stylo/pkg/theme"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var sheets, mods, extras stringList

	fs := flag.NewFlagSet("stylo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: stylo [flags] NAME\n       stylo [flags] -list | -browse\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configFlag := fs.String("config", "", "Config file (default: ./.stylo.yaml, then the user config dir)")
	fs.Var(&sheets, "sheet", "Style sheet to load, - for YAML on stdin (repeatable)")
	fs.Var(&mods, "mod", "Modifier as key=value; value true, false or a variant name (repeatable)")
	fs.Var(&extras, "extra", "Extra style key=value laid over the result (repeatable)")
	formatFlag := fs.String("format", config.DefaultFormat, "Output format: auto, preview, plain, json, yaml")
	themeFlag := fs.String("theme", config.DefaultTheme, "Preview theme: default, orca, mono")
	noColorFlag := fs.Bool("no-color", false, "Disable colors in preview output")
	debugFlag := fs.Bool("debug", false, "Log resolution details to stderr")
	listFlag := fs.Bool("list", false, "List registered source names and exit")
	browseFlag := fs.Bool("browse", false, "Browse sources interactively")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.ResolveConfig(config.CliFlags{
		ConfigPath: *configFlag,
		Sheets:     sheets,
		Format:     *formatFlag,
		Theme:      *themeFlag,
		NoColor:    *noColorFlag,
		Debug:      *debugFlag,
		FormatSet:  set["format"],
		ThemeSet:   set["theme"],
		NoColorSet: set["no-color"],
		DebugSet:   set["debug"],
	})
	if err != nil {
		fmt.Fprintf(stderr, "stylo: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, cfg.Debug)
	logger.Debug("config resolved",
		"sheets", cfg.Sheets, "sheets_from", cfg.SheetsSource,
		"format", cfg.Format, "format_from", cfg.FormatSource,
		"theme", cfg.Theme, "theme_from", cfg.ThemeSource)

	if len(cfg.Sheets) == 0 {
		fmt.Fprintf(stderr, "stylo: no style sheets (use -sheet, STYLO_SHEETS or %s)\n", config.FileName)
		return 2
	}

	modifiers, err := theme.ParseModifiers(mods)
	if err != nil {
		fmt.Fprintf(stderr, "stylo: -mod: %v\n", err)
		return 2
	}
	extra, err := parseExtra(extras)
	if err != nil {
		fmt.Fprintf(stderr, "stylo: -extra: %v\n", err)
		return 2
	}

	th := theme.New(nil)
	th.SetLogger(logger)
	th.SetPostProcessor(cfg.PostProcessor)
	if err := loadSheets(th, cfg.Sheets, stdin); err != nil {
		fmt.Fprintf(stderr, "stylo: %v\n", err)
		return 2
	}

	switch {
	case *listFlag:
		for _, name := range th.Names() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	case *browseFlag:
		return runBrowse(th, modifiers, extra, render.ThemeByName(cfg.Theme), stderr)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	name := fs.Arg(0)

	style, err := th.GetStyle(name, modifiers, extra)
	if err != nil {
		fmt.Fprintf(stderr, "stylo: %v\n", err)
		return 1
	}
	logger.Debug("resolved", "name", name, "modifiers", modifiers.String(), "keys", style.Len())

	width, _ := termSize(stdout)
	renderer := render.ByFormat(resolveFormat(cfg.Format, stdout), render.ThemeByName(cfg.Theme), width)
	fmt.Fprint(stdout, renderer.Render(name, style))
	return 0
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Prefix: "stylo", Level: level})
}

// loadSheets layers the configured sheets onto th in order. The path "-"
// reads a YAML sheet from stdin, at most once.
func loadSheets(th *theme.Theme, paths []string, stdin io.Reader) error {
	stdinUsed := false
	for _, path := range paths {
		if path != "-" {
			if err := sheet.LoadInto(th, path); err != nil {
				return err
			}
			continue
		}
		if stdinUsed {
			return errors.New("stdin sheet given more than once")
		}
		stdinUsed = true
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		s, err := sheet.Parse(data, sheet.FormatYAML)
		if err != nil {
			return fmt.Errorf("parsing sheet from stdin: %w", err)
		}
		sheet.Apply(th, s, sheet.ModeExtend)
	}
	return nil
}

// parseExtra builds the extra style from key=value pairs. Values are read
// as YAML scalars, so 3 is a number and true a boolean.
func parseExtra(pairs []string) (*theme.Style, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	extra := theme.NewStyle()
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("value for %q: %w", key, err)
		}
		if v == nil {
			v = raw
		}
		extra.Set(key, v)
	}
	return extra, nil
}

func runBrowse(th *theme.Theme, mods theme.Modifiers, extra *theme.Style, chrome render.Theme, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := browse.Run(ctx, browse.Options{Theme: th, Modifiers: mods, Extra: extra, Chrome: chrome})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "stylo: %v\n", err)
		return 1
	}
	return 0
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

// resolveFormat maps auto to preview on a terminal and plain otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != config.DefaultFormat {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "preview"
	}
	return "plain"
}
