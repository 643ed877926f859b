package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/npillmayer/consolemark"
	"github.com/npillmayer/consolemark/console"
	"github.com/npillmayer/consolemark/dom/domdbg"
	"github.com/npillmayer/consolemark/markup"
	"github.com/npillmayer/consolemark/style/cssom"
	"github.com/npillmayer/consolemark/style/cssom/douceuradapter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options are the settings of one command invocation.
type options struct {
	method      console.Method
	output      string
	color       string
	stylesheets []string
	file        string
	config      string
	tree        bool
	verbosity   int
}

// NewRootCmd creates the consolemark command.
func NewRootCmd() *cobra.Command {
	o := &options{method: console.Log}
	cmd := &cobra.Command{
		Use:   "consolemark [flags] [markup...]",
		Short: "Render inline HTML markup as a styled console call",
		Long: `consolemark renders a fragment of inline HTML into one console call:
a format string with a %c marker per text run, plus one CSS declaration
string per marker. Block-level elements are rejected.

Markup is taken from the arguments, from a file (--file) or, with a single
argument "-", from standard input.`,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}
	flags := cmd.Flags()
	flags.VarP(&o.method, "method", "m", "console method: log, info, debug, warn, error, group, groupCollapsed, trace")
	flags.StringVarP(&o.output, "output", "o", outputAuto, "output format: auto, term, plain, json, raw")
	flags.StringVar(&o.color, "color", "auto", "colour mode for terminal output: auto, always, never")
	flags.StringSliceVarP(&o.stylesheets, "stylesheet", "s", nil, "CSS stylesheet to apply (repeatable)")
	flags.StringVarP(&o.file, "file", "f", "", "read an HTML document; its <style> elements are applied")
	flags.StringVarP(&o.config, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&o.tree, "tree", false, "print the host tree instead of rendering it")
	flags.CountVarP(&o.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG)")
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), o.verbosity)
	if o.config != "" {
		if err := o.applyConfig(cmd, o.config); err != nil {
			return err
		}
		logger.Debug().Str("config", o.config).Msg("configuration loaded")
	}
	root, sheets, err := readMarkup(cmd.InOrStdin(), o.file, args)
	if err != nil {
		return err
	}
	for _, path := range o.stylesheets {
		sheet, err := readStylesheet(path)
		if err != nil {
			return err
		}
		logger.Debug().Str("stylesheet", path).Int("rules", len(sheet.Rules())).Msg("stylesheet loaded")
		sheets = append(sheets, sheet)
	}
	if o.tree {
		nodes, err := consolemark.Build(root, consolemark.WithStylesheet(sheets...))
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), domdbg.Print(nodes))
		return err
	}
	target, err := newTarget(o.output, o.color, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	tracker := &failureTracker{Target: target}
	start := time.Now()
	err = consolemark.Render(root,
		consolemark.WithTarget(tracker),
		consolemark.WithMethod(o.method),
		consolemark.WithStylesheet(sheets...),
	)
	logger.Debug().Str("method", o.method.String()).Dur("duration", time.Since(start)).Msg("render completed")
	if err != nil {
		return err
	}
	if tracker.failed != nil {
		cmd.SilenceErrors = true // already reported by the target
		return tracker.failed
	}
	return nil
}

// applyConfig sets options from a configuration file, unless they have
// been given on the command line.
func (o *options) applyConfig(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if cfg.Method != "" && !flags.Changed("method") {
		if err := o.method.Set(cfg.Method); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if cfg.Output != "" && !flags.Changed("output") {
		o.output = cfg.Output
	}
	if cfg.Color != "" && !flags.Changed("color") {
		o.color = cfg.Color
	}
	if !flags.Changed("stylesheet") {
		o.stylesheets = append(o.stylesheets, cfg.Stylesheets...)
	}
	return nil
}

var errNoMarkup = errors.New("no markup given")

func readMarkup(stdin io.Reader, file string, args []string) (markup.Node, []cssom.StyleSheet, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return markup.ParseDocument(f)
	}
	var src string
	switch {
	case len(args) == 0:
		return nil, nil, errNoMarkup
	case len(args) == 1 && args[0] == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, err
		}
		src = strings.TrimRight(string(b), "\r\n")
	default:
		src = strings.Join(args, " ")
	}
	root, err := markup.Parse(src)
	return root, nil, err
}

func readStylesheet(path string) (*douceuradapter.CSSStyles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return douceuradapter.Read(f)
}

// newLogger creates the diagnostics logger of the command.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity == 1:
		level = zerolog.InfoLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}
