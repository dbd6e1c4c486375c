package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/styling/config"
	"github.com/npillmayer/styling/dom"
	"github.com/npillmayer/styling/dom/domdbg"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/styling/dom/style/selectors"
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/tree"
)

// configure merges command line flags into the configuration.
func configure(opts *options) (*config.Config, error) {
	cfg := config.Defaults()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}
	if opts.uaStyles != "" {
		cfg.UserAgentStyles = opts.uaStyles
	}
	if opts.quirks != "" {
		cfg.QuirksMode = opts.quirks
	}
	if opts.traceLevel != "" {
		cfg.TraceLevel = opts.traceLevel
	}
	if len(opts.groups) > 0 {
		cfg.Groups = opts.groups
	}
	cfg.Stylesheets = append(cfg.Stylesheets, opts.stylesheets...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupTracing(level tracing.TraceLevel) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	// the selector hands out a single tracer for all keys
	tracing.Select("styling").SetTraceLevel(level)
}

func run(w io.Writer, path string, opts *options) error {
	cfg, err := configure(opts)
	if err != nil {
		return err
	}
	setupTracing(cfg.Level())
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open document: %w", err)
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}
	if q, ok := cfg.Quirks(); ok {
		doc.SetQuirksMode(q)
	}
	var ua cssom.StyleSheet
	if cfg.UserAgentStyles != "" {
		if ua, err = douceuradapter.ParseFile(cfg.UserAgentStyles, doc.QuirksMode()); err != nil {
			return err
		}
	}
	var author []cssom.StyleSheet
	for _, p := range cfg.Stylesheets {
		sheet, err := douceuradapter.ParseFile(p, doc.QuirksMode())
		if err != nil {
			return err
		}
		author = append(author, sheet)
	}
	if err := doc.Style(ua, author...); err != nil {
		// broken <style> elements are reported, but do not stop us
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	switch {
	case opts.dot:
		domdbg.ToGraphVizWithOptions(doc.Root(), w, domdbg.Options{
			Groups:       cfg.Groups,
			MatchedRules: opts.rules,
		})
	case opts.selector != "":
		return printSelected(w, doc, opts.selector, cfg.Groups)
	default:
		fmt.Fprintln(w, doc.StyleTree())
	}
	return nil
}

func printSelected(w io.Writer, doc *dom.Document, selector string, groups []string) error {
	sel, err := selectors.Compile(selector)
	if err != nil {
		return err
	}
	matching := doc.Root().FindAll(func(a *tree.Arena[*styledtree.StyNode], n tree.NodeID) bool {
		return sel.Matches(a.Payload(n).HTMLNode())
	})
	if len(matching) == 0 {
		fmt.Fprintf(w, "no element matches %q\n", selector)
		return nil
	}
	for _, el := range matching {
		fmt.Fprintf(w, "%s\n", el)
		cv := el.ComputedStyles().Values()
		for _, g := range groups {
			for _, kv := range css.GetPropertyGroup(cv, g) {
				fmt.Fprintf(w, "   %-22s %s\n", kv.Key+":", kv.Value)
			}
		}
	}
	return nil
}
