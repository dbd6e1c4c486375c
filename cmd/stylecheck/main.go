/*
Command stylecheck styles an HTML document and prints the result.

Usage:

	stylecheck [flags] document.html

It reads an HTML document, optional CSS stylesheets and an optional YAML
configuration (see package config), matches and cascades the document,
and prints either the style tree or a GraphViz DOT diagram of the DOM
with computed styles. With --select, the computed values of the
elements matching a selector are printed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configFile  string
	stylesheets []string
	uaStyles    string
	quirks      string
	traceLevel  string
	dot         bool
	rules       bool
	selector    string
	groups      []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "stylecheck [flags] document.html",
		Short:         "Match and cascade CSS for an HTML document",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	flags.StringSliceVar(&opts.stylesheets, "css", nil, "additional author stylesheets")
	flags.StringVar(&opts.uaStyles, "ua", "", "user-agent stylesheet (default is built-in)")
	flags.StringVar(&opts.quirks, "quirks", "", "quirks mode: auto, no-quirks, limited-quirks or quirks")
	flags.StringVar(&opts.traceLevel, "trace", "", "trace level: error, info or debug")
	flags.BoolVar(&opts.dot, "dot", false, "output a GraphViz DOT diagram")
	flags.BoolVar(&opts.rules, "rules", false, "include matched rules in the DOT diagram")
	flags.StringVarP(&opts.selector, "select", "s", "", "print computed values of elements matching a selector")
	flags.StringSliceVarP(&opts.groups, "groups", "g", nil, "property groups to print")
	return cmd
}
