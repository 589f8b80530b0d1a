// Package main provides the CLI entrypoint for component-store.
//
// component-store compiles a component schema into a Go storage module:
//   - Parses the schema (`components:` followed by `Name[/Plural] [<- Index, ...]` lines)
//   - Synthesizes one string-keyed index type per component plus an aggregate store
//   - Renders the plan into a formatted Go file
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
