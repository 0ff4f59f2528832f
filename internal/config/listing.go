package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"devcli/internal/logger"
)

// Entry is one row of the help listing.
type Entry struct {
	Command string // dotted name, e.g. "build.cpp"
	Use     string
}

// Listing returns every described command for the given shell, in catalog order.
// Subcommands without a variant for the shell are skipped with a warning;
// variants without a use description are skipped silently.
func (c *Catalog) Listing(shellKey string) []Entry {
	var entries []Entry
	for _, category := range c.Categories {
		for _, sub := range category.Subcommands {
			name := category.Name + "." + sub.Name
			v, ok := sub.Variant(shellKey)
			if !ok {
				logger.Warn("[WARN] Shell-specific command missing for %s\n", name)
				continue
			}
			if v.Use == "" {
				continue
			}
			entries = append(entries, Entry{Command: name, Use: v.Use})
		}
	}
	return entries
}

var headerColor = color.New(color.Bold)

// PrintListing writes entries as a two-column table.
func PrintListing(w io.Writer, entries []Entry) {
	headerColor.Fprintf(w, "%-30s %-30s\n", "Command", "Operation")
	fmt.Fprintln(w, strings.Repeat("-", 93))
	for _, e := range entries {
		fmt.Fprintf(w, "%-30s %-30s\n", e.Command, e.Use)
	}
}
