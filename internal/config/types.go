package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog is the parsed task file: categories in file order, each holding
// subcommands in file order. It is read-only once parsed.
type Catalog struct {
	Categories []Category
}

// Category groups subcommands under the first half of a dotted name (e.g. "build").
type Category struct {
	Name        string
	Subcommands []Subcommand
}

// Subcommand is one "category.subcommand" entry with a variant per shell.
// - Name: second half of the dotted name (e.g. "cpp").
// - Variants: keyed by shell identifier ("Powershell", "CMD", "Linux").
type Subcommand struct {
	Name     string
	Variants map[string]Variant
}

// Variant is what a subcommand does under one shell.
// - Cmd: literal command line, or installer name -> line for install entries.
// - DependsOn: dotted names run, in order, before Cmd.
// - AtPath/AtDrive/AddToPath: install probes; AddToPath carries a {{path}} token.
// - Use: description printed by `devcli help`.
type Variant struct {
	Cmd       Cmd      `yaml:"cmd"`
	DependsOn []string `yaml:"dependsOn"`
	AtPath    string   `yaml:"atPath"`
	AtDrive   string   `yaml:"atDrive"`
	AddToPath string   `yaml:"addToPath"`
	Use       string   `yaml:"use"`
}

// Cmd holds either a literal line or a set of per-installer lines.
type Cmd struct {
	Line       string
	Installers map[string]string
	isLine     bool
}

// NewLine builds a literal command line.
func NewLine(line string) Cmd {
	return Cmd{Line: line, isLine: true}
}

// NewInstallers builds an installer-name -> command line mapping.
func NewInstallers(installers map[string]string) Cmd {
	return Cmd{Installers: installers}
}

// IsLine reports whether cmd was a plain string.
func (c Cmd) IsLine() bool {
	return c.isLine
}

// Installer returns the command line for the named installer (e.g. "choco").
func (c Cmd) Installer(name string) (string, bool) {
	line, ok := c.Installers[name]
	return line, ok
}

// UnmarshalYAML accepts both shapes "cmd" takes in a catalog.
func (c *Cmd) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var line string
		if err := node.Decode(&line); err != nil {
			return err
		}
		*c = NewLine(line)
		return nil
	case yaml.MappingNode:
		var installers map[string]string
		if err := node.Decode(&installers); err != nil {
			return err
		}
		*c = NewInstallers(installers)
		return nil
	default:
		return fmt.Errorf("line %d: cmd must be a string or a mapping of installer commands", node.Line)
	}
}

// Category looks up a category by name.
func (c *Catalog) Category(name string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// Subcommand looks up a subcommand by name.
func (c *Category) Subcommand(name string) (*Subcommand, bool) {
	for i := range c.Subcommands {
		if c.Subcommands[i].Name == name {
			return &c.Subcommands[i], true
		}
	}
	return nil, false
}

// Variant returns the entry for a shell identifier.
func (s *Subcommand) Variant(shellKey string) (Variant, bool) {
	v, ok := s.Variants[shellKey]
	return v, ok
}
