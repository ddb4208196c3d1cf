// Package itemfile reads option lists from YAML or TOML files.
//
//	items:
//	  - label: Fruit
//	    group: true
//	  - label: Apple
//	    child: true
//	    selected: true
//	  - label: Durian
//	    child: true
//	    disabled: true
package itemfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Entry is one row as written in a file. Rows are enabled unless marked
// disabled.
type Entry struct {
	Label    string `yaml:"label" toml:"label"`
	Group    bool   `yaml:"group" toml:"group"`
	Child    bool   `yaml:"child" toml:"child"`
	Disabled bool   `yaml:"disabled" toml:"disabled"`
	Selected bool   `yaml:"selected" toml:"selected"`
}

type document struct {
	Items []Entry `yaml:"items" toml:"items"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unsupported item file extension %q", filepath.Ext(path))
}

// Load reads and decodes the item file at path.
func Load(path string) ([]optionmenu.MenuItem, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item file: %w", err)
	}

	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Decode parses data. It returns optionmenu.ErrNoItems for a file without rows.
func Decode(data []byte, format Format) ([]optionmenu.MenuItem, error) {
	var doc document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}

	if len(doc.Items) == 0 {
		return nil, optionmenu.ErrNoItems
	}

	items := make([]optionmenu.MenuItem, 0, len(doc.Items))
	for i, e := range doc.Items {
		if e.Group && e.Child {
			return nil, fmt.Errorf("item %d (%q): cannot be both a group label and a group child", i, e.Label)
		}
		items = append(items, e.MenuItem())
	}
	return items, nil
}

func (e Entry) MenuItem() optionmenu.MenuItem {
	return optionmenu.MenuItem{
		Label:        e.Label,
		Enabled:      !e.Disabled,
		Selected:     e.Selected,
		IsGroupLabel: e.Group,
		IsGroupChild: e.Child,
	}
}
