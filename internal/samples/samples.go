// Package samples provides a built-in, translated option list for trying
// the popup without an item file.
package samples

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
)

//go:embed locales/*.toml
var localeFS embed.FS

type row struct {
	id       string
	group    bool
	child    bool
	disabled bool
	selected bool
}

var rows = []row{
	{id: "group_fruit", group: true},
	{id: "apple", child: true},
	{id: "banana", child: true, selected: true},
	{id: "cherry", child: true},
	{id: "durian", child: true, disabled: true},
	{id: "group_vegetables", group: true},
	{id: "carrot", child: true},
	{id: "leek", child: true},
	{id: "pumpkin", child: true},
	{id: "group_herbs", group: true},
	{id: "basil", child: true},
	{id: "dill", child: true},
	{id: "mint", child: true},
	{id: "parsley", child: true},
	{id: "none"},
}

// Bundle loads every embedded translation.
func Bundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return bundle, nil
}

// Languages returns the tags with a translation.
func Languages() ([]language.Tag, error) {
	bundle, err := Bundle()
	if err != nil {
		return nil, err
	}
	return bundle.LanguageTags(), nil
}

// Items returns the sample list in the closest available translation of
// lang, along with the language actually used. lang is a BCP 47 tag; an
// empty string means English.
func Items(lang string) ([]optionmenu.MenuItem, language.Tag, error) {
	if lang == "" {
		lang = language.English.String()
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, language.Und, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle, err := Bundle()
	if err != nil {
		return nil, language.Und, err
	}
	localizer := i18n.NewLocalizer(bundle, lang)

	used := language.English
	items := make([]optionmenu.MenuItem, 0, len(rows))
	for _, r := range rows {
		label, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: r.id})
		if err != nil {
			return nil, language.Und, fmt.Errorf("localize %s: %w", r.id, err)
		}
		used = tag
		items = append(items, optionmenu.MenuItem{
			Label:        label,
			Enabled:      !r.disabled,
			Selected:     r.selected,
			IsGroupLabel: r.group,
			IsGroupChild: r.child,
		})
	}
	return items, used, nil
}
