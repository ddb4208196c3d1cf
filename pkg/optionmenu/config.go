package optionmenu

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/platform/adwaita"
)

// Config is the on-disk form of Options.
//
//	[metrics]
//	item_height = 32
//	max_visible_items = 8
//
//	[theme]
//	preset = "dark"
//	hover = "#3584E4"
//
//	[log]
//	path = "/tmp/optionmenu.log"
//	level = "debug"
type Config struct {
	Metrics Metrics     `toml:"metrics"`
	Theme   ThemeConfig `toml:"theme"`
	Log     LogOptions  `toml:"log"`
}

// ThemeConfig overrides individual colors of a preset. Colors are
// "#RRGGBB" or "#RRGGBBAA"; empty strings keep the preset's value.
type ThemeConfig struct {
	Preset          string `toml:"preset"` // "light" (default) or "dark"
	Background      string `toml:"background"`
	Border          string `toml:"border"`
	Hover           string `toml:"hover"`
	Selected        string `toml:"selected"`
	Text            string `toml:"text"`
	HighlightedText string `toml:"highlighted_text"`
	DisabledText    string `toml:"disabled_text"`
	GroupLabel      string `toml:"group_label"`
	ScrollIndicator string `toml:"scroll_indicator"`
	Font            string `toml:"font"`
	BoldFont        string `toml:"bold_font"`
}

// LoadConfig reads a TOML config file. Keys that are absent keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, NewInfrastructureError("load_config", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("Ignoring unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
	}

	return cfg, nil
}

// LoadConfigFromEnv loads the file named by OPTIONMENU_CONFIG. It returns a
// zero Config when the variable is unset.
func LoadConfigFromEnv() (Config, error) {
	path := os.Getenv(constants.ConfigPathEnvVar)
	if path == "" {
		return Config{}, nil
	}
	return LoadConfig(path)
}

// Options resolves the config into popup options.
func (c Config) Options() (Options, error) {
	theme, err := c.Theme.Resolve()
	if err != nil {
		return Options{}, err
	}
	return Options{Metrics: c.Metrics.withDefaults(), Theme: theme}, nil
}

// Resolve applies the overrides on top of the chosen preset.
func (tc ThemeConfig) Resolve() (internal.Theme, error) {
	theme := adwaita.ForName(tc.Preset)

	overrides := []struct {
		raw    string
		target *color.NRGBA
	}{
		{tc.Background, &theme.BackgroundColor},
		{tc.Border, &theme.BorderColor},
		{tc.Hover, &theme.HoverColor},
		{tc.Selected, &theme.SelectedColor},
		{tc.Text, &theme.TextColor},
		{tc.HighlightedText, &theme.HighlightedTextColor},
		{tc.DisabledText, &theme.DisabledTextColor},
		{tc.GroupLabel, &theme.GroupLabelColor},
		{tc.ScrollIndicator, &theme.ScrollIndicatorColor},
	}

	for _, o := range overrides {
		if o.raw == "" {
			continue
		}
		c, err := internal.ParseHexColor(o.raw)
		if err != nil {
			return internal.Theme{}, NewInfrastructureError("parse_theme", err)
		}
		*o.target = c
	}

	if tc.Font != "" {
		theme.FontPath = tc.Font
	}
	if tc.BoldFont != "" {
		theme.BoldFontPath = tc.BoldFont
	}

	return theme, nil
}
