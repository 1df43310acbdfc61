package config

import (
	"fmt"

	"github.com/brainit/fastpath/internal/engine"
)

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	BooleanStyleCheckbox = "checkbox"
	BooleanStyleYesNo    = "yesno"
)

// Config is the user-tunable configuration. Every field has a default.
type Config struct {
	Version    int                     `yaml:"version" json:"version"`
	Thresholds engine.Policy           `yaml:"thresholds" json:"thresholds"`
	Offers     map[string]engine.Offer `yaml:"offers,omitempty" json:"offers,omitempty"`
	UI         UIConfig                `yaml:"ui" json:"ui"`
	Log        LogConfig               `yaml:"log" json:"log"`
}

// UIConfig selects presentation for the terminal UI.
type UIConfig struct {
	Theme        string `yaml:"theme" json:"theme"`
	BooleanStyle string `yaml:"boolean_style" json:"boolean_style"`
	SkipSplash   bool   `yaml:"skip_splash" json:"skip_splash"`
}

// LogConfig controls the structured log sink.
type LogConfig struct {
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
	Debug bool   `yaml:"debug" json:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	offers := make(map[string]engine.Offer)
	for t, o := range engine.DefaultOffers() {
		offers[t.String()] = o
	}
	return Config{
		Version:    CurrentVersion,
		Thresholds: engine.DefaultPolicy(),
		Offers:     offers,
		UI: UIConfig{
			Theme:        ThemeDark,
			BooleanStyle: BooleanStyleYesNo,
		},
	}
}

// Recommender builds the score-to-recommendation mapping from the config.
func (c Config) Recommender() (*engine.Recommender, error) {
	offers := make(map[engine.Tier]engine.Offer, len(c.Offers))
	for key, o := range c.Offers {
		t, ok := engine.ParseTier(key)
		if !ok {
			return nil, fmt.Errorf("offers: unknown tier %q", key)
		}
		offers[t] = o
	}
	return engine.NewRecommender(c.Thresholds, offers)
}
