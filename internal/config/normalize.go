package config

import (
	"strings"

	"github.com/brainit/fastpath/internal/engine"
)

// Normalize fills unset fields with defaults and canonicalizes enums.
func Normalize(cfg *Config) {
	def := Default()

	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Thresholds.MidMin == 0 {
		cfg.Thresholds.MidMin = def.Thresholds.MidMin
	}
	if cfg.Thresholds.TopMin == 0 {
		cfg.Thresholds.TopMin = def.Thresholds.TopMin
	}

	if cfg.Offers == nil {
		cfg.Offers = make(map[string]engine.Offer)
	}
	for key, o := range def.Offers {
		cur, ok := cfg.Offers[key]
		if !ok {
			cfg.Offers[key] = o
			continue
		}
		if strings.TrimSpace(cur.Label) == "" {
			cur.Label = o.Label
		}
		if strings.TrimSpace(cur.CTA) == "" {
			cur.CTA = o.CTA
		}
		if strings.TrimSpace(cur.Link) == "" {
			cur.Link = o.Link
		}
		cfg.Offers[key] = cur
	}

	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = def.UI.Theme
	}
	cfg.UI.BooleanStyle = strings.ToLower(strings.TrimSpace(cfg.UI.BooleanStyle))
	if cfg.UI.BooleanStyle == "" {
		cfg.UI.BooleanStyle = def.UI.BooleanStyle
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
}
