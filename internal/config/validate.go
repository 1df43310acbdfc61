package config

import (
	"fmt"
	"strings"

	"github.com/brainit/fastpath/internal/engine"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for semantic correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version != CurrentVersion {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Thresholds.MidMin <= 0 {
		add("thresholds.mid", "must be > 0")
	}
	if cfg.Thresholds.TopMin <= cfg.Thresholds.MidMin {
		add("thresholds.top", fmt.Sprintf("must be greater than thresholds.mid (%d)", cfg.Thresholds.MidMin))
	}

	for key, o := range cfg.Offers {
		if _, ok := engine.ParseTier(key); !ok {
			add("offers."+key, "unknown tier (want entry, mid or top)")
			continue
		}
		if strings.TrimSpace(o.Label) == "" {
			add("offers."+key+".label", "is required")
		}
		if strings.TrimSpace(o.Link) == "" {
			add("offers."+key+".link", "is required")
		}
	}

	switch cfg.UI.Theme {
	case ThemeDark, ThemeLight:
	default:
		add("ui.theme", fmt.Sprintf("unsupported theme %q", cfg.UI.Theme))
	}
	switch cfg.UI.BooleanStyle {
	case BooleanStyleCheckbox, BooleanStyleYesNo:
	default:
		add("ui.boolean_style", fmt.Sprintf("unsupported style %q", cfg.UI.BooleanStyle))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
