package catalog

import (
	"fmt"
	"strings"
)

// validateSets performs all structural checks on the given question sets.
// Returns a combined error describing all problems found, or nil if valid.
func validateSets(sets map[Industry][]Question) error {
	var errs []string

	for ind := range sets {
		if !ind.Known() {
			errs = append(errs, fmt.Sprintf("unknown industry %q", ind))
		}
	}

	for _, ind := range Industries() {
		qs := sets[ind]
		if len(qs) == 0 {
			errs = append(errs, fmt.Sprintf("industry %q has no questions", ind))
			continue
		}

		ids := make(map[string]bool, len(qs))
		for _, q := range qs {
			prefix := fmt.Sprintf("%s/%s", ind.Slug(), q.ID)
			if strings.TrimSpace(q.ID) == "" {
				errs = append(errs, fmt.Sprintf("industry %q has a question with an empty id", ind))
			} else if ids[q.ID] {
				errs = append(errs, fmt.Sprintf("industry %q: duplicate question id %q", ind, q.ID))
			}
			ids[q.ID] = true

			if strings.TrimSpace(q.Prompt) == "" {
				errs = append(errs, fmt.Sprintf("%s: prompt is empty", prefix))
			}
			if q.Weight < 0 {
				errs = append(errs, fmt.Sprintf("%s: weight must be >= 0, got %d", prefix, q.Weight))
			}

			switch q.Kind {
			case KindBoolean, "":
				if len(q.Options) > 0 {
					errs = append(errs, fmt.Sprintf("%s: boolean question must not have options", prefix))
				}
			case KindChoice:
				if len(q.Options) == 0 {
					errs = append(errs, fmt.Sprintf("%s: choice question needs at least one option", prefix))
				}
				values := make(map[string]bool, len(q.Options))
				for _, o := range q.Options {
					if o.Value == "" {
						errs = append(errs, fmt.Sprintf("%s: option with empty value", prefix))
					}
					if values[o.Value] {
						errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, o.Value))
					}
					values[o.Value] = true
				}
			default:
				errs = append(errs, fmt.Sprintf("%s: unknown kind %q", prefix, q.Kind))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
