package catalog

import (
	"fmt"
	"slices"
)

// Catalog maps each industry to its ordered question list.
// It is built once and never mutated afterwards.
type Catalog struct {
	questions map[Industry][]Question
	byID      map[Industry]map[string]int
}

// defaultCatalog is the built-in catalog, set by init() in seed.go.
var defaultCatalog *Catalog

// New builds a Catalog from the given question sets. Questions with an empty
// Kind are treated as boolean. The input is copied and validated.
func New(sets map[Industry][]Question) (*Catalog, error) {
	c := &Catalog{
		questions: make(map[Industry][]Question, len(sets)),
		byID:      make(map[Industry]map[string]int, len(sets)),
	}
	for ind, qs := range sets {
		normalized := make([]Question, len(qs))
		for i, q := range qs {
			if q.Kind == "" {
				q.Kind = KindBoolean
			}
			q.Options = slices.Clone(q.Options)
			normalized[i] = q
		}
		c.questions[ind] = normalized

		idx := make(map[string]int, len(normalized))
		for i, q := range normalized {
			if _, dup := idx[q.ID]; !dup {
				idx[q.ID] = i
			}
		}
		c.byID[ind] = idx
	}

	if err := validateSets(c.questions); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// QuestionsFor returns the ordered questions for an industry. An unrecognized
// industry yields an empty slice.
func (c *Catalog) QuestionsFor(ind Industry) []Question {
	qs := c.questions[ind]
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// Question looks up a single question by id within an industry.
func (c *Catalog) Question(ind Industry, id string) (Question, bool) {
	i, ok := c.byID[ind][id]
	if !ok {
		return Question{}, false
	}
	q := c.questions[ind][i]
	q.Options = slices.Clone(q.Options)
	return q, true
}

// MaxScore returns the highest score reachable for an industry.
func (c *Catalog) MaxScore(ind Industry) int {
	total := 0
	for _, q := range c.questions[ind] {
		total += q.EffectiveWeight()
	}
	return total
}

// Industries returns the industries present in the catalog, in display order.
func (c *Catalog) Industries() []Industry {
	var out []Industry
	for _, ind := range Industries() {
		if _, ok := c.questions[ind]; ok {
			out = append(out, ind)
		}
	}
	return out
}

// QuestionsFor returns the built-in questions for an industry.
func QuestionsFor(ind Industry) []Question {
	return defaultCatalog.QuestionsFor(ind)
}

// MaxScore returns the highest reachable score in the built-in catalog.
func MaxScore(ind Industry) int {
	return defaultCatalog.MaxScore(ind)
}

// Validate re-checks the built-in catalog.
func Validate() error {
	if defaultCatalog == nil {
		return fmt.Errorf("catalog not initialized")
	}
	return validateSets(defaultCatalog.questions)
}
