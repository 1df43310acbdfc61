package engine

import "fmt"

// Tier is one of the three recommendation outcomes, ordered low to high.
type Tier int

const (
	TierEntry Tier = iota // Free prototype
	TierMid               // Paid work session
	TierTop               // Full setup package
)

// AllTiers returns all tiers from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierEntry, TierMid, TierTop}
}

// String returns the config key of the tier.
func (t Tier) String() string {
	switch t {
	case TierEntry:
		return "entry"
	case TierMid:
		return "mid"
	case TierTop:
		return "top"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier maps a config key back to a Tier.
func ParseTier(s string) (Tier, bool) {
	for _, t := range AllTiers() {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Policy holds the two score boundaries separating the three tiers.
// Scores in [0, MidMin) are entry, [MidMin, TopMin) mid, [TopMin, ∞) top.
type Policy struct {
	MidMin int `json:"mid" yaml:"mid"`
	TopMin int `json:"top" yaml:"top"`
}

// DefaultPolicy returns the canonical boundaries: 0-3 entry, 4-6 mid, 7+ top.
func DefaultPolicy() Policy {
	return Policy{MidMin: 4, TopMin: 7}
}

// Validate checks that the boundaries describe three non-empty ranges.
func (p Policy) Validate() error {
	if p.MidMin <= 0 {
		return fmt.Errorf("mid threshold must be > 0, got %d", p.MidMin)
	}
	if p.TopMin <= p.MidMin {
		return fmt.Errorf("top threshold (%d) must be greater than mid threshold (%d)", p.TopMin, p.MidMin)
	}
	return nil
}

// TierFor maps a score to its tier. Negative scores land in the entry tier.
func (p Policy) TierFor(score int) Tier {
	switch {
	case score >= p.TopMin:
		return TierTop
	case score >= p.MidMin:
		return TierMid
	default:
		return TierEntry
	}
}

// MarshalText encodes the tier as its config key.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a config key.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, ok := ParseTier(string(b))
	if !ok {
		return fmt.Errorf("unknown tier %q", string(b))
	}
	*t = parsed
	return nil
}
