package engine

import "fmt"

// Offer is the marketing copy and destination for a tier. Link is opaque.
type Offer struct {
	Label string `json:"label" yaml:"label"`
	CTA   string `json:"cta" yaml:"cta"`
	Link  string `json:"link" yaml:"link"`
}

// Recommendation is the outcome shown to the user.
type Recommendation struct {
	Tier Tier `json:"tier"`
	Offer
}

// DefaultOffers returns the built-in copy for each tier.
func DefaultOffers() map[Tier]Offer {
	return map[Tier]Offer{
		TierEntry: {
			Label: "Start with a Free Prototype",
			CTA:   "Get started",
			Link:  "https://brainitconsulting.com",
		},
		TierMid: {
			Label: "Book a $50 Pro Work Session",
			CTA:   "Book now",
			Link:  "https://brainitconsulting.com/book-pro-work-session",
		},
		TierTop: {
			Label: "Basic AI Setup ($250)",
			CTA:   "See what's included",
			Link:  "https://brainitconsulting.com/pricing",
		},
	}
}

// Recommender maps scores to recommendations. Build one with NewRecommender
// or DefaultRecommender; a nil or zero Recommender uses the defaults.
type Recommender struct {
	policy Policy
	offers map[Tier]Offer
}

// NewRecommender creates a Recommender. Tiers missing from offers fall back
// to the built-in copy.
func NewRecommender(policy Policy, offers map[Tier]Offer) (*Recommender, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	merged := DefaultOffers()
	for t, o := range offers {
		if _, ok := merged[t]; !ok {
			return nil, fmt.Errorf("unknown tier %v", t)
		}
		merged[t] = o
	}
	return &Recommender{policy: policy, offers: merged}, nil
}

// DefaultRecommender returns a Recommender with the default policy and copy.
func DefaultRecommender() *Recommender {
	return &Recommender{policy: DefaultPolicy(), offers: DefaultOffers()}
}

// Policy returns the thresholds in use.
func (r *Recommender) Policy() Policy {
	if r.unset() {
		return DefaultPolicy()
	}
	return r.policy
}

// Recommend returns the recommendation for a score. It is total over all
// integers and always returns the same value for the same score.
func (r *Recommender) Recommend(score int) Recommendation {
	if r.unset() {
		r = DefaultRecommender()
	}
	t := r.policy.TierFor(score)
	return Recommendation{Tier: t, Offer: r.offers[t]}
}

// Recommend maps a score with the default policy and copy.
func Recommend(score int) Recommendation {
	return DefaultRecommender().Recommend(score)
}

func (r *Recommender) unset() bool {
	return r == nil || r.offers == nil
}
