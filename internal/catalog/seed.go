package catalog

import "fmt"

func init() {
	c, err := New(seedSets())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	defaultCatalog = c
}

// baseQuestions are asked for every industry.
func baseQuestions() []Question {
	return []Question{
		{
			ID:          "ai_agent",
			Prompt:      "Do you want an AI assistant on your website?",
			Description: "A chat assistant that answers common customer questions.",
		},
		{
			ID:     "booking",
			Prompt: "Do you need online booking or intake forms?",
		},
		{
			ID:     "email_automation",
			Prompt: "Should follow-up emails/texts be automated?",
		},
		{
			ID:     "urgency",
			Prompt: "How urgent is your need?",
			Kind:   KindChoice,
			Options: []Option{
				{Value: "low", Label: "Low"},
				{Value: "medium", Label: "Medium"},
				{Value: "high", Label: "High"},
			},
		},
	}
}

func seedSets() map[Industry][]Question {
	with := func(extra ...Question) []Question {
		return append(baseQuestions(), extra...)
	}

	return map[Industry][]Question{
		IndustryBoutique: with(
			Question{
				ID:          "pos_sync",
				Prompt:      "Do you need Shopify ↔ POS inventory sync?",
				Description: "Keeps online and in-store stock counts in step.",
				Weight:      2,
			},
			Question{ID: "qr_products", Prompt: "Use QR codes for products/promos?"},
		),
		IndustryCoffeeShop: with(
			Question{ID: "loyalty", Prompt: "Set up loyalty or punch-card automations?"},
			Question{
				ID:     "pos_sync",
				Prompt: "Do you need Shopify ↔ POS menu/inventory sync?",
				Weight: 2,
			},
		),
		IndustryLegal: with(
			Question{ID: "intake", Prompt: "Automate client intake & document collection?"},
			Question{ID: "crm", Prompt: "Track cases in a simple CRM dashboard?"},
		),
		IndustryDental: with(
			Question{ID: "reminders", Prompt: "Appointment reminders & recall automation?"},
			Question{ID: "forms", Prompt: "HIPAA-friendly intake & consent forms?"},
		),
		IndustryArtGallery: with(
			Question{ID: "catalog", Prompt: "Online catalog with inquiry automations?"},
			Question{ID: "events", Prompt: "RSVP/guest-list flows for openings?"},
		),
	}
}
