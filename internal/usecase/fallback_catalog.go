package usecase

import (
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// fallbackEpoch orders the fallback products the same way the seeded store does.
var fallbackEpoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func textFields(labels ...string) []entity.FormField {
	fields := make([]entity.FormField, 0, len(labels))
	for _, l := range labels {
		fields = append(fields, entity.FormField{Name: l, Label: l, Type: "text"})
	}
	return fields
}

// FallbackProducts returns a fresh copy of the six built-in products shown when the store cannot be read.
// Ids match the seed migration so submissions from fallback cards still reference seeded rows.
func FallbackProducts() []entity.Product {
	defs := []struct {
		name, slug, description, icon string
		statistics                    []string
		fields                        []entity.FormField
		direction                     entity.ExpansionDirection
	}{
		{
			"Health", "health", "Stay healthy, stay wealthy", "/static/images/healthcare-icon.svg",
			[]string{
				"Indians still pay 45.98% of all healthcare costs out-of-pocket one medical bill can wipe out savings.",
				"₹ 70,558 — average health-claim size in FY 24, up 11% YoY thanks to medical inflation.",
			},
			textFields("Name", "Phone No.", "Age", "Dependents", "Target sum insured"),
			entity.ExpandDown,
		},
		{
			"Life", "life", "Secure your family's future", "/static/images/life-insurance-icon.svg",
			[]string{
				"Life insurance provides financial security for your family in case of your untimely demise.",
				"Coverage can help pay for funeral expenses, outstanding debts, and living expenses.",
			},
			textFields("Name", "Phone No.", "Age", "Dependents", "Target sum insured"),
			entity.ExpandDown,
		},
		{
			"Motor", "motor", "Drive with confidence", "/static/images/car.svg",
			[]string{
				"Motor insurance is mandatory by law in India.",
				"Comprehensive coverage protects against accidents, theft, and natural disasters.",
			},
			textFields("Name", "Phone No.", "Registration No", "Policy expiry", "Make", "Model"),
			entity.ExpandDown,
		},
		{
			"Travel", "travel", "Travel worry-free", "/static/images/world-icon.svg",
			[]string{
				"Travel insurance covers medical emergencies, trip cancellations, and lost baggage.",
				"Essential for international travel and domestic trips with valuable items.",
			},
			textFields("Name", "Phone No.", "Destination country/region", "Trip start & end dates", "Number of passengers"),
			entity.ExpandDown,
		},
		{
			"Cyber", "cyber", "Protect against cyber threats", "/static/images/cyber-security-icon.svg",
			[]string{
				"SMBs are now the #1 target for hackers fewer resources, bigger pay-outs.",
				"India was the #2 most-attacked nation in 2024",
			},
			textFields("Name", "Phone No.", "Coverage needed", "Any prior breaches or claims history?"),
			entity.ExpandUp,
		},
		{
			"Home", "home", "Protect your home and belongings", "/static/images/home-icon.svg",
			[]string{
				"₹ 1 lakh cr+ (US $12 bn) in property losses from natural catastrophes hit India in 2023 alone.",
				"Floods drive 63% of those annual losses — they're now the number-one threat to property.",
			},
			textFields("Name", "Phone No.", "Cost of structure and interiors", "Desired policy term"),
			entity.ExpandUp,
		},
	}

	out := make([]entity.Product, 0, len(defs))
	for i, d := range defs {
		created := fallbackEpoch.Add(time.Duration(i) * time.Minute)
		out = append(out, entity.Product{
			ID:                 int64(i + 1),
			Name:               d.name,
			Slug:               d.slug,
			Description:        d.description,
			IconPath:           d.icon,
			Statistics:         d.statistics,
			FormFields:         d.fields,
			ExpansionDirection: d.direction,
			IsActive:           true,
			CreatedAt:          created,
			UpdatedAt:          created,
		})
	}
	return out
}

// WithFallback substitutes the built-in catalog when the store read failed.
// The boolean reports whether the substitution happened. An empty successful read stays empty.
func WithFallback(products []entity.Product, err error) ([]entity.Product, bool) {
	if err != nil {
		return FallbackProducts(), true
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, false
}

func fallbackProductBySlug(slug string) (*entity.Product, bool) {
	for _, p := range FallbackProducts() {
		if p.Slug == slug {
			return &p, true
		}
	}
	return nil, false
}
