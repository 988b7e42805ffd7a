package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

func HomePage(s HomeState) g.Node {
	return Layout(
		PageConfig{},
		Topbar(),
		Main(
			Hero(s),
			AboutSection(),
		),
		PageFooter(s.Products),
	)
}

func AboutPage(products []entity.Product) g.Node {
	return Layout(
		PageConfig{Title: "About Us - Nicsan Insurance"},
		Topbar(),
		Main(AboutSection()),
		PageFooter(products),
	)
}

func TermsPage(products []entity.Product) g.Node {
	return Layout(
		PageConfig{Title: "Terms & Conditions - Nicsan Insurance"},
		Topbar(),
		Main(legalDocument("Terms & Conditions", termsSections)),
		PageFooter(products),
	)
}

func PrivacyPage(products []entity.Product) g.Node {
	return Layout(
		PageConfig{Title: "Privacy Policy - Nicsan Insurance"},
		Topbar(),
		Main(legalDocument("Privacy Policy", privacySections)),
		PageFooter(products),
	)
}

func NotFoundPage() g.Node {
	return Layout(
		PageConfig{Title: "Page not found - Nicsan Insurance"},
		Topbar(),
		Main(
			Section(
				Class("legal"),
				H1(g.Text("Page not found")),
				P(A(Href("/"), g.Text("← Back to Home"))),
			),
		),
	)
}
