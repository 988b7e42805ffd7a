package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// HomeState drives the landing page. Open and Thanks hold a form id; the form named by
// Error and Values is the one whose submission just failed.
type HomeState struct {
	Products []entity.Product
	Fallback bool
	Open     string
	Thanks   string
	Error    string
	Values   entity.FormData
}

// Form derives the state of a single form from the page state.
func (s HomeState) Form(id, action string, fields []entity.FormField) FormState {
	fs := FormState{
		ID:     id,
		Action: action,
		Fields: fields,
		Open:   s.Open == id,
		Thanks: s.Thanks == id,
	}
	if fs.Open {
		fs.Error = s.Error
		fs.Values = s.Values
	}
	return fs
}

func Hero(s HomeState) g.Node {
	return Section(
		Class("hero"),
		ID(HeroFormID),
		Div(
			Class("hero-copy"),
			H1(g.Text("Insurance"), Br(), g.Text("Minus the"), Br(), g.Text("Drama")),
			P(Class("hero-subtitle"), g.Text("No drama, just coverage that works when life doesn't.")),
			A(Href(OpenHref(HeroFormID)), Class("btn btn-primary"), g.Text("Book Safety Call")),
			P(g.Text("Licensed by IRDA and trusted by more than 1 lakh customers nationwide since 2018")),
			SafetyCallForm(s.Form(HeroFormID, "/forms/hero", HeroFields)),
		),
		ProductGrid(s),
	)
}
