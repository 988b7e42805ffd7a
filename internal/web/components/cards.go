package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

func ProductAction(slug string) string {
	return "/forms/products/" + slug
}

func ProductGrid(s HomeState) g.Node {
	return Div(
		Class("product-grid"),
		g.If(s.Fallback, g.Attr("data-catalog", "fallback")),
		g.Group(g.Map(s.Products, func(p entity.Product) g.Node {
			return ProductCard(p, s.Form(p.Slug, ProductAction(p.Slug), p.FormFields))
		})),
	)
}

func ProductCard(p entity.Product, form FormState) g.Node {
	return Article(
		Class("product-card expand-"+string(p.ExpansionDirection)),
		ID(p.Slug),
		Div(
			Class("product-card-head"),
			Img(Src(p.IconPath), Alt(p.Name+" insurance icon"), g.Attr("loading", "lazy")),
			H2(g.Text(p.Name)),
			P(Class("product-description"), g.Text(p.Description)),
		),
		Ul(
			Class("product-stats"),
			g.Map(p.Statistics, func(stat string) g.Node {
				return Li(g.Text(stat))
			}),
		),
		A(Href(OpenHref(p.Slug)), Class("btn btn-outline"), g.Text("Book Safety Call")),
		SafetyCallForm(form),
	)
}
