package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const (
	SupportEmail = "care@nicsanimf.com"
	HiringEmail  = "connect@nicsanimf.com"
)

func PageFooter(products []entity.Product) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("footer-columns"),
			Div(
				Img(Src("/static/images/logo-horizontal.svg"), Alt("Nicsan Insurance")),
				A(Href(OpenHref(HeroFormID)), Class("btn btn-primary"), g.Text("Book Safety Call")),
			),
			Div(
				H3(g.Text("Products")),
				Ul(g.Map(products, func(p entity.Product) g.Node {
					return Li(A(Href(OpenHref(p.Slug)), g.Textf("%s Insurance", p.Name)))
				})),
			),
			Div(
				H3(g.Text("General")),
				Ul(
					Li(A(Href("/about"), g.Text("About Us"))),
					Li(A(Href("/terms"), g.Text("Terms & Conditions"))),
					Li(A(Href("/privacy"), g.Text("Privacy Policy"))),
				),
			),
			Div(
				H3(g.Text("Need Help?")),
				P(g.Text("General Support: "), A(Href("mailto:"+SupportEmail), g.Text(SupportEmail))),
				P(g.Text("Hiring Queries: "), A(Href("mailto:"+HiringEmail), g.Text(HiringEmail))),
			),
		),
		Div(
			Class("footer-legal"),
			P(g.Text("Nicsan © 2021-2025. All Rights Reserved.")),
			P(g.Text("Nicsan Insurance Marketing LLP")),
			P(g.Text("CIN: U74999KA2018PTC184423")),
			P(g.Text("IRDAI Registered Corporate Agent (Composite) License No CA0738")),
			P(
				Class("disclaimer"),
				g.Text("Disclaimer : The information contained in this website is presented purely for information purposes only provided as service to the internet community at large. It does not constitute insurance advice and we do not guarantee the accuracy, adequacy or the completeness of the information contained here."),
			),
		),
	)
}
