package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Topbar() g.Node {
	return Header(
		Class("topbar"),
		A(
			Href("/"),
			Class("topbar-logo"),
			Img(Src("/static/images/logo-favicon.svg"), Alt("Nicsan Insurance")),
		),
		Nav(
			Class("topbar-nav"),
			A(Href("/about"), g.Text("About Us")),
			A(Href(OpenHref(HeroFormID)), Class("btn btn-primary"), g.Text("Book Safety Call")),
		),
	)
}
