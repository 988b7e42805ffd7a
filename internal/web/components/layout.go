package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Nicsan Insurance - Insurance Minus the Drama"
	}

	if config.Description == "" {
		config.Description = "Licensed by IRDA and trusted by more than 1 lakh customers nationwide since 2018."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/images/logo-favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				g.Group(content),
			),
		),
	})
}
