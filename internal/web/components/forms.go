package components

import (
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// HeroFormID names the general enquiry form. Product forms are named by their slug.
const HeroFormID = "hero"

// HeroFields are the inputs of the general enquiry form, in submission order.
var HeroFields = []entity.FormField{
	{Name: "name", Label: "Name", Type: "text", Required: true},
	{Name: "phone", Label: "Phone No.", Type: "tel", Required: true},
}

func OpenHref(formID string) string {
	return "/?open=" + url.QueryEscape(formID) + "#" + formID
}

func ThanksHref(formID string) string {
	return "/?thanks=" + url.QueryEscape(formID) + "#" + formID
}

// FormState is the render state of one safety-call form. At most one form on a page is open.
type FormState struct {
	ID     string
	Action string
	Fields []entity.FormField
	Open   bool
	Thanks bool
	Error  string
	Values entity.FormData
}

// SafetyCallForm renders the form panel: nothing when closed, the thank-you note after a
// successful submission, otherwise the inputs with any previously entered values.
func SafetyCallForm(s FormState) g.Node {
	if !s.Open && !s.Thanks {
		return nil
	}

	return Div(
		Class("form-panel"),
		g.Attr("data-form", s.ID),
		A(Href("/#"+s.ID), Class("form-close"), Aria("label", "Close"), g.Text("×")),
		g.If(s.Thanks, ThankYou()),
		g.If(!s.Thanks, Form(
			Method("post"),
			Action(s.Action),
			g.If(s.Error != "", ErrorBanner(s.Error)),
			g.Group(g.Map(s.Fields, func(f entity.FormField) g.Node {
				v, _ := s.Values.Get(f.Name)
				return formInput(s.ID, f, v)
			})),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Book Safety Call")),
		)),
	)
}

func formInput(formID string, f entity.FormField, value string) g.Node {
	id := formID + "-" + inputID(f.Name)
	typ := f.Type
	if typ == "" {
		typ = "text"
	}
	placeholder := f.Placeholder
	if placeholder == "" {
		placeholder = "Enter " + strings.ToLower(f.Label)
	}

	return Div(
		Class("form-field"),
		Label(For(id), g.Text(f.Label+":")),
		Input(
			ID(id),
			Name(f.Name),
			Type(typ),
			Placeholder(placeholder),
			Value(value),
			g.If(f.Required, Required()),
		),
	)
}

func inputID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func ThankYou() g.Node {
	return Div(
		Class("thank-you"),
		H3(g.Text("We've got your back.")),
		P(g.Text("Your Ni Buddy is already looking into your request and will get in touch with you shortly.")),
		P(g.Text("In the meantime, grab a chai, we'll take it from here.")),
		Div(
			Class("social"),
			A(Href("https://linkedin.com/company/nicsanin"), Target("_blank"), Rel("noopener noreferrer"), g.Text("LinkedIn")),
			A(Href("https://x.com/nicsanin?s=11"), Target("_blank"), Rel("noopener noreferrer"), g.Text("X")),
			A(Href("https://www.instagram.com/nicsanin"), Target("_blank"), Rel("noopener noreferrer"), g.Text("Instagram")),
		),
	)
}

func ErrorBanner(message string) g.Node {
	return Div(Class("error-banner"), Role("alert"), g.Text(message))
}
