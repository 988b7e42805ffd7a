package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type legalSection struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

func legalDocument(title string, sections []legalSection) g.Node {
	return Section(
		Class("legal"),
		A(Href("/"), Class("back-link"), g.Text("← Back to Home")),
		H1(g.Text(title)),
		g.Map(sections, func(s legalSection) g.Node {
			return Div(
				g.If(s.Heading != "", H2(g.Text(s.Heading))),
				g.Map(s.Paragraphs, func(p string) g.Node { return P(g.Text(p)) }),
				g.If(len(s.Items) > 0, Ul(g.Map(s.Items, func(item string) g.Node { return Li(g.Text(item)) }))),
			)
		}),
	)
}

type coreValue struct {
	Title string
	Icon  string
}

type founderNote struct {
	Quote  string
	Author string
}

func AboutSection() g.Node {
	values := []coreValue{
		{"Demystifying", "/static/images/honest.svg"},
		{"Complexity, Simplified", "/static/images/simplify.svg"},
		{"Need based approach", "/static/images/target-audience.svg"},
	}
	notes := []founderNote{
		{"Paying insurance isn't the problem, it's the solution.", "Sandeep Kumar"},
		{"It is the coverages that matter at the time of claim, not the premium you have paid.", "Koustav Bhattacharjee"},
	}

	return Section(
		Class("about"),
		ID("about"),
		H2(g.Text("About Us")),
		P(g.Text("Nicsan Insurance is an Organically grown business by two simple people from simple beginnings.")),
		H3(g.Text("Core Values")),
		Div(
			Class("core-values"),
			g.Map(values, func(v coreValue) g.Node {
				return Div(
					Class("core-value"),
					Img(Src(v.Icon), Alt(v.Title+" icon")),
					P(g.Text(v.Title)),
				)
			}),
		),
		H3(g.Text("Founders Notes")),
		g.Map(notes, func(n founderNote) g.Node {
			return BlockQuote(P(g.Text(n.Quote)), P(Class("author"), g.Text("-"+n.Author)))
		}),
		A(Href(OpenHref(HeroFormID)), Class("btn btn-primary"), g.Text("Book Safety Call")),
	)
}

var termsSections = []legalSection{
	{
		Heading: "1. Acceptance of Terms",
		Paragraphs: []string{
			"By accessing and using this website, you accept and agree to be bound by the terms and provision of this agreement. If you do not agree to abide by the above, please do not use this service.",
		},
	},
	{
		Heading: "2. Use License",
		Paragraphs: []string{
			"Permission is granted to temporarily download one copy of the materials (information or software) on Nicsan Insurance's website for personal, non-commercial transitory viewing only. This is the grant of a license, not a transfer of title, and under this license you may not:",
		},
		Items: []string{
			"modify or copy the materials",
			"use the materials for any commercial purpose or for any public display",
			"attempt to reverse engineer any software contained on the website",
			"remove any copyright or other proprietary notations from the materials",
		},
	},
	{
		Heading: "3. Insurance Services",
		Paragraphs: []string{
			"Nicsan Insurance Marketing LLP is a licensed Corporate Agent (Composite) registered with IRDAI (License No: CA0738). We provide insurance intermediation services and do not underwrite insurance policies directly. All insurance products are underwritten by respective insurance companies.",
			"The information provided on this website is for general informational purposes only and should not be considered as professional advice. We recommend consulting with our insurance advisors for personalized guidance.",
		},
	},
	{
		Heading: "4. Privacy Policy",
		Paragraphs: []string{
			"Your privacy is important to us. Please review our Privacy Policy, which also governs your use of the website, to understand our practices regarding the collection and use of your personal information.",
		},
	},
	{
		Heading: "5. Disclaimer",
		Paragraphs: []string{
			"The materials on Nicsan Insurance's website are provided on an 'as is' basis. Nicsan Insurance makes no warranties, expressed or implied, and hereby disclaims and negates all other warranties including without limitation, implied warranties or conditions of merchantability, fitness for a particular purpose, or non-infringement of intellectual property or other violation of rights.",
		},
	},
	{
		Heading: "6. Limitations",
		Paragraphs: []string{
			"In no event shall Nicsan Insurance or its suppliers be liable for any damages (including, without limitation, damages for loss of data or profit, or due to business interruption) arising out of the use or inability to use the materials on Nicsan Insurance's website.",
		},
	},
	{
		Heading: "7. Accuracy of Materials",
		Paragraphs: []string{
			"The materials appearing on Nicsan Insurance's website could include technical, typographical, or photographic errors. Nicsan Insurance does not warrant that any of the materials on its website are accurate, complete or current, and may make changes to them at any time without notice.",
		},
	},
	{
		Heading: "8. Links",
		Paragraphs: []string{
			"Nicsan Insurance has not reviewed all of the sites linked to its website and is not responsible for the contents of any such linked site. The inclusion of any link does not imply endorsement by Nicsan Insurance of the site. Use of any such linked website is at the user's own risk.",
		},
	},
	{
		Heading: "9. Modifications",
		Paragraphs: []string{
			"Nicsan Insurance may revise these terms of service for its website at any time without notice. By using this website you are agreeing to be bound by the then current version of these terms of service.",
		},
	},
}

var privacySections = []legalSection{
	{
		Paragraphs: []string{
			`Nicsan Insurance Marketing LLP (hereinafter referred to as "Nicsan" or "we" or "our" or "us") operates the website at https://nicsanin.com ("Site" or "Platform").`,
			"By registering for or using the Site, you signify your acceptance of this Privacy Statement. If you do not agree, you may not use the Site.",
		},
	},
	{
		Heading: "1. Information Collection and Use",
		Paragraphs: []string{
			"For a better experience while using our services, we may require you to provide certain personally identifiable information, including but not limited to:",
		},
		Items: []string{"Name", "Phone number", "Email address", "Details you enter in a safety call request"},
	},
	{
		Heading:    "2. How We Use Your Information",
		Paragraphs: []string{"We use your information to:"},
		Items: []string{
			"respond to your safety call request",
			"recommend insurance products that fit your needs",
			"comply with regulatory requirements",
		},
	},
	{
		Heading: "3. Cookies",
		Paragraphs: []string{
			"We may use cookies and similar technologies to improve your experience, measure performance, and deliver relevant content. You can choose to disable cookies via your browser settings, but some site features may not function properly.",
		},
	},
	{
		Heading: "4. Sharing Your Information",
		Paragraphs: []string{
			"We may share your information with relevant insurers, the Insurance Regulatory and Development Authority of India (IRDAI), or third-party service providers to facilitate your request.",
			"We do not sell your personal data to third parties.",
		},
	},
	{
		Heading: "5. Your Rights",
		Paragraphs: []string{
			"Requests can be sent to privacy@nicsanin.com. We will respond within 60 working days, subject to applicable regulations.",
		},
	},
	{
		Heading: "6. Data Retention",
		Paragraphs: []string{
			"We retain your personal data only as long as necessary to fulfill the purposes outlined in this Privacy Policy and to comply with legal requirements.",
		},
	},
	{
		Heading: "7. Security",
		Paragraphs: []string{
			"We use commercially reasonable measures to protect your information, but no method of online transmission or storage is 100% secure.",
		},
	},
	{
		Heading: "8. Children's Privacy",
		Paragraphs: []string{
			"Our services are not intended for individuals under 18. If we discover that we have collected personal information from a minor, we will delete it.",
		},
	},
	{
		Heading: "9. Contact Us",
		Paragraphs: []string{
			"If you have questions about this Privacy Policy or how your data is handled, please contact " + SupportEmail + ".",
		},
	},
}
