package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/xavierca1/nicsan-site/internal/entity"
	"github.com/xavierca1/nicsan-site/internal/usecase"
	"github.com/xavierca1/nicsan-site/internal/web/components"
	"github.com/xavierca1/nicsan-site/pkg/logging"
)

const persistFailedMessage = "We couldn't save your request. Please try again in a moment."

type LeadSubmitter interface {
	Execute(ctx context.Context, req entity.LeadRequest) (*entity.Lead, error)
}

// Site serves the marketing pages and their safety-call forms.
type Site struct {
	Catalog   *usecase.CatalogReader
	Submitter LeadSubmitter
	Logger    *zap.Logger
}

func NewSite(catalog *usecase.CatalogReader, submitter LeadSubmitter, logger *zap.Logger) *Site {
	return &Site{Catalog: catalog, Submitter: submitter, Logger: logging.OrNop(logger)}
}

// Routes mounts pages and static assets. formLimit, when set, wraps the form posts.
func (s *Site) Routes(r chi.Router, formLimit func(http.Handler) http.Handler) error {
	static, err := Static()
	if err != nil {
		return err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", s.Home)
	r.Get("/about", s.About)
	r.Get("/terms", s.Terms)
	r.Get("/privacy", s.Privacy)

	r.Group(func(r chi.Router) {
		if formLimit != nil {
			r.Use(formLimit)
		}
		r.Post("/forms/hero", s.SubmitHero)
		r.Post("/forms/products/{slug}", s.SubmitProduct)
	})
	return nil
}

// Home renders the landing page. ?open= and ?thanks= name at most one form each;
// unknown names are ignored.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	state := s.homeState(r.Context())
	q := r.URL.Query()
	if id := q.Get("open"); knownForm(state.Products, id) {
		state.Open = id
	}
	if id := q.Get("thanks"); knownForm(state.Products, id) {
		state.Thanks = id
		state.Open = ""
	}
	s.render(w, http.StatusOK, components.HomePage(state))
}

func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	products, _ := s.Catalog.Catalog(r.Context())
	s.render(w, http.StatusOK, components.AboutPage(products))
}

func (s *Site) Terms(w http.ResponseWriter, r *http.Request) {
	products, _ := s.Catalog.Catalog(r.Context())
	s.render(w, http.StatusOK, components.TermsPage(products))
}

func (s *Site) Privacy(w http.ResponseWriter, r *http.Request) {
	products, _ := s.Catalog.Catalog(r.Context())
	s.render(w, http.StatusOK, components.PrivacyPage(products))
}

// SubmitHero handles the general enquiry form. The lead has no product and
// form_data always carries name then phone.
func (s *Site) SubmitHero(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostForm.Get("name"))
	phone := strings.TrimSpace(r.PostForm.Get("phone"))
	req := entity.LeadRequest{
		CustomerName: name,
		PhoneNumber:  phone,
		FormData:     entity.FormData{{Key: "name", Value: name}, {Key: "phone", Value: phone}},
	}
	s.submit(w, r, components.HeroFormID, req)
}

// SubmitProduct handles a product card form. Fields follow the product definition.
func (s *Site) SubmitProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	product, err := s.Catalog.ResolveProduct(r.Context(), slug)
	if err != nil {
		if usecase.IsDomainError(err) {
			s.render(w, http.StatusNotFound, components.NotFoundPage())
			return
		}
		s.Logger.Error("product lookup failed", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "service unavailable", http.StatusBadGateway)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := product.ID
	req := entity.LeadRequest{
		ProductID: &id,
		FormData:  collect(r, product.FormFields),
	}
	s.submit(w, r, product.Slug, req)
}

func (s *Site) submit(w http.ResponseWriter, r *http.Request, formID string, req entity.LeadRequest) {
	if _, err := s.Submitter.Execute(r.Context(), req); err != nil {
		s.Logger.Warn("form submission failed", zap.String("form", formID), zap.Error(err))

		state := s.homeState(r.Context())
		state.Open = formID
		state.Error = persistFailedMessage
		state.Values = req.FormData

		status := http.StatusBadGateway
		if usecase.IsDomainError(err) {
			status = http.StatusBadRequest
		}
		s.render(w, status, components.HomePage(state))
		return
	}

	http.Redirect(w, r, components.ThanksHref(formID), http.StatusSeeOther)
}

func (s *Site) homeState(ctx context.Context) components.HomeState {
	products, fallback := s.Catalog.Catalog(ctx)
	return components.HomeState{Products: products, Fallback: fallback}
}

func (s *Site) render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		s.Logger.Warn("page render failed", zap.Error(err))
	}
}

// collect reads the submitted fields in definition order. Fields the browser did not send are left out.
func collect(r *http.Request, fields []entity.FormField) entity.FormData {
	out := entity.FormData{}
	for _, f := range fields {
		if _, ok := r.PostForm[f.Name]; !ok {
			continue
		}
		out.Set(f.Name, strings.TrimSpace(r.PostForm.Get(f.Name)))
	}
	return out
}

func knownForm(products []entity.Product, id string) bool {
	if id == components.HeroFormID {
		return true
	}
	for _, p := range products {
		if p.Slug == id {
			return true
		}
	}
	return false
}
