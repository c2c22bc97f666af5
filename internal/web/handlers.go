package web

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/worldview/internal/country"
	"github.com/alexisbeaulieu97/worldview/internal/theme"
	apperrors "github.com/alexisbeaulieu97/worldview/pkg/errors"
)

// clientHintHeader carries the browser's colour scheme preference.
const clientHintHeader = "Sec-CH-Prefers-Color-Scheme"

type page struct {
	Title       string
	Dark        bool
	ToggleLabel string
	Path        string
	List        *listPage
	Detail      *detailPage
}

type listPage struct {
	Search  string
	Regions []regionOption
	Message string
	Failed  bool
	Cards   []country.Presentation
}

type regionOption struct {
	Value    string
	Label    string
	Selected bool
}

type detailPage struct {
	Message string
	Failed  bool
	Country *country.Presentation
}

// themeFor builds the request's theme store over its cookies.
func (s *Server) themeFor(w http.ResponseWriter, r *http.Request) *theme.Store {
	w.Header().Set("Accept-CH", clientHintHeader)
	w.Header().Add("Vary", clientHintHeader)
	return theme.New(newCookieStorage(w, r), theme.HintAmbient(r.Header.Get(clientHintHeader)), theme.WithLogger(s.log))
}

func (s *Server) newPage(w http.ResponseWriter, r *http.Request, title string) page {
	mode := s.themeFor(w, r).Mode()
	return page{
		Title:       title,
		Dark:        mode.IsDark(),
		ToggleLabel: mode.ToggleLabel(),
		Path:        r.URL.RequestURI(),
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := country.Filter{Search: q.Get("q")}
	if region, err := country.ParseRegion(q.Get("region")); err == nil {
		filter.Region = region
	}

	p := s.newPage(w, r, country.Title)
	list := &listPage{
		Search:  filter.Search,
		Regions: regionOptions(filter.Region),
	}
	p.List = list

	status := http.StatusOK
	countries, err := s.service.List(r.Context())
	switch {
	case err != nil:
		s.log.Error(err, "failed to load countries")
		list.Message = country.ListErrorMessage
		list.Failed = true
		status = http.StatusBadGateway
	default:
		visible := filter.Apply(countries)
		for _, c := range visible {
			list.Cards = append(list.Cards, country.Present(c))
		}
		if len(visible) == 0 {
			list.Message = country.NoMatchMessage
		}
	}

	s.render(w, status, p)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "code")
	p := s.newPage(w, r, country.Title)
	detail := &detailPage{}
	p.Detail = detail

	code, err := country.ParseCode(raw)
	if err != nil {
		detail.Message = country.NotFoundMessage(strings.ToUpper(raw))
		s.render(w, http.StatusNotFound, p)
		return
	}

	c, err := s.service.Get(r.Context(), code)
	switch {
	case apperrors.IsNotFound(err):
		detail.Message = country.NotFoundMessage(code)
		s.render(w, http.StatusNotFound, p)
	case err != nil:
		s.log.WithFields(map[string]any{"code": code}).Error(err, "failed to load country")
		detail.Message = country.DetailErrorMessage
		detail.Failed = true
		s.render(w, http.StatusBadGateway, p)
	default:
		presented := country.Present(c)
		detail.Country = &presented
		p.Title = presented.Name + " | " + country.Title
		s.render(w, http.StatusOK, p)
	}
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	store := s.themeFor(w, r)
	mode, err := store.Toggle()
	if err != nil {
		s.log.Error(err, "failed to persist theme")
	}
	s.metrics.observeToggle(mode.String())

	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

// safeReturn limits redirects to local paths.
func safeReturn(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return u.RequestURI()
}

func regionOptions(selected country.Region) []regionOption {
	options := []regionOption{{
		Value:    "",
		Label:    country.RegionNone.Label(),
		Selected: selected == country.RegionNone,
	}}
	for _, region := range country.FilterRegions {
		options = append(options, regionOption{
			Value:    region.String(),
			Label:    region.Label(),
			Selected: region == selected,
		})
	}
	return options
}

func (s *Server) render(w http.ResponseWriter, status int, p page) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, "layout", p); err != nil {
		s.log.Error(err, "failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
