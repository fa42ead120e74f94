package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"darimmo.ma/darimmo-web/internal/content"
	handlersPkg "darimmo.ma/darimmo-web/internal/handlers"
	"darimmo.ma/darimmo-web/internal/seo"
	"darimmo.ma/darimmo-web/internal/site"
)

// contentHandler renders a localized static page (about, privacy, terms).
func (a *app) contentHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	scope := handlersPkg.ScopeFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	page, err := a.content.GetPage(r.Context(), "pages", slug, scope.Locale)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			a.log.Warn("content page", zap.String("slug", slug), zap.Error(err))
		}
		data.SEO = seo.Meta{Title: data.Settings.SiteName}
		a.renderStatus(w, r, http.StatusNotFound, "content.tmpl", data)
		return
	}

	route := routePath(r)
	title := page.SEO.Title
	if title == "" {
		title = page.Title
	}
	desc := page.SEO.Description
	if desc == "" {
		desc = page.Summary
	}
	data.Content = &handlersPkg.ContentView{
		Title:         page.Title,
		Summary:       page.Summary,
		Body:          content.RenderHTML(page.Body, page.Format),
		EffectiveDate: page.EffectiveDate,
		Version:       page.Version,
	}
	data.SEO = seo.Meta{
		Title:       title + " | " + data.Settings.SiteName,
		Description: desc,
		Canonical:   a.site.Canonical(route, nil, nil),
		Alternates:  a.site.Alternates(route),
	}
	a.render(w, r, "content.tmpl", data)
}

// joinHandler renders the join-us form.
func (a *app) joinHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	data.Join = &handlersPkg.JoinView{}
	a.setJoinMeta(&data, r)
	a.render(w, r, "join.tmpl", data)
}

// joinSubmitHandler validates the form and relays it to the API. Validation
// errors redisplay the form; relay failures show a degraded-success notice
// so visitors are never told to retry a submission we accepted.
func (a *app) joinSubmitHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := site.JoinRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		City:    r.PostFormValue("city"),
		Message: r.PostFormValue("message"),
	}
	errs := form.Validate()
	view := &handlersPkg.JoinView{Form: form}
	if len(errs) > 0 {
		view.Errors = errs
		data.Join = view
		a.setJoinMeta(&data, r)
		a.renderStatus(w, r, http.StatusUnprocessableEntity, "join.tmpl", data)
		return
	}
	if err := a.settings.SubmitJoinRequest(r.Context(), form); err != nil {
		a.log.Warn("join relay failed", zap.Error(err))
		view.Failed = true
	}
	view.Submitted = true
	data.Join = view
	a.setJoinMeta(&data, r)
	a.render(w, r, "join.tmpl", data)
}

func (a *app) setJoinMeta(data *handlersPkg.PageData, r *http.Request) {
	data.SEO = seo.Meta{
		Title:       a.t(r, "join.title") + " | " + data.Settings.SiteName,
		Description: a.t(r, "join.metaDescription"),
		Canonical:   a.site.Canonical("/join-us", nil, nil),
		Alternates:  a.site.Alternates("/join-us"),
	}
}
