package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/format"
	handlersPkg "darimmo.ma/darimmo-web/internal/handlers"
	"darimmo.ma/darimmo-web/internal/listings"
	"darimmo.ma/darimmo-web/internal/nav"
	"darimmo.ma/darimmo-web/internal/query"
	"darimmo.ma/darimmo-web/internal/seo"
)

// homeHandler renders the landing page: featured listings for the site focus
// plus the latest blog posts.
func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	scope := handlersPkg.ScopeFrom(r.Context())

	props, _ := a.listings.List(r.Context(), listings.ListOptions{Focus: scope.Focus, PerPage: 6})
	posts, _ := a.blog.List(r.Context(), blog.ListOptions{PerPage: 3})

	data.Home = &handlersPkg.HomeView{
		Featured: a.cards(r, props),
		Posts:    a.postCards(r, posts),
	}
	data.SEO = seo.Meta{
		Title:       data.Settings.SiteName,
		Description: a.t(r, "home.metaDescription"),
		Canonical:   a.site.Canonical("/", nil, nil),
		Alternates:  a.site.Alternates("/"),
	}
	data.Scripts = appendScript(data.Scripts,
		seo.NewScript(seo.OrganizationID, a.site.Organization(data.Settings.LogoURL)),
		seo.NewScript(seo.WebSiteID, a.site.WebSite("/sales")),
	)
	a.render(w, r, "home.tmpl", data)
}

// listingsHandler renders a collection page for one focus.
func (a *app) listingsHandler(focus listings.Focus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := a.pageData(r)
		scope := handlersPkg.ScopeFrom(r.Context())

		keys := query.RentalKeys
		mode := "rental"
		if focus == listings.FocusSelling {
			keys = query.SaleKeys
			mode = "sale"
		}
		filters := query.Extract(r.URL.Query(), keys)
		page := query.Page(filters, 1)

		props, meta := a.listings.List(r.Context(), listings.ListOptions{
			Focus:        focus,
			Location:     filters["location"],
			PropertyType: filters["propertyType"],
			CheckIn:      filters["checkIn"],
			CheckOut:     filters["checkOut"],
			PriceMin:     filters["priceMin"],
			PriceMax:     filters["priceMax"],
			Page:         page,
		})

		route := routePath(r)
		data.Listings = &handlersPkg.ListingsView{
			Focus:      focus,
			Heading:    a.t(r, headingKey(focus)),
			Cards:      a.cards(r, props),
			Filters:    filters,
			Page:       meta.CurrentPage,
			LastPage:   meta.LastPage,
			Total:      meta.Total,
			BaseRoute:  route,
			SearchMode: mode,
		}
		data.SEO = a.site.ListingMeta(scope.Locale, focus, filters, meta.Total)
		data.SEO.Canonical = a.site.Canonical(route, filters, keys)
		data.SEO.Alternates = a.site.Alternates(route)
		data.Scripts = appendScript(data.Scripts,
			seo.NewScript(seo.ItemListID, a.site.ItemList(data.SEO.Title, props, func(p *listings.Property) string {
				return a.site.Canonical("/properties/"+p.ID, nil, nil)
			})),
			seo.NewScript(seo.BreadcrumbID, seo.BreadcrumbList(a.crumbItems(r, data.Breadcrumbs))),
		)
		a.render(w, r, "listings.tmpl", data)
	}
}

// propertyHandler renders a single property. A missing property renders the
// page shell with fallback metadata and a 404 status.
func (a *app) propertyHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	scope := handlersPkg.ScopeFrom(r.Context())
	id := chi.URLParam(r, "id")

	p, err := a.listings.Get(r.Context(), id)
	if err != nil && !errors.Is(err, listings.ErrNotFound) {
		p = nil
	}

	route := routePath(r)
	data.SEO = a.site.PropertyMeta(scope.Locale, scope.Focus, p)
	data.SEO.Canonical = a.site.Canonical(route, nil, nil)
	data.SEO.Alternates = a.site.Alternates(route)

	status := http.StatusOK
	if p == nil {
		status = http.StatusNotFound
	} else {
		data.Property = a.propertyView(r, p)
		data.Scripts = appendScript(data.Scripts,
			seo.NewScript(seo.PropertyID, a.site.PropertyRecord(scope.Locale, p, data.SEO.Canonical)),
			seo.NewScript(seo.BreadcrumbID, seo.BreadcrumbList(a.crumbItems(r, data.Breadcrumbs))),
		)
	}
	a.renderStatus(w, r, status, "property.tmpl", data)
}

// favoritesHandler renders the saved-properties page.
func (a *app) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	props := a.resolver.Resolve(r.Context(), a.store.List(r))
	data.Favorites = &handlersPkg.FavoritesView{Cards: a.cards(r, props)}
	data.SEO = seo.Meta{
		Title:       a.t(r, "favorites.title") + " | " + data.Settings.SiteName,
		Description: a.t(r, "favorites.metaDescription"),
		Canonical:   a.site.Canonical("/favorites", nil, nil),
		Alternates:  a.site.Alternates("/favorites"),
	}
	a.render(w, r, "favorites.tmpl", data)
}

// favoriteToggleHandler flips a property's saved state. htmx requests get the
// button fragment back; plain form posts are redirected to the referer.
func (a *app) favoriteToggleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	saved := a.store.Toggle(r, id)
	if isHTMX(r) {
		a.renderFragment(w, "favorite_button.tmpl", map[string]any{
			"ID":        id,
			"Favorited": saved,
			"CSRFToken": csrfToken(r),
		})
		return
	}
	target := r.Referer()
	if target == "" {
		target = "/favorites"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func headingKey(focus listings.Focus) string {
	switch focus {
	case listings.FocusDailyRent:
		return "nav.dailyRentals"
	case listings.FocusRent:
		return "nav.rentals"
	case listings.FocusSelling:
		return "nav.sales"
	default:
		return "nav.home"
	}
}

// cards maps properties to view tiles.
func (a *app) cards(r *http.Request, props []listings.Property) []handlersPkg.ListingCard {
	scope := handlersPkg.ScopeFrom(r.Context())
	out := make([]handlersPkg.ListingCard, 0, len(props))
	for i := range props {
		p := &props[i]
		out = append(out, handlersPkg.ListingCard{
			ID:           p.ID,
			Title:        p.Title.Pick(scope.Locale, ""),
			City:         p.City,
			Neighborhood: p.Neighborhood,
			PropertyType: p.PropertyType,
			Price:        format.Price(p.Price, p.Currency, scope.Locale),
			Area:         format.Area(p.AreaSqM),
			Bedrooms:     p.Bedrooms,
			Bathrooms:    p.Bathrooms,
			Image:        p.FirstImage(),
			Href:         localeHref(scope.Locale, "/properties/"+p.ID),
			Favorited:    a.store.Has(r, p.ID),
		})
	}
	return out
}

func (a *app) propertyView(r *http.Request, p *listings.Property) *handlersPkg.PropertyView {
	scope := handlersPkg.ScopeFrom(r.Context())
	return &handlersPkg.PropertyView{
		ID:           p.ID,
		Title:        p.Title.Pick(scope.Locale, ""),
		Description:  p.Description.Pick(scope.Locale, ""),
		City:         p.City,
		Neighborhood: p.Neighborhood,
		PropertyType: p.PropertyType,
		Price:        format.Price(p.Price, p.Currency, scope.Locale),
		Area:         format.Area(p.AreaSqM),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Images:       p.Images,
		Available:    p.Available,
		Favorited:    a.store.Has(r, p.ID),
		ListedAt:     format.Date(p.CreatedAt, scope.Locale),
	}
}

// crumbItems converts breadcrumbs to structured-data entries with absolute
// URLs; the active crumb carries no URL.
func (a *app) crumbItems(r *http.Request, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	scope := handlersPkg.ScopeFrom(r.Context())
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = a.bundle.T(scope.Locale, c.LabelKey)
		}
		item := ""
		if !c.Active {
			item = a.site.Canonical(c.Href, nil, nil)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: item})
	}
	return items
}
