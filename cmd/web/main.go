package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/content"
	"darimmo.ma/darimmo-web/internal/favorites"
	"darimmo.ma/darimmo-web/internal/format"
	handlersPkg "darimmo.ma/darimmo-web/internal/handlers"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
	mw "darimmo.ma/darimmo-web/internal/middleware"
	"darimmo.ma/darimmo-web/internal/seo"
	"darimmo.ma/darimmo-web/internal/site"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	localesDir   = "locales"
	contentDir   = "content"
	// devMode reparses templates per request; set via DARIMMO_WEB_DEV or DEV
	devMode    bool
	tmplCache  *template.Template
	i18nBundle *i18n.Bundle
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	var (
		addr     string
		tmplPath string
		pubPath  string
		locPath  string
		cntPath  string
	)
	// Port resolution: prefer DARIMMO_WEB_PORT, then PORT, else 8080
	port := os.Getenv("DARIMMO_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&locPath, "locales", localesDir, "locale dictionaries directory")
	flag.StringVar(&cntPath, "content", contentDir, "fallback content directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	localesDir = locPath
	contentDir = cntPath

	devMode = os.Getenv("DARIMMO_WEB_DEV") != "" || os.Getenv("DEV") != ""

	log, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	bundle, err := i18n.Load(localesDir)
	if err != nil {
		log.Fatal("load locales", zap.Error(err))
	}
	i18nBundle = bundle

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			log.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	apiBase := os.Getenv("DARIMMO_WEB_API_BASE_URL")
	baseURL := os.Getenv("DARIMMO_WEB_BASE_URL")
	if baseURL == "" {
		baseURL = "https://www.darimmo.ma"
	}

	app := newApp(appConfig{
		log:       log,
		bundle:    bundle,
		site:      seo.Site{Name: "Darimmo", BaseURL: baseURL},
		listings:  listings.NewClient(apiBase, log),
		blog:      blog.NewClient(apiBase, log),
		content:   newContentClient(apiBase),
		settings:  site.NewClient(apiBase),
		store:     favorites.NewSessionStore(),
		analytics: handlersPkg.LoadAnalyticsFromEnv(),
	})
	app.store.Subscribe(func(e favorites.Event) {
		log.Info("favorite toggled",
			zap.String("session", e.SessionID),
			zap.String("property", e.PropertyID),
			zap.Bool("saved", e.Saved))
	})

	r := newRouter(app)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("listen", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if devMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newContentClient(apiBase string) *content.Client {
	c := content.NewClient(apiBase)
	c.SetContentDir(contentDir)
	return c
}

// newRouter assembles the middleware chain and the full route table. Routes
// are mounted twice: at the root and under a /{locale} prefix for the
// hreflang alternate URLs.
func newRouter(app *app) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger(app.log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Group(func(r chi.Router) {
		r.Use(mw.Locale)
		r.Use(app.scoped)
		mountPages(r, app)
	})
	r.Route("/{locale:en|fr|es|ar}", func(r chi.Router) {
		r.Use(mw.Locale)
		r.Use(app.scoped)
		mountPages(r, app)
	})
	return r
}

func mountPages(r chi.Router, app *app) {
	r.Get("/", app.homeHandler)
	r.Get("/daily-rentals", app.listingsHandler(listings.FocusDailyRent))
	r.Get("/rentals", app.listingsHandler(listings.FocusRent))
	r.Get("/sales", app.listingsHandler(listings.FocusSelling))
	r.Get("/properties/{id}", app.propertyHandler)
	r.Get("/blog", app.blogHandler)
	r.Get("/blog/{slug}", app.postHandler)
	r.Get("/pages/{slug}", app.contentHandler)
	r.Get("/join-us", app.joinHandler)
	r.Post("/join-us", app.joinSubmitHandler)
	r.Get("/favorites", app.favoritesHandler)
	r.Post("/favorites/{id}", app.favoriteToggleHandler)
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":   time.Now,
		"price": format.Price,
		"date":  format.Date,
		"area":  format.Area,
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
		"t": func(locale i18n.Locale, key string) string {
			return i18nBundle.T(locale, key)
		},
		// dict builds a map for passing several values to a partial.
		"dict": func(pairs ...any) map[string]any {
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				if k, ok := pairs[i].(string); ok {
					m[k] = pairs[i+1]
				}
			}
			return m
		},
		// jsonld emits a structured-data script tag. Bodies come from
		// encoding/json, which escapes HTML metacharacters.
		"jsonld": func(s *seo.Script) template.HTML {
			if s == nil {
				return ""
			}
			return template.HTML(`<script type="application/ld+json" id="` + s.ID + `">` + s.Body + `</script>`)
		},
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}
