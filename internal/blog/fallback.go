package blog

import (
	"strings"
	"time"

	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

var fallbackPosts = []Post{
	{
		Slug:  "guide-location-saisonniere-maroc",
		Title: &i18n.Text{EN: "Seasonal rentals in Morocco: the essentials", FR: "Location saisonnière au Maroc : l'essentiel", AR: "الإيجار الموسمي في المغرب: الأساسيات"},
		Excerpt: &i18n.Text{
			EN: "What to check before booking a short stay, from contracts to deposits.",
			FR: "Ce qu'il faut vérifier avant de réserver un court séjour, du contrat à la caution.",
			AR: "ما يجب التحقق منه قبل حجز إقامة قصيرة، من العقد إلى الضمان.",
		},
		Content: &i18n.Text{
			FR: "<p>La location saisonnière séduit de plus en plus de voyageurs au Maroc. Avant de réserver, vérifiez le contrat, l'état des lieux et les modalités de caution.</p><h2>Le contrat</h2><p>Un contrat écrit protège les deux parties et précise la durée, le loyer et les charges.</p>",
			EN: "<p>Seasonal rentals keep growing across Morocco. Before booking, review the contract, the inventory report and the deposit terms.</p><h2>The contract</h2><p>A written agreement protects both parties and spells out duration, rent and utilities.</p>",
		},
		MetaDescription: &i18n.Text{
			FR: "Contrat, caution, état des lieux : le guide de la location saisonnière au Maroc.",
			EN: "Contracts, deposits and inventories: a guide to seasonal rentals in Morocco.",
		},
		Image:       "/assets/img/blog/seasonal-rentals.jpg",
		Category:    "guides",
		Tags:        []string{"location", "voyage"},
		Author:      "Equipe Darimmo",
		PublishedAt: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		Slug:  "acheter-premier-appartement",
		Title: &i18n.Text{EN: "Buying your first apartment", FR: "Acheter son premier appartement", AR: "شراء شقتك الأولى"},
		Excerpt: &i18n.Text{
			FR: "Financement, notaire, conservation foncière : les étapes d'un premier achat.",
			AR: "التمويل والموثق والمحافظة العقارية: خطوات أول عملية شراء.",
		},
		Content: &i18n.Text{
			FR: "<p>Un premier achat immobilier se prépare. Du financement à la signature chez le notaire, chaque étape compte.</p><h2>Le financement</h2><p>Comparez les offres de crédit et négociez le taux avant de vous engager.</p>",
		},
		Image:       "/assets/img/blog/first-apartment.jpg",
		Category:    "achat",
		Tags:        []string{"achat", "financement"},
		Author:      "Equipe Darimmo",
		PublishedAt: time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	},
	{
		Slug:  "quartiers-casablanca-familles",
		Title: &i18n.Text{EN: "Casablanca neighborhoods for families", FR: "Les quartiers de Casablanca pour les familles", AR: "أحياء الدار البيضاء للعائلات"},
		Excerpt: &i18n.Text{
			FR: "Écoles, espaces verts et transports : où s'installer en famille à Casablanca.",
		},
		Content: &i18n.Text{
			FR: "<p>Choisir un quartier familial à Casablanca demande d'arbitrer entre écoles, espaces verts et temps de trajet.</p><h2>Californie et CIL</h2><p>Ces quartiers résidentiels offrent villas et résidences sécurisées à proximité des écoles.</p>",
		},
		Image:       "/assets/img/blog/casablanca-families.jpg",
		Category:    "quartiers",
		Tags:        []string{"casablanca", "familles"},
		Author:      "Equipe Darimmo",
		PublishedAt: time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
	},
}

func fallbackPostList(opts ListOptions) ([]Post, listings.Meta) {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	category := strings.ToLower(strings.TrimSpace(opts.Category))

	filtered := make([]Post, 0, len(fallbackPosts))
	for _, p := range fallbackPosts {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" {
			hay := strings.ToLower(p.Title.Pick(i18n.Default, "") + " " + p.Excerpt.Pick(i18n.Default, "") + " " + strings.Join(p.Tags, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		filtered = append(filtered, clonePost(p))
	}
	meta := listings.Meta{Total: len(filtered), CurrentPage: 1, LastPage: 1}
	if opts.Page > 1 {
		return []Post{}, listings.Meta{Total: len(filtered), CurrentPage: opts.Page, LastPage: 1}
	}
	return filtered, meta
}

func fallbackPost(slug string) (*Post, error) {
	for _, p := range fallbackPosts {
		if p.Slug == slug {
			cp := clonePost(p)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func clonePost(p Post) Post {
	cp := p
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	return cp
}
