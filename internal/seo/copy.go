package seo

import (
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

// Static copy tables. Every branch carries all four locales; lookups fall
// back to English for safety even though the resolver never produces an
// unsupported locale.

var listingTitles = map[listings.Focus]map[i18n.Locale]string{
	listings.FocusDailyRent: {
		i18n.EN: "Daily Rentals",
		i18n.FR: "Locations journalières",
		i18n.ES: "Alquileres por día",
		i18n.AR: "إيجارات يومية",
	},
	listings.FocusRent: {
		i18n.EN: "Monthly Rentals",
		i18n.FR: "Locations mensuelles",
		i18n.ES: "Alquileres mensuales",
		i18n.AR: "إيجارات شهرية",
	},
	listings.FocusSelling: {
		i18n.EN: "Properties for Sale",
		i18n.FR: "Propriétés à vendre",
		i18n.ES: "Propiedades en venta",
		i18n.AR: "عقارات للبيع",
	},
	listings.FocusAll: {
		i18n.EN: "All Listings",
		i18n.FR: "Toutes les annonces",
		i18n.ES: "Todos los anuncios",
		i18n.AR: "جميع الإعلانات",
	},
}

var listingDescriptions = map[listings.Focus]map[i18n.Locale]string{
	listings.FocusDailyRent: {
		i18n.EN: "Furnished apartments, riads and villas for short stays across Morocco.",
		i18n.FR: "Appartements meublés, riads et villas pour de courts séjours partout au Maroc.",
		i18n.ES: "Apartamentos amueblados, riads y villas para estancias cortas en todo Marruecos.",
		i18n.AR: "شقق مفروشة ورياضات وفيلات لإقامات قصيرة في جميع أنحاء المغرب.",
	},
	listings.FocusRent: {
		i18n.EN: "Long-term rentals verified by our local agents across Morocco.",
		i18n.FR: "Locations longue durée vérifiées par nos agents locaux partout au Maroc.",
		i18n.ES: "Alquileres de larga duración verificados por nuestros agentes locales en Marruecos.",
		i18n.AR: "إيجارات طويلة الأمد تم التحقق منها من قبل وكلائنا المحليين في المغرب.",
	},
	listings.FocusSelling: {
		i18n.EN: "Apartments, villas and land for sale with complete legal files.",
		i18n.FR: "Appartements, villas et terrains à vendre avec dossiers juridiques complets.",
		i18n.ES: "Apartamentos, villas y terrenos en venta con expedientes legales completos.",
		i18n.AR: "شقق وفيلات وأراضٍ للبيع مع ملفات قانونية كاملة.",
	},
	listings.FocusAll: {
		i18n.EN: "Browse every listing published by our agency, updated daily.",
		i18n.FR: "Parcourez toutes les annonces publiées par notre agence, mises à jour chaque jour.",
		i18n.ES: "Explore todos los anuncios publicados por nuestra agencia, actualizados a diario.",
		i18n.AR: "تصفح جميع الإعلانات المنشورة من وكالتنا، محدثة يومياً.",
	},
}

// focusSuffixes label a single property title, e.g. "Villa X | For Rent".
var focusSuffixes = map[listings.Focus]map[i18n.Locale]string{
	listings.FocusDailyRent: {
		i18n.EN: "For Daily Rent",
		i18n.FR: "Location journalière",
		i18n.ES: "Alquiler por día",
		i18n.AR: "للإيجار اليومي",
	},
	listings.FocusRent: {
		i18n.EN: "For Rent",
		i18n.FR: "À louer",
		i18n.ES: "En alquiler",
		i18n.AR: "للإيجار",
	},
	listings.FocusSelling: {
		i18n.EN: "For Sale",
		i18n.FR: "À vendre",
		i18n.ES: "En venta",
		i18n.AR: "للبيع",
	},
	listings.FocusAll: {
		i18n.EN: "Listing",
		i18n.FR: "Annonce",
		i18n.ES: "Anuncio",
		i18n.AR: "إعلان",
	},
}

var propertyFallbackDescriptions = map[i18n.Locale]string{
	i18n.EN: "Property details",
	i18n.FR: "Détails de la propriété",
	i18n.ES: "Detalles de la propiedad",
	i18n.AR: "تفاصيل العقار",
}

var blogTitles = map[i18n.Locale]string{
	i18n.EN: "Real Estate Blog",
	i18n.FR: "Blog immobilier",
	i18n.ES: "Blog inmobiliario",
	i18n.AR: "مدونة العقارات",
}

var blogDescriptions = map[i18n.Locale]string{
	i18n.EN: "Market news, neighborhood guides and advice for renting or buying in Morocco.",
	i18n.FR: "Actualités du marché, guides de quartiers et conseils pour louer ou acheter au Maroc.",
	i18n.ES: "Noticias del mercado, guías de barrios y consejos para alquilar o comprar en Marruecos.",
	i18n.AR: "أخبار السوق وأدلة الأحياء ونصائح للإيجار أو الشراء في المغرب.",
}

var postFallbackDescriptions = map[i18n.Locale]string{
	i18n.EN: "Read the latest from our real estate blog.",
	i18n.FR: "Découvrez les derniers articles de notre blog immobilier.",
	i18n.ES: "Lea lo último de nuestro blog inmobiliario.",
	i18n.AR: "اقرأ أحدث المقالات من مدونتنا العقارية.",
}

func focusCopy(table map[listings.Focus]map[i18n.Locale]string, focus listings.Focus, locale i18n.Locale) string {
	byLocale, ok := table[focus]
	if !ok {
		byLocale = table[listings.FocusAll]
	}
	if v, ok := byLocale[locale]; ok && v != "" {
		return v
	}
	return byLocale[i18n.EN]
}

func localeCopy(table map[i18n.Locale]string, locale i18n.Locale) string {
	if v, ok := table[locale]; ok && v != "" {
		return v
	}
	return table[i18n.EN]
}
