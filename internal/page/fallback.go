package page

// Action is the single button offered by a fallback view.
type Action struct {
	Label  string
	Icon   string
	Href   string
	Reload bool // reload the current page instead of following Href
}

// Fallback is a fixed view shown in place of content.
type Fallback struct {
	Heading string
	Message string
	Action  Action
}

// DefaultBackLink is where "back to articles" points.
const DefaultBackLink = "index.html#articles"

// NotFoundFallback is shown for a missing or unspecified article. The user
// remedy is to go back to the listing.
func NotFoundFallback(backLink string) Fallback {
	return Fallback{
		Heading: "Artículo no encontrado",
		Message: "Lo sentimos, el artículo que buscas no existe o ha sido movido.",
		Action:  Action{Label: "Volver a artículos", Icon: "fas fa-arrow-left", Href: backLink},
	}
}

// ErrorFallback is shown when the article collection could not be fetched.
// The user remedy is to reload.
func ErrorFallback() Fallback {
	return Fallback{
		Heading: "Error",
		Message: "No se pudo cargar el artículo. Por favor, intenta recargar la página.",
		Action:  Action{Label: "Recargar página", Icon: "fas fa-sync-alt", Reload: true},
	}
}

// ListErrorFallback is shown when the listing could not be fetched.
func ListErrorFallback() Fallback {
	return Fallback{
		Heading: "Error",
		Message: "Error al cargar los artículos. Por favor, intenta más tarde.",
		Action:  Action{Label: "Recargar página", Icon: "fas fa-sync-alt", Reload: true},
	}
}
