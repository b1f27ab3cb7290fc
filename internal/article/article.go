package article

// Article is a single content record shown in the listing and detail views.
// Records are read-only once decoded.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tag     string `json:"tag"`
	Icon    string `json:"icon,omitempty"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// FindByID returns the first article whose ID equals id.
// It is a linear scan, O(n) per lookup; collections are tens of records.
func FindByID(articles []Article, id string) (Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}
