package render

import "github.com/webluciano/folio/internal/article"

// TagStyle is the icon and CSS class used to present a tag.
type TagStyle struct {
	Icon  string `json:"icon"`
	Class string `json:"class"`
}

// DefaultTagStyle is used for any tag missing from the table.
var DefaultTagStyle = TagStyle{Icon: "fas fa-file-alt", Class: "tag-desarrollo"}

// tagStyles is keyed by the exact tag string. Lookups are case- and
// accent-sensitive: "swiftui" or "Diseno" fall back to DefaultTagStyle.
var tagStyles = map[string]TagStyle{
	"SwiftUI":    {Icon: "fab fa-swift", Class: "tag-swiftui"},
	"Firebase":   {Icon: "fas fa-fire", Class: "tag-firebase"},
	"Desarrollo": {Icon: "fas fa-code", Class: "tag-desarrollo"},
	"Diseño":     {Icon: "fas fa-palette", Class: "tag-diseno"},
	"iOS":        {Icon: "fab fa-apple", Class: "tag-ios"},
	"Web":        {Icon: "fas fa-globe", Class: "tag-web"},
}

// StyleForTag looks up the presentation pair for tag.
func StyleForTag(tag string) TagStyle {
	if s, ok := tagStyles[tag]; ok {
		return s
	}
	return DefaultTagStyle
}

// KnownTag reports whether tag has an entry in the table.
func KnownTag(tag string) bool {
	_, ok := tagStyles[tag]
	return ok
}

// StyleFor returns the style for an article. An explicit icon on the record
// replaces the table icon; the class always comes from the table.
func StyleFor(a article.Article) TagStyle {
	s := StyleForTag(a.Tag)
	if a.Icon != "" {
		s.Icon = a.Icon
	}
	return s
}
