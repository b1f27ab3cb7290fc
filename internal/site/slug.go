package site

import "strings"

const hexDigits = "0123456789ABCDEF"

// ArticleSlug maps an article id to the base name of its generated page.
// Letters, digits, '-', '_' and '.' are kept; every other byte becomes
// '~' followed by two hex digits. The result only holds URL-unreserved
// characters, so it is the same on disk, in an href and after
// encodeURIComponent, and distinct ids never share a slug.
func ArticleSlug(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.':
			b.WriteByte(c)
		default:
			b.WriteByte('~')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0F])
		}
	}
	return b.String()
}

// articlePage is the output path of an article's generated page.
func articlePage(id string) string {
	return "article/" + ArticleSlug(id) + ".html"
}
