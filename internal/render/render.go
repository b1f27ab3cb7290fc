package render

import (
	"errors"
	"fmt"
	"html/template"
	"math"
	"math/rand"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/webluciano/folio/internal/article"
)

// Kind selects what a Renderer builds for a page.
type Kind int

const (
	// KindList renders a card for every article.
	KindList Kind = iota
	// KindRandom renders a single card picked at random.
	KindRandom
	// KindDetail renders the full view of one article.
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindRandom:
		return "random"
	case KindDetail:
		return "detail"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrNoArticle is returned when a view needs an article and none was given.
var ErrNoArticle = errors.New("no article to render")

// DefaultLinkPattern points cards at the detail page by query string.
const DefaultLinkPattern = "article.html?id=%s"

// DefaultSiteTitle is appended to detail page titles.
const DefaultSiteTitle = "Portfolio - Desarrollador iOS & Web"

// Card is the listing projection of an article.
type Card struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Tag     string   `json:"tag"`
	Style   TagStyle `json:"style"`
	Date    string   `json:"date"`
	Excerpt string   `json:"excerpt"`
	Link    string   `json:"link"`
}

// Detail is the full-article projection.
type Detail struct {
	Card
	Paragraphs     []string      `json:"paragraphs"`
	Body           template.HTML `json:"body,omitempty"`
	ReadingMinutes int           `json:"reading_minutes"`
	PageTitle      string        `json:"page_title"`
}

// ReadingLabel is the short display form of the reading time.
func (d Detail) ReadingLabel() string {
	return fmt.Sprintf("%d min", d.ReadingMinutes)
}

// View is the output of Build. Exactly one of Cards or Detail is set,
// depending on Kind.
type View struct {
	Kind   Kind
	Cards  []Card
	Detail *Detail
}

// Options configures a Renderer.
type Options struct {
	SiteTitle   string
	LinkPattern string // fmt pattern with one %s for the escaped id
	Format      ContentFormat

	// Escape turns an id into the %s of LinkPattern. Defaults to
	// url.QueryEscape.
	Escape func(string) string
	// Random returns a value in [0, 1). Defaults to math/rand/v2.Float64.
	Random func() float64
}

// Renderer projects articles into display-ready structures.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
}

// New creates a Renderer, filling unset options with defaults.
func New(opts Options) *Renderer {
	if opts.SiteTitle == "" {
		opts.SiteTitle = DefaultSiteTitle
	}
	if opts.LinkPattern == "" {
		opts.LinkPattern = DefaultLinkPattern
	}
	if opts.Escape == nil {
		opts.Escape = url.QueryEscape
	}
	if opts.Format == "" {
		opts.Format = FormatParagraphs
	}
	if opts.Random == nil {
		opts.Random = rand.Float64
	}
	r := &Renderer{opts: opts}
	if opts.Format == FormatMarkdown {
		r.md = newMarkdown()
	}
	return r
}

// SiteTitle returns the configured site title.
func (r *Renderer) SiteTitle() string { return r.opts.SiteTitle }

// Link returns the detail-page link for an article id.
func (r *Renderer) Link(id string) string {
	return fmt.Sprintf(r.opts.LinkPattern, r.opts.Escape(id))
}

// WithLinks returns a copy of r whose cards link through pattern and
// escape. The copy shares r's markdown converter and random source.
func (r *Renderer) WithLinks(pattern string, escape func(string) string) *Renderer {
	c := *r
	c.opts.LinkPattern = pattern
	if escape != nil {
		c.opts.Escape = escape
	}
	return &c
}

// Card builds the listing projection.
func (r *Renderer) Card(a article.Article) Card {
	return Card{
		ID:      a.ID,
		Title:   a.Title,
		Tag:     a.Tag,
		Style:   StyleFor(a),
		Date:    a.Date,
		Excerpt: a.Excerpt,
		Link:    r.Link(a.ID),
	}
}

// Cards builds listing projections in collection order.
func (r *Renderer) Cards(articles []article.Article) []Card {
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, r.Card(a))
	}
	return cards
}

// Detail builds the full-article projection.
func (r *Renderer) Detail(a article.Article) (Detail, error) {
	d := Detail{
		Card:       r.Card(a),
		Paragraphs: Paragraphs(a.Content),
		PageTitle:  r.PageTitle(a.Title),
	}
	text := a.Content
	if r.md != nil {
		body, err := renderMarkdown(r.md, a.Content)
		if err != nil {
			return Detail{}, fmt.Errorf("rendering article %s: %w", a.ID, err)
		}
		d.Body = body
		text = PlainText(string(body))
	}
	d.ReadingMinutes = ReadingTime(text)
	return d, nil
}

// PageTitle formats the document title for an article.
func (r *Renderer) PageTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return r.opts.SiteTitle
	}
	return title + " | " + r.opts.SiteTitle
}

// PickRandom selects one article with index floor(random() * len).
func (r *Renderer) PickRandom(articles []article.Article) (article.Article, bool) {
	if len(articles) == 0 {
		return article.Article{}, false
	}
	i := int(math.Floor(r.opts.Random() * float64(len(articles))))
	if i < 0 {
		i = 0
	}
	if i >= len(articles) {
		i = len(articles) - 1
	}
	return articles[i], true
}

// Build renders articles according to kind. KindDetail renders the first
// article given; KindRandom replaces the listing with one random card.
func (r *Renderer) Build(kind Kind, articles []article.Article) (View, error) {
	switch kind {
	case KindList:
		return View{Kind: kind, Cards: r.Cards(articles)}, nil
	case KindRandom:
		a, ok := r.PickRandom(articles)
		if !ok {
			return View{Kind: kind, Cards: []Card{}}, nil
		}
		return View{Kind: kind, Cards: []Card{r.Card(a)}}, nil
	case KindDetail:
		if len(articles) == 0 {
			return View{}, ErrNoArticle
		}
		d, err := r.Detail(articles[0])
		if err != nil {
			return View{}, err
		}
		return View{Kind: kind, Detail: &d}, nil
	default:
		return View{}, fmt.Errorf("unknown page kind %s", kind)
	}
}
