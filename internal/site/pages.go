package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/render"
	"github.com/webluciano/folio/internal/ui"
)

// Links are the navigation targets rendered in every page header.
type Links struct {
	Home     string
	Articles string
	Contact  string
	Random   string // empty hides the random-article button
}

// StaticLinks are relative links for a page at depth 0 of a static build.
func StaticLinks(basePath string) Links {
	return Links{
		Home:     basePath + "index.html",
		Articles: basePath + "index.html#articles",
		Contact:  basePath + "contact.html",
	}
}

// ServerLinks are absolute links for pages served over HTTP.
func ServerLinks() Links {
	return Links{
		Home:     "/",
		Articles: "/#articles",
		Contact:  "/contact",
		Random:   "/?random=1#articles",
	}
}

// Layout is the data shared by the header and footer of every page.
type Layout struct {
	Title    string
	SiteName string
	BasePath string
	Page     string
	Links    Links

	// UI is the JSON form of ui.BrowserSettings. Defaults to
	// ui.DefaultBrowserSettings.
	UI string

	// ArticleSlugs maps ids to page slugs as a JSON object. It is set only
	// on the static article.html, which redirects known ids.
	ArticleSlugs string
}

// IndexData renders the home page and its article listing.
type IndexData struct {
	Layout     Layout
	Cards      []render.Card
	Random     bool
	RandomLink string
	Fallback   *page.Fallback
	Frames     string // typewriter frames, see FramesJSON

	// ClientRandom adds a random-article button that picks among the
	// rendered cards in the browser. Used where no server can answer
	// RandomLink.
	ClientRandom bool
}

// ArticleData renders the detail page or one of its fallbacks.
type ArticleData struct {
	Layout    Layout
	Detail    *render.Detail
	Fallback  *page.Fallback
	BackLink  string
	ShareURL  string
	ShareText string
}

// ContactForm holds the submitted contact fields for redisplay.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactData renders the contact page.
type ContactData struct {
	Layout Layout
	Action string // form action; empty keeps submission in the browser
	Form   ContactForm
	Errors map[string]string
	Sent   bool
	Steps  string
}

// Pages renders the site's HTML pages.
type Pages struct {
	tmpl *template.Template
}

// NewPages parses the page templates.
func NewPages() (*Pages, error) {
	tmpl, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Pages{tmpl: tmpl}, nil
}

// MustPages is like NewPages but panics on a template error.
func MustPages() *Pages {
	p, err := NewPages()
	if err != nil {
		panic(err)
	}
	return p
}

// Index writes the home page.
func (p *Pages) Index(w io.Writer, d IndexData) error {
	if d.Frames == "" {
		d.Frames = FramesJSON(ui.Cycle())
	}
	d.Layout = withDefaults(d.Layout)
	return p.execute(w, "index", d)
}

// Article writes the detail page.
func (p *Pages) Article(w io.Writer, d ArticleData) error {
	if d.ShareText == "" {
		d.ShareText = ui.DefaultShareText
	}
	d.Layout = withDefaults(d.Layout)
	return p.execute(w, "article", d)
}

// Contact writes the contact page.
func (p *Pages) Contact(w io.Writer, d ContactData) error {
	if d.Steps == "" {
		d.Steps = StepsJSON(ui.ContactButtonSteps("Enviar mensaje"))
	}
	d.Layout = withDefaults(d.Layout)
	return p.execute(w, "contact", d)
}

var defaultUI = mustJSON(ui.DefaultBrowserSettings())

func withDefaults(l Layout) Layout {
	if l.UI == "" {
		l.UI = defaultUI
	}
	return l
}

// execute renders into a buffer first so a template error never leaves a
// half-written page behind.
func (p *Pages) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s page: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StylesheetCSS returns the site stylesheet.
func StylesheetCSS() []byte { return []byte(cssContent) }

// ScriptJS returns the site script.
func ScriptJS() []byte { return []byte(jsContent) }

type frameJSON struct {
	Text    string `json:"text"`
	DelayMS int64  `json:"delay_ms"`
}

// FramesJSON encodes one typewriter cycle for the typed-text element,
// which plays the frames in a loop.
func FramesJSON(frames []ui.Frame) string {
	out := make([]frameJSON, 0, len(frames))
	for _, f := range frames {
		out = append(out, frameJSON{Text: f.Text, DelayMS: f.Delay.Milliseconds()})
	}
	return mustJSON(out)
}

type stepJSON struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	HoldMS int64  `json:"hold_ms"`
}

// StepsJSON encodes contact button steps for the browser.
func StepsJSON(steps []ui.ButtonStep) string {
	out := make([]stepJSON, 0, len(steps))
	for _, s := range steps {
		out = append(out, stepJSON{Label: s.Label, Icon: s.Icon, HoldMS: s.Hold.Milliseconds()})
	}
	return mustJSON(out)
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
