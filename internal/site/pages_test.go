package site

import (
	"bytes"
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/render"
	"github.com/webluciano/folio/internal/ui"
)

func TestPagesArticleFallbacks(t *testing.T) {
	p := MustPages()

	tests := []struct {
		name     string
		fallback page.Fallback
		want     []string
		absent   []string
	}{
		{
			name:     "not found",
			fallback: page.NotFoundFallback("/#articles"),
			want:     []string{"Artículo no encontrado", `href="/#articles"`, "Volver a artículos"},
			absent:   []string{`data-action="reload"`},
		},
		{
			name:     "error",
			fallback: page.ErrorFallback(),
			want:     []string{"Recargar página", `data-action="reload"`},
			absent:   []string{"Artículo no encontrado"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := tt.fallback
			var buf bytes.Buffer
			err := p.Article(&buf, ArticleData{
				Layout:   Layout{Title: "t", Page: "article", Links: ServerLinks(), BasePath: "/"},
				Fallback: &fb,
			})
			if err != nil {
				t.Fatalf("Article: %v", err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q", w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(out, a) {
					t.Errorf("unexpected %q", a)
				}
			}
			if strings.Contains(out, `id="article-content"`) {
				t.Error("fallback should not render article content")
			}
		})
	}
}

func TestPagesArticleMarkdownBody(t *testing.T) {
	var buf bytes.Buffer
	d := render.Detail{
		Card:           render.Card{Title: "A", Tag: "Web"},
		Body:           "<h2>Hola</h2>",
		Paragraphs:     []string{"ignored"},
		ReadingMinutes: 3,
	}
	if err := MustPages().Article(&buf, ArticleData{Layout: Layout{Page: "article"}, Detail: &d}); err != nil {
		t.Fatalf("Article: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<h2>Hola</h2>") {
		t.Error("markdown body should be rendered unescaped")
	}
	if strings.Contains(out, "<p>ignored</p>") {
		t.Error("paragraphs should not render when a body is present")
	}
	if !strings.Contains(out, "3 min lectura") {
		t.Error("missing reading time")
	}
	if !strings.Contains(out, ui.DefaultShareText) {
		t.Error("missing default share text")
	}
}

func TestPagesIndexEmptyAndError(t *testing.T) {
	p := MustPages()

	var buf bytes.Buffer
	if err := p.Index(&buf, IndexData{Layout: Layout{Page: "index"}}); err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !strings.Contains(buf.String(), "Todavía no hay artículos") {
		t.Error("empty listing should render the empty message")
	}

	fb := page.ListErrorFallback()
	buf.Reset()
	if err := p.Index(&buf, IndexData{Layout: Layout{Page: "index"}, Fallback: &fb}); err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !strings.Contains(buf.String(), "Error al cargar los artículos") {
		t.Error("listing error should render the fallback")
	}
}

func TestPagesContactErrors(t *testing.T) {
	var buf bytes.Buffer
	err := MustPages().Contact(&buf, ContactData{
		Layout: Layout{Page: "contact"},
		Action: "/contact",
		Form:   ContactForm{Name: "Ana", Email: "bad"},
		Errors: map[string]string{"email": "not a valid address"},
	})
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`method="post"`, `action="/contact"`, `value="Ana"`, "not a valid address", "Enviando..."} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestStepsJSON(t *testing.T) {
	got := StepsJSON([]ui.ButtonStep{{Label: "x", Icon: "i", Hold: 2 * time.Second}})
	want := `[{"label":"x","icon":"i","hold_ms":2000}]`
	if got != want {
		t.Errorf("StepsJSON = %s, want %s", got, want)
	}
}

func TestPagesIndexRandomButton(t *testing.T) {
	p := MustPages()
	cards := []render.Card{{ID: "1", Title: "A", Link: "article/1.html"}}

	tests := []struct {
		name       string
		data       IndexData
		wantButton bool
		wantLink   bool
	}{
		{"client side", IndexData{Cards: cards, ClientRandom: true}, true, false},
		{"client side without cards", IndexData{ClientRandom: true}, false, false},
		{"server link wins", IndexData{Cards: cards, ClientRandom: true, RandomLink: "/?random=1"}, false, true},
		{"none", IndexData{Cards: cards}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.data.Layout = Layout{Page: "index"}
			if err := p.Index(&buf, tt.data); err != nil {
				t.Fatalf("Index: %v", err)
			}
			out := buf.String()
			if got := strings.Contains(out, `data-action="random"`); got != tt.wantButton {
				t.Errorf("random button = %v, want %v", got, tt.wantButton)
			}
			if got := strings.Contains(out, `href="/?random=1"`); got != tt.wantLink {
				t.Errorf("random link = %v, want %v", got, tt.wantLink)
			}
		})
	}
}

var uiAttrRe = regexp.MustCompile(`data-ui="([^"]*)"`)

func TestPagesCarryBrowserSettings(t *testing.T) {
	var buf bytes.Buffer
	if err := MustPages().Contact(&buf, ContactData{Layout: Layout{Page: "contact"}}); err != nil {
		t.Fatalf("Contact: %v", err)
	}
	m := uiAttrRe.FindStringSubmatch(buf.String())
	if m == nil {
		t.Fatal("page has no data-ui attribute")
	}
	var got ui.BrowserSettings
	if err := json.Unmarshal([]byte(html.UnescapeString(m[1])), &got); err != nil {
		t.Fatalf("data-ui: %v", err)
	}
	if got != ui.DefaultBrowserSettings() {
		t.Errorf("data-ui = %+v, want defaults", got)
	}
}

func TestScriptReadsEverySetting(t *testing.T) {
	var keys map[string]interface{}
	if err := json.Unmarshal([]byte(mustJSON(ui.DefaultBrowserSettings())), &keys); err != nil {
		t.Fatal(err)
	}
	for key := range keys {
		if !strings.Contains(jsContent, "settings."+key) {
			t.Errorf("script.js never reads settings.%s", key)
		}
	}
}

func TestFramesJSON(t *testing.T) {
	got := FramesJSON([]ui.Frame{{Text: "a", Delay: 50 * time.Millisecond}, {Text: "", Delay: time.Second}})
	want := `[{"text":"a","delay_ms":50},{"text":"","delay_ms":1000}]`
	if got != want {
		t.Errorf("FramesJSON = %s, want %s", got, want)
	}

	var buf bytes.Buffer
	if err := MustPages().Index(&buf, IndexData{Layout: Layout{Page: "index"}}); err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !strings.Contains(buf.String(), "delay_ms") {
		t.Error("index should carry the default typewriter frames")
	}
}

func TestCodeBlocksGetCopyButtons(t *testing.T) {
	r := render.New(render.Options{Format: render.FormatMarkdown})
	d, err := r.Detail(article.Article{ID: "c", Title: "C", Content: "```go\nfunc main() {}\n```\n"})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	var buf bytes.Buffer
	if err := MustPages().Article(&buf, ArticleData{Layout: Layout{Page: "article"}, Detail: &d}); err != nil {
		t.Fatalf("Article: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `class="article-body"`) || !strings.Contains(out, "<code") {
		t.Fatalf("highlighted code block missing from page:\n%s", out)
	}
	if !strings.Contains(jsContent, `'.article-body pre > code'`) {
		t.Error("script.js should attach copy buttons to article code blocks")
	}
	if !strings.Contains(cssContent, ".copy-code-btn") {
		t.Error("style.css should style the copy button")
	}
}
