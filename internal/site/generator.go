package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/logging"
	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/progress"
	"github.com/webluciano/folio/internal/render"
)

// StaticLinkPattern points listing cards at the generated article pages.
// The id is escaped with ArticleSlug.
const StaticLinkPattern = "article/%s.html"

// Generator builds the static site from an article source.
type Generator struct {
	Source    article.Source
	Renderer  *render.Renderer
	Pages     *Pages
	SiteDir   string
	OutputDir string
	Assets    []string
	BaseURL   string // absolute site URL used for share links; optional
	Reporter  progress.Reporter
	Logger    *slog.Logger
}

// Result summarizes a build.
type Result struct {
	Articles int
	Pages    int
	Assets   int
}

// Generate writes the whole site into OutputDir.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	log := g.Logger
	if log == nil {
		log = logging.Discard()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	pages := g.Pages
	if pages == nil {
		var err error
		if pages, err = NewPages(); err != nil {
			return Result{}, err
		}
	}

	raw, err := g.Source.Read(ctx)
	if err != nil {
		return Result{}, err
	}
	articles, err := article.Decode(g.Source.String(), raw)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Articles = len(articles)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, err
	}

	// index, article fallback, contact, data, style, script, then one page per article.
	total := 6 + len(articles)
	step := 0
	reporter.Start(total)
	defer reporter.Finish()
	advance := func(name string) {
		step++
		reporter.Update(step, name)
	}

	renderer := g.Renderer.WithLinks(StaticLinkPattern, ArticleSlug)
	siteName := renderer.SiteTitle()

	var buf bytes.Buffer
	view, err := renderer.Build(render.KindList, articles)
	if err != nil {
		return res, fmt.Errorf("rendering listing: %w", err)
	}
	err = pages.Index(&buf, IndexData{
		Layout:       Layout{Title: siteName, SiteName: siteName, Page: "index", Links: StaticLinks("")},
		Cards:        view.Cards,
		ClientRandom: true,
	})
	if err != nil {
		return res, err
	}
	if err := g.write("index.html", buf.Bytes()); err != nil {
		return res, err
	}
	res.Pages++
	advance("index.html")

	written := make(map[string]string, len(articles))
	slugs := make(map[string]string, len(articles))
	for _, a := range articles {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name := articlePage(a.ID)
		if prev, dup := written[a.ID]; dup {
			log.Warn("skipping article with duplicate id", "id", a.ID, "kept", prev)
			advance(name)
			continue
		}
		written[a.ID] = a.Title
		slugs[a.ID] = ArticleSlug(a.ID)

		d, err := renderer.Detail(a)
		if err != nil {
			return res, err
		}
		buf.Reset()
		err = pages.Article(&buf, ArticleData{
			Layout:   Layout{Title: d.PageTitle, SiteName: siteName, BasePath: "../", Page: "article", Links: StaticLinks("../")},
			Detail:   &d,
			BackLink: "../" + page.DefaultBackLink,
			ShareURL: g.shareURL(name),
		})
		if err != nil {
			return res, err
		}
		if err := g.write(name, buf.Bytes()); err != nil {
			return res, err
		}
		res.Pages++
		advance(name)
	}

	fb := page.NotFoundFallback(page.DefaultBackLink)
	buf.Reset()
	err = pages.Article(&buf, ArticleData{
		Layout: Layout{
			Title:        renderer.PageTitle(fb.Heading),
			SiteName:     siteName,
			Page:         "article",
			Links:        StaticLinks(""),
			ArticleSlugs: mustJSON(slugs),
		},
		Fallback: &fb,
	})
	if err != nil {
		return res, err
	}
	if err := g.write("article.html", buf.Bytes()); err != nil {
		return res, err
	}
	res.Pages++
	advance("article.html")

	buf.Reset()
	err = pages.Contact(&buf, ContactData{
		Layout: Layout{Title: "Contacto | " + siteName, SiteName: siteName, Page: "contact", Links: StaticLinks("")},
	})
	if err != nil {
		return res, err
	}
	if err := g.write("contact.html", buf.Bytes()); err != nil {
		return res, err
	}
	res.Pages++
	advance("contact.html")

	if err := g.write("data/articles.json", raw); err != nil {
		return res, err
	}
	advance("data/articles.json")
	if err := g.write("style.css", StylesheetCSS()); err != nil {
		return res, err
	}
	advance("style.css")
	if err := g.write("script.js", ScriptJS()); err != nil {
		return res, err
	}
	advance("script.js")

	n, err := g.copyAssets()
	if err != nil {
		return res, err
	}
	res.Assets = n

	log.Info("site built", "output", g.OutputDir, "articles", res.Articles, "pages", res.Pages, "assets", res.Assets)
	return res, nil
}

func (g *Generator) shareURL(rel string) string {
	if g.BaseURL == "" {
		return ""
	}
	return strings.TrimRight(g.BaseURL, "/") + "/" + rel
}

func (g *Generator) write(rel string, data []byte) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// copyAssets copies every regular file under SiteDir matching one of the
// asset globs. Files inside OutputDir are never copied onto themselves.
func (g *Generator) copyAssets() (int, error) {
	if len(g.Assets) == 0 {
		return 0, nil
	}
	siteDir := g.SiteDir
	if siteDir == "" {
		siteDir = "."
	}
	fsys := os.DirFS(siteDir)
	outRel := relativeTo(siteDir, g.OutputDir)

	matched := map[string]bool{}
	for _, pattern := range g.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return 0, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return 0, fmt.Errorf("matching assets %q: %w", pattern, err)
		}
		for _, m := range matches {
			if outRel != "" && (m == outRel || strings.HasPrefix(m, outRel+"/")) {
				continue
			}
			info, err := fs.Stat(fsys, m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			matched[m] = true
		}
	}

	paths := make([]string, 0, len(matched))
	for m := range matched {
		paths = append(paths, m)
	}
	sort.Strings(paths)

	for _, rel := range paths {
		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return 0, fmt.Errorf("reading asset %s: %w", rel, err)
		}
		if err := g.write(rel, data); err != nil {
			return 0, err
		}
	}
	return len(paths), nil
}

// relativeTo returns target as a slash path relative to base, or "" when
// target is outside base.
func relativeTo(base, target string) string {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return ""
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}
