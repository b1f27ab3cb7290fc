package page

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/logging"
	"github.com/webluciano/folio/internal/render"
)

// Fetcher supplies the article collection. *article.Repository satisfies it.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]article.Article, error)
}

// Indicator is a loading indicator. Hide is called exactly once for every
// Show.
type Indicator interface {
	Show()
	Hide()
}

// NopIndicator shows nothing.
type NopIndicator struct{}

func (NopIndicator) Show() {}
func (NopIndicator) Hide() {}

// View is the outcome of a detail-page load.
type View struct {
	State     State
	ID        string
	PageTitle string
	Detail    *render.Detail
	Fallback  *Fallback
	Err       error
}

// Options configures a Controller.
type Options struct {
	BackLink  string
	Indicator Indicator
	Logger    *slog.Logger
}

// Controller loads the detail view for one article id.
type Controller struct {
	fetcher   Fetcher
	renderer  *render.Renderer
	backLink  string
	indicator Indicator
	log       *slog.Logger
}

// NewController creates a Controller. Unset options get no-op defaults.
func NewController(fetcher Fetcher, renderer *render.Renderer, opts Options) *Controller {
	if opts.BackLink == "" {
		opts.BackLink = DefaultBackLink
	}
	if opts.Indicator == nil {
		opts.Indicator = NopIndicator{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Controller{
		fetcher:   fetcher,
		renderer:  renderer,
		backLink:  opts.BackLink,
		indicator: opts.Indicator,
		log:       opts.Logger,
	}
}

// Load runs one load from StateLoading to a terminal state. It never
// panics: a panic while rendering ends in StateError. The indicator, when
// shown, is hidden on every path.
func (c *Controller) Load(ctx context.Context, id string) (v View) {
	m := &machine{}
	v = View{State: StateLoading, ID: id}

	if id == "" {
		c.log.Info("no article id supplied")
		return c.notFound(m, v)
	}

	c.indicator.Show()
	// Deferred calls run in reverse: the recover below replaces the view,
	// then Hide runs.
	defer c.indicator.Hide()
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("rendering article panicked", "id", id, "panic", r)
			fb := ErrorFallback()
			v = View{
				State:     StateError,
				ID:        id,
				PageTitle: c.renderer.PageTitle(fb.Heading),
				Fallback:  &fb,
				Err:       fmt.Errorf("rendering article %s: %v", id, r),
			}
		}
	}()

	articles, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		c.log.Error("fetching articles failed", "id", id, "err", err)
		return c.fail(m, v, err)
	}

	a, ok := article.FindByID(articles, id)
	if !ok {
		c.log.Info("article not found", "id", id)
		return c.notFound(m, v)
	}

	view, err := c.renderer.Build(render.KindDetail, []article.Article{a})
	if err != nil {
		c.log.Error("rendering article failed", "id", id, "err", err)
		return c.fail(m, v, err)
	}

	m.mustTransition(StateFound)
	v.State = m.state
	v.Detail = view.Detail
	v.PageTitle = view.Detail.PageTitle
	return v
}

func (c *Controller) notFound(m *machine, v View) View {
	m.mustTransition(StateNotFound)
	fb := NotFoundFallback(c.backLink)
	v.State = m.state
	v.Fallback = &fb
	v.PageTitle = c.renderer.PageTitle(fb.Heading)
	return v
}

func (c *Controller) fail(m *machine, v View, err error) View {
	m.mustTransition(StateError)
	fb := ErrorFallback()
	v.State = m.state
	v.Fallback = &fb
	v.Err = err
	v.PageTitle = c.renderer.PageTitle(fb.Heading)
	return v
}
