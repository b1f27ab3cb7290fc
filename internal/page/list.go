package page

import (
	"context"
	"log/slog"

	"github.com/webluciano/folio/internal/logging"
	"github.com/webluciano/folio/internal/render"
)

// ListView is the outcome of a listing load. An empty collection is still
// StateFound with no cards.
type ListView struct {
	State    State
	Kind     render.Kind
	Cards    []render.Card
	Fallback *Fallback
	Err      error
}

// ListController loads the article listing, or one random card.
type ListController struct {
	fetcher  Fetcher
	renderer *render.Renderer
	log      *slog.Logger
}

// NewListController creates a ListController. A nil logger discards.
func NewListController(fetcher Fetcher, renderer *render.Renderer, logger *slog.Logger) *ListController {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ListController{fetcher: fetcher, renderer: renderer, log: logger}
}

// Load fetches the collection and renders it as kind, which must be
// render.KindList or render.KindRandom.
func (c *ListController) Load(ctx context.Context, kind render.Kind) ListView {
	m := &machine{}
	v := ListView{State: StateLoading, Kind: kind}

	articles, err := c.fetcher.FetchAll(ctx)
	if err == nil {
		var view render.View
		view, err = c.renderer.Build(kind, articles)
		if err == nil {
			m.mustTransition(StateFound)
			v.State = m.state
			v.Cards = view.Cards
			return v
		}
	}

	c.log.Error("loading article listing failed", "kind", kind.String(), "err", err)
	m.mustTransition(StateError)
	fb := ListErrorFallback()
	v.State = m.state
	v.Fallback = &fb
	v.Err = err
	return v
}
