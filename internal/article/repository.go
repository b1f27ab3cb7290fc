package article

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Repository retrieves the article collection. It keeps no cache: every
// call reads the source again.
type Repository struct {
	source Source
}

// NewRepository creates a Repository over the given source.
func NewRepository(source Source) *Repository {
	return &Repository{source: source}
}

// Source returns the underlying document source.
func (r *Repository) Source() Source { return r.source }

// FetchAll reads and decodes the whole collection. Any failure is a
// *FetchError.
func (r *Repository) FetchAll(ctx context.Context) ([]Article, error) {
	data, err := r.source.Read(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(r.source.String(), data)
}

// Find fetches the collection and looks up id. The boolean is false when the
// collection has no such record.
func (r *Repository) Find(ctx context.Context, id string) (Article, bool, error) {
	articles, err := r.FetchAll(ctx)
	if err != nil {
		return Article{}, false, err
	}
	a, ok := FindByID(articles, id)
	return a, ok, nil
}

// Decode parses a JSON array of articles. A payload that is not an array,
// including a literal null, is rejected.
func Decode(source string, data []byte) ([]Article, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &FetchError{Source: source, Err: fmt.Errorf("expected a JSON array of articles")}
	}
	var articles []Article
	if err := json.Unmarshal(trimmed, &articles); err != nil {
		return nil, &FetchError{Source: source, Err: fmt.Errorf("decoding articles: %w", err)}
	}
	if articles == nil {
		articles = []Article{}
	}
	return articles, nil
}
