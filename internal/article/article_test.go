package article

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

const sampleJSON = `[
  {"id":"1","title":"A","tag":"Web","date":"2024-01-01","excerpt":"e","content":"one two"},
  {"id":"2","title":"B","tag":"SwiftUI","icon":"fab fa-swift","date":"2024-02-01","excerpt":"f","content":"three"},
  {"id":"2","title":"B duplicate","tag":"iOS","date":"2024-03-01","excerpt":"g","content":"four"}
]`

func TestFindByIDEveryRecord(t *testing.T) {
	articles, err := Decode("test", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, a := range articles[:2] {
		got, ok := FindByID(articles, a.ID)
		if !ok {
			t.Fatalf("FindByID(%q) not found", a.ID)
		}
		if got != a {
			t.Errorf("FindByID(%q) = %+v, want %+v", a.ID, got, a)
		}
	}
}

func TestFindByIDFirstMatchWins(t *testing.T) {
	articles, err := Decode("test", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := FindByID(articles, "2")
	if !ok {
		t.Fatal("expected a match for id 2")
	}
	if got.Title != "B" {
		t.Errorf("title = %q, want first record %q", got.Title, "B")
	}
}

func TestFindByIDMissing(t *testing.T) {
	tests := []struct {
		name     string
		articles []Article
		id       string
	}{
		{"absent id", []Article{{ID: "1"}}, "9"},
		{"empty collection", nil, "1"},
		{"empty id", []Article{{ID: "1"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindByID(tt.articles, tt.id)
			if ok {
				t.Errorf("expected not found, got %+v", got)
			}
			if got != (Article{}) {
				t.Errorf("expected zero article, got %+v", got)
			}
		})
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	for _, payload := range []string{``, `null`, `{"id":"1"}`, `[{"id":1}]`, `not json`} {
		_, err := Decode("test", []byte(payload))
		var fe *FetchError
		if !errors.As(err, &fe) {
			t.Errorf("Decode(%q) error = %v, want *FetchError", payload, err)
		}
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	articles, err := Decode("test", []byte(` [] `))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if articles == nil || len(articles) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", articles)
	}
}

func TestHTTPSourceFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/articles.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	repo := NewRepository(NewSource(srv.URL + "/data/articles.json"))
	articles, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}
	if articles[1].Icon != "fab fa-swift" {
		t.Errorf("icon = %q, want fab fa-swift", articles[1].Icon)
	}
}

func TestHTTPSourceNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := NewRepository(NewHTTPSource(srv.URL, srv.Client()))
	_, err := repo.FetchAll(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if fe.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", fe.Status)
	}
}

func TestHTTPSourceTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewRepository(NewSource(url)).FetchAll(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if fe.Status != 0 {
		t.Errorf("status = %d, want 0 for transport failure", fe.Status)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "articles.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	a, ok, err := NewRepository(NewSource(path)).Find(context.Background(), "1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok || a.Title != "A" {
		t.Errorf("Find(1) = %+v, %v", a, ok)
	}

	_, ok, err = NewRepository(NewSource(path)).Find(context.Background(), "9")
	if err != nil || ok {
		t.Errorf("Find(9) = ok %v, err %v; want not found without error", ok, err)
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewRepository(NewSource(filepath.Join(t.TempDir(), "nope.json"))).FetchAll(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestFileSourceFS(t *testing.T) {
	fsys := fstest.MapFS{"data/articles.json": {Data: []byte(sampleJSON)}}
	repo := NewRepository(&FileSource{Path: "data/articles.json", FS: fsys})
	articles, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(articles) != 3 {
		t.Errorf("got %d articles, want 3", len(articles))
	}
}

func TestFileSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRepository(&FileSource{Path: "x"}).FetchAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
