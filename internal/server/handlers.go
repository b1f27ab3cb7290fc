package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/webluciano/folio/internal/contact"
	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/render"
	"github.com/webluciano/folio/internal/site"
)

func (s *Server) layout(title, pageName string) site.Layout {
	return site.Layout{
		Title:    title,
		SiteName: s.renderer.SiteTitle(),
		BasePath: "/",
		Page:     pageName,
		Links:    site.ServerLinks(),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	kind := render.KindList
	if isTruthy(r.URL.Query().Get("random")) {
		kind = render.KindRandom
	}
	v := s.list.Load(r.Context(), kind)

	status := http.StatusOK
	if v.State == page.StateError {
		status = http.StatusBadGateway
	}
	s.writePage(w, status, func(buf *bytes.Buffer) error {
		return s.pages.Index(buf, site.IndexData{
			Layout:     s.layout(s.renderer.SiteTitle(), "index"),
			Cards:      v.Cards,
			Random:     kind == render.KindRandom,
			RandomLink: site.ServerLinks().Random,
			Fallback:   v.Fallback,
		})
	})
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	v := s.detail.Load(r.Context(), id)

	s.writePage(w, statusFor(v.State), func(buf *bytes.Buffer) error {
		return s.pages.Article(buf, site.ArticleData{
			Layout:   s.layout(v.PageTitle, "article"),
			Detail:   v.Detail,
			Fallback: v.Fallback,
			BackLink: ServerBackLink,
			ShareURL: s.articleURL(id),
		})
	})
}

func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, http.StatusOK, site.ContactData{Sent: r.URL.Query().Get("sent") == "1"})
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if s.contacts == nil {
		http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderContact(w, http.StatusBadRequest, site.ContactData{})
		return
	}
	form := site.ContactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	created, err := s.contacts.Create(r.Context(), contact.Message{
		Name:       form.Name,
		Email:      form.Email,
		Subject:    form.Subject,
		Message:    form.Message,
		RemoteAddr: r.RemoteAddr,
	})
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		s.renderContact(w, http.StatusUnprocessableEntity, site.ContactData{Form: form, Errors: verr.Fields})
	case err != nil:
		s.log.Error("storing contact message failed", "err", err)
		s.renderContact(w, http.StatusInternalServerError, site.ContactData{
			Form:   form,
			Errors: map[string]string{"message": "No se pudo enviar el mensaje. Inténtalo de nuevo más tarde."},
		})
	default:
		s.log.Info("contact message received", "id", created.ID)
		http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
	}
}

func (s *Server) renderContact(w http.ResponseWriter, status int, d site.ContactData) {
	d.Layout = s.layout("Contacto | "+s.renderer.SiteTitle(), "contact")
	if s.contacts != nil {
		d.Action = "/contact"
	}
	s.writePage(w, status, func(buf *bytes.Buffer) error {
		return s.pages.Contact(buf, d)
	})
}

func (s *Server) handleRawData(w http.ResponseWriter, r *http.Request) {
	data, err := s.source.Read(r.Context())
	if err != nil {
		s.log.Error("reading article source failed", "source", s.source.String(), "err", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "article source unavailable"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	v := s.list.Load(r.Context(), render.KindList)
	if v.State == page.StateError {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "article source unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, v.Cards)
}

func (s *Server) handleRandomArticle(w http.ResponseWriter, r *http.Request) {
	v := s.list.Load(r.Context(), render.KindRandom)
	switch {
	case v.State == page.StateError:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "article source unavailable"})
	case len(v.Cards) == 0:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no articles"})
	default:
		writeJSON(w, http.StatusOK, v.Cards[0])
	}
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	v := s.detail.Load(r.Context(), chi.URLParam(r, "id"))
	switch v.State {
	case page.StateFound:
		writeJSON(w, http.StatusOK, v.Detail)
	case page.StateNotFound:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
	default:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "article source unavailable"})
	}
}

// articleURL is the absolute share link for an article, or "" without a
// configured base URL.
func (s *Server) articleURL(id string) string {
	if s.cfg.BaseURL == "" || id == "" {
		return ""
	}
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/article?id=" + url.QueryEscape(id)
}

// writePage renders into a buffer so a template failure still yields a
// clean 500 instead of a truncated page.
func (s *Server) writePage(w http.ResponseWriter, status int, fill func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		s.log.Error("rendering page failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func statusFor(state page.State) int {
	switch state {
	case page.StateFound:
		return http.StatusOK
	case page.StateNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func serveStatic(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
