package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fwojciec/readlog"
	readlogjson "github.com/fwojciec/readlog/json"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request bodies; reviews are at most tens of kilobytes.
const maxBodyBytes = 1 << 20

type versionResponse struct {
	Version string `json:"version"`
}

type previewRequest struct {
	Text string `json:"text"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

type reviewResponse struct {
	ID   int    `json:"id"`
	Raw  string `json:"raw"`
	HTML string `json:"html"`
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, versionResponse{Version: s.version})
}

// handlePreview renders unsaved review text for the live preview panel.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	html := s.metrics.observeRender(renderPathPreview, s.render, req.Text)
	writeJSON(w, http.StatusOK, previewResponse{HTML: html})
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	filter := readlog.BookFilter{Search: r.URL.Query().Get("search")}
	books, err := s.store.Books(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]readlogjson.Book, len(books))
	for i, b := range books {
		out[i] = readlogjson.NewBook(b)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.store.Book(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, readlogjson.NewBook(b))
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var dto readlogjson.Book
	if err := decode(w, r, &dto); err != nil {
		s.writeError(w, r, err)
		return
	}
	b := dto.Domain()
	b.ID = 0
	if err := s.store.CreateBook(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("book created", "id", b.ID, "title", b.Title)
	s.hub.Publish(readlog.EventBookCreated{Book: b})
	writeJSON(w, http.StatusCreated, readlogjson.NewBook(b))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var dto readlogjson.Book
	if err := decode(w, r, &dto); err != nil {
		s.writeError(w, r, err)
		return
	}
	b := dto.Domain()
	b.ID = id
	if err := s.store.UpdateBook(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("book updated", "id", b.ID)
	s.hub.Publish(readlog.EventBookUpdated{Book: b})
	writeJSON(w, http.StatusOK, readlogjson.NewBook(b))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.DeleteBook(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("book deleted", "id", id)
	s.hub.Publish(readlog.EventBookDeleted{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// handleGetReview returns a book's saved review, raw and rendered.
func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.store.Book(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewResponse{
		ID:   b.ID,
		Raw:  b.Review,
		HTML: s.metrics.observeRender(renderPathReview, s.render, b.Review),
	})
}

func bookID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q: %w", raw, readlog.ErrValidation)
	}
	return id, nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %s: %w", err, readlog.ErrValidation)
	}
	return nil
}
