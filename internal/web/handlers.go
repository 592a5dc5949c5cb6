package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jaminalder/cookies-and-milk/internal/app"
	"github.com/jaminalder/cookies-and-milk/internal/domain"
)

type handlers struct {
	svc *app.Service
	log zerolog.Logger
}

func writeBoard(w http.ResponseWriter, status int, snap domain.Snapshot) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, domain.Render(snap))
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	writeBoard(w, http.StatusOK, h.svc.Board())
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	writeBoard(w, http.StatusOK, h.svc.Reset())
}

func (h *handlers) place(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	column, err := strconv.Atoi(chi.URLParam(r, "column"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	snap, err := h.svc.Place(team, column)
	switch {
	case err == nil:
		writeBoard(w, http.StatusOK, snap)
	case errors.Is(err, app.ErrInvalidInput):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, app.ErrUnavailable):
		writeBoard(w, http.StatusServiceUnavailable, snap)
	default:
		h.log.Error().Err(err).Msg("place")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *handlers) random(w http.ResponseWriter, r *http.Request) {
	writeBoard(w, http.StatusOK, h.svc.Random())
}
