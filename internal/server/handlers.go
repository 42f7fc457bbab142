package server

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pmeier/crossgrid/pkg/cache"
	"github.com/pmeier/crossgrid/pkg/crossword"
	"github.com/pmeier/crossgrid/pkg/errors"
	puzzleio "github.com/pmeier/crossgrid/pkg/io"
	"github.com/pmeier/crossgrid/pkg/observability"
	"github.com/pmeier/crossgrid/pkg/render/svg"
	"github.com/pmeier/crossgrid/pkg/render/text"
)

// artifactTTL bounds how long rendered artifacts stay cached.
const artifactTTL = 24 * time.Hour

// puzzleTTL bounds how long seeded generation results stay cached.
// Unseeded runs are random and never cached.
const puzzleTTL = 24 * time.Hour

type createRequest struct {
	Words       []wordInput `json:"words"`
	MaxAttempts int         `json:"max_attempts,omitempty"`
	Seed        *uint64     `json:"seed,omitempty"`
}

type wordInput struct {
	Word string `json:"word"`
	Clue string `json:"clue,omitempty"`
}

type createResponse struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Puzzle    json.RawMessage `json:"puzzle"`
}

type listItem struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if len(req.Words) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeEmptyWordlist, "request has no words"))
		return
	}

	maxAttempts := req.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = s.cfg.MaxAttempts
	}

	// Seeded requests are deterministic, so the generated puzzle can be
	// reused across identical requests.
	var puzzleKey string
	var data []byte
	if req.Seed != nil {
		wordsJSON, _ := json.Marshal(req.Words)
		puzzleKey = cache.PuzzleKey(cache.Hash(wordsJSON), maxAttempts, *req.Seed)
		if cached, hit, err := s.cache.Get(r.Context(), puzzleKey); err == nil && hit {
			observability.Cache().OnCacheHit(r.Context(), "puzzle")
			data = cached
		} else {
			observability.Cache().OnCacheMiss(r.Context(), "puzzle")
		}
	}

	if data == nil {
		var rng *rand.Rand
		if req.Seed != nil {
			rng = rand.New(rand.NewPCG(*req.Seed, *req.Seed))
		}

		entries := make([]crossword.Entry, len(req.Words))
		for i, in := range req.Words {
			entries[i] = crossword.Entry{Word: in.Word, Clue: in.Clue}
		}

		start := time.Now()
		observability.Generator().OnGenerateStart(r.Context(), len(entries), maxAttempts)
		puzzle := crossword.NewGenerator(maxAttempts, rng).Generate(entries)
		observability.Generator().OnGenerateComplete(r.Context(),
			len(puzzle.Words), len(puzzle.Unplaced), time.Since(start))

		var err error
		data, err = puzzleio.Marshal(puzzle)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode puzzle"))
			return
		}

		if puzzleKey != "" {
			if err := s.cache.Set(r.Context(), puzzleKey, data, puzzleTTL); err != nil {
				s.logger.Warn("cache write failed", "key", puzzleKey, "err", err)
			} else {
				observability.Cache().OnCacheSet(r.Context(), "puzzle", len(data))
			}
		}
	}

	rec, err := s.store.Save(r.Context(), data)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("puzzle created", "id", rec.ID, "bytes", len(data))

	writeJSON(w, http.StatusCreated, createResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Puzzle:    data,
	})
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	items := make([]listItem, len(records))
	for i, rec := range records {
		items[i] = listItem{ID: rec.ID, CreatedAt: rec.CreatedAt}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Puzzle:    rec.Data,
	})
}

func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	s.renderArtifact(w, r, "svg", "image/svg+xml", func(p *crossword.Puzzle) []byte {
		return svg.RenderSVG(p, svg.WithLetters())
	})
}

func (s *Server) handleRenderText(w http.ResponseWriter, r *http.Request) {
	s.renderArtifact(w, r, "text", "text/plain; charset=utf-8", func(p *crossword.Puzzle) []byte {
		return []byte(text.Render(p, text.Options{ShowLetters: true, ShowClues: true}))
	})
}

// renderArtifact fetches the stored puzzle and renders it, serving from
// the artifact cache when possible.
func (s *Server) renderArtifact(w http.ResponseWriter, r *http.Request, format, contentType string, render func(*crossword.Puzzle) []byte) {
	ctx := r.Context()

	rec, err := s.store.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cache.ArtifactKey(cache.Hash(rec.Data), format)
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, format)
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, format)

	puzzle, err := puzzleio.Unmarshal(rec.Data)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "decode stored puzzle %s", rec.ID))
		return
	}

	data := render(puzzle)
	if err := s.cache.Set(ctx, key, data, artifactTTL); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidWordlist, errors.ErrCodeEmptyWordlist,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePuzzleNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
