package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dogshelter/internal/config"
	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, mode config.AvailabilityFilterMode, log logger.Logger) {
	r.Get("/dogs", listDogsHandler(svc, mode, log))
	r.Get("/dogs/{dogID}", getDogHandler(svc, log))
}

type dogSummaryResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Breed  string  `json:"breed"`
	Status *string `json:"status"`
}

type dogDetailResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	Age         *int    `json:"age"`
	Description *string `json:"description"`
	Gender      *string `json:"gender"`
	Status      *string `json:"status"`
}

func listDogsHandler(svc *Service, mode config.AvailabilityFilterMode, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := Filter{Breed: q.Get("breed")}

		switch mode {
		case config.FilterByFlag:
			// Only the literal "true" activates the AVAILABLE-only
			// filter; everything else (including "false") applies none.
			if strings.EqualFold(q.Get("available"), "true") {
				st := StatusAvailable
				f.Status = &st
			}
		default:
			if st, ok := ParseStatus(q.Get("status")); ok {
				f.Status = &st
			}
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			log.Error("list dogs", map[string]any{"err": err.Error()})
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve dogs"})
			return
		}

		out := make([]dogSummaryResponse, 0, len(items))
		for _, d := range items {
			out = append(out, dogSummaryResponse{
				ID:     d.ID,
				Name:   d.Name,
				Breed:  d.Breed,
				Status: statusName(d.Status),
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "dogID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Dog not found"})
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "Dog not found"})
				return
			}
			log.Error("get dog", map[string]any{"id": id, "err": err.Error()})
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve dog"})
			return
		}

		writeJSON(w, http.StatusOK, dogDetailResponse{
			ID:          d.ID,
			Name:        d.Name,
			Breed:       d.Breed,
			Age:         d.Age,
			Description: d.Description,
			Gender:      d.Gender,
			Status:      statusName(d.Status),
		})
	}
}

// statusName renders the enum-name form, null when the value is absent.
func statusName(s Status) *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}

// writeJSON is duplicated in the handler file of each domain package to
// avoid a shared helper package while there are only three of them.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
