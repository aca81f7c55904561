package applications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/dogs/{dogID}/adopt", submitHandler(svc, log))
	r.Get("/applications", listHandler(svc, log))
	r.Get("/applications/{appID}", getHandler(svc, log))
	r.Patch("/applications/{appID}", reviewHandler(svc, log))
}

type submitRequest struct {
	// Pointers so a missing required field is distinguishable from an
	// empty one: missing gets the "{field} is required" message, empty
	// falls through to the validation rules.
	ApplicantName *string `json:"applicant_name"`
	Email         *string `json:"email"`
	Phone         string  `json:"phone"`
	Message       string  `json:"message"`
}

type applicationResponse struct {
	ID                int64     `json:"id"`
	DogID             int64     `json:"dog_id"`
	DogName           *string   `json:"dog_name"`
	ApplicantName     string    `json:"applicant_name"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	Message           *string   `json:"message"`
	ApplicationStatus string    `json:"application_status"`
	SubmittedAt       time.Time `json:"submitted_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type submitResponse struct {
	Message       string              `json:"message"`
	ApplicationID int64               `json:"application_id"`
	Application   applicationResponse `json:"application"`
}

func submitHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID, err := strconv.ParseInt(chi.URLParam(r, "dogID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Dog not found")
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "JSON body required")
			return
		}
		if req.ApplicantName == nil {
			writeError(w, http.StatusBadRequest, "applicant_name is required")
			return
		}
		if req.Email == nil {
			writeError(w, http.StatusBadRequest, "email is required")
			return
		}

		a, err := svc.Submit(r.Context(), dogID, SubmitInput{
			ApplicantName: *req.ApplicantName,
			Email:         *req.Email,
			Phone:         req.Phone,
			Message:       req.Message,
		})
		if err != nil {
			var ve *ValidationError
			switch {
			case errors.Is(err, ErrDogNotFound):
				writeError(w, http.StatusNotFound, "Dog not found")
			case errors.Is(err, ErrDogUnavailable):
				writeError(w, http.StatusBadRequest, "This dog is not available for adoption")
			case errors.As(err, &ve):
				writeError(w, http.StatusBadRequest, ve.Reason)
			default:
				log.Error("submit application", map[string]any{"dog_id": dogID, "err": err.Error()})
				writeError(w, http.StatusInternalServerError, "Failed to submit application")
			}
			return
		}

		writeJSON(w, http.StatusCreated, submitResponse{
			Message:       "Adoption application submitted successfully",
			ApplicationID: a.ID,
			Application:   toApplicationResponse(a),
		})
	}
}

func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list applications", map[string]any{"err": err.Error()})
			writeError(w, http.StatusInternalServerError, "Failed to retrieve applications")
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Application not found")
				return
			}
			log.Error("get application", map[string]any{"id": id, "err": err.Error()})
			writeError(w, http.StatusInternalServerError, "Failed to retrieve application")
			return
		}

		writeJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

type reviewRequest struct {
	ApplicationStatus *string `json:"application_status"`
}

func reviewHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}

		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "JSON body required")
			return
		}
		if req.ApplicationStatus == nil {
			writeError(w, http.StatusBadRequest, "application_status is required")
			return
		}

		status, ok := ParseStatus(*req.ApplicationStatus)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid application status")
			return
		}

		a, err := svc.Review(r.Context(), id, status)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Application not found")
				return
			}
			log.Error("review application", map[string]any{"id": id, "err": err.Error()})
			writeError(w, http.StatusInternalServerError, "Failed to update application")
			return
		}

		writeJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

func toApplicationResponse(a Application) applicationResponse {
	// Absent optional values render as null, not "".
	return applicationResponse{
		ID:                a.ID,
		DogID:             a.DogID,
		DogName:           nullWhenEmpty(a.DogName),
		ApplicantName:     a.ApplicantName,
		Email:             a.Email,
		Phone:             nullWhenEmpty(a.Phone),
		Message:           nullWhenEmpty(a.Message),
		ApplicationStatus: a.Status.Display(),
		SubmittedAt:       a.SubmittedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func nullWhenEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON is duplicated in the handler file of each domain package to
// avoid a shared helper package while there are only three of them.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
