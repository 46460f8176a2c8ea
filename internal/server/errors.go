package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MalithGihan/taxnotice-service/internal/account"
	"github.com/MalithGihan/taxnotice-service/internal/apperr"
	"github.com/MalithGihan/taxnotice-service/internal/summarize"
)

var (
	errNoFile = apperr.New(http.StatusBadRequest, "No PDF file provided.", nil)
	errNotPDF = apperr.New(http.StatusUnsupportedMediaType, "Uploaded file is not a PDF.", nil)
)

func errBadUpload(err error) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return apperr.New(http.StatusRequestEntityTooLarge, "File too large.", err)
	}
	return apperr.New(http.StatusBadRequest, "Could not read upload.", err)
}

// toAppError decides the status and user-facing message for any handler error.
func toAppError(err error) *apperr.AppError {
	switch summarize.KindOf(err) {
	case summarize.ErrExtraction:
		return apperr.New(http.StatusUnprocessableEntity, "Could not read text from PDF.", err)
	case summarize.ErrTransport, summarize.ErrResponseShape:
		return apperr.New(http.StatusBadGateway, "Failed to get summary from AI.", err)
	case summarize.ErrInvalidSummaryJSON:
		return apperr.New(http.StatusBadGateway, "AI returned an invalid format.", err)
	}

	switch {
	case errors.Is(err, account.ErrMissingFields):
		return apperr.New(http.StatusBadRequest, "Missing required fields.", err)
	case errors.Is(err, account.ErrInvalidEmail):
		return apperr.New(http.StatusBadRequest, "Invalid email address.", err)
	case errors.Is(err, account.ErrInvalidDOB):
		return apperr.New(http.StatusBadRequest, "Date of birth must be YYYY-MM-DD.", err)
	case errors.Is(err, account.ErrEmailTaken):
		return apperr.New(http.StatusConflict, "This email address is already in use.", err)
	case errors.Is(err, account.ErrInvalidCredentials):
		return apperr.New(http.StatusUnauthorized, "Invalid email or password.", err)
	}
	return apperr.MapError(err)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := toAppError(err)
	log := s.log.With("request_id", middleware.GetReqID(r.Context()), "status", ae.Code, "err", err)
	if ae.Code >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed")
	} else {
		log.InfoContext(r.Context(), "request rejected")
	}
	writeJSON(w, ae.Code, map[string]any{"success": false, "message": ae.Message})
}
