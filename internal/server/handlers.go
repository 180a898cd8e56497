package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/blockhint/internal/hints"
	"github.com/abhisek/blockhint/internal/pipeline"
	"github.com/abhisek/blockhint/internal/submission"
	"github.com/abhisek/blockhint/internal/telemetry"
)

// CategoryView is one entry of the /categories listing.
type CategoryView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ErrorResponse carries the reason a request was rejected.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleCategories(c *gin.Context) {
	cats := s.pipeline.Categories()
	out := make([]CategoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryView{
			ID:          string(cat.ID),
			Label:       cat.Label,
			Description: cat.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// handleHint diagnoses one submission. A submission for which no rule
// matched gets a 404 carrying the fallback text, not a server error.
func (s *Server) handleHint(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.reject(c, http.StatusRequestEntityTooLarge, telemetry.OutcomeInvalid, "request body too large")
			return
		}
		s.reject(c, http.StatusBadRequest, telemetry.OutcomeInvalid, "could not read request body")
		return
	}

	req, err := submission.Decode(raw)
	if err != nil {
		var invalid *submission.ErrInvalidSubmission
		if errors.As(err, &invalid) {
			s.reject(c, http.StatusUnprocessableEntity, telemetry.OutcomeInvalid, err.Error())
			return
		}
		s.logger.ErrorContext(c.Request.Context(), "decode submission", "error", err)
		s.reject(c, http.StatusInternalServerError, telemetry.OutcomeError, "internal error")
		return
	}

	res, err := s.pipeline.Diagnose(c.Request.Context(), req.Outcome(), req.Code)
	switch {
	case err == nil:
		category := string(res.Diagnosis.Category)
		s.observe(c, category, telemetry.OutcomeHint)
		c.JSON(http.StatusOK, submission.Response{
			HintText: res.Document.String(),
			Category: category,
		})
	case pipeline.NoHintAvailable(err):
		var category string
		if res != nil {
			category = string(res.Diagnosis.Category)
		}
		s.observe(c, category, telemetry.OutcomeNoHint)
		c.JSON(http.StatusNotFound, submission.Response{HintText: hints.NoHintMessage})
	case pipeline.IsMalformed(err):
		s.reject(c, http.StatusBadRequest, telemetry.OutcomeMalformed, err.Error())
	case pipeline.IsUnsupported(err):
		s.reject(c, http.StatusUnprocessableEntity, telemetry.OutcomeInvalid, err.Error())
	default:
		s.logger.ErrorContext(c.Request.Context(), "diagnose submission", "error", err)
		s.reject(c, http.StatusInternalServerError, telemetry.OutcomeError, "internal error")
	}
}

func (s *Server) observe(c *gin.Context, category, outcome string) {
	if category != "" {
		c.Set(keyCategory, category)
	}
	c.Set(keyOutcome, outcome)
	s.metrics.ObserveHint(category, outcome)
}

func (s *Server) reject(c *gin.Context, status int, outcome, detail string) {
	s.observe(c, "", outcome)
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}
