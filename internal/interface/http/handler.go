package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yanqian/ai-astrologer/internal/domain/oracle"
	apperrors "github.com/yanqian/ai-astrologer/pkg/errors"
)

// Handler wires the HTTP transport to the oracle service.
type Handler struct {
	oracleSvc oracle.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(oracleSvc oracle.Service, logger *slog.Logger) *Handler {
	return &Handler{
		oracleSvc: oracleSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// CreateReading derives a profile from birth details and returns the reading.
func (h *Handler) CreateReading(c *gin.Context) {
	var req oracle.ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	resp, err := h.oracleSvc.Reading(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "reading_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AskQuestion answers a free-text question. The session token may come in
// the body or as a bearer token.
func (h *Handler) AskQuestion(c *gin.Context) {
	var req oracle.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	if strings.TrimSpace(req.SessionToken) == "" {
		req.SessionToken = bearerToken(c.GetHeader("Authorization"))
	}

	resp, err := h.oracleSvc.Ask(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "question_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// bindError turns field rule violations into invalid_input and anything
// else, such as malformed JSON, into invalid_request.
func bindError(err error) *HTTPError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		message := fmt.Sprintf("%s is invalid", jsonFieldName(fe.Field()))
		if fe.Tag() == "max" {
			message = fmt.Sprintf("%s must be at most %s characters", jsonFieldName(fe.Field()), fe.Param())
		}
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, message, err)
	}
	return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
}

// jsonFieldName maps a Go field name such as BirthPlace to its camelCase
// json name.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
