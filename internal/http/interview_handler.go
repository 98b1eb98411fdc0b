package http

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"interview-scheduler/internal/domain"
	"interview-scheduler/internal/repository"
)

// Solo forma textual: no se valida calendario ni reloj.
var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// InterviewHandler mantiene dependencias para los endpoints de entrevistas.
type InterviewHandler struct {
	logger     *zap.Logger
	interviews repository.InterviewRepository
}

// NewInterviewHandler crea una instancia de InterviewHandler con sus dependencias.
func NewInterviewHandler(logger *zap.Logger, interviews repository.InterviewRepository) *InterviewHandler {
	return &InterviewHandler{
		logger:     logger,
		interviews: interviews,
	}
}

// Create maneja POST /api/interviews.
func (h *InterviewHandler) Create(c *gin.Context) {
	var req struct {
		CandidateName string `json:"candidate_name" binding:"required"`
		CompanyName   string `json:"company_name" binding:"required"`
		InterviewDate string `json:"interview_date" binding:"required"`
		InterviewTime string `json:"interview_time" binding:"required"`
		Duration      int    `json:"duration" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create interview request", zap.Error(err))
		respondError(c, http.StatusUnprocessableEntity, "invalid request")
		return
	}
	if !datePattern.MatchString(req.InterviewDate) || !timePattern.MatchString(req.InterviewTime) {
		respondError(c, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	interview := domain.Interview{
		ID:            uuid.NewString(),
		CandidateName: req.CandidateName,
		CompanyName:   req.CompanyName,
		InterviewDate: req.InterviewDate,
		InterviewTime: req.InterviewTime,
		Duration:      req.Duration,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.interviews.Insert(c.Request.Context(), interview); err != nil {
		h.logger.Error("create interview failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not create interview")
		return
	}

	c.JSON(http.StatusCreated, interview)
}

// ListAll maneja GET /api/interviews.
func (h *InterviewHandler) ListAll(c *gin.Context) {
	interviews, err := h.interviews.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list interviews failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not list interviews")
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	c.JSON(http.StatusOK, interviews)
}

// ListByDate maneja GET /api/interviews/date/:date.
func (h *InterviewHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")
	interviews, err := h.interviews.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("list interviews by date failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not list interviews")
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	c.JSON(http.StatusOK, interviews)
}
