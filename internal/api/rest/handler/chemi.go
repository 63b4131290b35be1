package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/palemoky/name-chemi/internal/chemi"
	apierrors "github.com/palemoky/name-chemi/internal/errors"
	"github.com/palemoky/name-chemi/internal/helpers"
	"github.com/palemoky/name-chemi/internal/logger"
)

// RecentRecorder remembers successful lookups. Implementations must not fail the request.
type RecentRecorder interface {
	Add(ctx context.Context, name1, name2 string)
}

// ChemiHandler handles compatibility requests
type ChemiHandler struct {
	engine *chemi.Engine
	recent RecentRecorder
	rules  helpers.NameRules
}

// NewChemiHandler creates a new chemi handler. recent may be nil.
func NewChemiHandler(engine *chemi.Engine, recent RecentRecorder, rules helpers.NameRules) *ChemiHandler {
	return &ChemiHandler{engine: engine, recent: recent, rules: rules}
}

type chemiRequest struct {
	Name1 string `json:"name1" form:"name1"`
	Name2 string `json:"name2" form:"name2"`
	Date  string `json:"date"  form:"date"`
}

// GetChemi computes a result from ?name1=&name2=&date=
func (h *ChemiHandler) GetChemi(c *gin.Context) {
	var req chemiRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, apierrors.InvalidRequest("Invalid query parameters"))
		return
	}
	h.calculate(c, req)
}

// PostChemi computes a result from a JSON body
func (h *ChemiHandler) PostChemi(c *gin.Context) {
	var req chemiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.InvalidRequest("Request body must be JSON with name1 and name2"))
		return
	}
	h.calculate(c, req)
}

// GetWeekly returns the forecast for the current week from ?name1=&name2=
func (h *ChemiHandler) GetWeekly(c *gin.Context) {
	var req chemiRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, apierrors.InvalidRequest("Invalid query parameters"))
		return
	}
	if apiErr := h.validateNames(req); apiErr != nil {
		respondError(c, apiErr)
		return
	}

	forecast, err := h.engine.WeeklyForecast(req.Name1, req.Name2)
	if err != nil {
		respondError(c, engineError(err, req.Date))
		return
	}

	respondOK(c, forecast)
}

func (h *ChemiHandler) calculate(c *gin.Context, req chemiRequest) {
	if apiErr := h.validateNames(req); apiErr != nil {
		respondError(c, apiErr)
		return
	}

	result, err := h.engine.Calculate(req.Name1, req.Name2, req.Date)
	if err != nil {
		respondError(c, engineError(err, req.Date))
		return
	}

	if h.recent != nil {
		h.recent.Add(c.Request.Context(), result.OriginalNames[0], result.OriginalNames[1])
	}

	respondOK(c, formatResult(result))
}

func (h *ChemiHandler) validateNames(req chemiRequest) *apierrors.APIError {
	switch h.rules.FirstInvalid(req.Name1, req.Name2) {
	case 0:
		return apierrors.InvalidName("name1", h.rules.Min, h.rules.Max)
	case 1:
		return apierrors.InvalidName("name2", h.rules.Min, h.rules.Max)
	}
	return nil
}

func engineError(err error, date string) *apierrors.APIError {
	switch {
	case errors.Is(err, chemi.ErrInvalidDateKey):
		return apierrors.InvalidDate(date)
	case errors.Is(err, chemi.ErrEmptyName):
		return apierrors.InvalidRequest(err.Error())
	default:
		logger.Error("Chemi calculation failed", zap.Error(err))
		return apierrors.ErrInternal
	}
}
