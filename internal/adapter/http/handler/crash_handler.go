package handler

import (
	"fairwager/internal/adapter/http/dto"
	"fairwager/internal/core/ports"
	"fairwager/pkg/apperror"
	"fairwager/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrashHandler handles the shared crash round endpoints.
type CrashHandler struct {
	crash ports.CrashService
}

// NewCrashHandler creates a new CrashHandler.
func NewCrashHandler(crash ports.CrashService) *CrashHandler {
	return &CrashHandler{crash: crash}
}

// Current handles GET /api/v1/crash/current. Spectators see the same
// snapshot as players: the server seed stays hidden until the crash.
func (h *CrashHandler) Current(c *gin.Context) {
	snap := h.crash.CurrentRound()
	if snap == nil {
		response.Error(c, apperror.ErrRoundNotFound())
		return
	}
	response.OK(c, snap)
}

// PlaceBet handles POST /api/v1/crash/bets.
func (h *CrashHandler) PlaceBet(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CrashBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.crash.PlaceBet(c.Request.Context(), id, req.Wager)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, snap)
}

// CashOut handles POST /api/v1/crash/cashout.
func (h *CrashHandler) CashOut(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	pos, err := h.crash.CashOut(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, pos)
}

// RoundResult handles GET /api/v1/crash/rounds/:id. Settled rounds stay
// queryable for the grace window, with the server seed revealed.
func (h *CrashHandler) RoundResult(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid round id"))
		return
	}

	snap, err := h.crash.RoundResult(c.Request.Context(), roundID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, snap)
}
