package handler

import (
	"fairwager/internal/adapter/http/dto"
	"fairwager/internal/core/domain"
	"fairwager/internal/core/ports"
	"fairwager/pkg/apperror"
	"fairwager/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShootoutHandler handles head-to-head and player-vs-house game endpoints.
type ShootoutHandler struct {
	shootout ports.ShootoutService
}

// NewShootoutHandler creates a new ShootoutHandler.
func NewShootoutHandler(shootout ports.ShootoutService) *ShootoutHandler {
	return &ShootoutHandler{shootout: shootout}
}

// Create handles POST /api/v1/shootout.
func (h *ShootoutHandler) Create(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ShootoutCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.shootout.CreateGame(c.Request.Context(), id, req.Wager, domain.ShootoutMode(req.Mode))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, snap)
}

// Join handles POST /api/v1/shootout/:id/join.
func (h *ShootoutHandler) Join(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid game id"))
		return
	}

	snap, err := h.shootout.JoinGame(c.Request.Context(), gameID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, snap)
}

// Cancel handles DELETE /api/v1/shootout/:id.
func (h *ShootoutHandler) Cancel(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid game id"))
		return
	}

	if err := h.shootout.CancelGame(c.Request.Context(), gameID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"cancelled": true})
}

// Get handles GET /api/v1/shootout/:id.
func (h *ShootoutHandler) Get(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid game id"))
		return
	}

	snap, err := h.shootout.GetGame(c.Request.Context(), gameID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, snap)
}

// Lobby handles GET /api/v1/shootout. It lists open games waiting for an
// opponent.
func (h *ShootoutHandler) Lobby(c *gin.Context) {
	response.OK(c, h.shootout.Lobby())
}
