package handler

import (
	"fairwager/internal/adapter/http/dto"
	"fairwager/internal/core/ports"
	"fairwager/internal/fair"
	"fairwager/pkg/apperror"
	"fairwager/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FairHandler handles the public verification endpoint and client seed
// management.
type FairHandler struct {
	seeds ports.SeedStore
}

// NewFairHandler creates a new FairHandler.
func NewFairHandler(seeds ports.SeedStore) *FairHandler {
	return &FairHandler{seeds: seeds}
}

// Verify handles POST /api/v1/fair/verify. It is public and stateless:
// anyone can recompute a settled round's outcome from the published values.
func (h *FairHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	claimed, err := decimal.NewFromString(req.CrashPoint)
	if err != nil {
		response.Error(c, apperror.Validation("crash_point must be a decimal string"))
		return
	}

	result := fair.Verify(
		req.ServerSeed,
		req.ServerSeedHash,
		req.ClientSeed,
		req.Nonce,
		claimed,
		req.HouseEdge,
		fair.DefaultTolerance,
	)

	response.OK(c, result)
}

// SetClientSeed handles PUT /api/v1/fair/seed. The seed is pinned to the
// player and picked up by the next round they enter.
func (h *FairHandler) SetClientSeed(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ClientSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.seeds.SetClientSeed(c.Request.Context(), id, req.Seed); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"seed": req.Seed})
}

// GetClientSeed handles GET /api/v1/fair/seed.
func (h *FairHandler) GetClientSeed(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	seed, err := h.seeds.GetClientSeed(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"seed": seed})
}
