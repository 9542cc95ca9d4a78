package handler

import (
	"fairwager/internal/adapter/http/dto"
	"fairwager/internal/adapter/http/middleware"
	"fairwager/internal/core/ports"
	"fairwager/pkg/apperror"
	"fairwager/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles player session endpoints.
type SessionHandler struct {
	ledger   ports.LedgerService
	tokenSvc ports.TokenService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ledger ports.LedgerService, tokenSvc ports.TokenService) *SessionHandler {
	return &SessionHandler{ledger: ledger, tokenSvc: tokenSvc}
}

// Open handles POST /api/v1/session. It provisions an account for the given
// settlement address and returns a bearer token for it.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	account, err := h.ledger.CreateAccount(c.Request.Context(), req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, expiry, err := h.tokenSvc.Generate(account.ID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, dto.SessionResponse{
		PlayerID: account.ID.String(),
		Address:  account.Address,
		Token:    token,
		Expiry:   expiry.Unix(),
	})
}

// playerID extracts the authenticated player's ID from the gin context.
func playerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxPlayerID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
