package handler

import (
	"strconv"

	"fairwager/internal/adapter/http/dto"
	"fairwager/internal/core/ports"
	"fairwager/pkg/apperror"
	"fairwager/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

// WalletHandler handles balance and external-money endpoints.
type WalletHandler struct {
	ledger ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := h.ledger.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBalanceResponse(account))
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	op, err := h.ledger.CreditDeposit(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToOperationResponse(op))
}

// Withdraw handles POST /api/v1/wallet/withdraw. The operation comes back
// PENDING; the settlement reconciler carries it to SETTLED or FAILED.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	op, err := h.ledger.LockForWithdrawal(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToOperationResponse(op))
}

// History handles GET /api/v1/wallet/history.
func (h *WalletHandler) History(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be an integer between 1 and 500"))
			return
		}
		limit = n
	}

	ops, err := h.ledger.History(c.Request.Context(), id, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.OperationResponse, 0, len(ops))
	for i := range ops {
		out = append(out, dto.ToOperationResponse(&ops[i]))
	}
	response.OK(c, out)
}
