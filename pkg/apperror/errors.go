package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Balance & Ledger (BAL) ----

func ErrInsufficientFunds() *AppError {
	return New("BAL_001", "Insufficient withdrawable balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("BAL_002", "Invalid amount", http.StatusBadRequest)
}

func ErrAccountNotFound() *AppError {
	return New("BAL_003", "Account not found", http.StatusNotFound)
}

func ErrNegativeBalance(err error) *AppError {
	return Wrap("BAL_004", "Operation would produce a negative balance", http.StatusConflict, err)
}

// ---- Game Rounds (GAME) ----

func ErrRoundNotFound() *AppError {
	return New("GAME_001", "Round not found", http.StatusNotFound)
}

func ErrWrongPhase(expected string) *AppError {
	return New("GAME_002", fmt.Sprintf("Round is not in the %s phase", expected), http.StatusConflict)
}

func ErrAlreadySettled() *AppError {
	return New("GAME_003", "Position already settled", http.StatusConflict)
}

func ErrBetAlreadyPlaced() *AppError {
	return New("GAME_004", "Bet already placed for this round", http.StatusConflict)
}

func ErrSelfJoin() *AppError {
	return New("GAME_005", "Cannot join your own game", http.StatusBadRequest)
}

func ErrNotCreator() *AppError {
	return New("GAME_006", "Only the creator may cancel a game", http.StatusForbidden)
}

func ErrBetLimit() *AppError {
	return New("GAME_007", "Wager outside allowed limits", http.StatusUnprocessableEntity)
}

// ---- Fairness (FAIR) ----

// ErrSeedHashMismatch indicates a commit-reveal violation. Callers must log
// this as a security incident, never swallow it.
func ErrSeedHashMismatch() *AppError {
	return New("FAIR_001", "Server seed does not match its published hash", http.StatusConflict)
}

// ---- Settlement (SET) ----

func ErrSettlementFailure(err error) *AppError {
	return Wrap("SET_001", "External settlement failed", http.StatusBadGateway, err)
}

func ErrOperationNotFound() *AppError {
	return New("SET_002", "Ledger operation not found", http.StatusNotFound)
}

// ---- Sessions (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a BAL_002-style validation error.
func Validation(message string) *AppError {
	return New("BAL_002", message, http.StatusBadRequest)
}
