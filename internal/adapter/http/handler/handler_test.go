package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fairwager/internal/adapter/http/dto"
	"fairwager/internal/adapter/http/middleware"
	"fairwager/internal/core/domain"
	"fairwager/internal/core/ports"
	"fairwager/internal/core/ports/mocks"
	"fairwager/internal/fair"
	"fairwager/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonRequest(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Session Handler Tests ---

func TestSessionOpen_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockTokens := mocks.NewMockTokenService(ctrl)
	h := NewSessionHandler(mockLedger, mockTokens)

	accountID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)
	mockLedger.EXPECT().CreateAccount(gomock.Any(), "addr-0001").Return(&domain.Account{
		ID:      accountID,
		Address: "addr-0001",
	}, nil)
	mockTokens.EXPECT().Generate(accountID).Return("tok", expiry, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/session", dto.SessionRequest{Address: "addr-0001"})
	h.Open(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, accountID.String(), data["player_id"])
	assert.Equal(t, "tok", data["token"])
}

func TestSessionOpen_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSessionHandler(mocks.NewMockLedgerService(ctrl), mocks.NewMockTokenService(ctrl))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/session", dto.SessionRequest{Address: "bad address!"})
	h.Open(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Wallet Handler Tests ---

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger)

	playerID := uuid.New()
	mockLedger.EXPECT().GetAccount(gomock.Any(), playerID).Return(&domain.Account{
		ID:           playerID,
		Address:      "addr-1",
		Spendable:    100_0000,
		LockedInGame: 25_0000,
	}, nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/wallet/balance", nil)
	c.Set(middleware.CtxPlayerID, playerID)
	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(100_0000), data["spendable"])
	assert.Equal(t, float64(75_0000), data["withdrawable"])
}

func TestGetBalance_NoAuthContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockLedgerService(ctrl))

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/wallet/balance", nil)
	h.GetBalance(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger)

	playerID := uuid.New()
	mockLedger.EXPECT().CreditDeposit(gomock.Any(), playerID, int64(50_0000)).Return(&domain.LedgerOperation{
		ID:          uuid.New(),
		AccountID:   playerID,
		Kind:        domain.OpDeposit,
		AmountDelta: 50_0000,
		Status:      domain.OpStatusCompleted,
		CreatedAt:   time.Now(),
	}, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/wallet/deposit", dto.DepositRequest{Amount: 50_0000})
	c.Set(middleware.CtxPlayerID, playerID)
	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "DEPOSIT", data["kind"])
	assert.Equal(t, "COMPLETED", data["status"])
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger)

	playerID := uuid.New()
	mockLedger.EXPECT().LockForWithdrawal(gomock.Any(), playerID, int64(1_000_0000)).
		Return(nil, apperror.ErrInsufficientFunds())

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/wallet/withdraw", dto.WithdrawRequest{Amount: 1_000_0000})
	c.Set(middleware.CtxPlayerID, playerID)
	h.Withdraw(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BAL_001", resp["error_code"])
}

func TestHistory_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockLedgerService(ctrl))

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/wallet/history?limit=0", nil)
	c.Set(middleware.CtxPlayerID, uuid.New())
	h.History(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Crash Handler Tests ---

func TestCrashCurrent_NoRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrash := mocks.NewMockCrashService(ctrl)
	h := NewCrashHandler(mockCrash)

	mockCrash.EXPECT().CurrentRound().Return(nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/crash/current", nil)
	h.Current(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrashPlaceBet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrash := mocks.NewMockCrashService(ctrl)
	h := NewCrashHandler(mockCrash)

	playerID := uuid.New()
	roundID := uuid.New()
	mockCrash.EXPECT().PlaceBet(gomock.Any(), playerID, int64(10_0000)).Return(&domain.CrashSnapshot{
		ID:    roundID,
		Phase: domain.CrashBetting,
		Seed:  fair.NewSeedPair("", "", 1).Public(),
	}, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/crash/bets", dto.CrashBetRequest{Wager: 10_0000})
	c.Set(middleware.CtxPlayerID, playerID)
	h.PlaceBet(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, roundID.String(), data["id"])
	seed := data["seed"].(map[string]interface{})
	_, revealed := seed["server_seed"]
	assert.False(t, revealed, "server seed must stay hidden before the crash")
}

func TestCrashCashOut_AlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrash := mocks.NewMockCrashService(ctrl)
	h := NewCrashHandler(mockCrash)

	playerID := uuid.New()
	mockCrash.EXPECT().CashOut(gomock.Any(), playerID).Return(nil, apperror.ErrAlreadySettled())

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/crash/cashout", nil)
	c.Set(middleware.CtxPlayerID, playerID)
	h.CashOut(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCrashRoundResult_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewCrashHandler(mocks.NewMockCrashService(ctrl))

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/crash/rounds/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.RoundResult(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Shootout Handler Tests ---

func TestShootoutCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShootout := mocks.NewMockShootoutService(ctrl)
	h := NewShootoutHandler(mockShootout)

	playerID := uuid.New()
	gameID := uuid.New()
	mockShootout.EXPECT().CreateGame(gomock.Any(), playerID, int64(20_0000), domain.ModePvP).
		Return(&domain.ShootoutSnapshot{
			ID:      gameID,
			Phase:   domain.ShootoutLobby,
			Mode:    domain.ModePvP,
			Wager:   20_0000,
			Creator: playerID,
		}, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/shootout", dto.ShootoutCreateRequest{Wager: 20_0000, Mode: "PVP"})
	c.Set(middleware.CtxPlayerID, playerID)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, gameID.String(), data["id"])
	assert.Equal(t, "LOBBY", data["phase"])
}

func TestShootoutCreate_InvalidMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewShootoutHandler(mocks.NewMockShootoutService(ctrl))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/shootout", dto.ShootoutCreateRequest{Wager: 20_0000, Mode: "COINFLIP"})
	c.Set(middleware.CtxPlayerID, uuid.New())
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShootoutCancel_NotCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShootout := mocks.NewMockShootoutService(ctrl)
	h := NewShootoutHandler(mockShootout)

	playerID := uuid.New()
	gameID := uuid.New()
	mockShootout.EXPECT().CancelGame(gomock.Any(), gameID, playerID).Return(apperror.ErrNotCreator())

	w, c := jsonRequest(t, http.MethodDelete, "/api/v1/shootout/"+gameID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: gameID.String()}}
	c.Set(middleware.CtxPlayerID, playerID)
	h.Cancel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestShootoutLobby(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShootout := mocks.NewMockShootoutService(ctrl)
	h := NewShootoutHandler(mockShootout)

	mockShootout.EXPECT().Lobby().Return([]domain.ShootoutSnapshot{
		{ID: uuid.New(), Phase: domain.ShootoutLobby, Mode: domain.ModePvP, Wager: 5_0000},
	})

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/shootout", nil)
	h.Lobby(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	games := resp["data"].([]interface{})
	assert.Len(t, games, 1)
}

// --- Fair Handler Tests ---

func TestFairVerify_ValidRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFairHandler(mocks.NewMockSeedStore(ctrl))

	sp := fair.NewSeedPair("", "player-seed", 7)
	cp := fair.CrashPointFrom(fair.Combine(sp), 0.03)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/fair/verify", dto.VerifyRequest{
		ServerSeed:     sp.ServerSeed,
		ServerSeedHash: sp.ServerSeedHash,
		ClientSeed:     sp.ClientSeed,
		Nonce:          sp.Nonce,
		CrashPoint:     cp.String(),
		HouseEdge:      0.03,
	})
	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["valid"])
}

func TestFairVerify_HashMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFairHandler(mocks.NewMockSeedStore(ctrl))

	sp := fair.NewSeedPair("", "player-seed", 7)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/fair/verify", dto.VerifyRequest{
		ServerSeed:     sp.ServerSeed,
		ServerSeedHash: fair.HashServerSeed("some other seed"),
		ClientSeed:     sp.ClientSeed,
		Nonce:          sp.Nonce,
		CrashPoint:     "1.50",
		HouseEdge:      0.03,
	})
	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, false, data["valid"])
	assert.Contains(t, data["reason"], "hash")
}

func TestFairVerify_WrongCrashPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFairHandler(mocks.NewMockSeedStore(ctrl))

	sp := fair.NewSeedPair("", "player-seed", 7)
	cp := fair.CrashPointFrom(fair.Combine(sp), 0.03)
	wrong := cp.Add(decimal.NewFromInt(5))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/fair/verify", dto.VerifyRequest{
		ServerSeed:     sp.ServerSeed,
		ServerSeedHash: sp.ServerSeedHash,
		ClientSeed:     sp.ClientSeed,
		Nonce:          sp.Nonce,
		CrashPoint:     wrong.String(),
		HouseEdge:      0.03,
	})
	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, false, data["valid"])
	assert.NotEmpty(t, data["recomputed_crash_point"])
}

func TestSetClientSeed_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSeeds := mocks.NewMockSeedStore(ctrl)
	h := NewFairHandler(mockSeeds)

	playerID := uuid.New()
	mockSeeds.EXPECT().SetClientSeed(gomock.Any(), playerID, "my-lucky-seed").Return(nil)

	w, c := jsonRequest(t, http.MethodPut, "/api/v1/fair/seed", dto.ClientSeedRequest{Seed: "my-lucky-seed"})
	c.Set(middleware.CtxPlayerID, playerID)
	h.SetClientSeed(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Router Tests ---

func setupTestRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *mocks.MockTokenService) {
	t.Helper()
	mockTokens := mocks.NewMockTokenService(ctrl)
	return SetupRouter(RouterDeps{
		LedgerSvc:   mocks.NewMockLedgerService(ctrl),
		CrashSvc:    mocks.NewMockCrashService(ctrl),
		ShootoutSvc: mocks.NewMockShootoutService(ctrl),
		TokenSvc:    mockTokens,
		SeedStore:   mocks.NewMockSeedStore(ctrl),
	}), mockTokens
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := setupTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet/deposit", bytes.NewReader([]byte(`{"amount":100}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_BearerTokenFlowsToHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockTokens := mocks.NewMockTokenService(ctrl)
	router := SetupRouter(RouterDeps{
		LedgerSvc:   mockLedger,
		CrashSvc:    mocks.NewMockCrashService(ctrl),
		ShootoutSvc: mocks.NewMockShootoutService(ctrl),
		TokenSvc:    mockTokens,
		SeedStore:   mocks.NewMockSeedStore(ctrl),
	})

	playerID := uuid.New()
	mockTokens.EXPECT().Validate("good-token").Return(&ports.TokenClaims{PlayerID: playerID}, nil)
	mockLedger.EXPECT().GetAccount(gomock.Any(), playerID).Return(&domain.Account{
		ID:        playerID,
		Address:   "addr-9",
		Spendable: 1_0000,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, playerID.String(), data["player_id"])
}

func TestRouter_HealthEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := setupTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
