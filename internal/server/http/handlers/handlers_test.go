package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
	"github.com/mkaryagin/heartbeat/internal/server/http/middleware"
	testhelpers "github.com/mkaryagin/heartbeat/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, route string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asMember(c *gin.Context) {
	c.Set(middleware.SessionContextKey, &session.Session{UserID: 1, Username: "pair"})
	c.Set(middleware.TokenContextKey, "session-token")
}

func asAdmin(c *gin.Context) {
	c.Set(middleware.SessionContextKey, &session.Session{UserID: 99, Username: "admin", IsAdmin: true})
	c.Set(middleware.TokenContextKey, "admin-token")
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Username: "pair", Password: "secret1", Name1: "Ann", Name2: "Bob"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.FacadeStub{}).Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", resp.Header().Get("Authorization"))
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "heartbeat_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie named heartbeat_token")
	}

	var decoded dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Couple == nil || decoded.Couple.Names != [2]string{"Ann", "Bob"} {
		t.Fatalf("unexpected couple payload: %+v", decoded.Couple)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.FacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "short password", body: []byte(`{"username":"pair","password":"x","name1":"A","name2":"B"}`), status: http.StatusBadRequest},
		{name: "validation", body: []byte(`{"username":"pair","password":"secret1","name1":"A","name2":"B"}`), facade: testhelpers.FacadeStub{RegisterFn: func(context.Context, string, string, string, string) (*model.Couple, string, error) {
			return nil, "", domainErrors.ErrValidation
		}}, status: http.StatusUnprocessableEntity},
		{name: "taken", body: []byte(`{"username":"pair","password":"secret1","name1":"A","name2":"B"}`), facade: testhelpers.FacadeStub{RegisterFn: func(context.Context, string, string, string, string) (*model.Couple, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"username":"pair","password":"secret1","name1":"A","name2":"B"}`), facade: testhelpers.FacadeStub{RegisterFn: func(context.Context, string, string, string, string) (*model.Couple, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Username: "pair", Password: "secret1"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.FacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Username != "pair" || decoded.Couple == nil {
		t.Fatalf("unexpected session payload: %+v", decoded)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.FacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"username":"a","password":"b"}`), facade: testhelpers.FacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"username":"a","password":"b"}`), facade: testhelpers.FacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	var invalidated string
	facade := testhelpers.FacadeStub{LogoutFn: func(token string) { invalidated = token }}
	resp := performRequest(t, http.MethodPost, "/logout", "/logout", NewAuthHandler(facade).Logout, asMember, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if invalidated != "session-token" {
		t.Fatalf("expected session token to be invalidated, got %q", invalidated)
	}
}

func TestAuthHandlerMeAdminHasNoCouple(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/me", "/me", NewAuthHandler(testhelpers.FacadeStub{}).Me, asAdmin, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.IsAdmin || decoded.Couple != nil {
		t.Fatalf("unexpected admin payload: %+v", decoded)
	}
}

func TestPointsHandlerAdjust(t *testing.T) {
	facade := testhelpers.FacadeStub{AdjustFn: func(ctx context.Context, coupleID string, delta int64, reason string) (int64, error) {
		if coupleID != "cpl-1" || delta != -30 || reason != "spent on ice cream" {
			t.Fatalf("unexpected adjust call: %s %d %q", coupleID, delta, reason)
		}
		return 90, nil
	}}
	body := []byte(`{"delta":-30,"reason":"spent on ice cream"}`)
	resp := performRequest(t, http.MethodPost, "/adjust", "/adjust", NewPointsHandler(facade).Adjust, asMember, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.BalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Points != 90 {
		t.Fatalf("expected balance 90, got %d", decoded.Points)
	}
}

func TestPointsHandlerAdjustFailures(t *testing.T) {
	validBody := []byte(`{"delta":-30,"reason":"date night"}`)
	tests := []struct {
		name   string
		facade testhelpers.FacadeStub
		setup  func(*gin.Context)
		body   []byte
		status int
	}{
		{name: "no session", setup: nil, body: validBody, status: http.StatusUnauthorized},
		{name: "admin has no couple", setup: asAdmin, body: validBody, status: http.StatusBadRequest},
		{name: "bad json", setup: asMember, body: []byte("oops"), status: http.StatusBadRequest},
		{name: "validation", setup: asMember, body: validBody, facade: testhelpers.FacadeStub{AdjustFn: func(context.Context, string, int64, string) (int64, error) {
			return 0, domainErrors.ErrValidation
		}}, status: http.StatusUnprocessableEntity},
		{name: "insufficient", setup: asMember, body: validBody, facade: testhelpers.FacadeStub{AdjustFn: func(context.Context, string, int64, string) (int64, error) {
			return 0, domainErrors.ErrInsufficientPoints
		}}, status: http.StatusPaymentRequired},
		{name: "internal", setup: asMember, body: validBody, facade: testhelpers.FacadeStub{AdjustFn: func(context.Context, string, int64, string) (int64, error) {
			return 0, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/adjust", "/adjust", NewPointsHandler(tt.facade).Adjust, tt.setup, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestPointsHandlerHistoryPassesLimit(t *testing.T) {
	facade := testhelpers.FacadeStub{HistoryFn: func(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error) {
		if limit != 5 {
			t.Fatalf("expected limit 5, got %d", limit)
		}
		return []model.LedgerEntry{{Delta: 10, Reason: "laundry", Balance: 10}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/history?limit=5", "/history", NewPointsHandler(facade).History, asMember, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.LedgerEntryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Reason != "laundry" {
		t.Fatalf("unexpected history payload: %+v", decoded)
	}
}

func TestRewardHandlerCreate(t *testing.T) {
	body := []byte(`{"name":"movie night","price":50,"stock":3,"description":"popcorn included"}`)
	resp := performRequest(t, http.MethodPost, "/rewards", "/rewards", NewRewardHandler(testhelpers.FacadeStub{}).Create, asMember, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.RewardResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Name != "movie night" || decoded.Stock != 3 {
		t.Fatalf("unexpected reward payload: %+v", decoded)
	}
}

func TestRewardHandlerCreateMissingStock(t *testing.T) {
	body := []byte(`{"name":"movie night","price":50}`)
	resp := performRequest(t, http.MethodPost, "/rewards", "/rewards", NewRewardHandler(testhelpers.FacadeStub{}).Create, asMember, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRewardHandlerUpdateFailures(t *testing.T) {
	body := []byte(`{"price":60}`)
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "foreign reward", err: domainErrors.ErrForbidden, status: http.StatusForbidden},
		{name: "validation", err: domainErrors.ErrValidation, status: http.StatusUnprocessableEntity},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.FacadeStub{UpdateRewardFn: func(context.Context, string, string, model.RewardPatch) (*model.Reward, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPatch, "/rewards/rwd-1", "/rewards/:id", NewRewardHandler(facade).Update, asMember, body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestRewardHandlerDelete(t *testing.T) {
	var deleted string
	facade := testhelpers.FacadeStub{DeleteRewardFn: func(ctx context.Context, coupleID, rewardID string) error {
		deleted = rewardID
		return nil
	}}
	resp := performRequest(t, http.MethodDelete, "/rewards/rwd-7", "/rewards/:id", NewRewardHandler(facade).Delete, asMember, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if deleted != "rwd-7" {
		t.Fatalf("expected reward rwd-7 to be deleted, got %q", deleted)
	}
}

func TestRedemptionHandlerRedeem(t *testing.T) {
	body := []byte(`{"reward_id":"rwd-1"}`)
	resp := performRequest(t, http.MethodPost, "/redemptions", "/redemptions", NewRedemptionHandler(testhelpers.FacadeStub{}).Redeem, asMember, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.RedeemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.RedemptionID != "rdm-1" || decoded.NewBalance != 70 {
		t.Fatalf("unexpected redeem payload: %+v", decoded)
	}
}

func TestRedemptionHandlerRedeemFailures(t *testing.T) {
	body := []byte(`{"reward_id":"rwd-1"}`)
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unknown reward", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "out of stock", err: domainErrors.ErrOutOfStock, status: http.StatusConflict},
		{name: "insufficient", err: domainErrors.ErrInsufficientPoints, status: http.StatusPaymentRequired},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.FacadeStub{RedeemFn: func(context.Context, string, string) (*model.Redemption, int64, error) {
				return nil, 0, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/redemptions", "/redemptions", NewRedemptionHandler(facade).Redeem, asMember, body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCoupleHandlerByIDForeignCouple(t *testing.T) {
	facade := testhelpers.FacadeStub{CoupleFn: func(ctx context.Context, coupleID string) (*model.Couple, error) {
		return &model.Couple{ID: coupleID, UserID: 2}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/couples/cpl-2", "/couples/:id", NewCoupleHandler(facade).ByID, asMember, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestCoupleHandlerByIDAdminAccess(t *testing.T) {
	facade := testhelpers.FacadeStub{CoupleFn: func(ctx context.Context, coupleID string) (*model.Couple, error) {
		return &model.Couple{ID: coupleID, UserID: 2, Name1: "Ann", Name2: "Bob"}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/couples/cpl-2", "/couples/:id", NewCoupleHandler(facade).ByID, asAdmin, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerStats(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/stats", "/stats", NewAdminHandler(testhelpers.FacadeStub{}).Stats, asAdmin, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.StatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.CoupleCount != 1 || decoded.TotalPoints != 120 {
		t.Fatalf("unexpected stats payload: %+v", decoded)
	}
}

func TestAdminHandlerRedemptionsIncludesCouple(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/redemptions", "/redemptions", NewAdminHandler(testhelpers.FacadeStub{}).Redemptions, asAdmin, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.RedemptionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].CoupleID != "cpl-1" {
		t.Fatalf("unexpected redemptions payload: %+v", decoded)
	}
}

func TestAuthHandlerRegisterForwardsCredentials(t *testing.T) {
	username := testhelpers.RandomASCIIString(3, 16)
	password := testhelpers.RandomASCIIString(6, 24)
	name1 := testhelpers.RandomASCIIString(1, 12)
	name2 := testhelpers.RandomASCIIString(1, 12)

	var gotUsername, gotPassword, gotName1, gotName2 string
	facade := testhelpers.FacadeStub{RegisterFn: func(_ context.Context, u, p, n1, n2 string) (*model.Couple, string, error) {
		gotUsername, gotPassword, gotName1, gotName2 = u, p, n1, n2
		couple := testhelpers.FixtureCouple()
		couple.Name1, couple.Name2 = n1, n2
		return couple, "session-token", nil
	}}

	body, _ := json.Marshal(dto.RegisterRequest{Username: username, Password: password, Name1: name1, Name2: name2})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(facade).Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if gotUsername != username || gotPassword != password || gotName1 != name1 || gotName2 != name2 {
		t.Fatalf("credentials were not forwarded intact: %q %q %q %q", gotUsername, gotPassword, gotName1, gotName2)
	}
}

func TestRewardHandlerBase(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/rewards/base", "/rewards/base", NewRewardHandler(testhelpers.FacadeStub{}).Base, asMember, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.BaseRewardResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "bouquet of flowers" || decoded[0].Price != 30 {
		t.Fatalf("unexpected base catalog payload: %+v", decoded)
	}
}

func TestRewardHandlerBaseFailure(t *testing.T) {
	facade := testhelpers.FacadeStub{BaseRewardsFn: func(context.Context) ([]model.BaseReward, error) {
		return nil, errors.New("boom")
	}}
	resp := performRequest(t, http.MethodGet, "/rewards/base", "/rewards/base", NewRewardHandler(facade).Base, asMember, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestHealthHandlerStatus(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(testhelpers.PingerStub{}).Status, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	down := NewHealthHandler(testhelpers.PingerStub{Err: errors.New("no pool")})
	resp = performRequest(t, http.MethodGet, "/health", "/health", down.Status, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}
