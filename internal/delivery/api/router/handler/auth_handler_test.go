package handler

import (
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"authflow/config"
	"authflow/internal/delivery/httpserver"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/infra/auth"
	mockUC "authflow/internal/mocks/usecase"
	"authflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSigningKey = sync.OnceValue(func() *rsa.PrivateKey {
	key, err := auth.GenerateSigningKey(auth.MinSigningKeyBits)
	if err != nil {
		panic(err)
	}

	return key
})

type authHandlerFixtures struct {
	echo    *echo.Echo
	loginUC *mockUC.MockLoginUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	cfg := &config.Config{Token: &config.TokenConfig{Issuer: "Biso24"}}
	cfg.HTTP.MaxRequestBodySize = "16KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loginUC := mockUC.NewMockLoginUsecase(t)

	h, err := NewAuthHandler(AuthHandlerParams{
		LoginUC:    loginUC,
		SigningKey: testSigningKey(),
		Config:     cfg,
		Logger:     logger,
	})
	require.NoError(t, err)

	e := httpserver.NewEcho(cfg, logger)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/public-key", h.PublicKey)

	return authHandlerFixtures{echo: e, loginUC: loginUC}
}

func (fx authHandlerFixtures) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

type loginEnvelope struct {
	Data *usecase.LoginOutput    `json:"data"`
	Meta *domainerrors.MetaInfo  `json:"meta"`
	Err  *domainerrors.ErrorInfo `json:"error"`
}

func TestAuthHandler_Login_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.loginUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.io", Password: "pw1"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh"}, nil)

	rec := fx.post(`{"email":"a@x.io","password":"pw1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[loginEnvelope](t, rec)
	require.NotNil(t, body.Data)
	assert.Equal(t, "access", body.Data.AccessToken)
	assert.Equal(t, "refresh", body.Data.RefreshToken)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestAuthHandler_Login_MissingField(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := fx.post(`{"email":"a@x.io"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[loginEnvelope](t, rec)
	assert.Equal(t, domainerrors.CodeValidationFailed, body.Err.Code)
	assert.Nil(t, body.Data)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := fx.post(`{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody[loginEnvelope](t, rec).Err.Code)
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "authentication failure",
			err:        errors.Wrap(domainerrors.ErrAuthenticationFailed, "verify credential: Email not found"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.CodeAuthenticationFailed,
		},
		{
			name:       "upstream unavailable",
			err:        errors.Wrap(domainerrors.ErrUpstreamUnavailable, "verify credential: timeout"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   domainerrors.CodeUpstreamUnavailable,
		},
		{
			name:       "signing failure",
			err:        errors.Wrap(domainerrors.ErrSigningFailed, "sign access token"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.CodeSigningFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthHandler(t)
			fx.loginUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := fx.post(`{"email":"a@x.io","password":"pw1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody[loginEnvelope](t, rec)
			assert.Nil(t, body.Data)
			assert.Equal(t, tt.wantCode, body.Err.Code)
			assert.Nil(t, body.Err.Details)
			assert.NotContains(t, rec.Body.String(), "not found")
		})
	}
}

func TestAuthHandler_PublicKey(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/public-key", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[struct {
		Data PublicKeyResponse `json:"data"`
	}](t, rec)
	assert.Equal(t, "RS256", body.Data.Algorithm)
	assert.Equal(t, "Biso24", body.Data.Issuer)
	assert.True(t, strings.HasPrefix(body.Data.PublicKey, "-----BEGIN PUBLIC KEY-----"))
	assert.NotContains(t, body.Data.PublicKey, "PRIVATE")
}
