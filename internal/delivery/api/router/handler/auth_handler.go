// Package handler contains the HTTP handlers of the auth service.
package handler

import (
	"crypto/rsa"
	"log/slog"
	"net/http"

	"authflow/config"
	"authflow/internal/delivery/response"
	"authflow/internal/infra/auth"
	"authflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	LoginUC    usecase.LoginUsecase
	SigningKey *rsa.PrivateKey
	Config     *config.Config
	Logger     *slog.Logger
}

// AuthHandler serves the public login API.
type AuthHandler struct {
	loginUC   usecase.LoginUsecase
	publicKey PublicKeyResponse
	logger    *slog.Logger
}

// PublicKeyResponse lets resource servers verify issued tokens.
type PublicKeyResponse struct {
	Algorithm string `json:"algorithm"`
	Issuer    string `json:"issuer"`
	PublicKey string `json:"publicKey"`
}

// NewAuthHandler is the constructor for AuthHandler. The public key PEM is
// encoded once here.
func NewAuthHandler(params AuthHandlerParams) (*AuthHandler, error) {
	pemBytes, err := auth.EncodePublicKeyPEM(&params.SigningKey.PublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "encode public key")
	}

	return &AuthHandler{
		loginUC: params.LoginUC,
		publicKey: PublicKeyResponse{
			Algorithm: auth.SigningAlgorithm,
			Issuer:    params.Config.Token.Issuer,
			PublicKey: string(pemBytes),
		},
		logger: params.Logger,
	}, nil
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.loginUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// PublicKey handles GET /auth/public-key.
func (h *AuthHandler) PublicKey(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")

	return response.Success(c, http.StatusOK, h.publicKey)
}
