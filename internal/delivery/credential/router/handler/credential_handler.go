// Package handler contains the HTTP handlers of the credential service.
package handler

import (
	"log/slog"
	"net/http"

	"authflow/internal/delivery/response"
	"authflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type CredentialHandlerParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
	Logger       *slog.Logger
}

// CredentialHandler exposes credential verification to other services.
type CredentialHandler struct {
	credentialUC usecase.CredentialUsecase
	logger       *slog.Logger
}

func NewCredentialHandler(params CredentialHandlerParams) *CredentialHandler {
	return &CredentialHandler{
		credentialUC: params.CredentialUC,
		logger:       params.Logger,
	}
}

// Verify handles POST /users/verify. The reply keeps not-found and
// wrong-password apart; the auth service folds them into one failure.
func (h *CredentialHandler) Verify(c echo.Context) error {
	var input usecase.VerifyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid verify input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity, err := h.credentialUC.Verify(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity)
}
