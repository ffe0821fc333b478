package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "authflow/internal/delivery/context"
	"authflow/internal/domain/entity"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/domain/service"
	"authflow/internal/errors"
	"authflow/internal/usecase"

	"go.uber.org/fx"
)

// loginService implements usecase.LoginUsecase. It holds no per-request
// state, so concurrent logins share nothing but the verifier and issuer.
type loginService struct {
	verifier service.CredentialVerifier
	issuer   service.TokenIssuer
	logger   *slog.Logger
}

// LoginServiceParams holds dependencies for LoginService, injected by Fx.
type LoginServiceParams struct {
	fx.In

	Verifier service.CredentialVerifier
	Issuer   service.TokenIssuer
	Logger   *slog.Logger
}

// NewLoginService is the constructor for loginService.
func NewLoginService(params LoginServiceParams) usecase.LoginUsecase {
	return &loginService{
		verifier: params.Verifier,
		issuer:   params.Issuer,
		logger:   params.Logger,
	}
}

func (srv *loginService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credential and only then issues a token pair. Verifier
// failures are never retried.
func (srv *loginService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	attempt := &loginAttempt{log: srv.log(ctx), state: entity.LoginStateAwaitingVerification}

	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		attempt.advance(entity.LoginStateRejected)

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	identity, err := srv.verifier.Verify(ctx, input.Email, input.Password)
	if err != nil {
		return nil, attempt.fail(ctx, err)
	}
	attempt.advance(entity.LoginStateVerified)

	pair, err := srv.issuer.Issue(identity.ID)
	if err != nil {
		attempt.log.Error("Token issuance failed", slog.Any("user_id", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue tokens")
	}
	attempt.advance(entity.LoginStateTokensIssued)

	attempt.log.Debug("User logged in successfully", slog.Any("user_id", identity.ID))

	return &usecase.LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// loginAttempt tracks one pass through the login state machine.
type loginAttempt struct {
	log   *slog.Logger
	state entity.LoginState
}

func (a *loginAttempt) advance(next entity.LoginState) {
	if !a.state.CanTransition(next) {
		a.log.Error("Illegal login state transition",
			slog.String("from", a.state.String()),
			slog.String("to", next.String()),
		)
	}

	a.state = next
	a.log.Debug("Login state changed", slog.String("state", next.String()))
}

// fail moves the attempt to a terminal state and converts err into the
// client-facing failure. Not-found and wrong-password become the same error.
func (a *loginAttempt) fail(ctx context.Context, err error) error {
	switch domainerrors.KindOf(err) {
	case domainerrors.KindCredentialNotFound, domainerrors.KindInvalidCredential, domainerrors.KindAuthenticationFailed:
		a.advance(entity.LoginStateRejected)
		a.log.Warn("Login rejected", slog.Any("error", err))

		return errors.Wrapf(domainerrors.ErrAuthenticationFailed, "verify credential: %v", err)
	case domainerrors.KindValidation:
		a.advance(entity.LoginStateRejected)

		return errors.Wrapf(domainerrors.ErrValidationFailed, "verify credential: %v", err)
	default:
		a.advance(entity.LoginStateUpstreamFailed)
		a.log.Error("Credential verifier unavailable",
			slog.Any("error", err),
			slog.Bool("context_done", ctx.Err() != nil),
		)

		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "verify credential: %v", err)
	}
}
