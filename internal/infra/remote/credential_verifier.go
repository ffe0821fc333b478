// Package remote holds clients for the services the auth service depends on.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authflow/config"
	deliverycontext "authflow/internal/delivery/context"
	"authflow/internal/domain/entity"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/domain/service"
	"authflow/internal/errors"
	"authflow/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// VerifyPath is the credential service route the client posts to.
const VerifyPath = "/users/verify"

const maxResponseBodySize = 1 << 20

// credentialVerifierClient implements service.CredentialVerifier by calling
// the credential service over HTTP. Each call makes exactly one request.
type credentialVerifierClient struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// CredentialVerifierParams holds dependencies for the verifier client, injected by Fx.
type CredentialVerifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialVerifier builds the network CredentialVerifier from config.
func NewCredentialVerifier(params CredentialVerifierParams) (service.CredentialVerifier, error) {
	if params.Config.Verifier == nil || strings.TrimSpace(params.Config.Verifier.Endpoint) == "" {
		return nil, errors.New("verifier.endpoint is required")
	}

	return NewCredentialVerifierClient(params.Config.Verifier.Endpoint, params.Config.Verifier.Timeout, &http.Client{}, params.Logger), nil
}

// NewCredentialVerifierClient returns a client for the credential service at
// endpoint. A non-positive timeout leaves the deadline to the caller's context.
func NewCredentialVerifierClient(endpoint string, timeout time.Duration, httpClient *http.Client, logger *slog.Logger) service.CredentialVerifier {
	return &credentialVerifierClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *credentialVerifierClient) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *credentialVerifierClient) Verify(ctx context.Context, email, password string) (*entity.Identity, error) {
	body, err := json.Marshal(usecase.VerifyInput{Email: email, Password: password})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+VerifyPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "build verify request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	deliverycontext.ForwardRequestID(ctx, req.Header)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx).Warn("Credential service request failed",
			slog.String("endpoint", c.endpoint),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "post %s: %v", VerifyPath, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "read verify response: %v", err)
	}

	var envelope domainerrors.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(
			domainerrors.ErrUpstreamUnavailable.WithDetails(http.StatusText(resp.StatusCode)),
			"decode verify response",
		)
	}

	if resp.StatusCode == http.StatusOK {
		return decodeIdentity(envelope.Data)
	}

	return nil, remoteError(resp.StatusCode, envelope.Error)
}

func decodeIdentity(data json.RawMessage) (*entity.Identity, error) {
	var identity entity.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "decode identity: %v", err)
	}

	if identity.ID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "verify response carries no user id")
	}

	return &identity, nil
}

// remoteError maps a non-200 reply back to a domain error. Only the outcomes a
// caller can act on survive; everything else means the upstream is unusable.
func remoteError(status int, info *domainerrors.ErrorInfo) error {
	if info != nil && status < http.StatusInternalServerError {
		if known, ok := domainerrors.FromCode(info.Code); ok {
			switch known.Kind() {
			case domainerrors.KindValidation, domainerrors.KindCredentialNotFound, domainerrors.KindInvalidCredential:
				return errors.Wrapf(known, "credential service replied %d", status)
			}
		}
	}

	details := http.StatusText(status)
	if info != nil && info.Code != "" {
		details = info.Code
	}

	return errors.Wrapf(domainerrors.ErrUpstreamUnavailable.WithDetails(details), "credential service replied %d", status)
}
