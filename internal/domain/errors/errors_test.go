package errors

import (
	"net/http"
	"testing"

	"authflow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "plain error", err: errors.New("boom"), want: KindUnknown},
		{name: "predefined", err: ErrInvalidCredential, want: KindInvalidCredential},
		{name: "wrapped", err: errors.Wrap(ErrCredentialNotFound, "lookup"), want: KindCredentialNotFound},
		{name: "database", err: NewDatabaseExecuteError(errors.New("reset"), ""), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrUpstreamUnavailable.WithDetails("status 502")

	assert.ErrorIs(t, errors.Wrap(detailed, "call"), ErrUpstreamUnavailable)
	assert.Equal(t, "Credential service unavailable, please retry later: status 502", detailed.Error())
	assert.Empty(t, ErrUpstreamUnavailable.Details())
}

func TestFromCode(t *testing.T) {
	got, ok := FromCode(CodeInvalidCredential)
	require.True(t, ok)
	assert.Same(t, ErrInvalidCredential, got)
	assert.Equal(t, http.StatusUnauthorized, got.HTTPCode())

	_, ok = FromCode("SOMETHING_ELSE")
	assert.False(t, ok)
}

func TestAuthenticationFailedHidesCause(t *testing.T) {
	assert.NotEqual(t, ErrCredentialNotFound.ErrorCode(), ErrAuthenticationFailed.ErrorCode())
	assert.NotContains(t, ErrAuthenticationFailed.Message(), "not found")
	assert.NotContains(t, ErrAuthenticationFailed.Message(), "Incorrect")
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	root := errors.New("connection reset")
	err := NewDatabaseExecuteError(root, "find")

	assert.ErrorIs(t, err, root)
	assert.Contains(t, err.Error(), "database execution failed")
}
