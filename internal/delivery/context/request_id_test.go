package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uuid", id: uuid.NewString(), want: true},
		{name: "trace token", id: "trace-123", want: true},
		{name: "max length", id: strings.Repeat("a", MaxRequestIDLength), want: true},
		{name: "empty", id: "", want: false},
		{name: "too long", id: strings.Repeat("a", MaxRequestIDLength+1), want: false},
		{name: "space", id: "a b", want: false},
		{name: "newline", id: "a\nb", want: false},
		{name: "non ascii", id: "ид", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRequestID(tt.id))
		})
	}
}

func TestResolveRequestID(t *testing.T) {
	assert.Equal(t, "trace-1", ResolveRequestID("trace-1"))

	replaced := ResolveRequestID("bad\tid")
	_, err := uuid.Parse(replaced)
	assert.NoError(t, err)
}

func TestGetRequestID_StableWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-ctx", GetRequestID(c))
}

func TestForwardRequestID(t *testing.T) {
	t.Run("copies id", func(t *testing.T) {
		header := http.Header{}
		ForwardRequestID(WithRequestID(context.Background(), "trace-9"), header)

		assert.Equal(t, "trace-9", header.Get(HeaderXRequestID))
	})

	t.Run("skips missing id", func(t *testing.T) {
		header := http.Header{}
		ForwardRequestID(context.Background(), header)

		assert.Empty(t, header.Values(HeaderXRequestID))
	})

	t.Run("skips malformed id", func(t *testing.T) {
		header := http.Header{}
		ForwardRequestID(WithRequestID(context.Background(), "a\r\nb"), header)

		assert.Empty(t, header.Values(HeaderXRequestID))
	})
}
