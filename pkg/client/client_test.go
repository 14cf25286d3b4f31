package client

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/woojoong88/atomix/pkg/client/v1"
)

func TestBearerTokenInjection(t *testing.T) {
	token := "test-jwt-token"
	option := bearerToken(token)

	mockClient := &v1.Client{
		RequestEditors: []v1.RequestEditorFn{},
	}

	err := option(mockClient)
	require.NoError(t, err)
	require.Len(t, mockClient.RequestEditors, 1)

	req, _ := http.NewRequest("GET", "http://example.com", nil)
	require.NoError(t, mockClient.RequestEditors[0](context.Background(), req))

	assert.Equal(t, "Bearer "+token, req.Header.Get("Authorization"))
}

func TestBasicAuthInjection(t *testing.T) {
	mockClient := &v1.Client{}
	require.NoError(t, basicAuth("user", "pass")(mockClient))
	require.Len(t, mockClient.RequestEditors, 1)

	req, _ := http.NewRequest("GET", "http://example.com", nil)
	require.NoError(t, mockClient.RequestEditors[0](context.Background(), req))

	username, password, ok := req.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "user", username)
	assert.Equal(t, "pass", password)
}

func TestSetBearerTokenWithSetup(t *testing.T) {
	c := New().(*client)
	c.SetBearerToken("my-jwt-token")
	c.SetTimeout(5 * time.Second)

	require.NoError(t, c.Setup("http://localhost:5678"))
	assert.NotNil(t, c.V1())
	assert.Equal(t, "my-jwt-token", c.token)
	assert.Equal(t, 5*time.Second, c.timeout)
}

func TestV1BeforeSetupPanics(t *testing.T) {
	c := New()
	assert.PanicsWithValue(t, ErrNotSetup, func() { c.V1() })
}

func TestSetupSendsCredentials(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	for _, tc := range []struct {
		name  string
		setup func(Client)
		want  string
	}{
		{
			name:  "none",
			setup: func(Client) {},
			want:  "",
		},
		{
			name:  "basic",
			setup: func(c Client) { c.SetBasicAuth("foo", "bar") },
			want:  "Basic Zm9vOmJhcg==",
		},
		{
			name:  "bearer",
			setup: func(c Client) { c.SetBearerToken("abc") },
			want:  "Bearer abc",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got = ""

			c := New()
			tc.setup(c)
			require.NoError(t, c.Setup(srv.URL))

			res, err := c.V1().CompleteTaskWithResponse(context.Background(), "orders", "t1")
			require.NoError(t, err)
			assert.Equal(t, 200, res.StatusCode())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequestLogging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["orders"]`))
	}))
	defer srv.Close()

	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	c := New()
	require.NoError(t, c.Setup(srv.URL))

	_, err := c.V1().ListQueuesWithResponse(WithoutLogging(context.Background()))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = c.V1().ListQueuesWithResponse(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "http request")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "request-id=")
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}

	for _, tc := range []struct {
		name    string
		token   string
		expired bool
	}{
		{
			name:    "opaque token",
			token:   "not-a-jwt",
			expired: false,
		},
		{
			name:    "no exp claim",
			token:   sign(jwt.MapClaims{"sub": "foo"}),
			expired: false,
		},
		{
			name:    "valid",
			token:   sign(jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}),
			expired: false,
		},
		{
			name:    "expired",
			token:   sign(jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}),
			expired: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, warnIfExpired(tc.token, now))
		})
	}
}
