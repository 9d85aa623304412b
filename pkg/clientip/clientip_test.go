package clientip_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/majority/pkg/clientip"
	"github.com/dmitrymomot/majority/pkg/logger"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "192.168.1.10:52314",
			want:       "192.168.1.10",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "10.0.0.1",
			want:       "10.0.0.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv4 mapped ipv6",
			remoteAddr: "[::ffff:192.0.2.7]:80",
			want:       "192.0.2.7",
		},
		{
			name:       "invalid remote addr",
			remoteAddr: "not-an-ip",
			want:       "",
		},
		{
			name:       "headers ignored without trust",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{clientip.HeaderForwardedFor: "203.0.113.5"},
			want:       "10.0.0.1",
		},
		{
			name:       "cloudflare header first",
			remoteAddr: "10.0.0.1:1234",
			headers: map[string]string{
				clientip.HeaderCFConnectingIP: "198.51.100.1",
				clientip.HeaderForwardedFor:   "203.0.113.5",
				clientip.HeaderRealIP:         "203.0.113.9",
			},
			trustProxy: true,
			want:       "198.51.100.1",
		},
		{
			name:       "first valid forwarded entry",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{clientip.HeaderForwardedFor: "garbage, 203.0.113.5, 10.0.0.2"},
			trustProxy: true,
			want:       "203.0.113.5",
		},
		{
			name:       "real ip header",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{clientip.HeaderRealIP: " 203.0.113.9 "},
			trustProxy: true,
			want:       "203.0.113.9",
		},
		{
			name:       "invalid headers fall back to remote addr",
			remoteAddr: "10.0.0.1:1234",
			headers: map[string]string{
				clientip.HeaderCFConnectingIP: "999.1.1.1",
				clientip.HeaderForwardedFor:   "unknown",
				clientip.HeaderRealIP:         "",
			},
			trustProxy: true,
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(req, tt.trustProxy))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set(clientip.HeaderForwardedFor, "203.0.113.5")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.5", got)
}

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, clientip.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(clientip.LoggerExtractor()),
	)

	log.InfoContext(context.Background(), "no address")
	require.NotContains(t, buf.String(), "client_ip")

	log.InfoContext(clientip.WithContext(context.Background(), "203.0.113.5"), "with address")
	assert.Contains(t, buf.String(), `"client_ip":"203.0.113.5"`)
}
