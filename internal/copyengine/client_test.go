package copyengine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBrief() Brief {
	return Brief{
		ClientName: "Acme Corp",
		Industry:   "SaaS",
		Audience:   "Small Business Owners",
		Website:    "https://acme.com",
		Strategy:   "Focus on automation pain points",
	}
}

func TestVariation_Compose(t *testing.T) {
	v := Variation{HookType: "Curiosity", Subject: "S", Body: "B", PS: "P"}
	require.Equal(t, "Subject: S\n\nB\n\n– Your Name\nP", v.Compose())
}

func TestVariation_ComposeAs(t *testing.T) {
	v := Variation{Subject: "Quick one", Body: "Hi there,\n\nA thought.", PS: "P.S. No pressure."}

	assert.Equal(t, "Subject: Quick one\n\nHi there,\n\nA thought.\n\n– Dana\nP.S. No pressure.", v.ComposeAs("Dana"))
	assert.Equal(t, v.Compose(), v.ComposeAs(""), "empty sender falls back to default")
}

func TestNewHTTPClient(t *testing.T) {
	c, err := NewHTTPClient(" http://localhost:5001/api/ ", WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001/api", c.Endpoint())
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)

	_, err = NewHTTPClient("   ")
	require.Error(t, err)
}

func TestHTTPClient_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		var got Brief
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, testBrief(), got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"variations":[
			{"id":1,"hookType":"Shot in the Dark","subject":"Bit of a long shot","body":"Hi","ps":"P.S. one"},
			{"id":2,"hookType":"Anti-Pitch","subject":"Not a pitch","body":"Hello","ps":"P.S. two"}
		]}`))
	}))
	defer server.Close()

	c, err := NewHTTPClient(server.URL+"/api", WithHTTPClient(server.Client()))
	require.NoError(t, err)

	variations, err := c.Generate(context.Background(), "req-1", testBrief())
	require.NoError(t, err)
	require.Len(t, variations, 2)
	assert.Equal(t, "Shot in the Dark", variations[0].HookType)
	assert.Equal(t, "Not a pitch", variations[1].Subject)
	assert.Equal(t, 2, variations[1].ID)
}

func TestHTTPClient_Generate_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"variations":[]}`))
	}))
	defer server.Close()

	c, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	variations, err := c.Generate(context.Background(), "", testBrief())
	require.NoError(t, err)
	assert.Empty(t, variations)
}

func TestHTTPClient_Generate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "bad request with service message",
			status:  http.StatusBadRequest,
			body:    `{"error":"Missing required fields: website"}`,
			wantIs:  ErrStatus,
			wantMsg: "Missing required fields: website",
		},
		{
			name:    "server error plain text",
			status:  http.StatusInternalServerError,
			body:    "boom",
			wantIs:  ErrStatus,
			wantMsg: "boom",
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"variations": [`,
			wantIs: ErrMalformed,
		},
		{
			name:   "missing variations key",
			status: http.StatusOK,
			body:   `{"result": []}`,
			wantIs: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewHTTPClient(server.URL)
			require.NoError(t, err)

			variations, err := c.Generate(context.Background(), "", testBrief())
			require.Error(t, err)
			assert.Nil(t, variations)
			assert.True(t, errors.Is(err, tt.wantIs), "error %v should match %v", err, tt.wantIs)
			if tt.wantMsg != "" {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, tt.status, statusErr.Code)
				assert.Equal(t, tt.wantMsg, statusErr.Message)
			}
		})
	}
}

func TestHTTPClient_Generate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewHTTPClient(url)
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "", testBrief())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "send request"), "got %v", err)
}

func TestHTTPClient_Generate_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Generate(ctx, "", testBrief())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestHTTPClient_Health(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "degraded", status: http.StatusOK, body: `{"status":"degraded"}`, wantErr: true},
		{name: "not json", status: http.StatusOK, body: `ok`, wantErr: true},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewHTTPClient(server.URL)
			require.NoError(t, err)

			err = c.Health(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewRequestID_Unique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
