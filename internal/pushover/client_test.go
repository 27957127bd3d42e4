package pushover

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, got *Message) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if got != nil {
			data, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.NoError(t, json.Unmarshal(data, got))
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Send_Success(t *testing.T) {
	t.Parallel()

	var got Message
	srv := newTestServer(t, http.StatusOK, `{"status":1,"request":"req-1"}`, &got)
	client := NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	msg := Message{Token: "abc123", User: "xyz789", Message: "myproj: hi", Title: "Claude Code - Stop"}
	resp, err := client.Send(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.Request)
	assert.Equal(t, msg, got)
}

func TestClient_Send_Failures(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		status  int
		body    string
		wantErr string
		check   func(t *testing.T, err error)
	}{
		"non-2xx": {
			status:  http.StatusBadRequest,
			body:    `{"status":0,"errors":["application token is invalid"]}`,
			wantErr: `HTTP error! status: 400, body: {"status":0,"errors":["application token is invalid"]}`,
			check: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.True(t, errors.As(err, &httpErr))
				assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
			},
		},
		"server error": {
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: "HTTP error! status: 500, body: oops",
		},
		"api status zero with errors": {
			status:  http.StatusOK,
			body:    `{"status":0,"request":"r","errors":["user identifier is invalid","message cannot be blank"]}`,
			wantErr: "Pushover API error: user identifier is invalid, message cannot be blank",
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "r", apiErr.Request)
			},
		},
		"api status other than one without errors": {
			status:  http.StatusOK,
			body:    `{"status":2,"request":"r"}`,
			wantErr: "Pushover API error: Unknown error",
		},
		"undecodable body": {
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: "decoding response",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, tc.status, tc.body, nil)
			client := NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

			_, err := client.Send(context.Background(), Message{Token: "a", User: "b", Message: "c", Title: "d"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			if tc.check != nil {
				tc.check(t, err)
			}
		})
	}
}

func TestClient_Send_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, http.StatusOK, `{"status":1}`, nil)
	client := NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Send(ctx, Message{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient()
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Same(t, http.DefaultClient, c.httpClient)
}
