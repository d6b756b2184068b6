package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu        sync.Mutex
	urls      []string
	successes []int
	failures  []int
}

func (l *recordingLogger) LogRequest(_, url string, _ map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.urls = append(l.urls, url)
}

func (l *recordingLogger) LogResponseSuccess(_, _ string, _ map[string]string, status int, _ string, _ int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.successes = append(l.successes, status)
}

func (l *recordingLogger) LogResponseError(_, _ string, _ map[string]string, status int, _ string, _ int64, _ error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = append(l.failures, status)
}

type payload struct {
	Name string `json:"name"`
}

func get(ctx context.Context, client *Client, path string, successResp, errorResp any) (any, any, int, error) {
	return client.Request().
		WithContext(ctx).
		WithPath(path).
		WithSuccessResp(successResp).
		WithErrorResp(errorResp).
		Execute()
}

func TestRequest_EscapesQueryAndRedactsLog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Rajahmundry,IN", r.URL.Query().Get("q"))
		assert.Equal(t, "s3cr&t", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Rajahmundry"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/", ClientOptions{Logger: logger, RedactedQueryParams: []string{"appid"}})

	resp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("data/2.5/weather").
		WithQueryParams(map[string]string{"q": "Rajahmundry,IN", "appid": "s3cr&t"}).
		WithSuccessResp(&payload{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rajahmundry", resp.(*payload).Name)

	require.Len(t, logger.urls, 1)
	assert.NotContains(t, logger.urls[0], "s3cr")
	assert.Contains(t, logger.urls[0], "appid=%2A%2A%2A")
	assert.True(t, strings.HasPrefix(logger.urls[0], server.URL+"/data/2.5/weather?"))
	assert.Equal(t, []int{http.StatusOK}, logger.successes)
}

func TestRequest_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"name":"invalid key"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{Logger: logger})

	resp, errResp, status, err := get(context.Background(), client, "/", &payload{}, &payload{})

	assert.Nil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid key", errResp.(*payload).Name)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, []int{http.StatusUnauthorized}, logger.failures)
}

func TestRequest_NoResponse(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(baseURL, ClientOptions{Logger: logger, ConnectionTimeout: time.Second})
	_, _, status, err := get(context.Background(), client, "/", &payload{}, nil)

	assert.Error(t, err)
	assert.Zero(t, status)
	assert.Equal(t, []int{0}, logger.failures)
}

func TestRequest_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, status, err := get(ctx, NewHttpClient(server.URL, ClientOptions{}), "/", nil, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, status)
}

func TestRequest_DecodesPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	var body string
	resp, _, _, err := get(context.Background(), NewHttpClient(server.URL, ClientOptions{}), "/", &body, nil)

	require.NoError(t, err)
	assert.Equal(t, "pong", *resp.(*string))
}

func TestRequest_UndecodableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, _, status, err := get(context.Background(), NewHttpClient(server.URL, ClientOptions{}), "/", &payload{}, nil)

	assert.Error(t, err)
	assert.Equal(t, http.StatusOK, status)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestRequest_Validation(t *testing.T) {
	_, _, _, err := (&Request{requestMethod: GET, requestPath: "/"}).Execute()
	assert.EqualError(t, err, "client is required")

	_, _, _, err = NewHttpClient("http://localhost", ClientOptions{}).Request().WithPath("").Execute()
	assert.EqualError(t, err, "path is required")
}
