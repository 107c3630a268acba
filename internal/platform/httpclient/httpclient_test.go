package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, DefaultAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "v", r.Header.Get("X-Extra"))
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		Name string `json:"name"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "v1/echo",
		map[string]string{"X-Extra": "v", "": "ignored"},
		map[string]string{"name": "milo"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "milo", out.Name)
}

func TestDoJSON_Non2xx(t *testing.T) {
	c := NewWithTransport(time.Second, roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTeapot,
			Body:       io.NopCloser(strings.NewReader(" nope ")),
			Header:     http.Header{},
		}, nil
	}))

	err := c.DoJSON(context.Background(), http.MethodGet, "http://upstream/x", nil, nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusTeapot, he.StatusCode)
	assert.Equal(t, "nope", he.Body)
}

func TestDoJSON_RelativeWithoutBase(t *testing.T) {
	err := New(0).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	assert.Error(t, err)
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("not a url", 0)
	assert.Error(t, err)

	c, err := NewWithBaseURL("", 0)
	require.NoError(t, err)
	assert.Empty(t, c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}
