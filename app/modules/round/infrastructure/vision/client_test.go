package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadScorecard(t *testing.T) {
	var got readRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(readResponse{Text: `{"holes":[]}`})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
	text, err := c.ReadScorecard(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, `{"holes":[]}`, text)
	assert.Equal(t, "image/png", got.MediaType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), got.Data)
	assert.Equal(t, Prompt, got.Prompt)
}

func TestReadScorecardNotConfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	_, err := c.ReadScorecard(context.Background(), nil, "image/jpeg")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestReadScorecardOpensBreaker(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, MaxFailures: 2, OpenTimeout: time.Minute}, nil)
	for i := 0; i < 2; i++ {
		_, err := c.ReadScorecard(context.Background(), []byte("x"), "image/jpeg")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}

	_, err := c.ReadScorecard(context.Background(), []byte("x"), "image/jpeg")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMediaTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", MediaTypeFor("card.PNG"))
	assert.Equal(t, "image/webp", MediaTypeFor("card.webp"))
	assert.Equal(t, "image/gif", MediaTypeFor("card.gif"))
	assert.Equal(t, "image/jpeg", MediaTypeFor("card.jpg"))
	assert.Equal(t, "image/jpeg", MediaTypeFor("card.heic"))
	assert.Empty(t, MediaTypeFor("card.csv"))
	assert.Empty(t, MediaTypeFor("card"))
}
