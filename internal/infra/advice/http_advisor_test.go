package advice

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"afyalink/config"
	domainerrors "afyalink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAdvisor(t *testing.T, advisorCfg *config.AdvisorConfig) *httpAdvisor {
	t.Helper()

	advisor := New(Params{
		Config: &config.Config{Advisor: advisorCfg},
		Logger: discardLogger(),
	})

	typed, ok := advisor.(*httpAdvisor)
	require.True(t, ok)

	return typed
}

func TestAdvisor_NotConfigured(t *testing.T) {
	advisor := New(Params{
		Config: &config.Config{},
		Logger: discardLogger(),
	})

	advice, err := advisor.Suggest(context.Background(), "headache and fever")
	assert.ErrorIs(t, err, domainerrors.ErrAdvisorUnavailable)
	assert.Empty(t, advice)
}

func TestAdvisor_Suggest(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"advice":"Rest, hydrate, and see a doctor if the fever persists."}`))
	}))
	defer server.Close()

	advisor := newAdvisor(t, &config.AdvisorConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
		Timeout:  time.Second,
	})

	advice, err := advisor.Suggest(context.Background(), "headache and fever")
	require.NoError(t, err)
	assert.Contains(t, advice, "hydrate")
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestAdvisor_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	advisor := newAdvisor(t, &config.AdvisorConfig{Endpoint: server.URL})

	_, err := advisor.Suggest(context.Background(), "headache")
	assert.ErrorIs(t, err, domainerrors.ErrAdvisorUnavailable)
}

func TestAdvisor_EmptyAdviceIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	advisor := newAdvisor(t, &config.AdvisorConfig{Endpoint: server.URL})

	_, err := advisor.Suggest(context.Background(), "headache")
	assert.ErrorIs(t, err, domainerrors.ErrAdvisorUnavailable)
}

func TestAdvisor_ConnectionRefused(t *testing.T) {
	advisor := newAdvisor(t, &config.AdvisorConfig{Endpoint: "http://127.0.0.1:1/advice"})

	_, err := advisor.Suggest(context.Background(), "headache")
	assert.ErrorIs(t, err, domainerrors.ErrAdvisorUnavailable)
}
