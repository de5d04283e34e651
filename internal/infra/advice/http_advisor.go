// Package advice implements the symptom-advice collaborator over HTTP.
// The remote service accepts a free-text symptom description and responds
// with unstructured advice text; nothing here writes store state.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"afyalink/config"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTimeout = 30 * time.Second

type httpAdvisor struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// unavailableAdvisor is used when no endpoint is configured; every call
// reports the advisor as unavailable instead of failing at startup.
type unavailableAdvisor struct {
	logger *slog.Logger
}

func (a *unavailableAdvisor) Suggest(ctx context.Context, symptoms string) (string, error) {
	a.logger.Debug("[Advisor] Not configured, rejecting request")

	return "", domainerrors.ErrAdvisorUnavailable
}

// Params holds dependencies for the advisor, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an Advisor backed by the configured HTTP endpoint, or an
// always-unavailable stand-in when the endpoint is absent.
func New(params Params) service.Advisor {
	cfg := params.Config.Advisor
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Info("Advisor not configured, advice requests will be rejected")

		return &unavailableAdvisor{logger: params.Logger}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	params.Logger.Info("Using HTTP advisor",
		slog.String("endpoint", cfg.Endpoint),
	)

	return &httpAdvisor{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}
}

type adviceRequest struct {
	Symptoms string `json:"symptoms"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// Suggest posts the symptom description and returns the advice text.
func (a *httpAdvisor) Suggest(ctx context.Context, symptoms string) (string, error) {
	body, err := json.Marshal(adviceRequest{Symptoms: symptoms})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("[Advisor] Request failed", slog.Any("error", err))

		return "", domainerrors.ErrAdvisorUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Warn("[Advisor] Non-success status",
			slog.Int("status", resp.StatusCode),
		)

		return "", domainerrors.ErrAdvisorUnavailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	var parsed adviceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode advisor response")
	}
	if parsed.Advice == "" {
		return "", domainerrors.ErrAdvisorUnavailable
	}

	return parsed.Advice, nil
}
