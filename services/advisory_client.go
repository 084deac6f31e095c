package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"league-ranking-system/models"
)

// RuleAdvisory proposes a resolution text for two conflicting rule payloads.
// Implementations must honor the context deadline; the caller treats any
// error as "advisory unavailable" and falls back.
type RuleAdvisory interface {
	ProposeResolution(ctx context.Context, conflict *models.RuleConflict) (string, error)
}

// HTTPRuleAdvisory calls the external rule advisory service over HTTP.
// Requests run behind a circuit breaker so a flapping advisory does not tie
// up every resolution call waiting on timeouts.
type HTTPRuleAdvisory struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *logrus.Entry
}

func NewHTTPRuleAdvisory(log *logrus.Logger) *HTTPRuleAdvisory {
	timeout := 10 * time.Second
	if raw := os.Getenv("ADVISORY_TIMEOUT_SECONDS"); raw != "" {
		if parsed, err := time.ParseDuration(raw + "s"); err == nil {
			timeout = parsed
		}
	}

	entry := log.WithField("component", "rule_advisory")
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "rule-advisory",
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			entry.WithFields(logrus.Fields{
				"from": from.String(),
				"to":   to.String(),
			}).Warn("advisory circuit state changed")
		},
	})

	return &HTTPRuleAdvisory{
		baseURL: os.Getenv("ADVISORY_SERVICE_URL"),
		apiKey:  os.Getenv("ADVISORY_API_KEY"),
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		log:     entry,
	}
}

type advisoryRequest struct {
	Sport    string                 `json:"sport"`
	RuleType string                 `json:"rule_type"`
	RuleA    map[string]interface{} `json:"rule_a"`
	RuleB    map[string]interface{} `json:"rule_b"`
}

type advisoryResponse struct {
	Resolution string `json:"resolution"`
}

func (a *HTTPRuleAdvisory) ProposeResolution(ctx context.Context, conflict *models.RuleConflict) (string, error) {
	if a.baseURL == "" {
		return "", ErrAdvisoryUnavailable
	}

	payload, err := json.Marshal(advisoryRequest{
		Sport:    conflict.Sport,
		RuleType: conflict.RuleType,
		RuleA:    conflict.RuleAPayload,
		RuleB:    conflict.RuleBPayload,
	})
	if err != nil {
		return "", fmt.Errorf("marshal advisory request: %w", err)
	}

	result, err := a.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			a.baseURL+"/v1/resolutions", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if a.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+a.apiKey)
		}

		resp, err := a.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("advisory returned status %d", resp.StatusCode)
		}

		var body advisoryResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode advisory response: %w", err)
		}
		return body.Resolution, nil
	})
	if err != nil {
		a.log.WithError(err).Warn("advisory call failed")
		return "", fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}
	return result.(string), nil
}
