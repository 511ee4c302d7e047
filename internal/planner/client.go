// Package planner is the HTTP client for the upstream planning service: the
// external collaborator that produces plan bundles, narrative summaries, and
// conversational replies. Everything it returns is treated as authoritative
// and mapped into domain types; this package never invents data.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/itinerolabs/itinero/internal/domain"
)

// PlanResult is the outcome of a successful plan fetch.
type PlanResult struct {
	SessionID        string
	Bundle           domain.Bundle
	NarrativeSummary string
}

// ChatResult is the outcome of a chat turn. Bundle is non-nil only when the
// turn triggered upstream re-computation; its presence is the sole signal
// that the session's bundle must be replaced.
type ChatResult struct {
	SessionID string
	Reply     string
	Bundle    *domain.Bundle
}

// Client provides access to the planning service.
type Client interface {
	// FetchPlan requests a full plan for the given trip.
	FetchPlan(ctx context.Context, req domain.PlanRequest) (*PlanResult, error)

	// SendChatTurn sends a conversational message for an existing session.
	SendChatTurn(ctx context.Context, sessionID, message string) (*ChatResult, error)

	// EndSession tells the service to discard its session state.
	EndSession(ctx context.Context, sessionID string) error

	// Available checks whether the planning service is reachable.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the planning service over HTTP.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) FetchPlan(ctx context.Context, req domain.PlanRequest) (*PlanResult, error) {
	var dto travelPlanDTO
	err := c.call(ctx, "fetch_plan", "", c.cfg.PlanTimeoutMs, http.MethodPost, "/api/plan", toPlanRequestDTO(req), &dto)
	if err != nil {
		return nil, err
	}
	return &PlanResult{
		SessionID:        dto.SessionID,
		Bundle:           bundleFromDTO(&dto),
		NarrativeSummary: dto.LLMSummary,
	}, nil
}

func (c *httpClient) SendChatTurn(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	var dto chatResponseDTO
	body := chatRequestDTO{SessionID: sessionID, Message: message}
	err := c.call(ctx, "chat_turn", sessionID, c.cfg.ChatTimeoutMs, http.MethodPost, "/api/chat", body, &dto)
	if err != nil {
		return nil, err
	}
	result := &ChatResult{SessionID: dto.SessionID, Reply: dto.Reply}
	if dto.UpdatedPlan != nil {
		bundle := bundleFromDTO(dto.UpdatedPlan)
		result.Bundle = &bundle
	}
	return result, nil
}

func (c *httpClient) EndSession(ctx context.Context, sessionID string) error {
	path := "/api/session/" + url.PathEscape(sessionID)
	return c.call(ctx, "end_session", sessionID, c.cfg.ChatTimeoutMs, http.MethodDelete, path, nil, nil)
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// call runs one request with retries and reports the outcome to the observer.
// out may be nil for calls whose body is only an acknowledgment.
func (c *httpClient) call(ctx context.Context, op, sessionID string, timeoutMs int, method, path string, in, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		err := c.doRequest(ctx, method, path, in, out)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Op: op, SessionID: sessionID,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or undecodable bodies.
		if ctx.Err() != nil || errors.Is(err, ErrBadResponse) {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Op: op, SessionID: sessionID,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(classify(ctx, lastErr)),
	})

	return classify(ctx, lastErr)
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("planning service returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: %v", ErrBadResponse, err)
		}
	}
	return nil
}

func classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.Is(err, ErrBadResponse):
		return err
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
