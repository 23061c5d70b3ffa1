package judgeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitlab.com/fcv-2025.net/client/internal/config"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
)

var _ secondary.JudgeGateway = (*Client)(nil)

// Client implements the JudgeGateway interface over the judge's JSON/HTTP API
type Client struct {
	baseUrl    string
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new judge API client
func NewClient(cfg *config.JudgeConfig, logger primary.Logger) *Client {
	return &Client{
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// RunCode compiles and executes the payload against the sample input
func (c *Client) RunCode(ctx context.Context, payload *domain.SubmissionPayload, credential string) (string, error) {
	return c.postAction(ctx, "/api/compiler/runCode", payload, credential)
}

// AddSubmission submits the payload for grading
func (c *Client) AddSubmission(ctx context.Context, payload *domain.SubmissionPayload, credential string) (string, error) {
	return c.postAction(ctx, "/api/compiler/addSubmission", payload, credential)
}

func (c *Client) postAction(ctx context.Context, path string, payload *domain.SubmissionPayload, credential string) (string, error) {
	var resp actionResponse
	if err := c.do(ctx, http.MethodPost, path, credential, payload, &resp); err != nil {
		return "", err
	}
	if resp.Flag != nil && !*resp.Flag {
		return "", fmt.Errorf("%w: %s", errs.ApplicationFailure, resp.Message)
	}
	return resp.Message, nil
}

// GetProblem retrieves a problem by ID
func (c *Client) GetProblem(ctx context.Context, credential, problemID string) (*domain.Problem, error) {
	var resp getProblemResponse
	path := fmt.Sprintf("/api/problem/getProblem/%s", problemID)
	if err := c.do(ctx, http.MethodGet, path, credential, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Problem == nil {
		return nil, fmt.Errorf("%w: problem %s not found", errs.ApplicationFailure, problemID)
	}

	tags, err := normalizeArray[string](resp.Problem.Tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ApplicationFailure, err)
	}
	inputs, err := normalizeArray[string](resp.Problem.InputsJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ApplicationFailure, err)
	}
	outputs, err := normalizeArray[string](resp.Problem.OutputsJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ApplicationFailure, err)
	}

	return &domain.Problem{
		ProblemID:      resp.Problem.ProblemID,
		Name:           resp.Problem.Name,
		Lab:            resp.Problem.Lab,
		Tags:           tags,
		Content:        resp.Problem.Content,
		Points:         resp.Problem.Points,
		InputsJSON:     inputs,
		OutputsJSON:    outputs,
		AcceptanceRate: resp.Problem.AcceptanceRate,
		CreatedAt:      resp.Problem.CreatedAt,
	}, nil
}

// GetUser retrieves the judge-side user record for the given identity
func (c *Client) GetUser(ctx context.Context, credential, username, email string) (*domain.User, error) {
	var resp getUserResponse
	req := getUserRequest{Username: username, Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/user/getUser", credential, req, &resp); err != nil {
		return nil, err
	}
	if resp.Flag != nil && !*resp.Flag {
		return nil, fmt.Errorf("%w: %s", errs.ApplicationFailure, resp.Message)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: empty user in response", errs.ApplicationFailure)
	}
	return resp.User, nil
}

// GetSubmissions retrieves the submission records for a problem. The response
// sequence may be a bare array or a $values envelope.
func (c *Client) GetSubmissions(ctx context.Context, credential, problemID string) ([]*domain.SubmissionRecord, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/submission/getSubmissions/%s", problemID)
	if err := c.do(ctx, http.MethodGet, path, credential, nil, &raw); err != nil {
		return nil, err
	}

	dtos, err := normalizeArray[submissionDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ApplicationFailure, err)
	}

	records := make([]*domain.SubmissionRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, dto.toDomain())
	}
	return records, nil
}

// do issues one request. Connection-level failures wrap TransportFailure,
// non-success statuses and undecodable bodies wrap ApplicationFailure; the
// underlying cause is kept in the chain for diagnostics.
func (c *Client) do(ctx context.Context, method, path, credential string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Judge request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", errs.TransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Judge reported failure", "path", path, "status", resp.StatusCode)
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", errs.ApplicationFailure, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response body: %v", errs.ApplicationFailure, err)
	}
	return nil
}
