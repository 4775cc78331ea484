/*
Copyright 2025 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dataproc implements the client for the Dataproc Serverless
// batches REST API: batch submission and batch state lookup.
package dataproc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/params"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/util/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"k8s.io/klog/v2"
)

const (
	// DefaultEndpoint is the base URL of the Dataproc v1 REST API.
	DefaultEndpoint = "https://dataproc.googleapis.com/v1"

	// BatchIDPrefix marks ids minted by this executor. Responses starting
	// with it are batch ids; everything else is a state string.
	BatchIDPrefix = "aef-"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	defaultMaxIdleConns    = 100
	defaultIdleConnTimeout = 90 * time.Second
)

// Config holds configuration for the batches client.
type Config struct {
	Endpoint        string        // Base URL of the Dataproc API (default: DefaultEndpoint)
	Timeout         time.Duration // Request timeout (default: 0 = none, callers impose their own)
	MaxIdleConns    int           // Maximum idle connections (default: 100)
	IdleConnTimeout time.Duration // Idle connection timeout (default: 90 seconds)
}

type Client struct {
	client *resty.Client
	tokens oauth2.TokenSource
	now    func() time.Time
}

// New creates a batches client. The token source supplies the bearer token
// for every outbound call and is expected to refresh expired tokens itself.
func New(cfg Config, tokens oauth2.TokenSource) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = defaultMaxIdleConns
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = defaultIdleConnTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = cfg.MaxIdleConns
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConns
	transport.IdleConnTimeout = cfg.IdleConnTimeout
	client.SetTransport(transport)

	return &Client{
		client: client,
		tokens: tokens,
		now:    time.Now,
	}
}

// SetClock overrides the clock used for minting batch ids.
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

// DefaultTokenSource builds a token source from Application Default
// Credentials with the cloud-platform scope.
func DefaultTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tokens, err := google.DefaultTokenSource(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to build token source: %w", err)
	}
	return tokens, nil
}

func (c *Client) bearerToken() (string, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	return token.AccessToken, nil
}

// CreateBatch submits a new serverless batch and returns its id. The id is
// the "aef-" prefix plus the submission time in unix seconds, so two
// submissions within the same second collide; the orchestrator never
// submits the same job concurrently.
func (c *Client) CreateBatch(ctx context.Context, p *params.JobDefinitionParams) (string, error) {
	logger := klog.FromContext(ctx)

	token, err := c.bearerToken()
	if err != nil {
		return "", err
	}

	batchID := fmt.Sprintf("%s%d", BatchIDPrefix, c.now().Unix())
	payload := buildPayload(p)

	logger.V(logging.DEBUG).Info("submitting batch",
		"batchID", batchID, "project", p.ProjectID, "region", p.Region)

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("batchId", batchID).
		SetBody(payload).
		Post(fmt.Sprintf("/projects/%s/locations/%s/batches", p.ProjectID, p.Region))
	if err != nil {
		return "", fmt.Errorf("failed to call dataproc batches create: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &SubmissionError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	logger.V(logging.DEBUG).Info("batch submitted", "batchID", batchID, "status", resp.StatusCode())
	return batchID, nil
}

// GetBatchState looks up an existing batch and returns its state verbatim
// (PENDING, RUNNING, SUCCEEDED, FAILED, CANCELLED, ...). The values are
// defined by the platform and passed through untouched.
func (c *Client) GetBatchState(ctx context.Context, batchID string, p *params.JobDefinitionParams) (string, error) {
	logger := klog.FromContext(ctx)

	token, err := c.bearerToken()
	if err != nil {
		return "", err
	}

	logger.V(logging.DEBUG).Info("fetching batch state",
		"batchID", batchID, "project", p.ProjectID, "region", p.Region)

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(fmt.Sprintf("/projects/%s/locations/%s/batches/%s", p.ProjectID, p.Region, batchID))
	if err != nil {
		return "", fmt.Errorf("failed to call dataproc batches get: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var batch struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(resp.Body(), &batch); err != nil {
		return "", fmt.Errorf("failed to decode batch state response: %w", err)
	}
	return batch.State, nil
}
