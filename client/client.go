// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
	"github.com/raywall/glue-catalog-toolkit/protocol"
)

const (
	signingName = "glue"

	// HeaderInvocationID carrega o correlation id da chamada, como o SDK faz.
	HeaderInvocationID = "Amz-Sdk-Invocation-Id"
)

// ErrNoRegion indica que nem o endpoint nem a região foram configurados.
var ErrNoRegion = errors.New("client: region or endpoint is required")

// HTTPClient permite substituir o transporte (Mocking, httptest).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implementa API sobre HTTP.
type Client struct {
	cfg        aws.Config
	endpoint   string
	catalogID  string
	httpClient HTTPClient
	signer     *v4.Signer
	retryer    aws.Retryer
	metrics    metrics.Provider
	logger     zerolog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

var _ API = (*Client)(nil)

// Option configura o Client.
type Option func(*Client)

// WithEndpoint força o endpoint (emulador, VPC endpoint).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = strings.TrimRight(endpoint, "/") }
}

// WithCatalogID preenche o CatalogId dos requests que não o informam.
func WithCatalogID(id string) Option {
	return func(c *Client) { c.catalogID = id }
}

func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithMetrics(p metrics.Provider) Option {
	return func(c *Client) { c.metrics = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetryer troca a política de retentativa (default: retry.NewStandard).
func WithRetryer(r aws.Retryer) Option {
	return func(c *Client) { c.retryer = r }
}

// New cria um Client a partir do aws.Config.
func New(cfg aws.Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: cfg.HTTPClient,
		signer:     v4.NewSigner(),
		retryer:    retry.NewStandard(),
		metrics:    &metrics.NoopProvider{},
		logger:     zerolog.Nop(),
		sleep:      sleepContext,
	}
	if cfg.BaseEndpoint != nil {
		c.endpoint = strings.TrimRight(*cfg.BaseEndpoint, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	c.logger = c.logger.With().Str("component", "glue_client").Logger()
	return c
}

// Endpoint devolve o endpoint efetivo das chamadas.
func (c *Client) Endpoint() (string, error) {
	if c.endpoint != "" {
		return c.endpoint, nil
	}
	if c.cfg.Region == "" {
		return "", ErrNoRegion
	}
	return fmt.Sprintf("https://glue.%s.amazonaws.com", c.cfg.Region), nil
}

// invoke executa uma operação: valida e codifica o request, assina, envia,
// retenta erros transitórios e decodifica a resposta em out.
func (c *Client) invoke(ctx context.Context, op string, in, out any) error {
	corrID := uuid.NewString()
	logger := c.logger.With().Str("operation", op).Str("correlation_id", corrID).Logger()
	tags := []string{"operation:" + op}
	start := time.Now()

	body, err := protocol.Marshal(in)
	if err != nil {
		logger.Warn().Err(err).Msg("request rejeitado antes do envio")
		return fmt.Errorf("%s: %w", op, err)
	}

	endpoint, err := c.Endpoint()
	if err != nil {
		return err
	}

	var respBody []byte
	for attempt := 1; ; attempt++ {
		respBody, err = c.send(ctx, endpoint, op, corrID, body)
		if err == nil {
			break
		}

		if attempt >= c.retryer.MaxAttempts() || !c.retryer.IsErrorRetryable(err) {
			_ = c.metrics.Count(metrics.RequestCount, 1, append(tags, "outcome:error"))
			logger.Error().Err(err).Int("attempt", attempt).Msg("chamada ao glue falhou")
			return err
		}

		delay, delayErr := c.retryer.RetryDelay(attempt, err)
		if delayErr != nil {
			return err
		}
		logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("retentando chamada ao glue")
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}

	latency := time.Since(start)
	_ = c.metrics.Histogram(metrics.RequestLatency, float64(latency.Milliseconds()), tags)

	if err := protocol.Unmarshal(respBody, out); err != nil {
		kind := "malformed"
		if protocol.IsSchemaSkew(err) {
			kind = "schema_skew"
		}
		_ = c.metrics.Count(metrics.DecodeErrorCount, 1, append(tags, "kind:"+kind))
		_ = c.metrics.Count(metrics.RequestCount, 1, append(tags, "outcome:decode_error"))
		logger.Error().Err(err).Str("kind", kind).Msg("falha ao decodificar resposta")
		return fmt.Errorf("%s: %w", op, err)
	}

	_ = c.metrics.Count(metrics.RequestCount, 1, append(tags, "outcome:ok"))
	logger.Debug().Dur("latency", latency).Msg("chamada ao glue concluída")
	return nil
}

// send faz uma tentativa. Respostas com status >= 300 viram ServiceError.
func (c *Client) send(ctx context.Context, endpoint, op, corrID string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", protocol.ContentType)
	req.Header.Set("X-Amz-Target", protocol.Target(op))
	req.Header.Set(HeaderInvocationID, corrID)

	if err := c.sign(ctx, req, body); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, protocol.DecodeServiceError(resp.StatusCode, resp.Header, respBody)
	}
	return respBody, nil
}

func (c *Client) sign(ctx context.Context, req *http.Request, body []byte) error {
	if c.cfg.Credentials == nil {
		return nil
	}
	creds, err := c.cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("client: retrieve credentials: %w", err)
	}
	sum := sha256.Sum256(body)
	region := c.cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	if err := c.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(sum[:]), signingName, region, time.Now()); err != nil {
		return fmt.Errorf("client: sign request: %w", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
