package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
)

const (
	defaultBaseURL             = "https://viacep.com.br/ws"
	cepDigits                  = 8
	requestBodyReadLimit int64 = 1024
)

// Client wraps the ViaCEP postal-code lookup API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured ViaCEP base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds a ViaCEP client. The API is public and unauthenticated.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client
}

// Result carries the address fields ViaCEP resolves for a CEP.
type Result struct {
	CEP      string
	Street   string
	District string
	City     string
	State    string
}

// Lookup resolves a cleaned (digits-only) CEP. A CEP with the wrong
// digit count never reaches the wire; a well-formed CEP the service
// does not know maps to NOT_FOUND.
func (c *Client) Lookup(ctx context.Context, cep string) (*Result, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "viacep client not configured")
	}
	if len(cep) != cepDigits || strings.Trim(cep, "0123456789") != "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cep must be 8 digits")
	}

	url := fmt.Sprintf("%s/%s/json/", strings.TrimRight(c.baseURL, "/"), cep)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build cep request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute cep request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, requestBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "cep request failed")
	}

	var apiResp struct {
		// ViaCEP signals an unknown CEP with 200 + {"erro": true}; some
		// deployments send the flag as a string.
		Erro       json.RawMessage `json:"erro"`
		CEP        string          `json:"cep"`
		Logradouro string          `json:"logradouro"`
		Bairro     string          `json:"bairro"`
		Localidade string          `json:"localidade"`
		UF         string          `json:"uf"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cep response")
	}

	if len(apiResp.Erro) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cep not found")
	}

	return &Result{
		CEP:      apiResp.CEP,
		Street:   apiResp.Logradouro,
		District: apiResp.Bairro,
		City:     apiResp.Localidade,
		State:    apiResp.UF,
	}, nil
}
