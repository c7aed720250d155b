package brasilapi

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
	defaultBaseURL             = "https://brasilapi.com.br/api/cnpj/v1"
	cnpjDigits                 = 14
	requestBodyReadLimit int64 = 1024
)

// Client wraps the BrasilAPI company-registry lookup.
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

// WithBaseURL overrides the configured BrasilAPI base URL.
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

// NewClient builds a BrasilAPI client. Public, unauthenticated API.
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

// CompanyProfile carries the registry fields used for form autofill.
type CompanyProfile struct {
	CNPJ          string
	CorporateName string
	TradeName     string
	Email         string
	Phone         string
	ZipCode       string
	Street        string
	Number        string
	Complement    string
	District      string
	City          string
	State         string
}

// Lookup resolves a cleaned (digits-only) CNPJ to the registered
// company profile. 404 maps to NOT_FOUND.
func (c *Client) Lookup(ctx context.Context, cnpj string) (*CompanyProfile, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "brasilapi client not configured")
	}
	if len(cnpj) != cnpjDigits || strings.Trim(cnpj, "0123456789") != "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cnpj must be 14 digits")
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), cnpj)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build cnpj request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute cnpj request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cnpj not found")
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, requestBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "cnpj request failed")
	}

	var apiResp struct {
		CNPJ         string `json:"cnpj"`
		RazaoSocial  string `json:"razao_social"`
		NomeFantasia string `json:"nome_fantasia"`
		Email        string `json:"email"`
		DDDTelefone1 string `json:"ddd_telefone_1"`
		CEP          string `json:"cep"`
		Logradouro   string `json:"logradouro"`
		Numero       string `json:"numero"`
		Complemento  string `json:"complemento"`
		Bairro       string `json:"bairro"`
		Municipio    string `json:"municipio"`
		UF           string `json:"uf"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cnpj response")
	}

	if apiResp.CNPJ == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cnpj not found")
	}

	return &CompanyProfile{
		CNPJ:          apiResp.CNPJ,
		CorporateName: apiResp.RazaoSocial,
		TradeName:     apiResp.NomeFantasia,
		Email:         apiResp.Email,
		Phone:         apiResp.DDDTelefone1,
		ZipCode:       apiResp.CEP,
		Street:        apiResp.Logradouro,
		Number:        apiResp.Numero,
		Complement:    apiResp.Complemento,
		District:      apiResp.Bairro,
		City:          apiResp.Municipio,
		State:         apiResp.UF,
	}, nil
}
