// Package lookup resolves Brazilian public registries used by the
// back-office forms: postal codes via ViaCEP and company tax IDs via
// BrasilAPI. Successful responses are cached when redis is wired.
package lookup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecosistens/nexusshop-backend/pkg/brasilapi"
	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
	"github.com/ecosistens/nexusshop-backend/pkg/redis"
	"github.com/ecosistens/nexusshop-backend/pkg/types"
	"github.com/ecosistens/nexusshop-backend/pkg/viacep"
)

const (
	scopeCEP  = "cep"
	scopeCNPJ = "cnpj"
)

type cepResolver interface {
	Lookup(ctx context.Context, cep string) (*viacep.Result, error)
}

type cnpjResolver interface {
	Lookup(ctx context.Context, cnpj string) (*brasilapi.CompanyProfile, error)
}

type Service interface {
	CEP(ctx context.Context, raw string) (*viacep.Result, error)
	CNPJ(ctx context.Context, raw string) (*brasilapi.CompanyProfile, error)
}

type service struct {
	cep   cepResolver
	cnpj  cnpjResolver
	cache *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewService wires the registry clients. cache may be nil; lookups
// then always hit the upstream.
func NewService(cep cepResolver, cnpj cnpjResolver, cache *redis.Client, ttl time.Duration, log *logger.Logger) Service {
	return &service{cep: cep, cnpj: cnpj, cache: cache, ttl: ttl, log: log}
}

// CEP resolves a postal code. Non-digits are stripped before the
// clients validate length, so masked input ("01310-100") works.
func (s *service) CEP(ctx context.Context, raw string) (*viacep.Result, error) {
	if s == nil || s.cep == nil {
		return nil, errors.New(errors.CodeDependency, "cep client unavailable")
	}
	cleaned := types.DigitsOnly(raw)

	if cached, ok := cacheGet[viacep.Result](ctx, s, scopeCEP, cleaned); ok {
		return cached, nil
	}

	result, err := s.cep.Lookup(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, scopeCEP, cleaned, result)
	return result, nil
}

// CNPJ resolves a company tax ID to its registered profile.
func (s *service) CNPJ(ctx context.Context, raw string) (*brasilapi.CompanyProfile, error) {
	if s == nil || s.cnpj == nil {
		return nil, errors.New(errors.CodeDependency, "cnpj client unavailable")
	}
	cleaned := types.DigitsOnly(raw)

	if cached, ok := cacheGet[brasilapi.CompanyProfile](ctx, s, scopeCNPJ, cleaned); ok {
		return cached, nil
	}

	profile, err := s.cnpj.Lookup(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, scopeCNPJ, cleaned, profile)
	return profile, nil
}

// cacheGet returns a decoded cached value. Cache failures are treated
// as misses; the upstream lookup still runs.
func cacheGet[T any](ctx context.Context, s *service, scope, id string) (*T, bool) {
	if s.cache == nil || id == "" {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, s.cache.LookupKey(scope, id))
	if err != nil {
		if s.log != nil && err != redis.ErrCacheMiss {
			s.log.Warn(s.log.WithField(ctx, "scope", scope), "lookup cache read failed: "+err.Error())
		}
		return nil, false
	}
	var value T
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, false
	}
	return &value, true
}

func (s *service) cachePut(ctx context.Context, scope, id string, value any) {
	if s.cache == nil || id == "" {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.LookupKey(scope, id), string(payload), s.ttl); err != nil && s.log != nil {
		s.log.Warn(s.log.WithField(ctx, "scope", scope), "lookup cache write failed: "+err.Error())
	}
}
