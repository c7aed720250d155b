package lookup

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecosistens/nexusshop-backend/pkg/brasilapi"
	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/redis"
	"github.com/ecosistens/nexusshop-backend/pkg/viacep"
)

type stubCEP struct {
	calls  int
	lastID string
	result *viacep.Result
	err    error
}

func (s *stubCEP) Lookup(_ context.Context, cep string) (*viacep.Result, error) {
	s.calls++
	s.lastID = cep
	return s.result, s.err
}

type stubCNPJ struct {
	calls  int
	lastID string
	result *brasilapi.CompanyProfile
	err    error
}

func (s *stubCNPJ) Lookup(_ context.Context, cnpj string) (*brasilapi.CompanyProfile, error) {
	s.calls++
	s.lastID = cnpj
	return s.result, s.err
}

type fakeStore struct {
	values map[string]string
}

func (f *fakeStore) Ping(ctx context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", nil)
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value.(string)
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Get(ctx context.Context, key string) *goredis.StringCmd {
	val, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(val, nil)
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	for _, key := range keys {
		delete(f.values, key)
	}
	return goredis.NewIntResult(int64(len(keys)), nil)
}

func TestCEPStripsMaskBeforeLookup(t *testing.T) {
	cep := &stubCEP{result: &viacep.Result{CEP: "01310-100", City: "São Paulo"}}
	svc := NewService(cep, &stubCNPJ{}, nil, 0, nil)

	result, err := svc.CEP(context.Background(), "01310-100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cep.lastID != "01310100" {
		t.Fatalf("client should receive digits only, got %q", cep.lastID)
	}
	if result.City != "São Paulo" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCNPJStripsMaskBeforeLookup(t *testing.T) {
	cnpj := &stubCNPJ{result: &brasilapi.CompanyProfile{CorporateName: "ACME LTDA"}}
	svc := NewService(&stubCEP{}, cnpj, nil, 0, nil)

	profile, err := svc.CNPJ(context.Background(), "12.345.678/0001-95")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cnpj.lastID != "12345678000195" {
		t.Fatalf("client should receive digits only, got %q", cnpj.lastID)
	}
	if profile.CorporateName != "ACME LTDA" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestCEPSecondCallServedFromCache(t *testing.T) {
	cep := &stubCEP{result: &viacep.Result{CEP: "01310-100", Street: "Avenida Paulista"}}
	cache := redis.NewWithStore(&fakeStore{})
	svc := NewService(cep, &stubCNPJ{}, cache, time.Hour, nil)

	ctx := context.Background()
	if _, err := svc.CEP(ctx, "01310100"); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	result, err := svc.CEP(ctx, "01310100")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if cep.calls != 1 {
		t.Fatalf("second call should hit the cache, upstream calls = %d", cep.calls)
	}
	if result.Street != "Avenida Paulista" {
		t.Fatalf("cached result mismatch: %+v", result)
	}
}

func TestLookupErrorsNotCached(t *testing.T) {
	cnpj := &stubCNPJ{err: errors.New(errors.CodeNotFound, "cnpj not found")}
	store := &fakeStore{}
	svc := NewService(&stubCEP{}, cnpj, redis.NewWithStore(store), time.Hour, nil)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := svc.CNPJ(ctx, "12345678000195"); !errors.IsCode(err, errors.CodeNotFound) {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	}
	if cnpj.calls != 2 {
		t.Fatalf("failures must not be cached, upstream calls = %d", cnpj.calls)
	}
	if len(store.values) != 0 {
		t.Fatalf("cache should stay empty, got %v", store.values)
	}
}

func TestNilClientsReportDependency(t *testing.T) {
	svc := NewService(nil, nil, nil, 0, nil)
	if _, err := svc.CEP(context.Background(), "01310100"); !errors.IsCode(err, errors.CodeDependency) {
		t.Fatalf("expected DEPENDENCY, got %v", err)
	}
	if _, err := svc.CNPJ(context.Background(), "12345678000195"); !errors.IsCode(err, errors.CodeDependency) {
		t.Fatalf("expected DEPENDENCY, got %v", err)
	}
}
