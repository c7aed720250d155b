package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func TestCompleteTextRequest(t *testing.T) {
	const expectedURL = "http://gemini.test/v1/models/gemini-2.5-flash:generateContent"
	respBody := `{"candidates":[{"content":{"parts":[{"text":"Ótima escolha!"}]}}]}`

	var capturedURL string
	var capturedHeaders http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedHeaders = req.Header.Clone()

		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			t.Fatalf("unmarshal request body: %v", err)
		}
		if _, ok := payload["contents"]; !ok {
			t.Fatalf("request body missing contents: %s", bodyBytes)
		}

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithBaseURL("http://gemini.test/v1"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	text, err := client.CompleteText(context.Background(), "qual a autonomia da bateria?")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "Ótima escolha!" {
		t.Fatalf("unexpected text %q", text)
	}
	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if capturedHeaders.Get("X-Goog-Api-Key") != "test-key" {
		t.Fatal("api key header missing")
	}
}

func TestCompleteTextUpstreamError(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader(`{"error":"quota"}`)),
			Header:     http.Header{},
		}, nil
	})
	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.CompleteText(context.Background(), "pergunta")
	if !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected DEPENDENCY, got %v", err)
	}
}

func TestCompleteTextEmptyCandidates(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"candidates":[]}`)),
			Header:     http.Header{},
		}, nil
	})
	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	text, err := client.CompleteText(context.Background(), "pergunta")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}
