package schema

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"

	"github.com/shiroemons/go-songpack/internal/songpack/mocks"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"config.json", FormatJSON},
		{"config.yaml", FormatYAML},
		{"CONFIG.YML", FormatYAML},
		{"config", FormatJSON},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.name); got != tt.want {
			t.Errorf("DetectFormat(%s) = %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestLoader_LoadFile(t *testing.T) {
	mockFS := mocks.NewMockFileSystem()
	mockFS.Files["config.json"] = []byte(sampleJSON)
	mockFS.Files["config.yml"] = []byte(sampleYAML)

	loader := NewLoader(mockFS)

	doc, err := loader.Load(context.Background(), "config.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Len() != 3 {
		t.Errorf("Expected 3 schemas, got %d", doc.Len())
	}

	doc, err = loader.Load(context.Background(), "config.yml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Len() != 2 {
		t.Errorf("Expected 2 schemas, got %d", doc.Len())
	}

	if _, err := loader.Load(context.Background(), "missing.json"); !errors.Is(err, ErrReadDocument) {
		t.Errorf("Expected ErrReadDocument, got %v", err)
	}
}

func TestLoader_LoadRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/config.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleJSON))
		case "/schemas":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(sampleYAML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	loader := NewLoader(mocks.NewMockFileSystem(), WithClient(resty.New()))

	tests := []struct {
		name      string
		path      string
		wantLen   int
		wantError bool
	}{
		{name: "JSON", path: "/config.json", wantLen: 3},
		{name: "Content-TypeでYAML", path: "/schemas", wantLen: 2},
		{name: "存在しない", path: "/missing.json", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := loader.Load(context.Background(), server.URL+tt.path)
			if tt.wantError {
				if !errors.Is(err, ErrFetchDocument) {
					t.Errorf("Expected ErrFetchDocument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if doc.Len() != tt.wantLen {
				t.Errorf("Expected %d schemas, got %d", tt.wantLen, doc.Len())
			}
		})
	}
}

func TestLoader_LoadRemote_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(mocks.NewMockFileSystem(), WithClient(resty.New()))
	if _, err := loader.Load(ctx, server.URL+"/config.json"); !errors.Is(err, ErrFetchDocument) {
		t.Errorf("Expected ErrFetchDocument, got %v", err)
	}
}
