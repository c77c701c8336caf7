package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okBody(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	compress := NewCompress()

	responseBody := `{"career":"Software Engineer","skills_to_learn":["Git"]}`

	req := httptest.NewRequest(http.MethodPost, "/api/roadmap", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	compress.Apply(okBody(responseBody)).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("expected Content-Encoding: gzip, got %q", got)
	}
	if got := rr.Header().Get("Vary"); got != "Accept-Encoding" {
		t.Errorf("expected Vary: Accept-Encoding, got %q", got)
	}

	gzReader, err := gzip.NewReader(rr.Body)
	if err != nil {
		t.Fatalf("failed to create gzip reader: %v", err)
	}
	defer gzReader.Close()

	decompressed, err := io.ReadAll(gzReader)
	if err != nil {
		t.Fatalf("failed to decompress: %v", err)
	}
	if string(decompressed) != responseBody {
		t.Errorf("expected %q, got %q", responseBody, string(decompressed))
	}
}

func TestCompress_PassThrough(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		encoding string
	}{
		{"no accept-encoding", http.MethodGet, "/api/discover/tests", ""},
		{"gzip refused", http.MethodGet, "/api/discover/tests", "gzip;q=0, identity"},
		{"other encoding", http.MethodGet, "/api/discover/tests", "br"},
		{"skipped path", http.MethodGet, "/metrics", "gzip"},
		{"head request", http.MethodHead, "/api/hello", "gzip"},
		{"preflight", http.MethodOptions, "/api/roadmap", "gzip"},
	}

	compress := NewCompress("/metrics")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.encoding != "" {
				req.Header.Set("Accept-Encoding", tt.encoding)
			}

			rr := httptest.NewRecorder()
			compress.Apply(okBody("content")).ServeHTTP(rr, req)

			if got := rr.Header().Get("Content-Encoding"); got != "" {
				t.Errorf("expected no Content-Encoding, got %q", got)
			}
			if tt.method != http.MethodHead && rr.Body.String() != "content" {
				t.Errorf("expected uncompressed body, got %q", rr.Body.String())
			}
		})
	}
}

func TestCompress_DropsContentLength(t *testing.T) {
	compress := NewCompress()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "7")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("content"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	rr := httptest.NewRecorder()
	compress.Apply(handler).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Length"); got != "" {
		t.Errorf("expected Content-Length to be dropped, got %q", got)
	}
	if got := rr.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("expected Content-Encoding: gzip, got %q", got)
	}
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"gzip", true},
		{"GZIP", true},
		{"deflate, gzip;q=0.5", true},
		{"gzip; q=0", false},
		{"identity", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", tt.header)
			if got := acceptsGzip(req); got != tt.want {
				t.Errorf("acceptsGzip(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
