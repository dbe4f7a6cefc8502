package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestNewDisabled(t *testing.T) {
	c, err := New(context.Background(), Config{Bucket: "media"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client without endpoint or credentials")
	}
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Endpoint: "https://s3.example.com", AccessKey: "k", SecretKey: "s"})
	if err == nil {
		t.Error("expected error without bucket")
	}
}

func TestNewDefaultCredentialChain(t *testing.T) {
	c, err := New(context.Background(), Config{Endpoint: "https://minio.local:9000", Bucket: "media"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c == nil {
		t.Fatal("expected a client when an endpoint is set")
	}
}

func TestNewAWSWithoutEndpoint(t *testing.T) {
	c, err := New(context.Background(), Config{Region: "eu-north-1", AccessKey: "k", SecretKey: "s", Bucket: "media"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := c.FileURL("a.jpg"), "https://s3.eu-north-1.amazonaws.com/media/a.jpg"; got != want {
		t.Errorf("FileURL = %q, want %q", got, want)
	}
}

func TestFileURL(t *testing.T) {
	c, err := New(context.Background(), Config{Endpoint: "https://s3.example.com/", Region: "eu", AccessKey: "k", SecretKey: "s", Bucket: "media"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := c.FileURL("gallery/river.jpg"), "https://s3.example.com/media/gallery/river.jpg"; got != want {
		t.Errorf("FileURL = %q, want %q", got, want)
	}

	cdn, _ := New(context.Background(), Config{Endpoint: "https://s3.example.com", AccessKey: "k", SecretKey: "s", Bucket: "media", PublicURL: "https://cdn.example.com/"})
	if got, want := cdn.FileURL("/a.png"), "https://cdn.example.com/a.png"; got != want {
		t.Errorf("FileURL with CDN = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	c, _ := New(context.Background(), Config{Endpoint: "https://s3.example.com", AccessKey: "k", SecretKey: "s", Bucket: "media"})

	tests := []struct {
		ref, want string
	}{
		{"", ""},
		{"https://upload.wikimedia.org/x.jpg", "https://upload.wikimedia.org/x.jpg"},
		{"//cdn.example.com/y.jpg", "//cdn.example.com/y.jpg"},
		{"events/ostrog.jpg", "https://s3.example.com/media/events/ostrog.jpg"},
	}
	for _, tt := range tests {
		if got := c.Resolve(tt.ref); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}

	var disabled *Client
	if got := disabled.Resolve("events/ostrog.jpg"); got != "events/ostrog.jpg" {
		t.Errorf("nil client Resolve = %q", got)
	}
}

func TestObjectKeyAndContentType(t *testing.T) {
	keys := map[[2]string]string{
		{"/gallery/", "/tmp/photos/River.JPG"}: "gallery/river.jpg",
		{"", "a.png"}:                          "a.png",
		{"events", "Основание Енисейска (1619).jpeg"}: "events/osnovanie-eniseyska-1619.jpeg",
		{"gallery", "河.png"}: "gallery/河.png",
	}
	for in, want := range keys {
		if got := ObjectKey(in[0], in[1]); got != want {
			t.Errorf("ObjectKey(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
	if got := ContentType("River.JPG"); got != "image/jpeg" {
		t.Errorf("ContentType(jpg) = %q", got)
	}
	if got := ContentType("data.unknownext"); got != "application/octet-stream" {
		t.Errorf("ContentType(unknown) = %q", got)
	}
}

// TestUploadFile runs against a real S3-compatible endpoint when configured.
func TestUploadFile(t *testing.T) {
	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("skipping: S3_ENDPOINT not set")
	}
	c, err := New(context.Background(), Config{
		Endpoint:  endpoint,
		Region:    os.Getenv("S3_REGION"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Bucket:    os.Getenv("S3_BUCKET"),
	})
	if err != nil || c == nil {
		t.Skipf("skipping: storage not configured: %v", err)
	}

	path := filepath.Join(t.TempDir(), "upload.txt")
	if err := os.WriteFile(path, []byte("yenisei"), 0o644); err != nil {
		t.Fatal(err)
	}
	key, err := c.UploadFile(context.Background(), path, "test")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if !strings.HasSuffix(c.FileURL(key), "/test/upload.txt") {
		t.Errorf("unexpected URL %q", c.FileURL(key))
	}
}

// recordingTransport answers every S3 call with 200 and keeps the requests.
type recordingTransport struct {
	mu   sync.Mutex
	puts map[string]putRecord
}

type putRecord struct {
	body        []byte
	contentType string
	acl         string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	if req.Method == http.MethodPut {
		rt.mu.Lock()
		rt.puts[req.URL.Path] = putRecord{
			body:        body,
			contentType: req.Header.Get("Content-Type"),
			acl:         req.Header.Get("X-Amz-Acl"),
		}
		rt.mu.Unlock()
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Etag": {`"etag123"`}},
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Request:    req,
	}, nil
}

func TestUploadFileMocked(t *testing.T) {
	rt := &recordingTransport{puts: make(map[string]putRecord)}
	c, err := New(context.Background(),
		Config{Endpoint: "https://mock.s3.local", AccessKey: "AKIA", SecretKey: "SECRET", Bucket: "media"},
		func(o *s3.Options) { o.HTTPClient = &http.Client{Transport: rt} },
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "Красноярская ГЭС.JPG")
	if err := os.WriteFile(path, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	key, err := c.UploadFile(context.Background(), path, "/gallery/")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if key != "gallery/krasnoyarskaya-ges.jpg" {
		t.Errorf("key = %q", key)
	}

	put, ok := rt.puts["/media/gallery/krasnoyarskaya-ges.jpg"]
	if !ok {
		t.Fatalf("no PUT recorded, got %v", rt.puts)
	}
	if !bytes.Contains(put.body, []byte("jpeg bytes")) {
		t.Errorf("body = %q", put.body)
	}
	if put.contentType != "image/jpeg" {
		t.Errorf("content type = %q", put.contentType)
	}
	if put.acl != "public-read" {
		t.Errorf("acl = %q", put.acl)
	}
	if got := c.Resolve(key); got != "https://mock.s3.local/media/gallery/krasnoyarskaya-ges.jpg" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestUploadFileMissing(t *testing.T) {
	c, err := New(context.Background(), Config{Endpoint: "https://mock.s3.local", AccessKey: "k", SecretKey: "s", Bucket: "media"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.UploadFile(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"), ""); err == nil {
		t.Error("expected error for a missing file")
	}
}
