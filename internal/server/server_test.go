package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmehta/portfolio-api/internal/config"
	"github.com/harshmehta/portfolio-api/internal/domain"
)

// memoryStore is an in-memory stand-in for the S3 store.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string]domain.StoredImage // keyed by URL
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string]domain.StoredImage)}
}

func (m *memoryStore) Upload(_ context.Context, data []byte, filename, _, folder string) (*domain.StoredImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	img := domain.StoredImage{
		URL:      "http://cdn.test/portfolio/" + folder + "/" + filename,
		Filename: folder + "/" + filename,
		Size:     int64(len(data)),
	}
	m.objects[img.URL] = img
	return &img, nil
}

func (m *memoryStore) List(_ context.Context, folder string) ([]domain.StoredImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	images := []domain.StoredImage{}
	for _, img := range m.objects {
		if folder == "" || strings.HasPrefix(img.Filename, folder+"/") {
			images = append(images, img)
		}
	}
	return images, nil
}

func (m *memoryStore) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[url]; !ok {
		return domain.ErrNotFound
	}
	delete(m.objects, url)
	return nil
}

// memoryContactRepo keeps submissions in a slice, newest last.
type memoryContactRepo struct {
	mu       sync.Mutex
	messages []*domain.ContactMessage
}

func (m *memoryContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memoryContactRepo) List(_ context.Context, limit int) ([]*domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.messages) {
		limit = len(m.messages)
	}
	return m.messages[:limit], nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(8 * x), G: uint8(10 * y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGoldenPath(t *testing.T) {
	// 1. Setup infrastructure: miniredis plus in-memory fakes for the
	// blob store and contact repo.
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer redisClient.Close()

	store := newMemoryStore()
	contactRepo := &memoryContactRepo{}

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.MaxUploadSizeMB = 10
	cfg.Admin.Token = "test-admin-pass"
	cfg.Admin.SessionSecret = "test-session-secret"

	// 2. Initialize app
	app := NewApp(AppDependencies{
		Config:      cfg,
		RedisClient: redisClient,
		ImageStore:  store,
		ContactRepo: contactRepo,
	})

	var sessionCookie *http.Cookie

	jsonRequest := func(method, path string, body interface{}) *http.Response {
		var reader io.Reader
		if body != nil {
			raw, _ := json.Marshal(body)
			reader = bytes.NewReader(raw)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		if sessionCookie != nil {
			req.AddCookie(sessionCookie)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	decode := func(resp *http.Response) map[string]interface{} {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	// Health check
	resp := jsonRequest("GET", "/health", nil)
	assert.Equal(t, 200, resp.StatusCode)

	// Public listing works without a session
	resp = jsonRequest("GET", "/images/list?folder=gallery", nil)
	assert.Equal(t, 200, resp.StatusCode)

	// Mutating routes are gated
	resp = jsonRequest("POST", "/images/delete", map[string]string{"url": "http://x"})
	assert.Equal(t, 401, resp.StatusCode)

	// Wrong password is rejected
	resp = jsonRequest("POST", "/admin/login", map[string]string{"password": "nope"})
	assert.Equal(t, 401, resp.StatusCode)

	// Correct password yields a session cookie
	resp = jsonRequest("POST", "/admin/login", map[string]string{"password": "test-admin-pass"})
	require.Equal(t, 200, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == domain.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)

	// Optimized upload with the session
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, "shot.png"))
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(testPNG(t))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("folder", "gallery"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/images/optimized-upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(sessionCookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	uploadData := decode(resp)
	imageURL, _ := uploadData["url"].(string)
	require.NotEmpty(t, imageURL)

	// The upload shows up in the listing
	resp = jsonRequest("GET", "/images/list?folder=gallery", nil)
	require.Equal(t, 200, resp.StatusCode)
	listData := decode(resp)
	require.Len(t, listData["images"], 1)

	// Delete it, then deleting again is a 404
	resp = jsonRequest("POST", "/images/delete", map[string]string{"url": imageURL})
	assert.Equal(t, 200, resp.StatusCode)

	resp = jsonRequest("POST", "/images/delete", map[string]string{"url": imageURL})
	assert.Equal(t, 404, resp.StatusCode)

	// Contact form is public
	resp = jsonRequest("POST", "/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "Nice site",
	})
	assert.Equal(t, 200, resp.StatusCode)

	// The admin can read submissions
	resp = jsonRequest("GET", "/admin/contact", nil)
	require.Equal(t, 200, resp.StatusCode)
	contactData := decode(resp)
	require.Len(t, contactData["messages"], 1)

	// Visitor counter
	resp = jsonRequest("POST", "/visitors/hit", map[string]string{"page": "/gallery"})
	assert.Equal(t, 200, resp.StatusCode)
	resp = jsonRequest("POST", "/visitors/hit", nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp = jsonRequest("GET", "/visitors", nil)
	require.Equal(t, 200, resp.StatusCode)
	visitorData := decode(resp)
	assert.Equal(t, float64(2), visitorData["total"])
}
