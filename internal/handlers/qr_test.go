package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstyle/internal/logostore"
	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

func newTestRouter(t *testing.T) (*gin.Engine, *logostore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := logostore.New(t.TempDir(), 0)
	h := New(Options{Logos: store, Logger: log.New(io.Discard)})
	return NewRouter(h), store
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNormalizeHTTPURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"example.com", "https://example.com", false},
		{"http://example.com/a?b=c", "http://example.com/a?b=c", false},
		{"  https://example.com  ", "https://example.com", false},
		{"", "", true},
		{"ftp://example.com", "", true},
		{"https://", "", true},
		{"https://example.com/" + strings.Repeat("a", 5000), "", true},
	}
	for _, tt := range tests {
		got, err := normalizeHTTPURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestQRCodeHandlerFormats(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("png", func(t *testing.T) {
		w := get(r, "/api/qr?url=example.com&size=250&style=liquid&eyeStyle=circle")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		img, err := png.Decode(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 250, img.Bounds().Dx())
	})

	t.Run("svg", func(t *testing.T) {
		w := get(r, "/api/qr?url=example.com&format=svg&theme=ocean&color=ff0000")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, `<svg `)
		assert.Contains(t, body, `fill="#ff0000"`)
		assert.Contains(t, body, `fill="#e8f6fb"`)
	})

	t.Run("base64", func(t *testing.T) {
		w := get(r, "/api/qr?url=example.com&format=base64")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			QR string `json:"qr"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.True(t, strings.HasPrefix(body.QR, render.DataURIPrefix))
		data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(body.QR, render.DataURIPrefix))
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
	})

	t.Run("request id echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/qr?url=example.com&format=svg", nil)
		req.Header.Set("X-Request-ID", "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	})
}

func TestQRCodeHandlerBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, target := range []string{"/api/qr", "/api/qr?url=ftp://example.com"} {
		w := get(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), `"error"`)
	}
}

func TestQRCodeHandlerMissingLogo(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/qr?url=example.com&format=svg&logo=nope.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "omitted", w.Header().Get("X-QR-Logo"))
	assert.NotContains(t, w.Body.String(), "<image")
}

func TestUploadLogoThenRender(t *testing.T) {
	r, _ := newTestRouter(t)

	var logo bytes.Buffer
	require.NoError(t, imaging.Encode(&logo, imaging.New(80, 40, color.NRGBA{R: 255, A: 255}), imaging.PNG))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(logo.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/qr/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Path)

	w = get(r, "/api/qr?url=example.com&format=svg&logo="+resp.Path)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-QR-Logo"))
	assert.Contains(t, w.Body.String(), "<image ")
}

func TestUploadLogoRejects(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/qr/logo", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("logo", "notes.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("plain text, not an image"))
	require.NoError(t, mw.Close())

	req = httptest.NewRequest(http.MethodPost, "/api/qr/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestThemesHandler(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/qr/themes")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Themes []struct {
			Name  string `json:"name"`
			Style string `json:"style"`
		} `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Themes)
	assert.Equal(t, "candy", body.Themes[0].Name)
}

func TestHomePage(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Midnight")
	assert.Contains(t, body, `src="data:image/png;base64,`)
	assert.Contains(t, body, "text-gray-100")
}
