package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/render"
	"github.com/cristianadrielbraun/qrstyle/internal/theme"
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	if len(v) > 4096 {
		return "", fmt.Errorf("URL is too long")
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	return u.String(), nil
}

// intQuery returns the integer value of query key when present and valid.
func intQuery(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// QRCodeHandler renders a styled QR code for the url query parameter.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	rawURL := strings.TrimSpace(c.Query("url"))
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required"})
		return
	}

	normalizedURL, err := normalizeHTTPURL(rawURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	overrides := theme.Overrides{
		Theme:      c.DefaultQuery("theme", h.defaultTheme),
		Style:      c.Query("style"),
		EyeStyle:   c.Query("eyeStyle"),
		Color:      c.Query("color"),
		Background: c.Query("bg"),
		Size:       intQuery(c, "size"),
		Margin:     intQuery(c, "margin"),
		Format:     c.DefaultQuery("format", "png"),
	}

	logoMissing := false
	if name := c.Query("logo"); name != "" {
		path, err := h.logos.Resolve(name)
		if err != nil {
			h.log.Warn("logo not found", "logo", name, "err", err)
			logoMissing = true
		} else {
			overrides.LogoPath = path
		}
	}

	cfg := h.themes.Resolve(overrides)

	h.log.Debug("qr request", "url", normalizedURL, "format", cfg.Format, "size", cfg.Size,
		"style", cfg.Style, "eye", cfg.EyeStyle)

	matrix, err := h.source.Matrix(normalizedURL)
	if err != nil {
		h.log.Error("encode qr", "url", normalizedURL, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create QR code"})
		return
	}

	res, err := render.Render(matrix, cfg)
	if err != nil {
		h.log.Error("render qr", "url", normalizedURL, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code image"})
		return
	}
	if res.Warning != nil {
		h.log.Warn("logo omitted", "err", res.Warning)
	}
	if res.Logo == render.LogoOmitted || logoMissing {
		c.Header("X-QR-Logo", "omitted")
	}

	c.Header("Cache-Control", "public, max-age=3600")
	if res.Format == render.FormatBase64 {
		c.JSON(http.StatusOK, gin.H{"qr": string(res.Data)})
		return
	}
	c.Data(http.StatusOK, res.ContentType(), res.Data)
}

// ThemesHandler lists the available theme presets.
func (h *Handler) ThemesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": h.themes.Themes()})
}
