package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/render"
	"github.com/cristianadrielbraun/qrstyle/internal/theme"
	"github.com/cristianadrielbraun/qrstyle/web/components"
	"github.com/cristianadrielbraun/qrstyle/web/pages"
)

const previewContent = "https://qrcreator.link"

// HomePage serves the theme gallery.
func (h *Handler) HomePage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.HomePage(h.previews()).Render(c.Request.Context(), c.Writer); err != nil {
		h.log.Error("render home page", "err", err)
	}
}

// previews renders a small sample of every theme. Renders share nothing, so
// they run in parallel.
func (h *Handler) previews() []components.ThemePreview {
	themes := h.themes.Themes()
	out := make([]components.ThemePreview, len(themes))

	matrix, err := h.source.Matrix(previewContent)
	if err != nil {
		h.log.Error("encode preview", "err", err)
	}

	size := 160
	margin := 8
	var wg sync.WaitGroup
	for i, t := range themes {
		bg := render.ParseColor(t.BG, render.White)
		out[i] = components.ThemePreview{
			Name:  t.Name,
			Label: t.Label,
			Style: t.Style,
			Eye:   t.Eye,
			FG:    t.FG,
			BG:    t.BG,
			Dark:  int(bg.R)+int(bg.G)+int(bg.B) < 384,
		}
		if matrix == nil {
			continue
		}
		wg.Add(1)
		go func(i int, t theme.Theme) {
			defer wg.Done()
			cfg := h.themes.Resolve(theme.Overrides{Theme: t.Name, Size: &size, Margin: &margin, Format: "base64"})
			res, err := render.Render(matrix, cfg)
			if err != nil {
				h.log.Warn("render preview", "theme", t.Name, "err", err)
				return
			}
			out[i].Image = string(res.Data)
		}(i, t)
	}
	wg.Wait()
	return out
}
