package handlers

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/logostore"
	"github.com/cristianadrielbraun/qrstyle/internal/qrmatrix"
	"github.com/cristianadrielbraun/qrstyle/internal/theme"
)

// Handler holds the collaborators of the HTTP handlers. It keeps no
// per-request state.
type Handler struct {
	themes       *theme.Catalog
	source       qrmatrix.Source
	logos        *logostore.Store
	log          *log.Logger
	defaultTheme string
}

// Options configures New. Nil fields get working defaults.
type Options struct {
	Themes       *theme.Catalog
	Source       qrmatrix.Source
	Logos        *logostore.Store
	Logger       *log.Logger
	DefaultTheme string
}

// New returns a new Handler instance.
func New(opts Options) *Handler {
	h := &Handler{
		themes:       opts.Themes,
		source:       opts.Source,
		logos:        opts.Logos,
		log:          opts.Logger,
		defaultTheme: opts.DefaultTheme,
	}
	if h.themes == nil {
		h.themes = theme.Builtin()
	}
	if h.source == nil {
		h.source = qrmatrix.Yeqown{}
	}
	if h.logos == nil {
		h.logos = logostore.New("uploads", 0)
	}
	if h.log == nil {
		h.log = log.Default()
	}
	return h
}

// NewRouter wires the API and page routes onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.log))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.GET("/qr/themes", h.ThemesHandler)
		api.POST("/qr/logo", h.UploadLogoHandler)
	}

	r.GET("/", h.HomePage)
	return r
}
