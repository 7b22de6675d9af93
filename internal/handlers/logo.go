package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/logostore"
)

// UploadLogoHandler stores the multipart "logo" file and returns its name,
// which can then be passed as ?logo= to the QR endpoint.
func (h *Handler) UploadLogoHandler(c *gin.Context) {
	fh, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	path, err := h.logos.Save(c.Request.Context(), f)
	switch {
	case err == nil:
	case errors.Is(err, logostore.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	case errors.Is(err, logostore.ErrUnsupportedType), errors.Is(err, logostore.ErrEmpty):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	default:
		h.log.Error("save logo", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save logo"})
		return
	}

	h.log.Info("logo stored", "path", path)
	c.JSON(http.StatusOK, gin.H{"path": filepath.Base(path)})
}
