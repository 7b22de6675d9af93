// Package qrmatrix encodes payloads into QR module matrices at error
// correction level H. It is the only place that talks to QR encoding
// libraries; the renderer consumes the plain matrix.
package qrmatrix

import (
	"errors"
	"fmt"
	"strings"

	skip2 "github.com/skip2/go-qrcode"
	"github.com/yeqown/go-qrcode/v2"

	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

// ErrEmptyContent is returned when there is nothing to encode.
var ErrEmptyContent = errors.New("qr content is empty")

// Source produces the module matrix for a payload.
type Source interface {
	Matrix(content string) (render.Matrix, error)
}

// Encoder names accepted by New.
const (
	EncoderYeqown = "yeqown"
	EncoderSkip2  = "skip2"
)

// New returns the Source registered under name, defaulting to Yeqown.
func New(name string) Source {
	if strings.EqualFold(strings.TrimSpace(name), EncoderSkip2) {
		return Skip2{}
	}
	return Yeqown{}
}

// Yeqown encodes with github.com/yeqown/go-qrcode.
type Yeqown struct{}

func (Yeqown) Matrix(content string) (render.Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	qrc, err := qrcode.NewWith(content, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest))
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("capture qr matrix: %w", err)
	}
	return w.m, nil
}

// matrixWriter is a qrcode.Writer that keeps the symbol instead of drawing it.
type matrixWriter struct {
	m render.Matrix
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	m := make(render.Matrix, mat.Height())
	for r := range m {
		m[r] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		m[y][x] = v.IsSet()
	})
	w.m = m
	return nil
}

func (w *matrixWriter) Close() error { return nil }

// Skip2 encodes with github.com/skip2/go-qrcode.
type Skip2 struct{}

func (Skip2) Matrix(content string) (render.Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	q, err := skip2.New(content, skip2.Highest)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	q.DisableBorder = true
	return render.Matrix(q.Bitmap()), nil
}
