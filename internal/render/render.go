package render

import (
	"encoding/base64"
	"fmt"
)

// DataURIPrefix starts every FormatBase64 output.
const DataURIPrefix = "data:image/png;base64,"

// LogoStatus tells whether the logo made it into the output.
type LogoStatus int

const (
	LogoNone LogoStatus = iota
	LogoApplied
	LogoOmitted
)

// Result is the output of one render.
type Result struct {
	Format Format
	// Data is SVG text, PNG bytes or a data URI depending on Format.
	Data []byte
	Logo LogoStatus
	// Warning is set when Logo is LogoOmitted.
	Warning error
}

// ContentType returns the MIME type of Data.
func (r *Result) ContentType() string { return r.Format.ContentType() }

// Render composes m with cfg and encodes it in cfg.Format. It is safe for
// concurrent use; nothing is shared between calls.
func Render(m Matrix, cfg Config) (*Result, error) {
	scene, err := Compose(m, cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{Format: cfg.Format}
	switch {
	case scene.Logo != nil:
		res.Logo = LogoApplied
	case scene.LogoErr != nil:
		res.Logo = LogoOmitted
		res.Warning = scene.LogoErr
	}

	switch cfg.Format {
	case FormatSVG:
		svg, err := scene.SVG()
		if err != nil {
			return nil, renderError(err)
		}
		res.Data = []byte(svg)
	case FormatBase64:
		data, err := scene.PNG()
		if err != nil {
			return nil, renderError(err)
		}
		res.Data = []byte(DataURIPrefix + base64.StdEncoding.EncodeToString(data))
	default:
		res.Format = FormatPNG
		data, err := scene.PNG()
		if err != nil {
			return nil, renderError(err)
		}
		res.Data = data
	}
	return res, nil
}

// renderError keeps both ErrRender and the encoder's cause in the chain.
func renderError(err error) error {
	return fmt.Errorf("%w: %w", ErrRender, err)
}
