// Package render turns a QR module matrix into a styled image.
//
// The pipeline is stateless: module geometry (body and finder patterns) is
// synthesised into an ordered list of drawing primitives, composed into a
// Scene together with the background and an optional logo overlay, and the
// Scene is serialised to SVG. PNG output rasterises that same SVG, so both
// formats are produced from one intermediate representation.
//
// Basic usage:
//
//	cfg := render.DefaultConfig()
//	cfg.Style = render.StyleLiquid
//	cfg.EyeStyle = render.EyeRounded
//	res, err := render.Render(matrix, cfg)
//	if err != nil {
//		return err
//	}
//	if res.Warning != nil {
//		logger.Warn("logo omitted", "err", res.Warning)
//	}
//	w.Header().Set("Content-Type", res.ContentType())
//	w.Write(res.Data)
package render
