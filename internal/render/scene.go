package render

import (
	"fmt"
	"image/color"
)

// LayerKind says how a Layer is drawn.
type LayerKind int

const (
	// LayerPath merges all shapes into one path filled once.
	LayerPath LayerKind = iota
	// LayerShape draws each shape as its own filled element.
	LayerShape
)

// Layer groups primitives sharing one fill at one stacking position.
type Layer struct {
	Name   string
	Kind   LayerKind
	Fill   color.RGBA
	Shapes []Shape
}

// Scene is a fully composed image ready to be serialised.
type Scene struct {
	Size       int
	Background color.RGBA
	// Layers are drawn in order after the background.
	Layers []Layer
	// Logo is nil when no logo was requested or it could not be loaded.
	Logo *Logo
	// LogoErr records why a requested logo was left out.
	LogoErr error
}

// Names of the layers produced by Compose.
const (
	LayerBody = "body"
	LayerEyes = "eyes"
)

// Compose builds the scene for m styled by cfg. A logo that cannot be read
// is reported in Scene.LogoErr and does not fail the composition.
func Compose(m Matrix, cfg Config) (*Scene, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	g := newGrid(m, cfg.Size, cfg.Margin)

	s := &Scene{Size: cfg.Size, Background: cfg.Background}

	body := synthesizeBody(g, cfg.Style)
	if len(body) > 0 {
		s.Layers = append(s.Layers, Layer{Name: LayerBody, Kind: LayerPath, Fill: cfg.Color, Shapes: body})
	}
	s.Layers = append(s.Layers, batch(LayerEyes, synthesizeEyes(g, cfg.EyeStyle, cfg.Color, cfg.Background))...)

	if cfg.LogoPath != "" {
		logo, err := loadLogo(cfg.LogoPath, cfg.Size)
		if err != nil {
			s.LogoErr = fmt.Errorf("logo omitted: %w", err)
		} else {
			s.Logo = logo
		}
	}
	return s, nil
}

// batch folds pieces into layers: shared-fill pieces go into one path layer
// placed where the first of them appeared, own pieces each get a layer.
func batch(name string, pieces []piece) []Layer {
	var layers []Layer
	paths := make(map[color.RGBA]int)
	for _, p := range pieces {
		if p.own {
			layers = append(layers, Layer{Name: name, Kind: LayerShape, Fill: p.fill, Shapes: []Shape{p.shape}})
			continue
		}
		i, ok := paths[p.fill]
		if !ok {
			i = len(layers)
			paths[p.fill] = i
			layers = append(layers, Layer{Name: name, Kind: LayerPath, Fill: p.fill})
		}
		layers[i].Shapes = append(layers[i].Shapes, p.shape)
	}
	return layers
}
