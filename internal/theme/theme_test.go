package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

func intp(v int) *int { return &v }

func TestBuiltinThemes(t *testing.T) {
	c := Builtin()
	themes := c.Themes()
	require.NotEmpty(t, themes)

	for i := 1; i < len(themes); i++ {
		assert.Less(t, themes[i-1].Name, themes[i].Name)
	}
	for _, th := range themes {
		assert.NotEmpty(t, th.Label, th.Name)
		assert.Equal(t, th.Style, render.ParseStyle(th.Style).String(), "%s style", th.Name)
		assert.Equal(t, th.Eye, render.ParseEyeStyle(th.Eye).String(), "%s eye", th.Name)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, th.FG)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, th.BG)
	}

	_, ok := c.Lookup(" Ocean ")
	assert.True(t, ok)
}

func TestResolve(t *testing.T) {
	c := Builtin()
	ocean, _ := c.Lookup("ocean")

	tests := []struct {
		name string
		in   Overrides
		want func(cfg *render.Config)
	}{
		{
			name: "defaults",
			in:   Overrides{},
			want: func(cfg *render.Config) {},
		},
		{
			name: "theme",
			in:   Overrides{Theme: "ocean"},
			want: func(cfg *render.Config) {
				cfg.Style = render.StyleRounded
				cfg.EyeStyle = render.EyeRounded
				cfg.Color = render.ParseColor(ocean.FG, render.Black)
				cfg.Background = render.ParseColor(ocean.BG, render.White)
			},
		},
		{
			name: "explicit wins over theme",
			in:   Overrides{Theme: "ocean", Style: "dots", Color: "ff0000", Size: intp(640), Margin: intp(0)},
			want: func(cfg *render.Config) {
				cfg.Style = render.StyleDots
				cfg.EyeStyle = render.EyeRounded
				cfg.Color = color.RGBA{255, 0, 0, 255}
				cfg.Background = render.ParseColor(ocean.BG, render.White)
				cfg.Size = 640
				cfg.Margin = 0
			},
		},
		{
			name: "unknown theme ignored",
			in:   Overrides{Theme: "nope", EyeStyle: "circle", Format: "svg"},
			want: func(cfg *render.Config) {
				cfg.EyeStyle = render.EyeCircle
				cfg.Format = render.FormatSVG
			},
		},
		{
			name: "malformed colours",
			in:   Overrides{Color: "javascript:alert(1)", Background: "#12345"},
			want: func(cfg *render.Config) {},
		},
		{
			name: "logo and base64",
			in:   Overrides{LogoPath: "/tmp/logo.png", Format: "base64"},
			want: func(cfg *render.Config) {
				cfg.LogoPath = "/tmp/logo.png"
				cfg.Format = render.FormatBase64
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := render.DefaultConfig()
			tt.want(&want)
			assert.Equal(t, want, c.Resolve(tt.in))
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load([]byte("[themes.x\nstyle="))
	assert.Error(t, err)
}

func TestLoadCustom(t *testing.T) {
	c, err := Load([]byte(`
[themes.Brand]
label = "Brand"
style = "classy"
eye = "circle"
fg = "#112233"
bg = "#ffffff"
`))
	require.NoError(t, err)
	cfg := c.Resolve(Overrides{Theme: "brand"})
	assert.Equal(t, render.StyleClassy, cfg.Style)
	assert.Equal(t, render.EyeCircle, cfg.EyeStyle)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 255}, cfg.Color)
}
