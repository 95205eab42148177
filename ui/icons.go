package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/netclean/netprofile-cleaner/common"
)

// IconConfig defines the configuration for tray icon generation.
type IconConfig struct {
	Size        int
	BadgeColor  color.RGBA
	BorderColor color.RGBA
	WaveColor   color.RGBA
	ShowCross   bool
}

// DefaultIconConfig is the icon shown while the registry is readable.
func DefaultIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		BadgeColor:  color.RGBA{89, 142, 196, 255},   // #598ec4
		BorderColor: color.RGBA{61, 106, 153, 255},   // darker blue
		WaveColor:   color.RGBA{255, 255, 255, 255}, // White
	}
}

// ErrorIconConfig is the icon shown when a location cannot be read.
func ErrorIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		BadgeColor:  color.RGBA{199, 86, 91, 255},   // #c7565b
		BorderColor: color.RGBA{150, 56, 60, 255},   // darker red
		WaveColor:   color.RGBA{255, 255, 255, 255}, // White
		ShowCross:   true,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawBadge(img)
	if g.config.ShowCross {
		g.drawCross(img)
	} else {
		g.drawWaves(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		common.LogWarn("Encoding tray icon: %v", err)
	}
	return buf.Bytes()
}

// drawBadge draws a filled circle with a one pixel border.
func (g *IconGenerator) drawBadge(img *image.RGBA) {
	size := float64(g.config.Size)
	c := size / 2
	r := c - 1

	for y := 0; y < g.config.Size; y++ {
		for x := 0; x < g.config.Size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			switch {
			case d <= r-1:
				img.Set(x, y, g.config.BadgeColor)
			case d <= r:
				img.Set(x, y, g.config.BorderColor)
			}
		}
	}
}

// drawWaves draws a dot and two arcs opening upwards, the usual
// wireless network symbol.
func (g *IconGenerator) drawWaves(img *image.RGBA) {
	size := float64(g.config.Size)
	cx := size / 2
	cy := size * 0.72
	radii := []float64{size * 0.22, size * 0.38}

	for y := 0; y < g.config.Size; y++ {
		for x := 0; x < g.config.Size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			d := math.Hypot(fx-cx, fy-cy)
			if d <= size*0.08 {
				img.Set(x, y, g.config.WaveColor)
				continue
			}
			// Only the upper quarter sector, 45 degrees each side of vertical.
			if fy >= cy || math.Abs(fx-cx) > cy-fy {
				continue
			}
			for _, r := range radii {
				if math.Abs(d-r) <= 0.9 {
					img.Set(x, y, g.config.WaveColor)
				}
			}
		}
	}
}

// drawCross draws an X across the badge.
func (g *IconGenerator) drawCross(img *image.RGBA) {
	size := g.config.Size
	lo, hi := size*3/10, size*7/10
	for i := lo; i <= hi; i++ {
		img.Set(i, i, g.config.WaveColor)
		img.Set(i+1, i, g.config.WaveColor)
		img.Set(size-1-i, i, g.config.WaveColor)
		img.Set(size-2-i, i, g.config.WaveColor)
	}
}

// GenerateTrayIcon generates the normal tray icon.
func GenerateTrayIcon() []byte {
	return NewIconGenerator(DefaultIconConfig()).Generate()
}

// GenerateErrorIcon generates the tray icon for an unreadable registry.
func GenerateErrorIcon() []byte {
	return NewIconGenerator(ErrorIconConfig()).Generate()
}
