package chart

import (
	chartlib "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme carries every visual default for the generated charts. It is
// an explicit value threaded into each render call rather than mutated
// library-global state, so two generators with different themes never
// interfere.
type Theme struct {
	Background drawing.Color
	Canvas     drawing.Color
	Text       drawing.Color
	Grid       drawing.Color
	Palette    []drawing.Color

	Width  int
	Height int
	DPI    float64
}

// Dark returns the presentation theme: near-black background, light
// text, and the red-to-green danger palette.
func Dark() Theme {
	return Theme{
		Background: drawing.ColorFromHex("0a0a0a"),
		Canvas:     drawing.ColorFromHex("1a1a1a"),
		Text:       drawing.ColorFromHex("f5f5f5"),
		Grid:       drawing.ColorFromHex("333333"),
		Palette: []drawing.Color{
			drawing.ColorFromHex("ff4444"),
			drawing.ColorFromHex("ff8844"),
			drawing.ColorFromHex("ffaa44"),
			drawing.ColorFromHex("ffcc44"),
			drawing.ColorFromHex("44ff44"),
			drawing.ColorFromHex("4444ff"),
		},
		Width:  1400,
		Height: 1000,
		DPI:    144,
	}
}

// SeriesColor returns the palette color for series i, wrapping around
// when the palette is exhausted.
func (t Theme) SeriesColor(i int) drawing.Color {
	if len(t.Palette) == 0 {
		return t.Text
	}
	return t.Palette[i%len(t.Palette)]
}

func (t Theme) backgroundStyle() chartlib.Style {
	return chartlib.Style{FillColor: t.Background, FontColor: t.Text}
}

func (t Theme) canvasStyle() chartlib.Style {
	return chartlib.Style{FillColor: t.Canvas}
}

func (t Theme) axisStyle() chartlib.Style {
	return chartlib.Style{FontColor: t.Text, StrokeColor: t.Grid}
}

func (t Theme) titleStyle() chartlib.Style {
	return chartlib.Style{FontColor: t.Text, FontSize: 16}
}

func (t Theme) barStyle(c drawing.Color) chartlib.Style {
	return chartlib.Style{FillColor: c, StrokeColor: t.Text, StrokeWidth: 1}
}

func (t Theme) lineStyle(c drawing.Color) chartlib.Style {
	return chartlib.Style{StrokeColor: c, StrokeWidth: 3}
}
