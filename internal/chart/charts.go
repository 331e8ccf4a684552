package chart

import (
	"fmt"
	"io"
	"math/big"

	chartlib "github.com/wcharczuk/go-chart/v2"

	"github.com/101shaan/BlitzForge/internal/format"
	"github.com/101shaan/BlitzForge/internal/keyspace"
	"github.com/101shaan/BlitzForge/internal/scenario"
)

// durationLabel formats a resolved crack time for display. Resolved
// estimates are never negative, so a formatter error means a bug in
// the numeric core; surface the raw value rather than hide it.
func durationLabel(seconds float64) string {
	label, err := format.Duration(seconds)
	if err != nil {
		return fmt.Sprintf("%g s", seconds)
	}
	return label
}

func durationTickFormatter(v any) string {
	if f, ok := v.(float64); ok && f >= 0 {
		return durationLabel(f)
	}
	return ""
}

func rateTickFormatter(v any) string {
	if f, ok := v.(float64); ok && f >= 0 {
		return format.Rate(f)
	}
	return ""
}

// renderCrackTimeByLength draws the time-to-crack bars for password
// lengths 4 through 12 over the lowercase+digits alphabet.
func (g *Generator) renderCrackTimeByLength(w io.Writer) error {
	series, err := keyspace.CrackSeries(scenario.AlphabetLowerDigits, keyspace.LengthRange(4, 12), g.hashRate)
	if err != nil {
		return err
	}

	bars := make([]chartlib.Value, 0, len(series))
	for i, p := range series {
		bars = append(bars, chartlib.Value{
			Value: p.Seconds,
			Label: fmt.Sprintf("%d: %s", p.Length, durationLabel(p.Seconds)),
			Style: g.theme.barStyle(g.theme.SeriesColor(i)),
		})
	}

	bc := chartlib.BarChart{
		Title:      fmt.Sprintf("Time to Crack by Password Length @ %s", format.Rate(g.hashRate)),
		TitleStyle: g.theme.titleStyle(),
		Background: g.theme.backgroundStyle(),
		Canvas:     g.theme.canvasStyle(),
		Width:      g.theme.Width,
		Height:     g.theme.Height,
		DPI:        g.theme.DPI,
		BarWidth:   80,
		XAxis:      g.theme.axisStyle(),
		YAxis: chartlib.YAxis{
			Style:          g.theme.axisStyle(),
			ValueFormatter: durationTickFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chartlib.PNG, w)
}

// renderWeakVsStrong draws the dictionary constants next to the
// brute-force presets.
func (g *Generator) renderWeakVsStrong(w io.Writer) error {
	scenarios := append(scenario.WeakPasswords(), scenario.StrongPresets()...)
	estimates, err := scenario.ResolveAll(scenarios, g.hashRate)
	if err != nil {
		return err
	}

	bars := make([]chartlib.Value, 0, len(estimates))
	for i, e := range estimates {
		bars = append(bars, chartlib.Value{
			Value: e.Seconds,
			Label: fmt.Sprintf("%s: %s", e.Scenario.Name, durationLabel(e.Seconds)),
			Style: g.theme.barStyle(g.theme.SeriesColor(i)),
		})
	}

	bc := chartlib.BarChart{
		Title:      fmt.Sprintf("Weak vs Strong Passwords @ %s", format.Rate(g.hashRate)),
		TitleStyle: g.theme.titleStyle(),
		Background: g.theme.backgroundStyle(),
		Canvas:     g.theme.canvasStyle(),
		Width:      g.theme.Width,
		Height:     g.theme.Height,
		DPI:        g.theme.DPI,
		BarWidth:   60,
		XAxis:      g.theme.axisStyle(),
		YAxis: chartlib.YAxis{
			Style:          g.theme.axisStyle(),
			ValueFormatter: durationTickFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chartlib.PNG, w)
}

// renderAlgorithmComparison draws the modeled attack rate of each
// algorithm at this run's primary hash rate.
func (g *Generator) renderAlgorithmComparison(w io.Writer) error {
	algorithms := scenario.Algorithms()

	bars := make([]chartlib.Value, 0, len(algorithms))
	for i, a := range algorithms {
		rate := a.RateAt(g.hashRate)
		bars = append(bars, chartlib.Value{
			Value: rate,
			Label: fmt.Sprintf("%s: %s", a.Name, format.Rate(rate)),
			Style: g.theme.barStyle(g.theme.SeriesColor(i)),
		})
	}

	bc := chartlib.BarChart{
		Title:      "Algorithm Speed Comparison",
		TitleStyle: g.theme.titleStyle(),
		Background: g.theme.backgroundStyle(),
		Canvas:     g.theme.canvasStyle(),
		Width:      g.theme.Width,
		Height:     g.theme.Height,
		DPI:        g.theme.DPI,
		BarWidth:   100,
		XAxis:      g.theme.axisStyle(),
		YAxis: chartlib.YAxis{
			Style:          g.theme.axisStyle(),
			ValueFormatter: rateTickFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chartlib.PNG, w)
}

// renderKeyspaceGrowth draws one log-scale line per alphabet showing
// keyspace size over lengths 1 through 16. Independent of hash rate.
func (g *Generator) renderKeyspaceGrowth(w io.Writer) error {
	lengths := keyspace.LengthRange(1, 16)
	xs := make([]float64, len(lengths))
	for i, l := range lengths {
		xs[i] = float64(l)
	}

	series := make([]chartlib.Series, 0, 4)
	for i, curve := range scenario.KeyspaceCurves() {
		ys := make([]float64, len(lengths))
		for j, l := range lengths {
			space, err := keyspace.Keyspace(curve.AlphabetSize, l)
			if err != nil {
				return err
			}
			// float64 is fine for plotting; the exact value stays in the model
			ys[j], _ = new(big.Float).SetInt(space).Float64()
		}
		series = append(series, chartlib.ContinuousSeries{
			Name:    curve.Name,
			XValues: xs,
			YValues: ys,
			Style:   g.theme.lineStyle(g.theme.SeriesColor(i)),
		})
	}

	graph := chartlib.Chart{
		Title:      "Password Keyspace Growth",
		TitleStyle: g.theme.titleStyle(),
		Background: g.theme.backgroundStyle(),
		Canvas:     g.theme.canvasStyle(),
		Width:      g.theme.Width,
		Height:     g.theme.Height,
		DPI:        g.theme.DPI,
		XAxis: chartlib.XAxis{
			Name:           "Password Length",
			Style:          g.theme.axisStyle(),
			ValueFormatter: chartlib.IntValueFormatter,
		},
		YAxis: chartlib.YAxis{
			Name:  "Total Possible Passwords",
			Style: g.theme.axisStyle(),
			// Explicit bounds: a zero-valued range would fall back to linear
			Range: &chartlib.LogarithmicRange{Min: 1, Max: 1e32},
		},
		Series: series,
	}
	graph.Elements = []chartlib.Renderable{chartlib.Legend(&graph)}
	return graph.Render(chartlib.PNG, w)
}

// renderRealWorldTimes draws the mixed dictionary/brute-force scenario
// set ordered weakest to strongest.
func (g *Generator) renderRealWorldTimes(w io.Writer) error {
	estimates, err := scenario.ResolveAll(scenario.RealWorld(), g.hashRate)
	if err != nil {
		return err
	}

	bars := make([]chartlib.Value, 0, len(estimates))
	for i, e := range estimates {
		bars = append(bars, chartlib.Value{
			Value: e.Seconds,
			Label: fmt.Sprintf("%s: %s", e.Scenario.Name, durationLabel(e.Seconds)),
			Style: g.theme.barStyle(g.theme.SeriesColor(i)),
		})
	}

	bc := chartlib.BarChart{
		Title:      fmt.Sprintf("Real-World Cracking Times @ %s", format.Rate(g.hashRate)),
		TitleStyle: g.theme.titleStyle(),
		Background: g.theme.backgroundStyle(),
		Canvas:     g.theme.canvasStyle(),
		Width:      g.theme.Width,
		Height:     g.theme.Height,
		DPI:        g.theme.DPI,
		BarWidth:   70,
		XAxis:      g.theme.axisStyle(),
		YAxis: chartlib.YAxis{
			Style:          g.theme.axisStyle(),
			ValueFormatter: durationTickFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chartlib.PNG, w)
}
