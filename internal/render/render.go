package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/evtools/evtchart/internal/models"
)

const (
	defaultWidth  = "900px"
	defaultHeight = "500px"

	// Fixed chart element ID. go-echarts randomizes it otherwise, which
	// would make two runs over identical input differ byte-wise.
	chartID = "evtchart"
)

// Options holds the cosmetic settings for a rendered chart.
type Options struct {
	Title  string
	Theme  string
	Width  string
	Height string
	XLabel string
	YLabel string
}

// Merge overlays non-empty fields from an options file onto o.
func (o Options) Merge(f *models.ChartOptionsFile) Options {
	if f == nil {
		return o
	}
	if f.Title != "" {
		o.Title = f.Title
	}
	if f.Theme != "" {
		o.Theme = f.Theme
	}
	if f.Width != "" {
		o.Width = f.Width
	}
	if f.Height != "" {
		o.Height = f.Height
	}
	return o
}

func (o Options) initialization() opts.Initialization {
	init := opts.Initialization{
		Theme:   o.Theme,
		Width:   o.Width,
		Height:  o.Height,
		ChartID: chartID,
	}
	if init.Theme == "" {
		init.Theme = types.ThemeWesteros
	}
	if init.Width == "" {
		init.Width = defaultWidth
	}
	if init.Height == "" {
		init.Height = defaultHeight
	}
	return init
}

// Line renders per-bucket counts over chronological time buckets as an HTML
// line chart. An empty series renders an empty chart rather than failing.
func Line(series models.Series, o Options, w io.Writer) error {
	data := make([]opts.LineData, len(series))
	for i, b := range series {
		data[i] = opts.LineData{Value: b.Count}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization()),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YLabel}),
	)

	line.SetXAxis(series.Labels()).
		AddSeries("events", data).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	if err := line.Render(w); err != nil {
		return &models.RenderError{Mode: "line", Err: err}
	}
	return nil
}

// Bar renders one bar per event category as an HTML bar chart.
func Bar(series models.Series, o Options, w io.Writer) error {
	data := make([]opts.BarData, len(series))
	for i, b := range series {
		data[i] = opts.BarData{Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization()),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YLabel}),
	)

	bar.SetXAxis(series.Labels()).
		AddSeries("events", data)

	if err := bar.Render(w); err != nil {
		return &models.RenderError{Mode: "bar", Err: err}
	}
	return nil
}
