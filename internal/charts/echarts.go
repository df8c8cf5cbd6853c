package charts

import (
	"bytes"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartHeight = "360px"

// Doughnut builds the category breakdown widget.
func Doughnut(title string, dataset Dataset) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions(title, dataset)...)

	data := make([]opts.PieData, len(dataset.Labels))
	for i, label := range dataset.Labels {
		data[i] = opts.PieData{Name: label, Value: dataset.Values[i]}
	}

	pie.AddSeries(title, data).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "70%"},
		}),
	)

	return pie
}

// Column builds a vertical bar widget (monthly volume).
func Column(title string, dataset Dataset) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(title, dataset)...)
	bar.SetXAxis(dataset.Labels)
	bar.AddSeries(title, toBarData(dataset))
	return bar
}

// HorizontalBar builds a sideways bar widget (type and requester
// breakdowns).
func HorizontalBar(title string, dataset Dataset) *charts.Bar {
	bar := Column(title, dataset)
	bar.XYReversal()
	return bar
}

// RenderHTML renders a chart into markup that can be embedded into a
// page template.
func RenderHTML(renderable interface{ Render(io.Writer) error }) (template.HTML, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	//nolint:gosec //go-echarts output is generated, not user input
	return template.HTML(buf.String()), nil
}

func globalOptions(title string, dataset Dataset) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithColorsOpts(opts.Colors(Colors(len(dataset.Labels)))),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func toBarData(dataset Dataset) []opts.BarData {
	data := make([]opts.BarData, len(dataset.Values))
	for i, value := range dataset.Values {
		data[i] = opts.BarData{Name: dataset.Labels[i], Value: value}
	}
	return data
}
