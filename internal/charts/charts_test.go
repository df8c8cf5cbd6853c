package charts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pharmaevents.app/internal/charts"
	"pharmaevents.app/internal/models"
)

func TestColors(t *testing.T) {
	colors := charts.Colors(5)
	assert.Len(t, colors, 5)
	assert.Equal(t, "rgba(255, 99, 132, 0.8)", colors[0])

	overflow := charts.Colors(15)
	assert.Len(t, overflow, 15)
	for _, color := range overflow {
		assert.True(t, strings.HasPrefix(color, "rgba("))
	}
}

func TestFromCounts(t *testing.T) {
	dataset := charts.FromCounts([]models.NameCount{
		{Name: "Cardiology", Count: 4},
		{Name: "Oncology", Count: 2},
	})

	assert.Equal(t, []string{"Cardiology", "Oncology"}, dataset.Labels)
	assert.Equal(t, []int{4, 2}, dataset.Values)
}

func TestFromCountsEmpty(t *testing.T) {
	dataset := charts.FromCounts(nil)
	assert.Equal(t, charts.NoData(), dataset)
	assert.Equal(t, []string{"No Data"}, dataset.Labels)
	assert.Equal(t, []int{0}, dataset.Values)
}

func TestMonthly(t *testing.T) {
	var counts [12]int
	counts[0] = 3
	counts[11] = 1

	dataset := charts.Monthly(counts)
	assert.Equal(t, charts.MonthLabels, dataset.Labels)
	assert.Len(t, dataset.Values, 12)
	assert.Equal(t, 3, dataset.Values[0])
	assert.Equal(t, 1, dataset.Values[11])
}

func TestRenderHTML(t *testing.T) {
	html, err := charts.RenderHTML(charts.Doughnut("Events by Category", charts.NoData()))
	assert.Nil(t, err)
	assert.Contains(t, string(html), "No Data")

	bar, err := charts.RenderHTML(charts.Column("Events per Month", charts.Monthly([12]int{})))
	assert.Nil(t, err)
	assert.NotEmpty(t, bar)
}
