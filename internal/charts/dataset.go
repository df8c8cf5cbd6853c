package charts

import "pharmaevents.app/internal/models"

// Dataset is the label/value shape every widget renders from.
type Dataset struct {
	Labels []string `json:"labels"`
	Values []int    `json:"data"`
}

// MonthLabels are the fixed x-axis of the monthly volume chart.
var MonthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FromCounts flattens a breakdown into a Dataset. An empty breakdown
// yields the placeholder so the widget always renders.
func FromCounts(counts []models.NameCount) Dataset {
	if len(counts) == 0 {
		return NoData()
	}

	dataset := Dataset{
		Labels: make([]string, 0, len(counts)),
		Values: make([]int, 0, len(counts)),
	}
	for _, count := range counts {
		dataset.Labels = append(dataset.Labels, count.Name)
		dataset.Values = append(dataset.Values, count.Count)
	}

	return dataset
}

// NoData is the deterministic fallback rendered when a widget's data
// cannot be loaded.
func NoData() Dataset {
	return Dataset{
		Labels: []string{"No Data"},
		Values: []int{0},
	}
}

// Monthly wraps twelve per-month counters into a Dataset.
func Monthly(counts [12]int) Dataset {
	return Dataset{
		Labels: MonthLabels,
		Values: counts[:],
	}
}
