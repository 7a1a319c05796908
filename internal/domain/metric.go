package domain

import "fmt"

// Metric identifies a numeric statistical column selectable by a user.
type Metric string

const (
	MetricPoints                  Metric = "points"
	MetricReboundsTotal           Metric = "reboundsTotal"
	MetricAssists                 Metric = "assists"
	MetricBlocks                  Metric = "blocks"
	MetricSteals                  Metric = "steals"
	MetricFieldGoalsMade          Metric = "fieldGoalsMade"
	MetricThreePointersMade       Metric = "threePointersMade"
	MetricFreeThrowsMade          Metric = "freeThrowsMade"
	MetricFieldGoalsPercentage    Metric = "fieldGoalsPercentage"
	MetricThreePointersPercentage Metric = "threePointersPercentage"
	MetricFreeThrowsPercentage    Metric = "freeThrowsPercentage"
)

// SelectableMetrics lists the metrics offered for comparison, highlight, and
// consistency views.
func SelectableMetrics() []Metric {
	return []Metric{
		MetricPoints,
		MetricReboundsTotal,
		MetricAssists,
		MetricBlocks,
		MetricSteals,
		MetricFieldGoalsMade,
		MetricThreePointersMade,
		MetricFreeThrowsMade,
	}
}

// RadarMetrics lists the axes of the radar profile view, in display order.
func RadarMetrics() []Metric {
	return []Metric{
		MetricPoints,
		MetricReboundsTotal,
		MetricAssists,
		MetricSteals,
		MetricBlocks,
		MetricFieldGoalsPercentage,
		MetricThreePointersPercentage,
		MetricFreeThrowsPercentage,
	}
}

// ParseMetric validates a user-supplied metric name.
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case MetricPoints, MetricReboundsTotal, MetricAssists, MetricBlocks,
		MetricSteals, MetricFieldGoalsMade, MetricThreePointersMade,
		MetricFreeThrowsMade, MetricFieldGoalsPercentage,
		MetricThreePointersPercentage, MetricFreeThrowsPercentage:
		return Metric(name), nil
	}
	return "", fmt.Errorf("unknown metric %q", name)
}

// Label returns a short display label for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricPoints:
		return "Pts"
	case MetricReboundsTotal:
		return "Reb"
	case MetricAssists:
		return "Ast"
	case MetricSteals:
		return "Stl"
	case MetricBlocks:
		return "Blk"
	case MetricFieldGoalsMade:
		return "FGM"
	case MetricThreePointersMade:
		return "3PM"
	case MetricFreeThrowsMade:
		return "FTM"
	case MetricFieldGoalsPercentage:
		return "FG%"
	case MetricThreePointersPercentage:
		return "3P%"
	case MetricFreeThrowsPercentage:
		return "FT%"
	}
	return string(m)
}
