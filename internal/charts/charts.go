// Package charts defines the chart and table specifications the views emit.
// These are plain data shapes for a rendering layer to consume; nothing here
// draws anything.
package charts

// BarDatum is one labeled bar.
type BarDatum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bar is a bar chart specification.
type Bar struct {
	Title  string     `json:"title"`
	XLabel string     `json:"xLabel,omitempty"`
	YLabel string     `json:"yLabel,omitempty"`
	Data   []BarDatum `json:"data"`
}

// LinePoint is one dated point of a line or area series.
type LinePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is a named sequence of dated points, in source order.
type Series struct {
	Name   string      `json:"name"`
	Points []LinePoint `json:"points"`
}

// Line is a multi-series line chart specification.
type Line struct {
	Title  string   `json:"title"`
	YLabel string   `json:"yLabel,omitempty"`
	Series []Series `json:"series"`
}

// Area is a stacked area chart specification.
type Area struct {
	Title  string   `json:"title"`
	Series []Series `json:"series"`
}

// SeasonPoint is one season of a trend line.
type SeasonPoint struct {
	Season int     `json:"season"`
	Value  float64 `json:"value"`
}

// SeasonLine is a per-season trend chart specification.
type SeasonLine struct {
	Title  string        `json:"title"`
	YLabel string        `json:"yLabel,omitempty"`
	Points []SeasonPoint `json:"points"`
}

// HeatmapCell is one (season, player) cell. Value is nil where the
// underlying aggregate is undefined; renderers show those cells as "no
// data", never as zero.
type HeatmapCell struct {
	Season int      `json:"season"`
	Player string   `json:"player"`
	Value  *float64 `json:"value"`
}

// Heatmap is a heatmap specification over seasons and players.
type Heatmap struct {
	Title   string        `json:"title"`
	Seasons []int         `json:"seasons"`
	Players []string      `json:"players"`
	Cells   []HeatmapCell `json:"cells"`
}

// RadarSeries is one player's normalized values, aligned to the Axes of the
// enclosing Radar.
type RadarSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Radar is a radar chart specification.
type Radar struct {
	Title  string        `json:"title"`
	Axes   []string      `json:"axes"`
	Series []RadarSeries `json:"series"`
}

// TableRow is one ranked row of a highlight table.
type TableRow struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
}

// Table is a ranked table specification.
type Table struct {
	Title  string     `json:"title"`
	Metric string     `json:"metric"`
	Rows   []TableRow `json:"rows"`
}
