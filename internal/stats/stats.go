// Package stats computes the numeric summaries the views need. Every
// function is pure: same rows in, same numbers out.
package stats

import (
	"math"
	"sort"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
)

// Total sums a metric over the rows.
func Total(rows []players.StatLine, metric domain.Metric) float64 {
	var sum float64
	for _, row := range rows {
		sum += row.Metric(metric)
	}
	return sum
}

// TopK returns the k rows with the largest metric value, sorted descending.
// The sort is stable so ties keep their original order and repeated calls
// are reproducible. Fewer than k rows returns them all; k <= 0 returns none.
func TopK(rows []players.StatLine, metric domain.Metric, k int) []players.StatLine {
	if k <= 0 {
		return nil
	}

	sorted := make([]players.StatLine, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Metric(metric) > sorted[j].Metric(metric)
	})

	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

// GroupKey identifies a (player, season) aggregation bucket.
type GroupKey struct {
	FullName string
	Season   int
}

// StdDevByGroup computes the sample standard deviation of a metric per
// (full name, season) group. Groups with fewer than two rows yield NaN: the
// value is undefined there, and consumers render it as "no data" rather than
// zero. Rows without a known season are excluded.
func StdDevByGroup(rows []players.StatLine, metric domain.Metric) map[GroupKey]float64 {
	type acc struct {
		n     int
		sum   float64
		sumSq float64
	}

	groups := make(map[GroupKey]*acc)
	for _, row := range rows {
		if !row.HasSeason() {
			continue
		}
		key := GroupKey{FullName: row.FullName, Season: row.Season}
		a, ok := groups[key]
		if !ok {
			a = &acc{}
			groups[key] = a
		}
		v := row.Metric(metric)
		a.n++
		a.sum += v
		a.sumSq += v * v
	}

	out := make(map[GroupKey]float64, len(groups))
	for key, a := range groups {
		if a.n < 2 {
			out[key] = math.NaN()
			continue
		}
		mean := a.sum / float64(a.n)
		variance := (a.sumSq - float64(a.n)*mean*mean) / float64(a.n-1)
		if variance < 0 {
			variance = 0
		}
		out[key] = math.Sqrt(variance)
	}
	return out
}

// MeanByPlayer computes per-player means for each metric, aligned to the
// metrics slice. Keyed by full name, so rows with unresolved names group
// under the empty key and callers filtering by name never see them.
func MeanByPlayer(rows []players.StatLine, metrics []domain.Metric) map[string][]float64 {
	counts := make(map[string]int)
	sums := make(map[string][]float64)

	for _, row := range rows {
		if _, ok := sums[row.FullName]; !ok {
			sums[row.FullName] = make([]float64, len(metrics))
		}
		counts[row.FullName]++
		for i, m := range metrics {
			sums[row.FullName][i] += row.Metric(m)
		}
	}

	out := make(map[string][]float64, len(sums))
	for name, s := range sums {
		means := make([]float64, len(metrics))
		for i := range s {
			means[i] = s[i] / float64(counts[name])
		}
		out[name] = means
	}
	return out
}

// MinMaxNormalize rescales one column of values to [0, 1] via
// (v - min) / (max - min). When every value is identical the midpoint 0.5 is
// returned for all of them, keeping degenerate radar charts centered instead
// of dividing by zero.
func MinMaxNormalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	if max == min {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}

// DistinctGames counts the distinct game IDs among the rows.
func DistinctGames(rows []players.StatLine) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[row.GameID] = struct{}{}
	}
	return len(seen)
}

// LeagueAverage divides the metric total by the distinct-game count supplied
// by the caller (either the games table or DistinctGames over the scoped
// rows). A zero denominator is reported as ErrNoGamesInScope, never as zero
// or infinity.
func LeagueAverage(rows []players.StatLine, metric domain.Metric, gameCount int) (float64, error) {
	if gameCount <= 0 {
		return 0, domain.ErrNoGamesInScope
	}
	return Total(rows, metric) / float64(gameCount), nil
}

// SeasonValue is one point of a per-season trend.
type SeasonValue struct {
	Season int     `json:"season"`
	Value  float64 `json:"value"`
}

// PerSeasonRatio computes sum(metric) / distinct games for each season,
// ordered by season ascending. Rows without a known season are excluded, and
// a season only appears when it has at least one game in scope.
func PerSeasonRatio(rows []players.StatLine, metric domain.Metric) []SeasonValue {
	sums := make(map[int]float64)
	gameIDs := make(map[int]map[string]struct{})

	for _, row := range rows {
		if !row.HasSeason() {
			continue
		}
		sums[row.Season] += row.Metric(metric)
		if gameIDs[row.Season] == nil {
			gameIDs[row.Season] = make(map[string]struct{})
		}
		gameIDs[row.Season][row.GameID] = struct{}{}
	}

	seasons := make([]int, 0, len(sums))
	for season := range sums {
		if len(gameIDs[season]) == 0 {
			continue
		}
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)

	out := make([]SeasonValue, 0, len(seasons))
	for _, season := range seasons {
		out = append(out, SeasonValue{
			Season: season,
			Value:  sums[season] / float64(len(gameIDs[season])),
		})
	}
	return out
}
