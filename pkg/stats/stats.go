package stats

import (
	"sort"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

// CategoryStat is the share of one category.
type CategoryStat struct {
	Category   category.Category `json:"category"`
	Count      int               `json:"count"`
	Percentage float64           `json:"percentage"`
}

// RatingStat is the share of one rating value.
type RatingStat struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RatingSummary is the distribution from 5 down to 1 plus the mean.
type RatingSummary struct {
	Distribution [record.MaxRating]RatingStat `json:"distribution"`
	Average      float64                      `json:"average"`
}

// CategoryStats counts records per category. Categories without records are
// left out; the rest are ordered by count, ties keeping category order.
func CategoryStats(records []*record.Record) []CategoryStat {
	counts := make(map[category.Category]int)
	for _, r := range records {
		counts[r.Category]++
	}
	total := float64(len(records))
	out := make([]CategoryStat, 0, len(counts))
	for _, c := range category.All() {
		n := counts[c]
		if n == 0 {
			continue
		}
		out = append(out, CategoryStat{Category: c, Count: n, Percentage: float64(n) / total * 100})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// RatingStats builds the rating distribution. Every bucket is present even
// when empty.
func RatingStats(records []*record.Record) RatingSummary {
	var counts [record.MaxRating + 1]int
	sum := 0
	for _, r := range records {
		if r.Rating >= record.MinRating && r.Rating <= record.MaxRating {
			counts[r.Rating]++
		}
		sum += r.Rating
	}

	var s RatingSummary
	total := len(records)
	for i := range s.Distribution {
		rating := record.MaxRating - i
		s.Distribution[i] = RatingStat{Rating: rating, Count: counts[rating]}
		if total > 0 {
			s.Distribution[i].Percentage = float64(counts[rating]) / float64(total) * 100
		}
	}
	if total > 0 {
		s.Average = float64(sum) / float64(total)
	}
	return s
}

// MostFrequentCategory returns the top category; false when there are no records.
func MostFrequentCategory(records []*record.Record) (category.Category, bool) {
	cs := CategoryStats(records)
	if len(cs) == 0 {
		return category.Other, false
	}
	return cs[0].Category, true
}

// HighestRated returns the first record carrying the maximum rating.
func HighestRated(records []*record.Record) (*record.Record, bool) {
	var best *record.Record
	for _, r := range records {
		if best == nil || r.Rating > best.Rating {
			best = r
		}
	}
	return best, best != nil
}

// Summary bundles the aggregates shown together.
type Summary struct {
	Total        int                `json:"total"`
	Categories   []CategoryStat     `json:"categories"`
	Ratings      RatingSummary      `json:"ratings"`
	MostFrequent *category.Category `json:"mostFrequent,omitempty"`
	HighestRated *record.Record     `json:"highestRated,omitempty"`
}

// Summarize computes every aggregate over records.
func Summarize(records []*record.Record) Summary {
	s := Summary{
		Total:      len(records),
		Categories: CategoryStats(records),
		Ratings:    RatingStats(records),
	}
	if c, ok := MostFrequentCategory(records); ok {
		s.MostFrequent = &c
	}
	if r, ok := HighestRated(records); ok {
		s.HighestRated = r
	}
	return s
}
