package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

func on(date string, c category.Category) *record.Record {
	t, err := record.ParseTime(date)
	if err != nil {
		panic(err)
	}
	return &record.Record{ID: date, Date: record.Day(t), Category: c, Name: "x", Rating: 3}
}

func blanks(g Grid) int {
	n := 0
	for _, c := range g.Cells {
		if c.Blank {
			n++
		}
	}
	return n
}

func TestBuildMonthLeapFebruary(t *testing.T) {
	g := BuildMonth(Month{Year: 2024, Month: time.February}, nil, Options{})
	assert.Len(t, g.Cells, 33)
	assert.Equal(t, 4, blanks(g))
	for i := 0; i < 4; i++ {
		assert.True(t, g.Cells[i].Blank)
	}
	assert.Equal(t, 1, g.Cells[4].Day)
	assert.Equal(t, 29, g.Cells[len(g.Cells)-1].Day)
}

func TestBuildMonthThirtyDaysFromWednesday(t *testing.T) {
	// November 2023 starts on a Wednesday.
	g := BuildMonth(Month{Year: 2023, Month: time.November}, nil, Options{})
	assert.Len(t, g.Cells, 33)
	assert.Equal(t, 3, blanks(g))
}

func TestBuildMonthMarkers(t *testing.T) {
	records := []*record.Record{
		on("2024-02-14", category.Beer),
		on("2024-02-14", category.Sake),
		on("2024-02-14", category.Beer),
		on("2024-02-14", category.Whiskey),
		on("2024-02-15", category.Cocktail),
		on("2024-03-14", category.Other),
	}
	g := BuildMonth(Month{Year: 2024, Month: time.February}, records, Options{})

	c, ok := g.Day(14)
	require.True(t, ok)
	assert.Equal(t, []category.Category{category.Beer, category.Sake, category.Beer}, c.Markers)
	assert.Equal(t, []string{"#FFA500", "#E6E6FA", "#FFA500"}, c.Colors())

	c, _ = g.Day(15)
	assert.Equal(t, []category.Category{category.Cocktail}, c.Markers)

	c, _ = g.Day(16)
	assert.Empty(t, c.Markers)
}

func TestBuildMonthSelectedAndToday(t *testing.T) {
	sel := time.Date(2024, time.February, 10, 18, 0, 0, 0, time.Local)
	today := time.Date(2024, time.February, 20, 8, 0, 0, 0, time.Local)
	g := BuildMonth(Month{Year: 2024, Month: time.February}, nil, Options{Selected: &sel, Today: today})

	for _, c := range g.Cells {
		assert.Equal(t, c.Day == 10 && !c.Blank, c.Selected, "day %d selected", c.Day)
		assert.Equal(t, c.Day == 20 && !c.Blank, c.Today, "day %d today", c.Day)
	}

	// A selection in another month flags nothing.
	other := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	g = BuildMonth(Month{Year: 2024, Month: time.February}, nil, Options{Selected: &other})
	for _, c := range g.Cells {
		assert.False(t, c.Selected)
	}
}

func TestMonthNavigation(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}
	assert.Equal(t, Month{Year: 2023, Month: time.December}, jan.Prev())
	assert.Equal(t, Month{Year: 2024, Month: time.February}, jan.Next())
	assert.Equal(t, Month{Year: 2025, Month: time.January}, Month{Year: 2024, Month: time.December}.Next())
	assert.Equal(t, 29, jan.Next().Days())

	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.February}, m)
	_, err = ParseMonth("Feb")
	assert.Error(t, err)
}

func TestWeeks(t *testing.T) {
	g := BuildMonth(Month{Year: 2024, Month: time.February}, nil, Options{})
	weeks := g.Weeks()
	require.Len(t, weeks, 5)
	assert.Len(t, weeks[0], 7)
	assert.Len(t, weeks[4], 5)
}

func TestRender(t *testing.T) {
	records := []*record.Record{on("2024-02-14", category.Beer)}
	g := BuildMonth(Month{Year: 2024, Month: time.February}, records, Options{})
	out := Render(g, DefaultStyle())

	lines := strings.Split(out, "\n")
	// title, header, two lines per week
	require.Len(t, lines, 2+2*5)
	assert.Contains(t, lines[0], "February 2024")
	assert.Contains(t, lines[1], "Su")
	assert.Contains(t, out, "29")
	assert.Contains(t, out, "•")
	assert.LessOrEqual(t, lipgloss.Width(lines[2]), 7*cellWidth)
}
