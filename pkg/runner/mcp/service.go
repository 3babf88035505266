// Package mcp provides the Model Context Protocol server integration for nomilog.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/calendar"
	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/stats"
)

// Service adapts the record repository to the shapes the MCP tools return.
type Service struct {
	Records *app.Service
	// Now defaults to time.Now.
	Now func() time.Time
}

// RecordDTO is a record flattened for clients.
type RecordDTO struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"categoryLabel"`
	Color         string  `json:"color"`
	Name          string  `json:"name"`
	Rating        int     `json:"rating"`
	Store         *string `json:"store,omitempty"`
	Memo          *string `json:"memo,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// CategoryDTO describes one category.
type CategoryDTO struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Meaning string   `json:"meaning"`
	Color   string   `json:"color"`
	Aliases []string `json:"aliases,omitempty"`
}

// ListOptions filter list_records.
type ListOptions struct {
	Query      string   `json:"query"`
	Categories []string `json:"categories"`
	Ratings    []int    `json:"ratings"`
	On         string   `json:"on"`
	Limit      int      `json:"limit"`
}

// UpdateOptions carry the fields update_record changes. Nil leaves a field alone.
type UpdateOptions struct {
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Name     *string `json:"name"`
	Rating   *int    `json:"rating"`
	Store    *string `json:"store"`
	Memo     *string `json:"memo"`
}

// DayDTO is one calendar cell.
type DayDTO struct {
	Day     int      `json:"day"`
	Date    string   `json:"date"`
	Markers []string `json:"markers"`
	Colors  []string `json:"colors"`
	Today   bool     `json:"today,omitempty"`
}

// MonthDTO is a month grid without blanks; Offset says how many precede day 1.
type MonthDTO struct {
	Month  string   `json:"month"`
	Offset int      `json:"offset"`
	Days   []DayDTO `json:"days"`
}

func NewService(records *app.Service) *Service {
	return &Service{Records: records}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	if s.Records != nil && s.Records.Now != nil {
		return s.Records.Now()
	}
	return time.Now()
}

// ListRecords returns the timeline, filtered and optionally truncated.
func (s *Service) ListRecords(ctx context.Context, opts ListOptions) ([]RecordDTO, error) {
	if s.Records == nil {
		return nil, errors.New("records are not configured")
	}
	criteria := stats.Criteria{Query: opts.Query, Ratings: opts.Ratings}
	for _, raw := range opts.Categories {
		c, err := category.Parse(raw)
		if err != nil {
			return nil, err
		}
		criteria.Categories = append(criteria.Categories, c)
	}
	if strings.TrimSpace(opts.On) != "" {
		on, err := record.ParseTime(strings.TrimSpace(opts.On))
		if err != nil {
			return nil, err
		}
		criteria.On = &on
	}
	records := stats.Filter(s.Records.Timeline(ctx), criteria)
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return toDTOs(records), nil
}

// GetRecord returns one record by id or unique id prefix.
func (s *Service) GetRecord(ctx context.Context, id string) (*RecordDTO, error) {
	full, err := s.Records.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := s.Records.Get(ctx, full)
	if err != nil {
		return nil, err
	}
	dto := toDTO(r)
	return &dto, nil
}

// AddRecord validates and stores a new record.
func (s *Service) AddRecord(ctx context.Context, in record.Input) (*RecordDTO, error) {
	if strings.TrimSpace(in.Date) == "" {
		in.Date = s.now().Format("2006-01-02")
	}
	in.Category = categoryKey(in.Category)
	r, err := s.Records.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	dto := toDTO(r)
	return &dto, nil
}

// UpdateRecord applies the set fields of opts to the record.
func (s *Service) UpdateRecord(ctx context.Context, id string, opts UpdateOptions) (*RecordDTO, error) {
	full, err := s.Records.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	current, err := s.Records.Get(ctx, full)
	if err != nil {
		return nil, err
	}
	in := current.Input()
	if opts.Date != nil {
		in.Date = *opts.Date
	}
	if opts.Category != nil {
		in.Category = categoryKey(*opts.Category)
	}
	if opts.Name != nil {
		in.Name = *opts.Name
	}
	if opts.Rating != nil {
		in.Rating = *opts.Rating
	}
	if opts.Store != nil {
		in.Store = *opts.Store
	}
	if opts.Memo != nil {
		in.Memo = *opts.Memo
	}
	r, err := s.Records.Update(ctx, full, in)
	if err != nil {
		return nil, err
	}
	dto := toDTO(r)
	return &dto, nil
}

// DeleteRecord removes a record; unknown ids report deleted == false.
func (s *Service) DeleteRecord(ctx context.Context, id string) (bool, error) {
	full, err := s.Records.ResolveID(ctx, id)
	if errors.Is(err, app.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.Records.Delete(ctx, full); err != nil {
		return false, err
	}
	return true, nil
}

// Stats aggregates over a period such as "all", "month" or "2w".
func (s *Service) Stats(ctx context.Context, period string) (app.ReportResult, error) {
	p, err := stats.ParsePeriod(period)
	if err != nil {
		return app.ReportResult{}, err
	}
	return s.Records.Report(ctx, p), nil
}

// MonthCalendar builds the grid for "2006-01"; empty means this month.
func (s *Service) MonthCalendar(ctx context.Context, month string) (*MonthDTO, error) {
	now := s.now()
	m := calendar.MonthOf(now)
	if strings.TrimSpace(month) != "" {
		var err error
		if m, err = calendar.ParseMonth(strings.TrimSpace(month)); err != nil {
			return nil, fmt.Errorf("invalid month %q, expected 2006-01", month)
		}
	}
	records := s.Records.MonthChronological(ctx, m.Year, m.Month)
	grid := calendar.BuildMonth(m, records, calendar.Options{Today: now})

	out := &MonthDTO{Month: fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))}
	for _, c := range grid.Cells {
		if c.Blank {
			out.Offset++
			continue
		}
		day := DayDTO{Day: c.Day, Date: c.Date.Format("2006-01-02"), Colors: c.Colors(), Today: c.Today, Markers: []string{}}
		for _, m := range c.Markers {
			day.Markers = append(day.Markers, m.Key())
		}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

// Premium reports the settings object.
func (s *Service) Premium(ctx context.Context) record.Settings {
	return s.Records.Settings(ctx)
}

// Categories lists every category in order.
func Categories() []CategoryDTO {
	out := make([]CategoryDTO, 0, len(category.All()))
	for _, c := range category.All() {
		info := c.Info()
		out = append(out, CategoryDTO{Key: info.Key, Label: info.Label, Meaning: info.Meaning, Color: info.Color, Aliases: info.Aliases})
	}
	return out
}

func categoryKey(s string) string {
	if c, err := category.Parse(s); err == nil {
		return c.Key()
	}
	return s
}

func toDTO(r *record.Record) RecordDTO {
	dto := RecordDTO{
		ID:            r.ID,
		Date:          r.Date.DateString(),
		Category:      r.Category.Key(),
		CategoryLabel: r.Category.Label(),
		Color:         r.Category.Color(),
		Name:          r.Name,
		Rating:        r.Rating,
		CreatedAt:     r.CreatedAt.String(),
		UpdatedAt:     r.UpdatedAt.String(),
	}
	if v, ok := r.Store.Get(); ok {
		dto.Store = &v
	}
	if v, ok := r.Memo.Get(); ok {
		dto.Memo = &v
	}
	return dto
}

func toDTOs(records []*record.Record) []RecordDTO {
	out := make([]RecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, toDTO(r))
	}
	return out
}
