// Package ui is the interactive month browser: a calendar on the left and the
// selected day's records on the right, refreshed when the store changes.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/calendar"
	"tableflip.dev/nomilog/pkg/printers"
	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/stats"
	"tableflip.dev/nomilog/pkg/store"
	"tableflip.dev/nomilog/pkg/timeutil"
)

type recordItem struct{ r *record.Record }

func (it recordItem) Title() string {
	return printers.Stars(it.r.Rating) + " " + it.r.Name
}

func (it recordItem) Description() string {
	desc := it.r.Category.Label()
	if s, ok := it.r.Store.Get(); ok {
		desc += " @ " + s
	}
	return desc
}

func (it recordItem) FilterValue() string { return it.r.Name }

type recordsLoadedMsg struct {
	month   calendar.Month
	records []*record.Record
}

type deletedMsg struct {
	id  string
	err error
}

// Model is the browser state.
type Model struct {
	svc *app.Service
	ctx context.Context
	now func() time.Time

	month    calendar.Month
	selected time.Time
	records  []*record.Record
	grid     calendar.Grid
	theme    Theme

	day list.Model

	width, height int
	status        string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New returns a browser opened on today.
func New(ctx context.Context, svc *app.Service) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 40, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := &Model{
		svc:   svc,
		ctx:   ctx,
		now:   time.Now,
		theme: DefaultTheme(),
		day:   l,
	}
	m.goTo(timeutil.StartOfDay(m.now()))
	return m
}

// Init loads the month and starts watching the store.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) load() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	svc, ctx, month := m.svc, m.ctx, m.month
	return func() tea.Msg {
		return recordsLoadedMsg{
			month:   month,
			records: svc.MonthChronological(ctx, month.Year, month.Month),
		}
	}
}

// goTo selects day t, switching months when needed. It reports whether the
// month changed.
func (m *Model) goTo(t time.Time) bool {
	m.selected = t
	month := calendar.MonthOf(t)
	if month == m.month && m.grid.Cells != nil {
		m.rebuild()
		return false
	}
	m.month = month
	m.records = nil
	m.rebuild()
	return true
}

func (m *Model) rebuild() {
	sel := m.selected
	m.grid = calendar.BuildMonth(m.month, m.records, calendar.Options{Selected: &sel, Today: m.now()})

	onDay := stats.OnDay(m.records, m.selected)
	items := make([]list.Item, 0, len(onDay))
	for _, r := range onDay {
		items = append(items, recordItem{r: r})
	}
	m.day.SetItems(items)
	m.day.Title = m.selected.Format("Mon, Jan 2")
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applySizes()

	case recordsLoadedMsg:
		if msg.month != m.month {
			break
		}
		m.records = msg.records
		m.rebuild()

	case deletedMsg:
		if msg.err != nil {
			m.status = "ERR: " + msg.err.Error()
			break
		}
		m.status = "Deleted " + shortID(msg.id)
		cmds = append(cmds, m.load())

	case watchStartedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, app.ErrNoWatch) {
				m.status = "ERR: watch " + msg.err.Error()
			}
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchEventMsg:
		if msg.event.Key == record.RecordsKey {
			cmds = append(cmds, m.load())
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchStoppedMsg:
		m.stopWatch()

	case tea.KeyPressMsg:
		if cmd, quit := m.handleKey(msg); quit {
			m.stopWatch()
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return nil, true
	case "left":
		return m.move(m.selected.AddDate(0, 0, -1)), false
	case "right":
		return m.move(m.selected.AddDate(0, 0, 1)), false
	case "up":
		return m.move(m.selected.AddDate(0, 0, -7)), false
	case "down":
		return m.move(m.selected.AddDate(0, 0, 7)), false
	case "h", "pgup":
		return m.move(m.shiftMonth(-1)), false
	case "l", "pgdown":
		return m.move(m.shiftMonth(1)), false
	case "t":
		return m.move(timeutil.StartOfDay(m.now())), false
	case "j":
		m.day.CursorDown()
	case "k":
		m.day.CursorUp()
	case "x":
		if it, ok := m.day.SelectedItem().(recordItem); ok {
			return m.remove(it.r.ID), false
		}
	}
	return nil, false
}

func (m *Model) move(t time.Time) tea.Cmd {
	if m.goTo(t) {
		return m.load()
	}
	return nil
}

// shiftMonth keeps the selected day number, clamped to the target month.
func (m *Model) shiftMonth(delta int) time.Time {
	target := m.month.Prev()
	if delta > 0 {
		target = m.month.Next()
	}
	day := min(m.selected.Day(), target.Days())
	return time.Date(target.Year, target.Month, day, 0, 0, 0, 0, time.Local)
}

func (m *Model) remove(id string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		return deletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Calendar is 7 cells of 4; each frame costs 4 columns and 2 rows.
	right := m.width - 7*4 - 4*2 - 2
	if right < 20 {
		right = 20
	}
	m.day.SetSize(right, max(m.height-3, 5))
}

// View renders the calendar, the day list and a status line.
func (m *Model) View() string {
	left := m.theme.Frame.Render(calendar.Render(m.grid, m.theme.Calendar))
	right := m.day.View()
	if len(m.day.Items()) == 0 {
		right = m.day.Title + "\n\n" + m.theme.Help.Render("no drinks logged")
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.theme.Frame.Render(right))

	var line string
	switch {
	case strings.HasPrefix(m.status, "ERR:"):
		line = m.theme.Error.Render(m.status)
	case m.status != "":
		line = m.theme.Status.Render(m.status)
	default:
		line = m.theme.Help.Render("←/→/↑/↓ day  h/l month  t today  j/k record  x delete  q quit")
	}
	return strings.Join([]string{body, line}, "\n")
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run launches the browser.
func Run(ctx context.Context, svc *app.Service) error {
	if svc == nil {
		return fmt.Errorf("ui requires a record service")
	}
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
