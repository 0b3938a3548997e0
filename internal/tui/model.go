// Package tui is a terminal rendition of the price dashboard.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"houseprice/pkg/types"
)

// Service is the subset of the manager the dashboard needs.
type Service interface {
	Options() (types.OptionsResponse, error)
	Estimate(ctx context.Context, req types.EstimateRequest) (types.EstimateResponse, error)
}

// Field order on screen.
const (
	FieldLocation = iota
	FieldSquareFeet
	FieldBedrooms
	FieldBathrooms
	numFields
)

type selector struct {
	label string
	names []string // location names; nil for numeric selectors
	nums  []int
	idx   int
}

func (s *selector) len() int {
	if s.names != nil {
		return len(s.names)
	}
	return len(s.nums)
}

func (s *selector) value() string {
	if s.len() == 0 {
		return "-"
	}
	if s.names != nil {
		return s.names[s.idx]
	}
	return strconv.Itoa(s.nums[s.idx])
}

func (s *selector) num() int {
	if s.names != nil || len(s.nums) == 0 {
		return 0
	}
	return s.nums[s.idx]
}

// move shifts the selection by d, clamped to the ends.
func (s *selector) move(d int) bool {
	n := s.idx + d
	if n < 0 || n >= s.len() {
		return false
	}
	s.idx = n
	return true
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx   context.Context
	svc   Service
	title string

	fields [numFields]selector
	focus  int

	result *types.EstimateResponse
	err    error

	keys KeyMap
	help help.Model
}

// New builds the dashboard from the service's options and computes the
// estimate for the defaults.
func New(ctx context.Context, svc Service, title string) (Model, error) {
	opts, err := svc.Options()
	if err != nil {
		return Model{}, err
	}
	m := Model{ctx: ctx, svc: svc, title: title, keys: DefaultKeyMap(), help: help.New()}
	m.help.Styles.ShortKey = Styles.Focused
	m.help.Styles.ShortDesc = Styles.Hint
	m.help.Styles.ShortSeparator = Styles.Hint

	def := opts.Defaults
	m.fields[FieldLocation] = selector{label: "Location", names: append([]string{}, opts.Locations...)}
	m.fields[FieldLocation].idx = indexOf(opts.Locations, def.Location)
	m.fields[FieldSquareFeet] = numSelector("Square feet", squareFeetChoices(opts), def.SquareFeet)
	m.fields[FieldBedrooms] = numSelector("Bedrooms", opts.Bedrooms, def.Bedrooms)
	m.fields[FieldBathrooms] = numSelector("Bathrooms", opts.Bathrooms, def.Bathrooms)
	m.recompute()
	return m, nil
}

// numSelector starts on def, or on the closest choice when def is not listed.
func numSelector(label string, nums []int, def int) selector {
	s := selector{label: label, nums: append([]int(nil), nums...)}
	best := -1
	for i, n := range nums {
		d := n - def
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			s.idx, best = i, d
		}
	}
	return s
}

// squareFeetChoices expands a slider range into steps, or returns the fixed list.
func squareFeetChoices(opts types.OptionsResponse) []int {
	r := opts.SquareFeetRange
	if r == nil || r.Step <= 0 || r.Max < r.Min {
		return opts.SquareFeet
	}
	out := make([]int, 0, (r.Max-r.Min)/r.Step+1)
	for v := r.Min; v <= r.Max; v += r.Step {
		out = append(out, v)
	}
	return out
}

func indexOf(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return 0
}

// Selection returns the current inputs.
func (m Model) Selection() types.Selection {
	return types.Selection{
		Location:   m.fields[FieldLocation].value(),
		Bedrooms:   m.fields[FieldBedrooms].num(),
		Bathrooms:  m.fields[FieldBathrooms].num(),
		SquareFeet: m.fields[FieldSquareFeet].num(),
	}
}

// Result returns the last estimate, or nil after an error.
func (m Model) Result() *types.EstimateResponse { return m.result }

// Err returns the last estimate error.
func (m Model) Err() error { return m.err }

// Focus returns the focused field.
func (m Model) Focus() int { return m.focus }

func (m *Model) recompute() {
	sel := m.Selection()
	res, err := m.svc.Estimate(m.ctx, types.EstimateRequest{
		Location:   sel.Location,
		Bedrooms:   sel.Bedrooms,
		Bathrooms:  sel.Bathrooms,
		SquareFeet: float64(sel.SquareFeet),
	})
	if err != nil {
		m.result, m.err = nil, err
		return
	}
	m.result, m.err = &res, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.focus > 0 {
				m.focus--
			}
		case key.Matches(msg, m.keys.Down):
			if m.focus < numFields-1 {
				m.focus++
			}
		case key.Matches(msg, m.keys.Left):
			if m.fields[m.focus].move(-1) {
				m.recompute()
			}
		case key.Matches(msg, m.keys.Right):
			if m.fields[m.focus].move(1) {
				m.recompute()
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.title))
	b.WriteString("\n\n")
	for i := range m.fields {
		f := &m.fields[i]
		val := Styles.Value.Render(f.value())
		cursor := "  "
		if i == m.focus {
			cursor = Styles.Focused.Render("> ")
			val = Styles.Focused.Render("< " + f.value() + " >")
		}
		b.WriteString(cursor + Styles.Label.Render(f.label) + val + "\n")
	}

	var card string
	switch {
	case m.err != nil:
		card = Styles.Error.Render(m.err.Error())
	case m.result != nil:
		card = lipgloss.JoinVertical(lipgloss.Left,
			Styles.Hint.Render("Predicted Price"),
			Styles.Price.Render(m.result.Formatted),
		)
		if !m.result.LocationMatched {
			card = lipgloss.JoinVertical(lipgloss.Left, card,
				Styles.Warning.Render("location not recognized"))
		}
	}
	if card != "" {
		b.WriteString(Styles.Card.Render(card))
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return Styles.Box.Render(b.String())
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, svc Service, title string, opts ...tea.ProgramOption) error {
	m, err := New(ctx, svc, title)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}
