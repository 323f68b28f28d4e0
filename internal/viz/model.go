package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/qlture/internal/cycle"
)

const minTick = time.Millisecond

type TickMsg time.Time

// Model is the Bubble Tea model wrapping a display cycle. The cycle is
// shared by pointer, so copies of Model made by Bubble Tea all drive the
// same state.
type Model struct {
	cycle  *cycle.Cycle
	canvas *Canvas
	keys   cycle.Keymap
}

func NewModel(src cycle.Source, opts cycle.Options, keys cycle.Keymap) Model {
	canvas := &Canvas{}
	return Model{
		cycle:  cycle.New(src, canvas, opts),
		canvas: canvas,
		keys:   keys,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick wakes the program at the cycle's next deadline.
func (m Model) tick() tea.Cmd {
	d := time.Until(m.cycle.NextDeadline())
	if d < minTick {
		d = minTick
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// one row is reserved for the status line
		m.cycle.Resize(CellSize(msg.Width, msg.Height-1))
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.cycle.Key(m.keys.Lookup(msg.String())) == cycle.Quit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.cycle.Click()
		}
	case TickMsg:
		m.cycle.Advance(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.String())
	b.WriteString("\n")
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	state := StatusRunning.Render("running")
	if m.cycle.Paused() {
		state = StatusPaused.Render("paused")
	}
	w, h := m.cycle.Size()
	return strings.Join([]string{
		state,
		MetricLabel.Render("profile ") + MetricValue.Render(m.cycle.Profile().Name),
		MetricLabel.Render("size ") + MetricValue.Render(fmt.Sprintf("%dx%d", w, h)),
		MetricLabel.Render(m.cycle.Current().String()),
		KeyHint.Render(fmt.Sprintf("%s pause  %s quit  click next", m.keys.Pause, m.keys.Quit)),
	}, "  ")
}

// Run blocks until the user quits.
func Run(src cycle.Source, opts cycle.Options, keys cycle.Keymap) error {
	p := tea.NewProgram(NewModel(src, opts, keys), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
