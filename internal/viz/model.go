package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajsim/internal/ballistics"
)

const (
	width  = 80
	height = 24

	// FrameInterval is the playback period of one trajectory sample.
	FrameInterval = 40 * time.Millisecond
)

type TickMsg time.Time

// Model animates a vacuum/drag comparison one sample per tick.
type Model struct {
	cmp     *ballistics.Comparison
	title   string
	frame   int
	frames  int
	running bool
	theme   Theme

	axes, vacuum, drag, markers *Canvas
	vp                          Viewport

	keys KeyMap
	help help.Model
}

func NewModel(cmp *ballistics.Comparison, title string) Model {
	axes := NewCanvas(width, height)
	return Model{
		cmp:     cmp,
		title:   title,
		frames:  cmp.Frames(),
		running: true,
		theme:   CurrentTheme,
		axes:    axes,
		vacuum:  NewCanvas(width, height),
		drag:    NewCanvas(width, height),
		markers: NewCanvas(width, height),
		vp:      ForCanvas(cmp, axes),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Play runs the playback until the user quits.
func Play(cmp *ballistics.Comparison, title string) error {
	_, err := tea.NewProgram(NewModel(cmp, title)).Run()
	return err
}

func (m Model) Frame() int    { return m.frame }
func (m Model) Running() bool { return m.running }
func (m Model) Done() bool    { return m.frame >= m.frames-1 }

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.running = !m.running
		case key.Matches(msg, m.keys.Restart):
			m.frame = 0
			m.running = true
		case key.Matches(msg, m.keys.Back):
			m.running = false
			m.seek(-1)
		case key.Matches(msg, m.keys.Forward):
			m.running = false
			m.seek(1)
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
		}
	case TickMsg:
		if m.running && !m.Done() {
			m.frame++
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) seek(dir int) {
	m.frame += dir
	if m.frame < 0 {
		m.frame = 0
	}
	if m.frame > m.frames-1 {
		m.frame = max(m.frames-1, 0)
	}
}

func (m *Model) draw() {
	for _, c := range []*Canvas{m.axes, m.vacuum, m.drag, m.markers} {
		c.Clear()
	}
	m.axes.DrawAxes()

	n := m.frame + 1
	m.vacuum.DrawTrajectory(m.vp, m.cmp.Vacuum.Head(n))
	m.drag.DrawTrajectory(m.vp, m.cmp.Drag.Head(n))

	for _, traj := range []ballistics.Trajectory{m.cmp.Vacuum, m.cmp.Drag} {
		if traj.Len() == 0 {
			continue
		}
		s := traj.At(m.frame)
		m.markers.DrawMarker(m.vp.MapInt(s.X, s.Y))
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(Compose(
		Layer{Canvas: m.axes, Style: seriesStyle(m.theme.Axes)},
		Layer{Canvas: m.vacuum, Style: seriesStyle(m.theme.Vacuum)},
		Layer{Canvas: m.drag, Style: seriesStyle(m.theme.Drag)},
		Layer{Canvas: m.markers, Style: seriesStyle(m.theme.Marker)},
	))

	var s strings.Builder
	s.WriteString(headerStyle(m.theme).Render(strings.ToUpper(m.title)) + "\n")

	status := StatusRunning.Render("PLAYING")
	switch {
	case m.Done():
		status = StatusPaused.Render("LANDED")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	progress := 1.0
	if m.frames > 1 {
		progress = float64(m.frame) / float64(m.frames-1)
	}
	s.WriteString(ProgressBar(progress, 30) + "\n\n")

	t := max(m.cmp.Vacuum.At(m.frame).T, m.cmp.Drag.At(m.frame).T)
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", t)) + "\n\n")

	s.WriteString(summaryBlock("Vacuum", m.theme.Vacuum, m.cmp.Vacuum.At(m.frame), m.cmp.VacuumSummary))
	s.WriteString("\n")
	s.WriteString(summaryBlock("Drag", m.theme.Drag, m.cmp.Drag.At(m.frame), m.cmp.DragSummary))

	s.WriteString("\n" + m.help.View(m.keys))

	panel := panelStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

func summaryBlock(name string, c lipgloss.Color, cur ballistics.Sample, sm ballistics.Summary) string {
	var s strings.Builder
	s.WriteString(seriesStyle(c).Bold(true).Render(name) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("(%.1f, %.1f) m", cur.X, cur.Y)) + "\n")
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("%.2f m", sm.Range)) + "\n")
	s.WriteString(labelStyle.Render("Height") + valueStyle.Render(fmt.Sprintf("%.2f m", sm.MaxHeight)) + "\n")
	s.WriteString(labelStyle.Render("Flight") + valueStyle.Render(fmt.Sprintf("%.2f s", sm.FlightTime)) + "\n")
	return s.String()
}
