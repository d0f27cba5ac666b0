package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/wheelibin/lightify/internal/conversion"
	"github.com/wheelibin/lightify/internal/models"
)

type lightsLoadedMessage struct {
	lights []models.LightState
}

type lightUpdateMessage struct {
	light models.LightState
}

// LightsLoaded replaces every row of the table.
func LightsLoaded(lights []models.LightState) tea.Msg {
	return lightsLoadedMessage{lights: lights}
}

// LightUpdated replaces (or appends) the row of a single light.
func LightUpdated(light models.LightState) tea.Msg {
	return lightUpdateMessage{light: light}
}

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type Model struct {
	table  table.Model
	lights []models.LightState
}

func NewModel() Model {

	columns := []table.Column{
		{Title: "Light", Width: 20},
		{Title: "On", Width: 5},
		{Title: "Brightness", Width: 10},
		{Title: "Temperature", Width: 11},
		{Title: "Colour", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case lightsLoadedMessage:
		m.lights = msg.lights
		m.table.SetRows(rows(m.lights))
		return m, nil

	case lightUpdateMessage:
		_, index, found := lo.FindIndexOf(m.lights, func(l models.LightState) bool { return l.ID == msg.light.ID })
		lights := append([]models.LightState{}, m.lights...)
		if found {
			lights[index] = msg.light
		} else {
			lights = append(lights, msg.light)
		}
		m.lights = lights
		m.table.SetRows(rows(m.lights))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(message)
	return m, cmd
}

func (m Model) View() string {
	return baseStyle.Render(m.table.View()) + "\n"
}

// Rows returns the table rows currently shown.
func (m Model) Rows() []table.Row {
	return m.table.Rows()
}

func rows(lights []models.LightState) []table.Row {
	return lo.Map(lights, func(l models.LightState, _ int) table.Row {
		kelvin := ""
		if l.ColorTemperature > 0 {
			kelvin = fmt.Sprintf("%dK", conversion.KelvinFromHostTemperature(l.ColorTemperature))
		}
		return table.Row{
			l.Name,
			fmt.Sprint(l.On),
			fmt.Sprint(l.Brightness),
			kelvin,
			fmt.Sprintf("#%02x%02x%02x", l.RGBColor.R, l.RGBColor.G, l.RGBColor.B),
		}
	})
}
