package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{}

type counter struct {
	n     int
	ticks int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return tickMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		c.ticks++
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			c.n++
		case "q":
			return c, tea.Quit
		case "b":
			return c, tea.Batch(
				func() tea.Msg { return tickMsg{} },
				func() tea.Msg { return tickMsg{} },
			)
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("n=%d ticks=%d", c.n, c.ticks) }

func TestDriver(t *testing.T) {
	d := New(t, counter{})
	assert.Equal(t, "n=0 ticks=1", d.View())

	d.Press("up")
	d.Press("b")
	assert.Equal(t, "n=1 ticks=3", d.View())

	d.Press("q")
	assert.True(t, d.Quitting)
	d.Press("up")
	assert.Equal(t, "n=1 ticks=3", d.View())
}
