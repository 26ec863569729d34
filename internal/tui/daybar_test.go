package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDayBar_Width(t *testing.T) {
	t.Parallel()

	bar := NewDayBar(DefaultDayBarWidth)
	assert.Equal(t, DefaultDayBarWidth, bar.Width())

	for _, f := range []float64{0, 0.25, 0.5, 1} {
		assert.Equal(t, DefaultDayBarWidth, lipgloss.Width(bar.Render(f)), "fraction %v", f)
	}
}

func TestDayBar_Clamps(t *testing.T) {
	t.Parallel()

	bar := NewDayBar(10)

	assert.Equal(t, bar.Render(0), bar.Render(-1))
	assert.Equal(t, bar.Render(1), bar.Render(2))
}

func TestDayBar_FillGrows(t *testing.T) {
	t.Parallel()

	bar := NewDayBar(10)
	full := string(bar.bar.Full)

	assert.NotContains(t, bar.Render(0), full)
	assert.Less(t, strings.Count(bar.Render(0.3), full), strings.Count(bar.Render(0.8), full))
	assert.Equal(t, 10, strings.Count(bar.Render(1), full))
}
