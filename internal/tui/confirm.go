package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Confirm button labels.
const (
	LabelUpdate  = "Update Timezone"
	LabelKeep    = "Keep Current"
	LabelBusy    = "Updating..."
	LabelUpdated = "✓ Updated!"
)

// ButtonPhase is the confirm button's affordance state.
type ButtonPhase int

const (
	// ButtonIdle accepts confirmation.
	ButtonIdle ButtonPhase = iota
	// ButtonBusy shows the spinner while a commit is pending.
	ButtonBusy
	// ButtonSuccess flashes after a commit until reset.
	ButtonSuccess
)

// ConfirmButton is the modal's confirm control.
type ConfirmButton struct {
	phase   ButtonPhase
	label   string
	spinner spinner.Model
}

// NewConfirmButton returns an idle button labelled LabelUpdate.
func NewConfirmButton() ConfirmButton {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return ConfirmButton{phase: ButtonIdle, label: LabelUpdate, spinner: s}
}

// Phase returns the current phase.
func (b *ConfirmButton) Phase() ButtonPhase { return b.phase }

// Disabled reports whether the button ignores confirmation.
func (b *ConfirmButton) Disabled() bool { return b.phase != ButtonIdle }

// Label returns the text currently shown on the button.
func (b *ConfirmButton) Label() string {
	switch b.phase {
	case ButtonBusy:
		return b.spinner.View() + " " + LabelBusy
	case ButtonSuccess:
		return LabelUpdated
	case ButtonIdle:
	}
	return b.label
}

// Advise sets the idle label from whether pending matches committed.
// The label is advisory and never blocks confirmation.
func (b *ConfirmButton) Advise(pending, committed string) {
	if pending == committed {
		b.label = LabelKeep
		return
	}
	b.label = LabelUpdate
}

// SetBusy disables the button and starts the spinner.
func (b *ConfirmButton) SetBusy() tea.Cmd {
	b.phase = ButtonBusy
	return b.spinner.Tick
}

// SetSuccess flashes the success affordance.
func (b *ConfirmButton) SetSuccess() {
	b.phase = ButtonSuccess
}

// Reset returns the button to idle with the default label.
func (b *ConfirmButton) Reset() {
	b.phase = ButtonIdle
	b.label = LabelUpdate
}

// Update advances the spinner while busy.
func (b *ConfirmButton) Update(msg spinner.TickMsg) tea.Cmd {
	if b.phase != ButtonBusy {
		return nil
	}
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return cmd
}

// View renders the button.
func (b *ConfirmButton) View(styles *Styles) string {
	switch b.phase {
	case ButtonBusy:
		return styles.ButtonBusy.Render(b.Label())
	case ButtonSuccess:
		return styles.ButtonSuccess.Render(b.Label())
	case ButtonIdle:
	}
	return styles.ButtonPrimary.Render(b.Label())
}
