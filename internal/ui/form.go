package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/blocks"
	"github.com/gravitrone/bugform/internal/blocksync"
)

// focus is a stop in the form's tab order.
type focus int

const (
	focusSummary focus = iota
	focusDescription
	focusBlocks
	focusSyncRow
	focusProduct
	focusComponent
	focusVersion
	focusCreate
	focusCount
)

var focusLabels = [focusCount]string{
	focusSummary:     "Summary",
	focusDescription: "Description",
	focusBlocks:      "Blocks",
	focusSyncRow:     "Sync from",
	focusProduct:     "Product",
	focusComponent:   "Component",
	focusVersion:     "Version",
	focusCreate:      "",
}

// syncedFocus maps the widget-owned fields to their inputs.
var syncedFocus = map[blocksync.FieldKey]focus{
	blocksync.Product:   focusProduct,
	blocksync.Component: focusComponent,
	blocksync.Version:   focusVersion,
}

func isTextInput(f focus) bool {
	switch f {
	case focusSummary, focusBlocks, focusProduct, focusComponent, focusVersion:
		return true
	}
	return false
}

// fieldKeyFor reports which synced field an input edits.
func fieldKeyFor(f focus) (blocksync.FieldKey, bool) {
	for key, ff := range syncedFocus {
		if ff == f {
			return key, true
		}
	}
	return 0, false
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Width = 48
	return ti
}

func newDescription() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Steps to reproduce, expected and actual results (markdown)"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(48)
	ta.SetHeight(5)
	return ta
}

func newInputs() [focusCount]textinput.Model {
	var inputs [focusCount]textinput.Model
	inputs[focusSummary] = newInput("One-line summary", 255)
	inputs[focusBlocks] = newInput("e.g. 1234, 1240", 0)
	inputs[focusProduct] = newInput(blocksync.Product.Placeholder(), 64)
	inputs[focusComponent] = newInput(blocksync.Component.Placeholder(), 64)
	inputs[focusVersion] = newInput(blocksync.Version.Placeholder(), 64)
	return inputs
}

// setFocus moves focus to f and returns the cursor blink command.
func (a *App) setFocus(f focus) tea.Cmd {
	for i := range a.inputs {
		if isTextInput(focus(i)) {
			a.inputs[i].Blur()
		}
	}
	a.description.Blur()
	a.focus = f

	switch {
	case isTextInput(f):
		return a.inputs[f].Focus()
	case f == focusDescription:
		return a.description.Focus()
	}
	return nil
}

func (a *App) nextFocus() tea.Cmd {
	return a.setFocus((a.focus + 1) % focusCount)
}

func (a *App) prevFocus() tea.Cmd {
	return a.setFocus((a.focus + focusCount - 1) % focusCount)
}

// resizeInputs fits the inputs to the form box.
func (a *App) resizeInputs(contentWidth int) {
	w := contentWidth - FieldLabelStyle.GetWidth() - 1
	if w < 16 {
		w = 16
	}
	for i := range a.inputs {
		if isTextInput(focus(i)) {
			a.inputs[i].Width = w
		}
	}
	a.description.SetWidth(w)
}

// updateInput feeds msg to the focused text input and propagates the edit to
// the block-sync widget.
func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	value := a.inputs[a.focus].Value()

	switch a.focus {
	case focusBlocks:
		if value != a.widget.BlocksText() {
			a.widget.SetBlocks(value)
			a.clampSyncIndex()
		}
	default:
		if key, ok := fieldKeyFor(a.focus); ok {
			a.widget.SetValue(key, value)
		}
	}
	return cmd
}

// syncInputsFromWidget copies widget field values into the inputs after the
// widget changed them.
func (a *App) syncInputsFromWidget() {
	fields := a.widget.Fields()
	for key, f := range syncedFocus {
		a.inputs[f].SetValue(fields.Get(key).Value)
	}
}

func (a *App) clampSyncIndex() {
	n := len(a.widget.Buttons())
	if a.syncIndex >= n {
		a.syncIndex = n - 1
	}
	if a.syncIndex < 0 {
		a.syncIndex = 0
	}
}

// draft collects the form into a create payload.
func (a App) draft() api.BugDraft {
	fields := a.widget.Fields()
	return api.BugDraft{
		Summary:     strings.TrimSpace(a.inputs[focusSummary].Value()),
		Description: a.description.Value(),
		Product:     fields.Product.Value,
		Component:   fields.Component.Value,
		Version:     fields.Version.Value,
		Blocks:      blocks.Identifiers(a.inputs[focusBlocks].Value()),
	}
}

// hasUnsaved reports whether quitting would lose typed input.
func (a App) hasUnsaved() bool {
	for i := range a.inputs {
		if isTextInput(focus(i)) && strings.TrimSpace(a.inputs[i].Value()) != "" {
			return true
		}
	}
	return strings.TrimSpace(a.description.Value()) != ""
}

// resetForm empties every field after a successful create.
func (a *App) resetForm() tea.Cmd {
	for i := range a.inputs {
		if isTextInput(focus(i)) {
			a.inputs[i].SetValue("")
		}
	}
	a.description.Reset()
	a.widget.SetBlocks("")
	a.widget.Click(0)
	a.syncIndex = 0
	return a.setFocus(focusSummary)
}
