package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/blocksync"
	"github.com/gravitrone/bugform/internal/config"
	"github.com/gravitrone/bugform/internal/logging"
	"github.com/gravitrone/bugform/internal/ui/components"
)

// --- Messages ---

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model: the new-bug form with its block-sync row.
type App struct {
	client *api.Client
	config *config.Config

	ctx      context.Context
	cancel   context.CancelFunc
	teardown func()

	widget      *blocksync.Widget
	inputs      [focusCount]textinput.Model
	description textarea.Model
	focus       focus
	syncIndex   int

	hooks      []SubmitHook
	submitting bool

	width       int
	height      int
	err         string
	toast       *appToast
	helpOpen    bool
	quitConfirm bool

	previewOpen bool
	preview     string
}

// NewApp creates the form, mounting the block-sync widget on initialBlocks.
func NewApp(client *api.Client, cfg *config.Config, initialBlocks string) App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx, cancel := context.WithCancel(context.Background())
	widget := blocksync.NewWidget(ctx)

	a := App{
		client:      client,
		config:      cfg,
		ctx:         ctx,
		cancel:      cancel,
		widget:      widget,
		inputs:      newInputs(),
		description: newDescription(),
	}
	a.inputs[focusBlocks].SetValue(initialBlocks)
	a.teardown = widget.Mount(initialBlocks)
	a.setFocus(focusSummary)
	return a
}

// OnSubmit registers a hook run before each create, in registration order.
func (a *App) OnSubmit(hook SubmitHook) {
	a.hooks = append(a.hooks, hook)
}

// Close unmounts the widget and cancels outstanding requests.
func (a App) Close() {
	if a.teardown != nil {
		a.teardown()
	}
	if a.cancel != nil {
		a.cancel()
	}
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeInputs(components.BoxContentWidth(msg.Width))
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil
	case bugFetchedMsg:
		cmd := a.applyFetched(msg)
		return a, cmd
	case submitMsg:
		cmd := a.handleSubmit()
		return a, cmd
	case bugCreatedMsg:
		cmd := a.handleCreated(msg)
		return a, cmd
	case submitFailedMsg:
		cmd := a.handleSubmitFailed(msg)
		return a, cmd
	case tea.KeyMsg:
		return a.handleKeys(msg)
	}

	cmd := a.forwardToFocused(msg)
	return a, cmd
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.quitConfirm {
		switch {
		case isKey(msg, "y"):
			return a.quit()
		case isKey(msg, "n") || isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}
	if a.previewOpen {
		if isBack(msg) || isPreview(msg) || isQuit(msg) {
			a.previewOpen = false
			a.preview = ""
		}
		return a, nil
	}
	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?") {
			a.helpOpen = false
		}
		return a, nil
	}

	switch {
	case isKey(msg, "ctrl+c"):
		return a.requestQuit()
	case isSubmit(msg):
		return a, requestSubmit
	case isPreview(msg):
		return a.openPreview()
	case isNextField(msg):
		cmd := a.nextFocus()
		return a, cmd
	case isPrevField(msg):
		cmd := a.prevFocus()
		return a, cmd
	}

	switch {
	case isTextInput(a.focus):
		switch {
		case isEnter(msg) || isDown(msg):
			cmd := a.nextFocus()
			return a, cmd
		case isUp(msg):
			cmd := a.prevFocus()
			return a, cmd
		}
		cmd := a.updateInput(msg)
		return a, cmd

	case a.focus == focusDescription:
		var cmd tea.Cmd
		a.description, cmd = a.description.Update(msg)
		return a, cmd
	}

	// Button stops: the sync row and Create.
	switch {
	case isQuit(msg):
		return a.requestQuit()
	case isKey(msg, "?"):
		a.helpOpen = true
		return a, nil
	case isUp(msg):
		cmd := a.prevFocus()
		return a, cmd
	case isDown(msg):
		cmd := a.nextFocus()
		return a, cmd
	}

	if a.focus == focusSyncRow {
		n := len(a.widget.Buttons())
		switch {
		case isLeft(msg, a.config.VimKeys):
			if a.syncIndex > 0 {
				a.syncIndex--
			}
		case isRight(msg, a.config.VimKeys):
			if a.syncIndex < n-1 {
				a.syncIndex++
			}
		case isEnter(msg) || isSpace(msg):
			cmd := a.clickSync()
			return a, cmd
		}
		return a, nil
	}

	if a.focus == focusCreate && (isEnter(msg) || isSpace(msg)) {
		return a, requestSubmit
	}
	return a, nil
}

func (a *App) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case isTextInput(a.focus):
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	case a.focus == focusDescription:
		a.description, cmd = a.description.Update(msg)
	}
	return cmd
}

func (a App) requestQuit() (tea.Model, tea.Cmd) {
	if a.hasUnsaved() {
		a.quitConfirm = true
		return a, nil
	}
	return a.quit()
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.Close()
	return a, tea.Quit
}

func (a App) openPreview() (tea.Model, tea.Cmd) {
	out, err := renderPreview(a.draft(), a.config.Theme, components.BoxContentWidth(a.width))
	if err != nil {
		logging.L().Warn().Err(err).Msg("preview failed")
		cmd := a.setToast("error", err.Error())
		return a, cmd
	}
	a.preview = out
	a.previewOpen = true
	return a, nil
}

// --- View ---

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(a.width), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = components.ConfirmDialog("Quit", "Discard the unsaved bug?")
	case a.previewOpen:
		content = components.TitledBox("Preview", a.preview, a.width)
	case a.helpOpen:
		content = a.renderHelp()
	default:
		content = a.renderForm() + "\n" + a.renderBugInfo()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) renderForm() string {
	rows := make([]string, 0, focusCount)
	for f := focusSummary; f < focusCount; f++ {
		rows = append(rows, a.renderStop(f))
	}
	return components.ActiveTitledBox("New Bug", strings.Join(rows, "\n"), a.width)
}

func (a App) renderStop(f focus) string {
	labelStyle := FieldLabelStyle
	if f == a.focus {
		labelStyle = FieldLabelActiveStyle
	}
	label := labelStyle.Render(focusLabels[f])

	switch f {
	case focusDescription:
		return lipgloss.JoinHorizontal(lipgloss.Top, label, a.description.View())
	case focusSyncRow:
		focused := -1
		if a.focus == focusSyncRow {
			focused = a.syncIndex
		}
		row := components.ButtonRow(syncButtonSpecs(a.widget.Buttons()), focused, components.BoxContentWidth(a.width)-FieldLabelStyle.GetWidth())
		if id, ok := a.widget.Pending(); ok {
			row += "\n" + MutedStyle.Render("syncing from "+components.SanitizeOneLine(id)+"…")
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, label, row)
	case focusCreate:
		btn := components.Button(components.ButtonSpec{Label: "Create", Tone: components.ToneDefault}, a.focus == focusCreate)
		if a.submitting {
			btn += " " + MutedStyle.Render("creating…")
		}
		return "\n" + btn
	}
	return label + a.inputs[f].View()
}

// renderBugInfo shows the labels the widget paired with each synced field.
func (a App) renderBugInfo() string {
	fields := a.widget.Fields()
	rows := make([]components.TableRow, 0, len(blocksync.FieldKeys))
	for _, key := range blocksync.FieldKeys {
		field := fields.Get(key)
		rows = append(rows, components.TableRow{
			Label:       focusLabels[syncedFocus[key]],
			Value:       field.Label,
			Placeholder: field.Value == "",
		})
	}
	return components.Table("Synced", rows, a.width)
}

func (a App) renderHelp() string {
	rows := []components.TableRow{
		{Label: "tab / shift+tab", Value: "next / previous field"},
		{Label: "enter", Value: "next field, or press the focused button"},
		{Label: "←/→", Value: "choose a sync button"},
		{Label: "ctrl+s", Value: "create the bug"},
		{Label: "ctrl+p", Value: "preview"},
		{Label: "ctrl+c", Value: "quit"},
	}
	return components.Table("Help", rows, a.width)
}

func (a App) statusHints() []string {
	switch {
	case a.quitConfirm:
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	case a.previewOpen || a.helpOpen:
		return []string{
			components.Hint("esc", "Back"),
		}
	}

	hints := []string{
		components.Hint("tab", "Next"),
	}
	switch a.focus {
	case focusSyncRow:
		hints = append(hints, components.Hint("←/→", "Select"), components.Hint("enter", "Sync"))
	case focusCreate:
		hints = append(hints, components.Hint("enter", "Create"))
	}
	return append(hints,
		components.Hint("ctrl+s", "Create"),
		components.Hint("ctrl+p", "Preview"),
		components.Hint("ctrl+c", "Quit"),
	)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(title, a.toast.text, a.width)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	prefix := strings.Repeat(" ", (width-maxWidth)/2)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
