package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/logging"
)

// SubmitHook runs before a bug is created. It may adjust the draft, or
// return an error to stop the submit.
type SubmitHook func(ctx context.Context, draft *api.BugDraft) error

// submitMsg is the only way a bug gets created: the Create button and ctrl+s
// both dispatch it, Enter in a field never does.
type submitMsg struct{}

type bugCreatedMsg struct {
	bug *api.CreatedBug
}

type submitFailedMsg struct {
	err    error
	vetoed bool
}

// ErrVetoed wraps errors returned by submit hooks.
var ErrVetoed = errors.New("submit cancelled")

func requestSubmit() tea.Msg { return submitMsg{} }

// submitCmd runs hooks in registration order, then creates the bug.
func submitCmd(ctx context.Context, client *api.Client, hooks []SubmitHook, draft api.BugDraft) tea.Cmd {
	return func() tea.Msg {
		for _, hook := range hooks {
			if err := hook(ctx, &draft); err != nil {
				return submitFailedMsg{err: fmt.Errorf("%w: %w", ErrVetoed, err), vetoed: true}
			}
		}
		if client == nil {
			return submitFailedMsg{err: errNoClient}
		}
		created, err := client.CreateBug(ctx, draft)
		if err != nil {
			return submitFailedMsg{err: err}
		}
		return bugCreatedMsg{bug: created}
	}
}

// LogSubmitHook records each submitted draft.
func LogSubmitHook(_ context.Context, draft *api.BugDraft) error {
	logging.L().Info().
		Str("summary", draft.Summary).
		Str("product", draft.Product).
		Str("component", draft.Component).
		Str("version", draft.Version).
		Strs("blocks", draft.Blocks).
		Msg("submitting bug")
	return nil
}

func (a *App) handleSubmit() tea.Cmd {
	if a.submitting {
		return nil
	}
	a.submitting = true
	a.err = ""
	return submitCmd(a.ctx, a.client, a.hooks, a.draft())
}

func (a *App) handleCreated(msg bugCreatedMsg) tea.Cmd {
	a.submitting = false
	id := ""
	if msg.bug != nil {
		id = string(msg.bug.ID)
	}
	logging.L().Info().Str("bug", id).Msg("bug created")
	return tea.Batch(a.resetForm(), a.setToast("success", "Created bug "+id))
}

func (a *App) handleSubmitFailed(msg submitFailedMsg) tea.Cmd {
	a.submitting = false
	if msg.vetoed {
		logging.L().Info().Err(msg.err).Msg("submit vetoed")
		return a.setToast("warning", msg.err.Error())
	}
	logging.L().Error().Err(msg.err).Msg("create bug failed")
	a.err = msg.err.Error()
	return nil
}
