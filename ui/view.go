package ui

import (
	"context"
	"io"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/nav"
)

// View is one rendered logical page. Load fetches whatever the page needs
// and must respect ctx: a cancelled ctx means the user navigated away and
// the result is discarded. Render writes the current local state; it is
// never called with a half-populated view.
type View interface {
	Page() nav.Page
	Load(ctx context.Context)
	Render(w io.Writer)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

const genericErrorText = "Something went wrong. Please try again."

// userMessage maps the error taxonomy to what the end user sees: API
// messages verbatim where user-meaningful, network failures with a retry
// hint, contract violations and everything else as a generic message.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	switch cause := errors.Cause(err).(type) {
	case *core.NetworkError:
		return "Cannot reach the server. Check your connection and retry."
	case *core.APIError:
		if cause.Message != "" && cause.Message != http.StatusText(cause.StatusCode) {
			return cause.Message
		}
		return genericErrorText
	case *core.DataContractError:
		return genericErrorText
	case *core.ValidationError:
		if len(cause.Fields) > 0 {
			return cause.Fields[0].Field + ": " + cause.Fields[0].Error
		}
		return cause.Error()
	default:
		if flds := core.TranslateValidationErrors(err); len(flds) > 0 {
			return flds[0].Field + ": " + flds[0].Error
		}
		return genericErrorText
	}
}
