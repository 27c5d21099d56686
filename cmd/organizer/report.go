package organizer

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/organizer/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// reportedError marks an error that has already been rendered to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already shown to the user through the
// command's status renderer.
func Reported(err error) bool {
	var r *reportedError
	return stderrors.As(err, &r)
}

// newStatusRenderer returns a renderer for notices and errors. It writes to
// stderr in the selected format so stdout only carries results.
func newStatusRenderer(cmd *cobra.Command, format string) (ui.Renderer, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(f, cmd.ErrOrStderr())
}

// reportError renders err through status and marks it as reported.
func reportError(status ui.Renderer, err error) error {
	if err == nil || status == nil {
		return err
	}
	if rerr := status.RenderError(err); rerr != nil {
		log.Error().Err(rerr).Msg("Failed to render error")
		return err
	}
	return &reportedError{err: err}
}

// notify renders a formatted notice through status.
func notify(status ui.Renderer, format string, args ...interface{}) {
	if status == nil {
		return
	}
	if err := status.RenderMessage(fmt.Sprintf(format, args...)); err != nil {
		log.Error().Err(err).Msg("Failed to render message")
	}
}
