package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	u, ok := a.sessions.CurrentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s) ", u.Email)
}

// Root runs the REPL on the app's input until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to travelbook (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
