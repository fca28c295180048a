package cli

import (
	"context"
	"fmt"
	"io"
	"time"
)

const splashBanner = `
  _                       _ _                 _
 | |_ _ __ __ ___   _____| | |__   ___   ___ | | __
 | __| '__/ _' \ \ / / _ \ | '_ \ / _ \ / _ \| |/ /
 | |_| | | (_| |\ V /  __/ | |_) | (_) | (_) |   <
  \__|_|  \__,_| \_/ \___|_|_.__/ \___/ \___/|_|\_\
`

// Splash prints the startup banner and waits for delay or until ctx is done.
// A non-positive delay returns immediately.
func Splash(ctx context.Context, w io.Writer, delay time.Duration) error {
	fmt.Fprint(w, splashBanner+"\n")
	fmt.Fprintln(w, "Loading...")

	if delay <= 0 {
		return nil
	}

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
