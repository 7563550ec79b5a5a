package tui

import "errors"

// ErrAborted signals the user aborted input (e.g., Ctrl+C or declining to
// continue after backing out of the final confirmation).
var ErrAborted = errors.New("tui: aborted")
