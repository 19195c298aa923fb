package app

import "errors"

// ErrQuit signals a clean user-requested exit from the event loop.
var ErrQuit = errors.New("quit")
