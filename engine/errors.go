package engine

import "errors"

var (
	ErrDeviceUnavailable = errors.New("no audio output device available")
	ErrOutputClosed      = errors.New("audio output is closed")
)
