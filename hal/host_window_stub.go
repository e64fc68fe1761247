//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ HostOptions, _ func(h HAL) func() error) error {
	return errors.New("simulator window requires cgo (build/run with CGO_ENABLED=1)")
}
