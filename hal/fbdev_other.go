//go:build !linux && !tinygo

package hal

import "context"

// RunFramebuffer is only available on Linux.
func RunFramebuffer(_ context.Context, _ string, _ HostOptions, _ func(HAL) func() error, _ HeadlessConfig) error {
	return ErrNotImplemented
}
