//go:build !windows

package engine

import "github.com/go-gl/glfw/v3.3/glfw"

// SetDarkTitleBar is Windows-only chrome styling; elsewhere the compositor
// decides.
func SetDarkTitleBar(_ *glfw.Window) {}
