//go:build !windows

package cli

// EnableANSI is a no-op everywhere ANSI codes just work.
func EnableANSI() {}
