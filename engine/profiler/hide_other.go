//go:build profile && !windows

package profiler

func hideWindowAttr() any { return nil }
