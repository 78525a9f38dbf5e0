//go:build !unix

package store

// File modes are not meaningful on non-POSIX hosts.
func setPermissions(string) {}
