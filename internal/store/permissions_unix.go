//go:build unix

package store

import "os"

// setPermissions widens the database file mode so sibling tooling of the
// desktop shell can read it. Errors are ignored.
func setPermissions(path string) {
	_ = os.Chmod(path, 0o666)
}
