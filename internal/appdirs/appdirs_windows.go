//go:build windows

package appdirs

// EnsurePrivate creates dir when missing. Windows ACLs are left alone.
func EnsurePrivate(dir string, _ bool) error {
	if skipDir(dir) {
		return nil
	}
	_, err := statOrCreate(dir)
	return err
}
