/*
File    : husk/iohelper/file.go
Author  : husk contributors
*/

// Package iohelper implements the whole-file read/write helpers behind
// the `readfile`/`writefile` statement forms (§4.3.1). Both commands
// expose failure as an in-language value rather than a FatalError
// (§7), so this package reports failure with a plain ok bool instead
// of an error.
package iohelper

import "os"

// ReadFile returns the full contents of path and true on success, or
// ("", false) if the file could not be read.
func ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// WriteFile overwrites path with content, creating it if necessary,
// and reports whether the write succeeded.
func WriteFile(path, content string) bool {
	err := os.WriteFile(path, []byte(content), 0644)
	return err == nil
}
