// Package embedded gives the rest of the module access to the files embedded
// by the main package.
//
// The embed.FS has to be declared at the module root (embed.go); main hands
// it over with Init before anything is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized is returned before Init has been called.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init registers the embedded data tree.
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// ReadFile reads an embedded file. Paths start with "data/".
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether an embedded file is present.
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}
