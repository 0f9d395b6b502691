package testutil

import (
	"io/fs"

	"github.com/superflow-dev/superflow-extension/pkg/types"
)

// FaultyFS wraps an FS and fails reads of chosen paths with a permission error
type FaultyFS struct {
	types.FS
	readDir  map[string]bool
	readFile map[string]bool
}

// NewFaultyFS wraps fsys with no faults configured
func NewFaultyFS(fsys types.FS) *FaultyFS {
	return &FaultyFS{
		FS:       fsys,
		readDir:  make(map[string]bool),
		readFile: make(map[string]bool),
	}
}

// FailReadDir makes ReadDir of path fail
func (f *FaultyFS) FailReadDir(path string) *FaultyFS {
	f.readDir[path] = true
	return f
}

// FailReadFile makes ReadFile of path fail
func (f *FaultyFS) FailReadFile(path string) *FaultyFS {
	f.readFile[path] = true
	return f
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if f.readDir[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if f.readFile[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.ReadFile(name)
}
