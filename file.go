package mclog

/*
File-handle collaborator used to persist channel output. The engine talks to
files only through the FileSink interface so tests can substitute in-memory
fakes; osFile is the production implementation over *os.File.
*/

import "os"

// FileSink is the file handle abstraction consumed by the engine. A sink is
// created (truncating) for sequential writing, appended to, closed, and can
// report its open state and path. Close may be called more than once.
type FileSink interface {
	Open(path string) error
	Write(p []byte) (n int, err error)
	Close() error
	IsOpen() bool
	Path() string
}

// FileOpener creates and opens a FileSink at the given path. The engine
// derives one path per file-backed channel and calls the opener on every
// (re)configuration.
type FileOpener func(path string) (FileSink, error)

// osFile persists bytes to a local file.
type osFile struct {
	f    *os.File
	path string
}

// OpenFileSink is the default FileOpener over the local filesystem.
func OpenFileSink(path string) (FileSink, error) {
	s := &osFile{}
	if err := s.Open(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Open creates or truncates the file for sequential writing.
func (s *osFile) Open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	s.f, s.path = f, path
	return nil
}

func (s *osFile) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *osFile) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

func (s *osFile) IsOpen() bool { return s.f != nil }

func (s *osFile) Path() string { return s.path }
