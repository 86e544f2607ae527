package mclog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const testlogstr = "Test log АБВ こんにちは, 世界`'é\"\\\x5Aand other rubbish!"
const errorStr = "error generated in writer"
const panicStr = "panic generated in writer"

type PanicWriter struct{}

func (p *PanicWriter) Write(b []byte) (int, error) { panic(panicStr) }

type ErrorWriter struct{}

func (e *ErrorWriter) Write(b []byte) (int, error) { return 0, errors.New(errorStr) }

type FakeWriter struct {
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string { return string(f.buffer) }
func (f *FakeWriter) Clear()         { f.buffer = f.buffer[:0] }

// fakeFile is an in-memory FileSink that records everything written to it,
// how often it was closed, and can be switched to fail writes.
type fakeFile struct {
	buffer     []byte
	path       string
	opened     bool
	closes     int
	failWrites bool
}

func (f *fakeFile) Open(path string) error {
	f.path, f.opened = path, true
	return nil
}

func (f *fakeFile) Write(p []byte) (int, error) {
	if !f.opened {
		return 0, errors.New("write to closed file")
	}
	if f.failWrites {
		return 0, errors.New(errorStr)
	}
	f.buffer = append(f.buffer, p...)
	return len(p), nil
}

func (f *fakeFile) Close() error {
	f.opened = false
	f.closes++
	return nil
}

func (f *fakeFile) IsOpen() bool   { return f.opened }
func (f *fakeFile) Path() string   { return f.path }
func (f *fakeFile) String() string { return string(f.buffer) }

// fakeFS hands out fakeFiles and remembers every file ever opened by path,
// in open order, so tests can inspect sinks replaced by reconfiguration.
type fakeFS struct {
	files map[string][]*fakeFile
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string][]*fakeFile{}}
}

func (fs *fakeFS) opener(path string) (FileSink, error) {
	f := &fakeFile{}
	f.Open(path)
	fs.files[path] = append(fs.files[path], f)
	return f, nil
}

// last returns the most recently opened file at path (nil if none).
func (fs *fakeFS) last(path string) *fakeFile {
	list := fs.files[path]
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}

// newTestEngine builds an engine over in-memory fakes, configured under base.
func newTestEngine(t *testing.T, base string) (e *Engine, fs *fakeFS, stde, stdo, ferr *FakeWriter) {
	t.Helper()
	fs = newFakeFS()
	stde, stdo, ferr = &FakeWriter{}, &FakeWriter{}, &FakeWriter{}
	e = InitWithParams(stde, stdo, fs.opener).SetFallback(ferr)
	require.NoError(t, e.Configure(base))
	return e, fs, stde, stdo, ferr
}
