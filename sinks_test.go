package mclog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSinkSet(base string) (*sinkSet, *fakeFS, *FakeWriter, *FakeWriter) {
	fs := newFakeFS()
	stde, stdo := &FakeWriter{}, &FakeWriter{}
	s := &sinkSet{stderr: stde, stdout: stdo, open: fs.opener}
	if err := s.configure(base); err != nil {
		panic(err)
	}
	return s, fs, stde, stdo
}

func Test_channelPath(t *testing.T) {
	cases := map[string]string{
		"Log":              "Log.err",
		"Log.txt":          "Log.err",
		"dir/Session":      "dir/Session.err",
		"dir/Session.file": "dir/Session.err",
	}
	for base, want := range cases {
		assert.Equal(t, want, channelPath(base, "err"), "base %q", base)
	}
}

func Test_sinkSet_configure(t *testing.T) {
	t.Run("creates_files_with_banner", func(t *testing.T) {
		_, fs, _, _ := newTestSinkSet("Log")
		want := []string{"Log.err", "Log.warn", "Log.log", "Log.file"}
		assert.Len(t, fs.files, len(want))
		for _, path := range want {
			file := fs.last(path)
			require.NotNil(t, file, "missing %s", path)
			assert.True(t, file.IsOpen())
			assert.True(t, strings.HasPrefix(file.String(), FILE_BANNER), "no banner in %s", path)
			banner := strings.TrimPrefix(strings.TrimSuffix(file.String(), "\n"), FILE_BANNER)
			_, err := time.Parse(time.ANSIC, banner)
			assert.NoError(t, err, "bad banner timestamp in %s", path)
		}
	})
	t.Run("binds_std_streams", func(t *testing.T) {
		s, _, stde, stdo := newTestSinkSet("Log")
		assert.Same(t, stde, s.states[CHN_ERROR].std)
		assert.Same(t, stde, s.states[CHN_WARNING].std)
		assert.Same(t, stdo, s.states[CHN_SCREEN].std)
		assert.Same(t, stdo, s.states[CHN_NOTE].std)
		assert.Nil(t, s.states[CHN_FILE].std)
	})
	t.Run("no_screen_file", func(t *testing.T) {
		s, fs, _, _ := newTestSinkSet("Log")
		assert.Nil(t, s.states[CHN_SCREEN].file)
		for path := range fs.files {
			assert.False(t, strings.HasSuffix(path, ".scr"), "unexpected file %s", path)
		}
	})
	t.Run("reconfigure_replaces_sinks", func(t *testing.T) {
		s, fs, _, _ := newTestSinkSet("Log")
		require.NoError(t, s.write(CHN_WARNING, []byte("old")))
		old := fs.last("Log.warn")
		require.NoError(t, s.configure("Next"))
		assert.False(t, old.IsOpen(), "old sink not closed")
		assert.Equal(t, 1, old.closes)
		fresh := fs.last("Next.warn")
		require.NotNil(t, fresh)
		assert.NotContains(t, fresh.String(), "old", "fresh file carries old content")
		// content flags are cumulative for the session, not per file
		assert.True(t, s.hasContent(CHN_WARNING))
	})
}

func Test_sinkSet_write(t *testing.T) {
	t.Run("file_and_stream", func(t *testing.T) {
		s, fs, stde, _ := newTestSinkSet("Log")
		require.NoError(t, s.write(CHN_WARNING, []byte("Warning: disk low")))
		assert.True(t, strings.HasSuffix(fs.last("Log.warn").String(), "Warning: disk low"))
		assert.Equal(t, "Warning: disk low", stde.String())
	})
	t.Run("stream_only", func(t *testing.T) {
		s, _, _, stdo := newTestSinkSet("Log")
		require.NoError(t, s.write(CHN_SCREEN, []byte("progress")))
		assert.Equal(t, "progress", stdo.String())
	})
	t.Run("file_only", func(t *testing.T) {
		s, fs, stde, stdo := newTestSinkSet("Log")
		require.NoError(t, s.write(CHN_FILE, []byte("detail")))
		assert.True(t, strings.HasSuffix(fs.last("Log.file").String(), "detail"))
		assert.Empty(t, stde.buffer)
		assert.Empty(t, stdo.buffer)
	})
	t.Run("marks_content_even_when_empty", func(t *testing.T) {
		s, fs, _, _ := newTestSinkSet("Log")
		assert.False(t, s.hasContent(CHN_FILE))
		require.NoError(t, s.write(CHN_FILE, nil))
		assert.True(t, s.hasContent(CHN_FILE))
		// nothing beyond the banner reached the file
		assert.Equal(t, 1, strings.Count(fs.last("Log.file").String(), "\n"))
	})
	t.Run("unconfigured_panics", func(t *testing.T) {
		s := &sinkSet{}
		assert.PanicsWithValue(t, _ERROR_MESSAGE_NOT_CONFIGURED, func() {
			s.write(CHN_NOTE, []byte("x"))
		})
	})
	t.Run("closed_panics", func(t *testing.T) {
		s, _, _, _ := newTestSinkSet("Log")
		require.NoError(t, s.close())
		assert.PanicsWithValue(t, _ERROR_MESSAGE_NOT_CONFIGURED, func() {
			s.write(CHN_ERROR, []byte("x"))
		})
	})
	t.Run("file_error_is_returned", func(t *testing.T) {
		s, fs, _, _ := newTestSinkSet("Log")
		fs.last("Log.err").failWrites = true
		err := s.write(CHN_ERROR, []byte("boom"))
		assert.ErrorContains(t, err, errorStr)
		assert.True(t, s.hasContent(CHN_ERROR), "content flag must be set even on failure")
	})
}

func Test_sinkSet_close(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		s, fs, _, _ := newTestSinkSet("Log")
		require.NoError(t, s.close())
		require.NoError(t, s.close())
		for _, list := range fs.files {
			for _, file := range list {
				assert.False(t, file.IsOpen())
				assert.Equal(t, 1, file.closes, "%s closed more than once", file.Path())
			}
		}
	})
	t.Run("keeps_paths", func(t *testing.T) {
		s, _, _, _ := newTestSinkSet("Log")
		require.NoError(t, s.close())
		assert.Equal(t, "Log.err", s.filePath(CHN_ERROR))
		assert.Empty(t, s.filePath(CHN_SCREEN))
	})
}

func Test_sinkSet_hasContent(t *testing.T) {
	s, _, _, _ := newTestSinkSet("Log")
	for ch := Channel(0); ch < _CHN_MAX_for_checks_only; ch++ {
		assert.False(t, s.hasContent(ch), "channel %d dirty after configure", ch)
	}
	require.NoError(t, s.write(CHN_NOTE, []byte("x")))
	for ch := Channel(0); ch < _CHN_MAX_for_checks_only; ch++ {
		assert.Equal(t, ch == CHN_NOTE, s.hasContent(ch), "channel %d", ch)
	}
	assert.Panics(t, func() { s.hasContent(_CHN_MAX_for_checks_only) })
}
