package command

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/oy3o/utfconv"
	"github.com/oy3o/utfconv/internal/report"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	emojiUTF8    = []byte{'A', 0xF0, 0x9F, 0x98, 0x80}
	emojiUTF16LE = []byte{0x41, 0x00, 0x3D, 0xD8, 0x00, 0xDE}
	emojiUTF16BE = []byte{0x00, 0x41, 0xD8, 0x3D, 0xDE, 0x00}
)

type CommandTestSuite struct {
	suite.Suite
	fs     afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func (s *CommandTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	s.Require().NoError(afero.WriteFile(s.fs, "in.utf8", emojiUTF8, 0o644))
	s.Require().NoError(afero.WriteFile(s.fs, "in.utf16", emojiUTF16LE, 0o644))
}

func (s *CommandTestSuite) run(args ...string) error {
	root := GetRootCommand(s.fs, BuildInfo{Version: "1.2.3", Commit: "abc", Date: "2026-01-01"})
	root.SetArgs(args)
	root.SetOut(s.stdout)
	root.SetErr(s.stderr)
	return root.Execute()
}

func (s *CommandTestSuite) readFile(name string) []byte {
	data, err := afero.ReadFile(s.fs, name)
	s.Require().NoError(err)
	return data
}

func (s *CommandTestSuite) TestConvertUTF8ToUTF16() {
	s.Require().NoError(s.run("convert", "utf8", "in.utf8", "out.utf16"))
	s.Assert().Equal(emojiUTF16LE, s.readFile("out.utf16"))
	s.Assert().Contains(s.stdout.String(), "Conversion:  UTF-8 to UTF-16")
	s.Assert().Contains(s.stdout.String(), "Output:      out.utf16 (6 B)")
	if _, ok := report.CPUTime(); ok {
		s.Assert().Contains(s.stdout.String(), "CPU time:")
		s.Assert().Contains(s.stdout.String(), "CPU ticks:")
	}
}

func (s *CommandTestSuite) TestConvertUTF16ToUTF8() {
	s.Require().NoError(s.run("convert", "utf16", "in.utf16", "out.utf8"))
	s.Assert().Equal(emojiUTF8, s.readFile("out.utf8"))
	s.Assert().Contains(s.stdout.String(), "UTF-16 to UTF-8")
}

func (s *CommandTestSuite) TestConvertBigEndianFlag() {
	s.Require().NoError(s.run("convert", "--order", "be", "utf8", "in.utf8", "out.utf16"))
	s.Assert().Equal(emojiUTF16BE, s.readFile("out.utf16"))
}

func (s *CommandTestSuite) TestConvertOrderFromEnv() {
	s.T().Setenv("UTFCONV_ORDER", "be")
	s.Require().NoError(s.run("convert", "utf8", "in.utf8", "out.utf16"))
	s.Assert().Equal(emojiUTF16BE, s.readFile("out.utf16"))
}

func (s *CommandTestSuite) TestConvertOrderFromConfig() {
	s.Require().NoError(afero.WriteFile(s.fs, "utfconv.yaml", []byte("order: be\n"), 0o644))
	s.Require().NoError(s.run("convert", "--config", "utfconv.yaml", "utf8", "in.utf8", "out.utf16"))
	s.Assert().Equal(emojiUTF16BE, s.readFile("out.utf16"))
}

func (s *CommandTestSuite) TestConvertFlagOverridesConfig() {
	s.Require().NoError(afero.WriteFile(s.fs, "utfconv.yaml", []byte("order: be\n"), 0o644))
	s.Require().NoError(s.run("convert", "--config", "utfconv.yaml", "--order", "le", "utf8", "in.utf8", "out.utf16"))
	s.Assert().Equal(emojiUTF16LE, s.readFile("out.utf16"))
}

func (s *CommandTestSuite) TestConvertErrors() {
	s.T().Run("InvalidMode", func(t *testing.T) {
		err := s.run("convert", "latin1", "in.utf8", "out")
		assert.ErrorIs(t, err, utfconv.ErrInvalidMode)
	})

	s.T().Run("InvalidOrder", func(t *testing.T) {
		err := s.run("convert", "--order", "middle", "utf8", "in.utf8", "out")
		assert.ErrorIs(t, err, utfconv.ErrInvalidByteOrder)
	})

	s.T().Run("EmptyInput", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(s.fs, "empty", nil, 0o644))
		err := s.run("convert", "utf8", "empty", "out")
		assert.ErrorIs(t, err, utfconv.ErrEmptyInput)
	})

	s.T().Run("MissingInput", func(t *testing.T) {
		err := s.run("convert", "utf8", "missing", "out")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	s.T().Run("WrongArgCount", func(t *testing.T) {
		assert.Error(t, s.run("convert", "utf8", "in.utf8"))
	})

	s.T().Run("InvalidLogLevel", func(t *testing.T) {
		assert.Error(t, s.run("convert", "--log-level", "loud", "utf8", "in.utf8", "out"))
	})

	s.T().Run("MissingConfig", func(t *testing.T) {
		assert.Error(t, s.run("convert", "--config", "nope.yaml", "utf8", "in.utf8", "out"))
	})
}

func (s *CommandTestSuite) TestCheckSuccess() {
	s.Require().NoError(afero.WriteFile(s.fs, "expected", emojiUTF16LE, 0o644))
	s.Require().NoError(s.run("check", "utf8", "in.utf8", "expected", "written.utf16"))
	s.Assert().Contains(s.stdout.String(), "Result:      SUCCESS")
	s.Assert().Equal(emojiUTF16LE, s.readFile("written.utf16"))
}

func (s *CommandTestSuite) TestCheckFailure() {
	s.Require().NoError(afero.WriteFile(s.fs, "expected", []byte{'A', 0xEF, 0xBF, 0xBD}, 0o644))
	err := s.run("check", "utf16", "in.utf16", "expected")
	s.Require().ErrorIs(err, utfconv.ErrMismatch)
	s.Assert().Contains(err.Error(), "first difference at byte 1")
	s.Assert().Contains(s.stdout.String(), "Result:      FAILURE")
}

func (s *CommandTestSuite) TestBatch() {
	s.Require().NoError(afero.WriteFile(s.fs, "docs/a.txt", []byte("a"), 0o644))
	s.Require().NoError(afero.WriteFile(s.fs, "docs/b.txt", []byte("😀"), 0o644))

	s.Require().NoError(s.run("batch", "utf8", "docs/a.txt", "docs/b.txt", "--out-dir", "out", "--jobs", "2", "--log-level", "debug"))
	s.Assert().Equal([]byte{'a', 0}, s.readFile(filepath.Join("out", "a.utf16")))
	s.Assert().Equal([]byte{0x3D, 0xD8, 0x00, 0xDE}, s.readFile(filepath.Join("out", "b.utf16")))
	s.Assert().Contains(s.stdout.String(), "Converted 2 files (UTF-8 to UTF-16, 5 B to 6 B)")
	s.Assert().Contains(s.stderr.String(), "converted")
}

// TestBatchConcurrentDebugLog logs from every worker into a plain
// bytes.Buffer; run with -race to check the sink is serialized.
func (s *CommandTestSuite) TestBatchConcurrentDebugLog() {
	const files = 64
	args := []string{"batch", "utf8", "--out-dir", "out", "--jobs", "8", "--log-level", "debug"}
	for i := range files {
		name := fmt.Sprintf("many/f%02d.txt", i)
		s.Require().NoError(afero.WriteFile(s.fs, name, []byte(fmt.Sprintf("%d 😀", i)), 0o644))
		args = append(args, name)
	}

	s.Require().NoError(s.run(args...))
	s.Assert().Contains(s.stdout.String(), fmt.Sprintf("Converted %d files", files))
	s.Assert().Equal(files, strings.Count(s.stderr.String(), "\tconverted\t"))
	for i := range files {
		out := filepath.Join("out", fmt.Sprintf("f%02d.utf16", i))
		want, err := utfconv.Convert(utfconv.ModeUTF8, []byte(fmt.Sprintf("%d 😀", i)), utfconv.LE)
		s.Require().NoError(err)
		s.Assert().Equal(want, s.readFile(out))
	}
}

func (s *CommandTestSuite) TestBatchJobsFromEnv() {
	s.T().Setenv("UTFCONV_JOBS", "1")
	s.Require().NoError(s.run("batch", "utf16", "in.utf16", "--out-dir", "out"))
	s.Assert().Equal(emojiUTF8, s.readFile(filepath.Join("out", "in.utf8")))
}

func (s *CommandTestSuite) TestVersion() {
	s.Require().NoError(s.run("version"))
	s.Assert().Equal("utfconv 1.2.3 (commit: abc, built: 2026-01-01)\n", s.stdout.String())

	s.stdout.Reset()
	s.Require().NoError(s.run("--version"))
	s.Assert().Equal("utfconv 1.2.3 (commit: abc, built: 2026-01-01)\n", s.stdout.String())
}

func TestCommand(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func TestSetLoggerNil(t *testing.T) {
	defer SetLogger(nil)

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.NotPanics(t, func() {
		Logger().Info("discarded")
		_ = Logger().Sync()
	})

	l, err := newLogger("info", &bytes.Buffer{})
	require.NoError(t, err)
	SetLogger(l)
	assert.Same(t, l, Logger())
}

func TestFirstDiff(t *testing.T) {
	assert.Equal(t, -1, firstDiff([]byte("abc"), []byte("abc")))
	assert.Equal(t, -1, firstDiff(nil, []byte{}))
	assert.Equal(t, 1, firstDiff([]byte("abc"), []byte("axc")))
	assert.Equal(t, 2, firstDiff([]byte("ab"), []byte("abc")))
}
