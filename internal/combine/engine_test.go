package combine_test

import (
	"os"
	"path/filepath"
	"testing"

	"combind/internal/combine"
	"combind/internal/config"
	"combind/internal/errors"
	"combind/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	tmpDir := t.TempDir()
	paths := testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "Hello",
		"b.txt": "World",
		"c.txt": "Again",
	})

	engine := combine.NewWithSeparator("\n---\n")

	t.Run("two files with separator between", func(t *testing.T) {
		outputPath := filepath.Join(tmpDir, "out.txt")
		result, err := engine.Combine([]string{paths["a.txt"], paths["b.txt"]}, outputPath)
		require.NoError(t, err)
		assert.Equal(t, 2, result.FileCount)
		assert.Equal(t, outputPath, result.OutputPath)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, "Hello\n---\nWorld", string(data))
	})

	t.Run("no trailing separator after the last entry", func(t *testing.T) {
		outputPath := filepath.Join(tmpDir, "out3.txt")
		_, err := engine.Combine([]string{paths["a.txt"], paths["b.txt"], paths["c.txt"]}, outputPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, "Hello\n---\nWorld\n---\nAgain", string(data))
	})

	t.Run("single file has no separator at all", func(t *testing.T) {
		outputPath := filepath.Join(tmpDir, "single.txt")
		_, err := engine.Combine([]string{paths["a.txt"]}, outputPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, "Hello", string(data))
	})

	t.Run("list order decides output order", func(t *testing.T) {
		outputPath := filepath.Join(tmpDir, "reversed.txt")
		_, err := engine.Combine([]string{paths["b.txt"], paths["a.txt"]}, outputPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, "World\n---\nHello", string(data))
	})

	t.Run("duplicate entries are written twice", func(t *testing.T) {
		outputPath := filepath.Join(tmpDir, "dup.txt")
		_, err := engine.Combine([]string{paths["a.txt"], paths["a.txt"]}, outputPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, "Hello\n---\nHello", string(data))
	})

	t.Run("existing output is overwritten without warning", func(t *testing.T) {
		outputPath := filepath.Join(tmpDir, "overwrite.txt")
		require.NoError(t, os.WriteFile(outputPath, []byte("previous run"), 0644))

		_, err := engine.Combine([]string{paths["a.txt"]}, outputPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, "Hello", string(data))
	})
}

func TestCombineReadFailures(t *testing.T) {
	tmpDir := t.TempDir()
	paths := testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "Hello",
	})
	engine := combine.New()

	t.Run("missing file aborts and identifies the path", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing.txt")
		outputPath := filepath.Join(tmpDir, "never.txt")

		_, err := engine.Combine([]string{paths["a.txt"], missing}, outputPath)
		require.Error(t, err)
		assert.True(t, errors.IsFileNotFound(err))

		var fileErr *errors.FileError
		require.True(t, errors.As(err, &fileErr))
		assert.Equal(t, missing, fileErr.Path())

		// All or nothing: the output file must not exist
		_, statErr := os.Stat(outputPath)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("read failure does not touch an existing output file", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing.txt")
		outputPath := filepath.Join(tmpDir, "keep.txt")
		require.NoError(t, os.WriteFile(outputPath, []byte("keep me"), 0644))

		_, err := engine.Combine([]string{missing}, outputPath)
		require.Error(t, err)

		data, readErr := os.ReadFile(outputPath)
		require.NoError(t, readErr)
		assert.Equal(t, "keep me", string(data))
	})

	t.Run("permission denied is classified", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("running as root, permission bits are not enforced")
		}
		locked := testutils.CreateUnreadableFile(t, tmpDir, "locked.txt")
		outputPath := filepath.Join(tmpDir, "never2.txt")

		_, err := engine.Combine([]string{paths["a.txt"], locked}, outputPath)
		require.Error(t, err)
		assert.True(t, errors.IsFileAccessDenied(err))

		_, statErr := os.Stat(outputPath)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("binary content is a decode failure", func(t *testing.T) {
		binary := filepath.Join(tmpDir, "blob.bin")
		require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x80}, 0644))
		outputPath := filepath.Join(tmpDir, "never3.txt")

		_, err := engine.Combine([]string{binary}, outputPath)
		require.Error(t, err)
		assert.True(t, errors.IsDecodeFailed(err))

		_, statErr := os.Stat(outputPath)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestCombineEmptyList(t *testing.T) {
	tmpDir := t.TempDir()
	engine := combine.New()
	outputPath := filepath.Join(tmpDir, "empty.txt")

	_, err := engine.Combine(nil, outputPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEmptyList)

	// The rejected operation must not create the output file
	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCombineWriteFailure(t *testing.T) {
	tmpDir := t.TempDir()
	paths := testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "Hello",
	})
	engine := combine.New()

	outputPath := filepath.Join(tmpDir, "no", "such", "dir", "out.txt")
	_, err := engine.Combine([]string{paths["a.txt"]}, outputPath)
	require.Error(t, err)
	assert.True(t, errors.IsFileWriteFailed(err))

	var fileErr *errors.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, outputPath, fileErr.Path())
}

func TestNewWithConfig(t *testing.T) {
	tmpDir := t.TempDir()
	paths := testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "one",
		"b.txt": "two",
	})

	t.Run("separator comes from the config defaults", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Output.Separator = "\n===\n"
		engine := combine.NewWithConfig(cfg)

		combined, err := engine.Build([]string{paths["a.txt"], paths["b.txt"]})
		require.NoError(t, err)
		assert.Equal(t, "one\n===\ntwo", combined)
	})

	t.Run("default configuration pins the package separator", func(t *testing.T) {
		engine := combine.NewWithConfig(config.New())
		assert.Equal(t, combine.Separator, engine.Separator())
	})

	t.Run("zero-value configuration falls back to the package separator", func(t *testing.T) {
		engine := combine.NewWithConfig(&config.Config{})
		assert.Equal(t, combine.Separator, engine.Separator())
	})
}

func TestBuild(t *testing.T) {
	tmpDir := t.TempDir()
	paths := testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "one",
		"b.txt": "two",
	})
	engine := combine.New()

	combined, err := engine.Build([]string{paths["a.txt"], paths["b.txt"]})
	require.NoError(t, err)
	assert.Equal(t, "one"+combine.Separator+"two", combined)

	_, err = engine.Build(nil)
	assert.ErrorIs(t, err, errors.ErrEmptyList)
}

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	paths := testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "some text\nwith lines",
	})

	content, err := combine.ReadFile(paths["a.txt"])
	require.NoError(t, err)
	assert.Equal(t, "some text\nwith lines", content)

	_, err = combine.ReadFile(filepath.Join(tmpDir, "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}
