package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/wordsift/internal/config"
)

func setupCommandTest(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(oldDir) })
	require.NoError(t, os.Chdir(tempDir))

	return tempDir
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"filter", "validate", "watch", "init", "version"} {
		assert.True(t, names[want], "command %s should be registered", want)
	}
}

func TestFilterCommandDefaults(t *testing.T) {
	setupCommandTest(t)

	require.NoError(t, os.WriteFile("6of12.txt", []byte("cat\nelephant\nox\nhi5\nBanana\n"), 0644))

	err := runFilter(&cobra.Command{}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile("words_3to7.txt")
	require.NoError(t, err)
	assert.Equal(t, "CAT\nBANANA\n", string(data))
}

func TestFilterCommandMissingInput(t *testing.T) {
	setupCommandTest(t)

	err := runFilter(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.NoFileExists(t, "words_3to7.txt")
}

func TestFilterCommandCustomPaths(t *testing.T) {
	dir := setupCommandTest(t)

	inputPath := filepath.Join(dir, "mylist.txt")
	outputPath := filepath.Join(dir, "myout.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("alpha\nzz\n"), 0644))

	viper.Set("input", inputPath)
	viper.Set("output", outputPath)

	require.NoError(t, runFilter(&cobra.Command{}, nil))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "ALPHA\n", string(data))
}

func TestValidateCommandWritesNothing(t *testing.T) {
	setupCommandTest(t)

	require.NoError(t, os.WriteFile("6of12.txt", []byte("cat\nhi5\n"), 0644))

	validateFormat = "text"
	require.NoError(t, runValidate(&cobra.Command{}, nil))

	assert.NoFileExists(t, "words_3to7.txt")
}

func TestValidateCommandRejectsBadFormat(t *testing.T) {
	setupCommandTest(t)

	require.NoError(t, os.WriteFile("6of12.txt", []byte("cat\n"), 0644))

	validateFormat = "xml"
	t.Cleanup(func() { validateFormat = "text" })

	assert.Error(t, runValidate(&cobra.Command{}, nil))
}

func TestInitCommand(t *testing.T) {
	setupCommandTest(t)

	initForce = false
	require.NoError(t, runInit(&cobra.Command{}, nil))
	assert.FileExists(t, configFileName)

	// The generated file round-trips into the default config.
	data, err := os.ReadFile(configFileName)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *config.Default(), cfg)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	setupCommandTest(t)

	initForce = false
	require.NoError(t, runInit(&cobra.Command{}, nil))

	err := runInit(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	initForce = true
	t.Cleanup(func() { initForce = false })
	assert.NoError(t, runInit(&cobra.Command{}, nil))
}

func TestVersionCommand(t *testing.T) {
	versionFormat = "text"
	versionShort = false
	require.NoError(t, runVersion(&cobra.Command{}, nil))

	versionFormat = "json"
	require.NoError(t, runVersion(&cobra.Command{}, nil))

	versionFormat = "bogus"
	t.Cleanup(func() { versionFormat = "text" })
	assert.Error(t, runVersion(&cobra.Command{}, nil))
}

func TestFilterFlagsDefined(t *testing.T) {
	for _, c := range []*cobra.Command{filterCmd, validateCmd, watchCmd} {
		for _, name := range []string{"input", "output", "min-length", "max-length", "alphabet"} {
			assert.NotNil(t, c.Flags().Lookup(name), "%s should define --%s", c.Name(), name)
		}
	}
}
