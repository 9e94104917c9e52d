package icons_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/iconcheck/internal/icons"
)

func buildCheckCommand(testInstance *testing.T, configuration icons.CommandConfiguration) (*cobra.Command, *bytes.Buffer) {
	testInstance.Helper()

	commandBuilder := icons.CommandBuilder{
		ConfigurationProvider: func() icons.CommandConfiguration {
			return configuration
		},
	}
	checkCommand, buildError := commandBuilder.Build()
	require.NoError(testInstance, buildError)

	errorBuffer := &bytes.Buffer{}
	checkCommand.SetOut(&bytes.Buffer{})
	checkCommand.SetErr(errorBuffer)
	return checkCommand, errorBuffer
}

func TestCommandRunsCleanTree(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	themeRoot := themeRootPath(projectRoot)
	writeTreeFile(testInstance, themeRoot, testFallbackThemeNameConstant, testSymbolicDirectoryNameConstant, testActionsDirectoryNameConstant, "foo-symbolic.svg")
	writeTreeFile(testInstance, themeRoot, testAlternateThemeNameConstant, testSymbolicDirectoryNameConstant, testActionsDirectoryNameConstant, "foo-symbolic.svg")

	checkCommand, errorBuffer := buildCheckCommand(testInstance, icons.CommandConfiguration{Root: projectRoot})
	checkCommand.SetArgs([]string{})

	require.NoError(testInstance, checkCommand.Execute())
	require.Empty(testInstance, errorBuffer.String())
}

func TestCommandRootFlagOverridesConfiguration(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	themeRoot := themeRootPath(projectRoot)
	writeTreeFile(testInstance, themeRoot, testAlternateThemeNameConstant, testSymbolicDirectoryNameConstant, testActionsDirectoryNameConstant, "foo-symbolic.svg")
	writeTreeFile(testInstance, themeRoot, testFallbackThemeNameConstant, testSymbolicDirectoryNameConstant, testActionsDirectoryNameConstant, "bar-symbolic.svg")

	// The configured root is bogus; the flag points at the real tree.
	checkCommand, errorBuffer := buildCheckCommand(testInstance, icons.CommandConfiguration{Root: filepath.Join(projectRoot, "nowhere")})
	checkCommand.SetArgs([]string{"--root", projectRoot})

	executionError := checkCommand.Execute()
	require.Error(testInstance, executionError)

	var checkFailure *icons.CheckFailedError
	require.True(testInstance, errors.As(executionError, &checkFailure))
	require.Equal(testInstance, 1, checkFailure.ErrorCount)
	require.Contains(testInstance, errorBuffer.String(), "Icons only found in Adwaita-symbolic:")
	require.Contains(testInstance, errorBuffer.String(), "Icons missing from Adwaita:")
}

func TestCommandExemptionsFlagSuppressesFindings(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	themeRoot := themeRootPath(projectRoot)
	writeTreeFile(testInstance, themeRoot, testFallbackThemeNameConstant, testSymbolicDirectoryNameConstant, testActionsDirectoryNameConstant, "legacy-logo-symbolic.svg")

	exemptionFilePath := filepath.Join(testInstance.TempDir(), testExemptionFileNameConstant)
	require.NoError(testInstance, os.WriteFile(exemptionFilePath, []byte("ignored_icons:\n  - legacy-logo-symbolic.svg\n"), testFilePermissionsConstant))

	checkCommand, errorBuffer := buildCheckCommand(testInstance, icons.CommandConfiguration{Root: projectRoot})
	checkCommand.SetArgs([]string{"--exemptions", exemptionFilePath})

	require.NoError(testInstance, checkCommand.Execute())
	require.Empty(testInstance, errorBuffer.String())
}

func TestCommandMissingExemptionsFileFails(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	writeTreeFile(testInstance, themeRootPath(projectRoot), testFallbackThemeNameConstant, testSymbolicDirectoryNameConstant, testActionsDirectoryNameConstant, "foo-symbolic.svg")

	checkCommand, _ := buildCheckCommand(testInstance, icons.CommandConfiguration{Root: projectRoot})
	checkCommand.SetArgs([]string{"--exemptions", filepath.Join(projectRoot, "missing.yaml")})

	executionError := checkCommand.Execute()
	require.Error(testInstance, executionError)

	var checkFailure *icons.CheckFailedError
	require.False(testInstance, errors.As(executionError, &checkFailure))
}
