package icons_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testSVGStubContentConstant        = "<svg/>\n"
	testDirectoryPermissionsConstant  = 0o755
	testFilePermissionsConstant       = 0o644
	testShareDirectoryNameConstant    = "share"
	testIconsDirectoryNameConstant    = "icons"
	testFallbackThemeNameConstant     = "hicolor"
	testAlternateThemeNameConstant    = "Adwaita"
	testSymbolicDirectoryNameConstant = "symbolic"
	testScalableDirectoryNameConstant = "scalable"
	testActionsDirectoryNameConstant  = "actions"
)

// writeTreeFile creates an SVG stub at the joined segments below the provided
// root, creating intermediate directories as needed, and returns the full path.
func writeTreeFile(testInstance *testing.T, rootDirectory string, relativeSegments ...string) string {
	testInstance.Helper()

	fullPath := filepath.Join(append([]string{rootDirectory}, relativeSegments...)...)
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(fullPath), testDirectoryPermissionsConstant))
	require.NoError(testInstance, os.WriteFile(fullPath, []byte(testSVGStubContentConstant), testFilePermissionsConstant))
	return fullPath
}

// themeRootPath builds the conventional <root>/share/icons location.
func themeRootPath(rootDirectory string) string {
	return filepath.Join(rootDirectory, testShareDirectoryNameConstant, testIconsDirectoryNameConstant)
}
