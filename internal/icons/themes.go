package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const themeListingErrorTemplateConstant = "failed to list icon themes under %s: %w"

// ThemeDirectory identifies one theme candidate discovered below the theme root.
type ThemeDirectory struct {
	Name string
	Path string
}

// ThemeEnumerator lists the theme directories eligible for checking.
type ThemeEnumerator interface {
	EnumerateThemes(themeRootPath string, ignoredThemeNames []string) ([]ThemeDirectory, error)
}

// FilesystemThemeEnumerator locates icon themes on disk.
type FilesystemThemeEnumerator struct{}

// NewFilesystemThemeEnumerator constructs a theme enumerator backed by os.ReadDir.
func NewFilesystemThemeEnumerator() *FilesystemThemeEnumerator {
	return &FilesystemThemeEnumerator{}
}

// EnumerateThemes returns every immediate subdirectory of the theme root whose
// name is not ignored, sorted by name for deterministic scanning order.
func (enumerator *FilesystemThemeEnumerator) EnumerateThemes(themeRootPath string, ignoredThemeNames []string) ([]ThemeDirectory, error) {
	directoryEntries, listingError := os.ReadDir(themeRootPath)
	if listingError != nil {
		return nil, fmt.Errorf(themeListingErrorTemplateConstant, themeRootPath, listingError)
	}

	ignoredNames := make(map[string]struct{}, len(ignoredThemeNames))
	for _, ignoredName := range ignoredThemeNames {
		ignoredNames[ignoredName] = struct{}{}
	}

	var themes []ThemeDirectory
	for _, directoryEntry := range directoryEntries {
		themeName := directoryEntry.Name()
		if _, ignored := ignoredNames[themeName]; ignored {
			continue
		}
		if !directoryEntry.IsDir() {
			continue
		}
		themes = append(themes, ThemeDirectory{
			Name: themeName,
			Path: filepath.Join(themeRootPath, themeName),
		})
	}

	sort.Slice(themes, func(firstIndex int, secondIndex int) bool {
		return themes[firstIndex].Name < themes[secondIndex].Name
	})

	return themes, nil
}
