package icons

import (
	"io/fs"
	pathpkg "path"
	"path/filepath"
	"strings"
)

const (
	svgExtensionSuffixConstant     = ".svg"
	symbolicFilenameSuffixConstant = "-symbolic.svg"
	kindSegmentSeparatorConstant   = "/"
	kindSegmentSplitLimitConstant  = 2
)

// ScanResult aggregates everything one pass over the theme trees produced.
type ScanResult struct {
	// Presence maps each normalized icon key to the theme variants providing it.
	Presence map[string]map[ThemeVariant]struct{}
	// SymbolicThemes names every theme that contributed at least one
	// symbolic-kind file, well-formed or not.
	SymbolicThemes map[string]struct{}
	// BadSymbolicNames and BadScalableNames collect naming violations as the
	// full paths that were walked.
	BadSymbolicNames []string
	BadScalableNames []string
}

// NewScanResult constructs an empty scan accumulator.
func NewScanResult() *ScanResult {
	return &ScanResult{
		Presence:       map[string]map[ThemeVariant]struct{}{},
		SymbolicThemes: map[string]struct{}{},
	}
}

// TreeScanner walks theme directory trees and classifies every icon file.
type TreeScanner struct {
	ignoredIconNames map[string]struct{}
}

// NewTreeScanner constructs a scanner that exempts the provided icon filenames
// from every check.
func NewTreeScanner(ignoredIconFilenames []string) *TreeScanner {
	ignoredIconNames := make(map[string]struct{}, len(ignoredIconFilenames))
	for _, ignoredIconFilename := range ignoredIconFilenames {
		ignoredIconNames[ignoredIconFilename] = struct{}{}
	}
	return &TreeScanner{ignoredIconNames: ignoredIconNames}
}

// ScanThemes visits every file below each theme directory and records icon
// presence and naming violations. Walk failures propagate unmodified; the
// check runs in controlled build environments where they indicate a broken
// environment rather than a data-quality finding.
func (scanner *TreeScanner) ScanThemes(themes []ThemeDirectory) (*ScanResult, error) {
	scanResult := NewScanResult()

	for _, theme := range themes {
		if scanError := scanner.scanTheme(theme, scanResult); scanError != nil {
			return nil, scanError
		}
	}

	return scanResult, nil
}

func (scanner *TreeScanner) scanTheme(theme ThemeDirectory, scanResult *ScanResult) error {
	return filepath.WalkDir(theme.Path, func(walkedPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}
		if directoryEntry.IsDir() {
			return nil
		}

		relativePath, relativeError := filepath.Rel(theme.Path, walkedPath)
		if relativeError != nil {
			return relativeError
		}

		relativeDirectory := filepath.ToSlash(filepath.Dir(relativePath))
		kindSegments := strings.SplitN(relativeDirectory, kindSegmentSeparatorConstant, kindSegmentSplitLimitConstant)
		if len(kindSegments) < kindSegmentSplitLimitConstant {
			// Stray files at the theme root or directly below the kind
			// segment carry no icon hierarchy and are skipped.
			return nil
		}

		variantKind := VariantKind(kindSegments[0])
		if variantKind != VariantKindSymbolic && variantKind != VariantKindScalable {
			// Not testing cursors, maybe later.
			return nil
		}

		iconFilename := directoryEntry.Name()
		if _, ignored := scanner.ignoredIconNames[iconFilename]; ignored {
			return nil
		}
		if !strings.HasSuffix(iconFilename, svgExtensionSuffixConstant) {
			return nil
		}

		if variantKind == VariantKindSymbolic {
			scanResult.SymbolicThemes[theme.Name] = struct{}{}
			if !strings.HasSuffix(iconFilename, symbolicFilenameSuffixConstant) {
				scanResult.BadSymbolicNames = append(scanResult.BadSymbolicNames, walkedPath)
				return nil
			}
			// Normalize so the symbolic variant compares against the scalable
			// variant of the same logical icon.
			iconFilename = strings.TrimSuffix(iconFilename, symbolicFilenameSuffixConstant) + svgExtensionSuffixConstant
		} else if strings.HasSuffix(iconFilename, symbolicFilenameSuffixConstant) {
			scanResult.BadScalableNames = append(scanResult.BadScalableNames, walkedPath)
			return nil
		}

		iconKey := pathpkg.Join(kindSegments[1], iconFilename)
		variants, keyExists := scanResult.Presence[iconKey]
		if !keyExists {
			variants = map[ThemeVariant]struct{}{}
			scanResult.Presence[iconKey] = variants
		}
		variants[ThemeVariant{ThemeName: theme.Name, Kind: variantKind}] = struct{}{}

		return nil
	})
}
