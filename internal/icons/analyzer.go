package icons

import "sort"

// ConsistencyAnalyzer classifies per-icon presence across theme variants into
// error and warning findings.
type ConsistencyAnalyzer struct {
	fallbackThemeName string
}

// NewConsistencyAnalyzer constructs an analyzer treating the named theme as
// the authoritative coverage baseline.
func NewConsistencyAnalyzer(fallbackThemeName string) *ConsistencyAnalyzer {
	return &ConsistencyAnalyzer{fallbackThemeName: fallbackThemeName}
}

// Analyze resolves every icon key in the scan result against the decision
// policy. Icon keys are processed in lexicographic order so repeated runs over
// the same tree produce identical reports.
func (analyzer *ConsistencyAnalyzer) Analyze(scanResult *ScanResult) *Findings {
	findings := NewFindings()

	findings.BadSymbolicNames = append(findings.BadSymbolicNames, scanResult.BadSymbolicNames...)
	findings.BadScalableNames = append(findings.BadScalableNames, scanResult.BadScalableNames...)
	sort.Strings(findings.BadSymbolicNames)
	sort.Strings(findings.BadScalableNames)

	iconKeys := make([]string, 0, len(scanResult.Presence))
	for iconKey := range scanResult.Presence {
		iconKeys = append(iconKeys, iconKey)
	}
	sort.Strings(iconKeys)

	for _, iconKey := range iconKeys {
		analyzer.classifyIcon(iconKey, scanResult, findings)
	}

	return findings
}

// classifyIcon applies the decision rules in order; the first match resolves
// the icon. Rule one deliberately short-circuits ahead of the fallback rules:
// symbolic availability is mandatory wherever a scalable asset exists.
func (analyzer *ConsistencyAnalyzer) classifyIcon(iconKey string, scanResult *ScanResult, findings *Findings) {
	variants := scanResult.Presence[iconKey]

	symbolicThemes := map[string]struct{}{}
	scalableThemes := map[string]struct{}{}
	for variant := range variants {
		switch variant.Kind {
		case VariantKindSymbolic:
			symbolicThemes[variant.ThemeName] = struct{}{}
		case VariantKindScalable:
			scalableThemes[variant.ThemeName] = struct{}{}
		}
	}

	// For every scalable there must be a symbolic.
	uncoveredThemeNames := subtractThemeNames(scalableThemes, symbolicThemes)
	if len(uncoveredThemeNames) > 0 {
		for _, themeName := range uncoveredThemeNames {
			bucketName := ThemeVariant{ThemeName: themeName, Kind: VariantKindSymbolic}.Label()
			findings.MissingFrom[bucketName] = append(findings.MissingFrom[bucketName], iconKey)
		}
		return
	}

	// Icon present in every symbolic-contributing theme: fully consistent.
	if themeNameSetsEqual(symbolicThemes, scanResult.SymbolicThemes) {
		return
	}

	// The fallback theme covers the gap, so the remaining themes only warrant
	// a warning.
	if _, fallbackCovers := symbolicThemes[analyzer.fallbackThemeName]; fallbackCovers {
		for _, themeName := range subtractThemeNames(scanResult.SymbolicThemes, symbolicThemes) {
			findings.WarnMissingFrom[themeName] = append(findings.WarnMissingFrom[themeName], iconKey)
		}
		return
	}

	// Icon present in a single theme variant and the fallback lacks it.
	if len(variants) == 1 {
		for variant := range variants {
			bucketName := variant.Label()
			findings.OnlyFoundIn[bucketName] = append(findings.OnlyFoundIn[bucketName], iconKey)
		}
		return
	}

	findings.MissingFrom[analyzer.fallbackThemeName] = append(findings.MissingFrom[analyzer.fallbackThemeName], iconKey)
}

// subtractThemeNames returns the sorted names present in the first set but
// absent from the second.
func subtractThemeNames(includedThemeNames map[string]struct{}, excludedThemeNames map[string]struct{}) []string {
	var difference []string
	for themeName := range includedThemeNames {
		if _, excluded := excludedThemeNames[themeName]; excluded {
			continue
		}
		difference = append(difference, themeName)
	}
	sort.Strings(difference)
	return difference
}

func themeNameSetsEqual(firstThemeNames map[string]struct{}, secondThemeNames map[string]struct{}) bool {
	if len(firstThemeNames) != len(secondThemeNames) {
		return false
	}
	for themeName := range firstThemeNames {
		if _, present := secondThemeNames[themeName]; !present {
			return false
		}
	}
	return true
}
