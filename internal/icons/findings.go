package icons

import "fmt"

const (
	checkFailureExitCodeConstant      = 5
	checkFailedErrorTemplateConstant  = "found %d errors in icon themes"
	themeVariantLabelTemplateConstant = "%s-%s"
)

// VariantKind identifies the icon variant flavor encoded in the first path
// segment below a theme directory.
type VariantKind string

// Variant kinds participating in consistency checks. All other subtrees
// (cursors and similar) are ignored.
const (
	VariantKindSymbolic VariantKind = "symbolic"
	VariantKindScalable VariantKind = "scalable"
)

// ThemeVariant pairs a theme name with the variant kind that provided an icon.
type ThemeVariant struct {
	ThemeName string
	Kind      VariantKind
}

// Label renders the theme variant in the <theme>-<kind> report form.
func (variant ThemeVariant) Label() string {
	return fmt.Sprintf(themeVariantLabelTemplateConstant, variant.ThemeName, variant.Kind)
}

// Findings accumulates every data-quality issue discovered during one pass.
// Each category is a distinct typed bucket carrying its own payload so the
// reporter never has to branch on a shared category tag.
type Findings struct {
	// BadSymbolicNames lists files inside a symbolic subtree whose names lack
	// the -symbolic.svg suffix, so icon lookup would never resolve them.
	BadSymbolicNames []string
	// BadScalableNames lists -symbolic.svg files inside a scalable subtree,
	// where the suffix makes them unusable.
	BadScalableNames []string
	// MissingFrom groups icon keys by the theme (or theme-symbolic) bucket
	// they are absent from. Error severity.
	MissingFrom map[string][]string
	// OnlyFoundIn groups icon keys by the single theme-kind pair providing
	// them. Error severity.
	OnlyFoundIn map[string][]string
	// WarnMissingFrom groups icon keys by the theme missing them while the
	// fallback theme covers the gap. Warning severity.
	WarnMissingFrom map[string][]string
}

// NewFindings constructs an empty findings accumulator.
func NewFindings() *Findings {
	return &Findings{
		MissingFrom:     map[string][]string{},
		OnlyFoundIn:     map[string][]string{},
		WarnMissingFrom: map[string][]string{},
	}
}

// ErrorCount totals the entries across every error-severity bucket.
func (findings *Findings) ErrorCount() int {
	count := len(findings.BadSymbolicNames) + len(findings.BadScalableNames)
	for _, iconKeys := range findings.OnlyFoundIn {
		count += len(iconKeys)
	}
	for _, iconKeys := range findings.MissingFrom {
		count += len(iconKeys)
	}
	return count
}

// WarningCount totals the entries across every warning-severity bucket.
func (findings *Findings) WarningCount() int {
	count := 0
	for _, iconKeys := range findings.WarnMissingFrom {
		count += len(iconKeys)
	}
	return count
}

// HasErrors reports whether any error-severity finding exists.
func (findings *Findings) HasErrors() bool {
	return findings.ErrorCount() > 0
}

// CheckFailedError signals that the consistency check finished and found
// error-severity issues. It carries the distinguished process exit status so
// warnings alone never fail a build.
type CheckFailedError struct {
	ErrorCount int
}

// Error describes the failed check.
func (checkError *CheckFailedError) Error() string {
	return fmt.Sprintf(checkFailedErrorTemplateConstant, checkError.ErrorCount)
}

// ExitCode returns the process exit status reserved for failed checks.
func (checkError *CheckFailedError) ExitCode() int {
	return checkFailureExitCodeConstant
}
