package icons

import (
	"context"
	"io"

	"go.uber.org/zap"
)

const (
	themesEnumeratedDebugMessageConstant = "icon themes enumerated"
	themesScannedDebugMessageConstant    = "icon themes scanned"
	checkCompletedInfoMessageConstant    = "icon theme check completed"
	logFieldThemeRootConstant            = "theme_root"
	logFieldThemeCountConstant           = "theme_count"
	logFieldIconCountConstant            = "icon_count"
	logFieldSymbolicThemeCountConstant   = "symbolic_theme_count"
	logFieldErrorCountConstant           = "error_count"
	logFieldWarningCountConstant         = "warning_count"
)

// CheckOptions captures the resolved parameters for one consistency pass.
type CheckOptions struct {
	ThemeRoot     string
	FallbackTheme string
	IgnoredThemes []string
	IgnoredIcons  []string
}

// Service coordinates theme enumeration, scanning, analysis, and reporting.
type Service struct {
	themeEnumerator ThemeEnumerator
	errorWriter     io.Writer
	logger          *zap.Logger
}

// NewService constructs a Service using the provided dependencies. A nil
// enumerator falls back to the filesystem implementation and a nil logger to a
// no-op logger.
func NewService(themeEnumerator ThemeEnumerator, errorWriter io.Writer, logger *zap.Logger) *Service {
	if themeEnumerator == nil {
		themeEnumerator = NewFilesystemThemeEnumerator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		themeEnumerator: themeEnumerator,
		errorWriter:     errorWriter,
		logger:          logger,
	}
}

// Run executes one synchronous consistency pass. Findings accumulate across
// the entire scan before any report output is produced. When error-severity
// findings exist the returned error is a CheckFailedError carrying the
// distinguished exit status; warnings alone return nil.
func (service *Service) Run(executionContext context.Context, options CheckOptions) error {
	themes, enumerationError := service.themeEnumerator.EnumerateThemes(options.ThemeRoot, options.IgnoredThemes)
	if enumerationError != nil {
		return enumerationError
	}

	service.logger.Debug(
		themesEnumeratedDebugMessageConstant,
		zap.String(logFieldThemeRootConstant, options.ThemeRoot),
		zap.Int(logFieldThemeCountConstant, len(themes)),
	)

	treeScanner := NewTreeScanner(options.IgnoredIcons)
	scanResult, scanError := treeScanner.ScanThemes(themes)
	if scanError != nil {
		return scanError
	}

	service.logger.Debug(
		themesScannedDebugMessageConstant,
		zap.Int(logFieldIconCountConstant, len(scanResult.Presence)),
		zap.Int(logFieldSymbolicThemeCountConstant, len(scanResult.SymbolicThemes)),
	)

	consistencyAnalyzer := NewConsistencyAnalyzer(options.FallbackTheme)
	findings := consistencyAnalyzer.Analyze(scanResult)

	reporter := NewReporter(service.errorWriter)
	reporter.WriteReport(findings)

	service.logger.Info(
		checkCompletedInfoMessageConstant,
		zap.Int(logFieldErrorCountConstant, findings.ErrorCount()),
		zap.Int(logFieldWarningCountConstant, findings.WarningCount()),
	)

	if findings.HasErrors() {
		return &CheckFailedError{ErrorCount: findings.ErrorCount()}
	}

	return nil
}
