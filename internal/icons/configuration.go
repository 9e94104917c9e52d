package icons

import (
	"path/filepath"
	"strings"
)

const (
	defaultRootPathConstant      = "."
	defaultFallbackThemeConstant = "hicolor"
	themeDirectoryShareSegment   = "share"
	themeDirectoryIconsSegment   = "icons"
)

// defaultIgnoredThemeNames lists theme directories excluded from checking.
var defaultIgnoredThemeNames = []string{
	"application",
	"Tango",
}

// defaultIgnoredIconFilenames lists icon files exempt from every check.
var defaultIgnoredIconFilenames = []string{
	// These are hard coded as symbolic in the gtk source code.
	"list-add-symbolic.svg",
	"list-add.svg",
	"list-remove-symbolic.svg",
	"list-remove.svg",
	"applications-graphics.svg",
	"applications-graphics-symbolic.svg",
	"edit-find.svg",
	"edit-find-symbolic.svg",
	"dialog-warning.svg",
	"dialog-warning-symbolic.svg",
	"edit-clear.svg",
	"edit-clear-symbolic.svg",
	"view-refresh-symbolic.svg",
	"view-refresh.svg",
	// Those are illustrations rather than icons.
	"feBlend-icon-symbolic.svg",
	"feColorMatrix-icon-symbolic.svg",
	"feComponentTransfer-icon-symbolic.svg",
	"feComposite-icon-symbolic.svg",
	"feConvolveMatrix-icon-symbolic.svg",
	"feDiffuseLighting-icon-symbolic.svg",
	"feDisplacementMap-icon-symbolic.svg",
	"feFlood-icon-symbolic.svg",
	"feGaussianBlur-icon-symbolic.svg",
	"feImage-icon-symbolic.svg",
	"feMerge-icon-symbolic.svg",
	"feMorphology-icon-symbolic.svg",
	"feOffset-icon-symbolic.svg",
	"feSpecularLighting-icon-symbolic.svg",
	"feTile-icon-symbolic.svg",
	"feTurbulence-icon-symbolic.svg",
	"feBlend-icon.svg",
	"feColorMatrix-icon.svg",
	"feComponentTransfer-icon.svg",
	"feComposite-icon.svg",
	"feConvolveMatrix-icon.svg",
	"feDiffuseLighting-icon.svg",
	"feDisplacementMap-icon.svg",
	"feFlood-icon.svg",
	"feGaussianBlur-icon.svg",
	"feImage-icon.svg",
	"feMerge-icon.svg",
	"feMorphology-icon.svg",
	"feOffset-icon.svg",
	"feSpecularLighting-icon.svg",
	"feTile-icon.svg",
	"feTurbulence-icon.svg",
	// Those are UI elements in form of icons; themes may define them, but they shouldn't have to.
	"resizing-handle-horizontal-symbolic.svg",
	"resizing-handle-vertical-symbolic.svg",
}

// CommandConfiguration captures persistent settings for the check command.
type CommandConfiguration struct {
	Root           string   `mapstructure:"root"`
	FallbackTheme  string   `mapstructure:"fallback_theme"`
	IgnoredThemes  []string `mapstructure:"ignored_themes"`
	IgnoredIcons   []string `mapstructure:"ignored_icons"`
	ExemptionsFile string   `mapstructure:"exemptions_file"`
}

// DefaultCommandConfiguration returns baseline configuration values for the check command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Root:          defaultRootPathConstant,
		FallbackTheme: defaultFallbackThemeConstant,
		IgnoredThemes: append([]string{}, defaultIgnoredThemeNames...),
		IgnoredIcons:  append([]string{}, defaultIgnoredIconFilenames...),
	}
}

// DefaultConfigurationValues exposes the baseline values keyed for the configuration loader.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + ".root":           defaults.Root,
		configurationKeyPrefix + ".fallback_theme": defaults.FallbackTheme,
		configurationKeyPrefix + ".ignored_themes": defaults.IgnoredThemes,
		configurationKeyPrefix + ".ignored_icons":  defaults.IgnoredIcons,
	}
}

// ThemeRootPath resolves the icon-theme tree location below the configured root.
func (configuration CommandConfiguration) ThemeRootPath() string {
	return filepath.Join(configuration.Root, themeDirectoryShareSegment, themeDirectoryIconsSegment)
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Root = strings.TrimSpace(configuration.Root)
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaultRootPathConstant
	}

	sanitized.FallbackTheme = strings.TrimSpace(configuration.FallbackTheme)
	if len(sanitized.FallbackTheme) == 0 {
		sanitized.FallbackTheme = defaultFallbackThemeConstant
	}

	sanitized.IgnoredThemes = sanitizeNameList(configuration.IgnoredThemes)
	sanitized.IgnoredIcons = sanitizeNameList(configuration.IgnoredIcons)
	sanitized.ExemptionsFile = strings.TrimSpace(configuration.ExemptionsFile)

	return sanitized
}

func sanitizeNameList(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
