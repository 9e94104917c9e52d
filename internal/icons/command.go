package icons

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandNameConstant                  = "check"
	commandShortDescriptionConstant      = "Validate icon theme consistency"
	commandLongDescriptionConstant       = "check walks every icon theme below <root>/share/icons and reports icons that are missing from sibling themes or violate the symbolic naming convention."
	flagRootNameConstant                 = "root"
	flagRootDescriptionConstant          = "Project root containing the share/icons theme tree."
	flagFallbackThemeNameConstant        = "fallback-theme"
	flagFallbackThemeDescriptionConstant = "Theme treated as the authoritative coverage baseline."
	flagExemptionsNameConstant           = "exemptions"
	flagExemptionsDescriptionConstant    = "Optional YAML file with additional ignored icons and themes."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted check command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the check cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ThemeEnumerator       ThemeEnumerator
}

// Build constructs the cobra command for the icon theme consistency check.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(flagRootNameConstant, "", flagRootDescriptionConstant)
	command.Flags().String(flagFallbackThemeNameConstant, "", flagFallbackThemeDescriptionConstant)
	command.Flags().String(flagExemptionsNameConstant, "", flagExemptionsDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration, configurationError := builder.resolveConfiguration(command)
	if configurationError != nil {
		return configurationError
	}

	service := NewService(builder.ThemeEnumerator, command.ErrOrStderr(), builder.resolveLogger())

	options := CheckOptions{
		ThemeRoot:     configuration.ThemeRootPath(),
		FallbackTheme: configuration.FallbackTheme,
		IgnoredThemes: configuration.IgnoredThemes,
		IgnoredIcons:  configuration.IgnoredIcons,
	}

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) (CommandConfiguration, error) {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration = configuration.sanitize()

	if command.Flags().Changed(flagRootNameConstant) {
		configuration.Root, _ = command.Flags().GetString(flagRootNameConstant)
	}
	if command.Flags().Changed(flagFallbackThemeNameConstant) {
		configuration.FallbackTheme, _ = command.Flags().GetString(flagFallbackThemeNameConstant)
	}
	if command.Flags().Changed(flagExemptionsNameConstant) {
		configuration.ExemptionsFile, _ = command.Flags().GetString(flagExemptionsNameConstant)
	}

	configuration = configuration.sanitize()

	if len(configuration.ExemptionsFile) > 0 {
		exemptionList, exemptionError := LoadExemptionList(configuration.ExemptionsFile)
		if exemptionError != nil {
			return CommandConfiguration{}, exemptionError
		}
		configuration.IgnoredIcons = append(configuration.IgnoredIcons, exemptionList.IgnoredIcons...)
		configuration.IgnoredThemes = append(configuration.IgnoredThemes, exemptionList.IgnoredThemes...)
	}

	return configuration, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
