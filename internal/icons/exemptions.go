package icons

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	exemptionListLoadErrorTemplateConstant   = "failed to load exemption list: %w"
	exemptionListParseErrorTemplateConstant  = "failed to parse exemption list: %w"
	exemptionListPathRequiredMessageConstant = "exemption list path must be provided"
	exemptionListEmptyEntryMessageConstant   = "exemption list entries must be non-empty"
)

// ExemptionList carries per-run additions to the static ignore sets, typically
// maintained next to a CI pipeline definition.
type ExemptionList struct {
	IgnoredIcons  []string `yaml:"ignored_icons"`
	IgnoredThemes []string `yaml:"ignored_themes"`
}

// LoadExemptionList reads and validates a YAML exemption list from disk.
func LoadExemptionList(exemptionListPath string) (ExemptionList, error) {
	trimmedPath := strings.TrimSpace(exemptionListPath)
	if len(trimmedPath) == 0 {
		return ExemptionList{}, errors.New(exemptionListPathRequiredMessageConstant)
	}

	fileContents, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return ExemptionList{}, fmt.Errorf(exemptionListLoadErrorTemplateConstant, readError)
	}

	var exemptionList ExemptionList
	if parseError := yaml.Unmarshal(fileContents, &exemptionList); parseError != nil {
		return ExemptionList{}, fmt.Errorf(exemptionListParseErrorTemplateConstant, parseError)
	}

	if validationError := exemptionList.validate(); validationError != nil {
		return ExemptionList{}, validationError
	}

	return exemptionList, nil
}

func (exemptionList ExemptionList) validate() error {
	for _, entryGroup := range [][]string{exemptionList.IgnoredIcons, exemptionList.IgnoredThemes} {
		for _, entry := range entryGroup {
			if len(strings.TrimSpace(entry)) == 0 {
				return errors.New(exemptionListEmptyEntryMessageConstant)
			}
		}
	}
	return nil
}
