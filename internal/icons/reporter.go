package icons

import (
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	errorHeaderTemplateConstant        = " == %d errors found in icon themes! == \n\n"
	warningHeaderTemplateConstant      = " == %d warnings found in icon themes == \n\n"
	badSymbolicSectionLabelConstant    = "Symbolic themes should only have symbolic icons in them (They don't end with -symbolic.svg so can't be used):\n"
	badScalableSectionLabelConstant    = "Scalable themes should not have symbolic icons in them (They end with -symbolic.svg so won't be used):\n"
	onlyFoundInSectionTemplateConstant = "Icons only found in %s:\n"
	missingFromSectionTemplateConstant = "Icons missing from %s:\n"
	listingBulletTemplateConstant      = " - %s\n"
	surplusBulletTemplateConstant      = " + %s\n"
	sectionSeparatorConstant           = "\n"
)

// Reporter formats findings as human-readable text on the error stream. The
// output carries no stable schema and is not intended for machine parsing.
type Reporter struct {
	errorWriter io.Writer
}

// NewReporter constructs a reporter writing to the provided error stream.
func NewReporter(errorWriter io.Writer) *Reporter {
	if errorWriter == nil {
		errorWriter = os.Stderr
	}
	return &Reporter{errorWriter: errorWriter}
}

// WriteReport emits the error findings followed by the warning findings, each
// introduced by a counted header. Empty categories produce no output.
func (reporter *Reporter) WriteReport(findings *Findings) {
	if findings.HasErrors() {
		fmt.Fprintf(reporter.errorWriter, errorHeaderTemplateConstant, findings.ErrorCount())
		reporter.writeListSection(badSymbolicSectionLabelConstant, findings.BadSymbolicNames, listingBulletTemplateConstant)
		reporter.writeListSection(badScalableSectionLabelConstant, findings.BadScalableNames, listingBulletTemplateConstant)
		reporter.writeBucketSections(onlyFoundInSectionTemplateConstant, findings.OnlyFoundIn, surplusBulletTemplateConstant)
		reporter.writeBucketSections(missingFromSectionTemplateConstant, findings.MissingFrom, listingBulletTemplateConstant)
	}

	if findings.WarningCount() > 0 {
		fmt.Fprintf(reporter.errorWriter, warningHeaderTemplateConstant, findings.WarningCount())
		reporter.writeBucketSections(missingFromSectionTemplateConstant, findings.WarnMissingFrom, listingBulletTemplateConstant)
	}
}

func (reporter *Reporter) writeListSection(sectionLabel string, offendingPaths []string, bulletTemplate string) {
	if len(offendingPaths) == 0 {
		return
	}

	fmt.Fprint(reporter.errorWriter, sectionLabel)
	for _, offendingPath := range offendingPaths {
		fmt.Fprintf(reporter.errorWriter, bulletTemplate, offendingPath)
	}
	fmt.Fprint(reporter.errorWriter, sectionSeparatorConstant)
}

func (reporter *Reporter) writeBucketSections(sectionTemplate string, buckets map[string][]string, bulletTemplate string) {
	bucketNames := make([]string, 0, len(buckets))
	for bucketName := range buckets {
		bucketNames = append(bucketNames, bucketName)
	}
	sort.Strings(bucketNames)

	for _, bucketName := range bucketNames {
		fmt.Fprintf(reporter.errorWriter, sectionTemplate, bucketName)
		for _, iconKey := range buckets[bucketName] {
			fmt.Fprintf(reporter.errorWriter, bulletTemplate, iconKey)
		}
		fmt.Fprint(reporter.errorWriter, sectionSeparatorConstant)
	}
}
