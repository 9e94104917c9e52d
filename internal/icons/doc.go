// Package icons implements the icon-theme consistency check used by the
// iconcheck CLI.
//
// It exposes CommandBuilder for wiring the check Cobra command, Service for
// driving the pipeline programmatically, and the theme enumeration, tree
// scanning, analysis, and reporting collaborators the pipeline composes.
package icons
