// Package cli wires the cobra command tree for the gym binary.
package cli

import (
	"github.com/spf13/cobra"
)

// VersionInfo holds build-time version metadata.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "gym",
		Short: "Product sense practice gym for aspiring PMs",
		Long: `Product Sense Gym is a practice tool for aspiring product managers.
Pick a product, a target role, and a user flow, answer a scripted sequence
of questions, and get AI-powered coaching feedback plus a final summary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.AddCommand(
		NewPracticeCmd(a),
		NewProductsCmd(a),
		NewVersionCmd(a),
	)
}
