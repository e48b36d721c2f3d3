// Package cli assembles the brand-audit command-line application: the Cobra
// root command, configuration loading with embedded defaults, the validated
// brand registry, and structured logging shared by every subcommand.
package cli
