/*
Copyright © 2025 docsum authors
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsum",
	Short: "Document summarization and study-aid service",
	Long: `docsum splits uploaded text, CSV and PDF documents into chunks,
summarizes each chunk with a language model, merges the chunk summaries
into one final summary, and layers flashcard generation and grounded Q&A
on top of that summary.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	settingDefaultConfig()
}
