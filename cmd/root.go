package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "course-service",
	Short: "Course catalog, curriculum, review, and enrollment service",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
