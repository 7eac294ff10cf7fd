package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriComplete/internal/app"
)

// Version is overridden at build time with -ldflags "-X ...cmd.Version=..."
var Version = "dev"

var debug bool

var rootCmd = &cobra.Command{
	Use:     "roricomplete",
	Short:   "A terminal workspace for text completions",
	Long:    `RoriComplete sends prompts to an OpenAI compatible completion endpoint and keeps a browsable history of the answers.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		runApp()
	},
}

func runApp() {
	application, err := app.NewApplication(app.Options{Debug: debug, Version: Version})
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Printf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug level entries to the log file")
	rootCmd.AddCommand(profileCmd)
}
