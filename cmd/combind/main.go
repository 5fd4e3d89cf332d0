package main

import (
	"fmt"
	"os"

	"combind/internal/config"
	"combind/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "combind",
		Short:   "A file combining utility",
		Long:    `Combind lets you select an ordered list of text files, preview them, and concatenate them into a single output file.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("Could not load config: %v. Using default settings.", err)
				cfg = config.New()
			}
			if debug {
				cfg.Settings.Debug = true
			}
		},
		// No Run function here - default behavior is to show help
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/combind/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(combineCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
