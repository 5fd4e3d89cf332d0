package main

import (
	"combind/internal/combine"
	"combind/internal/filelist"
	"combind/internal/gui"

	"github.com/spf13/cobra"
)

// guiCmd launches the desktop window
func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the desktop window: add files, reorder them, preview their contents, and combine them into one output file.`,
		Run: func(cmd *cobra.Command, args []string) {
			list := filelist.New()
			list.Append(args...)

			app := gui.NewApp(cfg, list, combine.NewWithConfig(cfg))
			app.Run()
		},
	}
}
