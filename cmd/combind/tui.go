package main

import (
	"fmt"

	"combind/internal/combine"
	"combind/internal/filelist"
	"combind/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// tuiCmd launches the terminal user interface
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [files...]",
		Short: "Launch the terminal user interface",
		Long:  `Launch the terminal interface. Any files given as arguments are pre-loaded into the list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := filelist.New()
			list.Append(args...)

			model := tui.New(list, combine.NewWithConfig(cfg), cfg)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
