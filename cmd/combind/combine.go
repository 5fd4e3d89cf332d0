package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"combind/internal/combine"
	"combind/internal/filelist"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

// combineCmd performs a one-shot combine from the command line
func combineCmd() *cobra.Command {
	var output string
	var patterns []string

	cmd := &cobra.Command{
		Use:   "combine [files...]",
		Short: "Combine files into a single output file",
		Long: `Combine the given files, in order, into a single output file with a
separator between entries. Glob patterns passed with --pattern are expanded
against their directory and appended after the positional files in sorted
order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := filelist.New()
			list.Append(args...)

			for _, pattern := range patterns {
				matches, err := expandPattern(pattern)
				if err != nil {
					return err
				}
				list.Append(matches...)
			}

			if list.Len() == 0 {
				return fmt.Errorf("no input files: pass paths or --pattern")
			}

			if output == "" {
				output = cfg.OutputFileName(time.Now())
			}

			engine := combine.NewWithConfig(cfg)
			result, err := engine.Combine(list.Snapshot(), output)
			if err != nil {
				return err
			}

			fmt.Printf("Combined %d files (%d bytes) into %s\n", result.FileCount, result.Bytes, result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default combined_<date>.txt)")
	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "glob pattern of files to append, e.g. 'notes/*.md' (repeatable)")

	return cmd
}

// expandPattern matches the base of the pattern against the file names in the
// pattern's directory and returns the matches in sorted order.
func expandPattern(pattern string) ([]string, error) {
	dir, base := filepath.Split(pattern)
	if dir == "" {
		dir = "."
	}

	g, err := glob.Compile(base)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory for pattern %q: %w", pattern, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if g.Match(entry.Name()) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}
