package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/boxtree/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "boxtree",
		Short:        "Solve terminal widget-tree layouts",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&cfg.Layout.Width, "width", cfg.Layout.Width, "columns offered to the root (0 = unbounded)")
	root.PersistentFlags().IntVar(&cfg.Layout.Height, "height", cfg.Layout.Height, "rows offered to the root (0 = unbounded)")
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "log tree mutations to stderr")

	root.AddCommand(newLayoutCmd(cfg), newPreviewCmd(cfg))
	return root
}

func newLayoutCmd(cfg *config.Config) *cobra.Command {
	var paint bool
	cmd := &cobra.Command{
		Use:   "layout <file.toml>",
		Short: "Solve a document and print the geometry of every element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(*cfg, args[0])
			if err != nil {
				return err
			}
			s.solve(cfg.Layout.Width, cfg.Layout.Height)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.table())
			if paint {
				fmt.Fprintln(out, s.paint())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&paint, "paint", false, "also draw the solved boxes and text")
	return cmd
}

func newPreviewCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file.toml>",
		Short: "Solve a document at the terminal size, re-solving on resize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(*cfg, args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newPreviewModel(s, args[0]), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}
}
