package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/menu"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Long: `Start the numbered text menu for managing records and viewing reports.

The menu reads one answer per line from stdin, so it can also be driven
by a script:
  printf '6\n1\n0\n0\ny\n' | registrar menu`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts, cmd)
		},
	}
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Debug("menu starting", "db", s.cfg.Database)
	m := menu.New(s.store, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithClock(s.clock),
		menu.WithLogger(s.logger),
	)
	if err := m.Run(cmd.Context()); err != nil {
		return storageError("menu failed", err)
	}
	return nil
}
