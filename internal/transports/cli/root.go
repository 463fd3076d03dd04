package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gocalc/internal/core"
)

// New создает корневую CLI-команду.
func New(registry *core.Registry, log *slog.Logger, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gocalc",
		Short: "Интерактивный командный калькулятор",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := NewREPL(registry, log, cmd.InOrStdin(), cmd.OutOrStdout())
			return repl.Run(cmd.Context())
		},
	}

	root.AddCommand(newVersionCmd(version))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}
