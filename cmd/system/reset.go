package system

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func NewResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all stored data and reinstall the built-in demo records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all stored data; re-run with --yes to confirm")
			}

			backend, _, err := openBackend(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()

			st := store.New(ctx, backend)
			if err := st.ResetAll(ctx); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			fmt.Println("All data reset to the built-in demo records.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive reset")

	return cmd
}
