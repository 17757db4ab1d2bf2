package system

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
	"github.com/mairapenna/nutriplan_backend/pkg/constants"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in demo data for any missing storage key",
		Long: `Seed fills the storage backend with the built-in demo records. Keys
that already hold data are left untouched; use "system reset" to start over.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, _, err := openBackend(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()

			seeds := map[string]any{
				constants.KeyPatients:      store.SeedPatients(),
				constants.KeyAppointments:  store.SeedAppointments(),
				constants.KeyProfile:       store.DefaultProfile(),
				constants.KeyNotifications: store.DefaultNotifications(),
			}

			for key, value := range seeds {
				_, err := backend.Load(ctx, key)
				if err == nil {
					fmt.Printf("%s: already present, skipped\n", key)
					continue
				}
				if !errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("load %q: %w", key, err)
				}
				b, err := json.Marshal(value)
				if err != nil {
					return fmt.Errorf("marshal %q: %w", key, err)
				}
				if err := backend.Save(ctx, key, b); err != nil {
					return fmt.Errorf("save %q: %w", key, err)
				}
				fmt.Printf("%s: seeded\n", key)
			}
			return nil
		},
	}

	return cmd
}
