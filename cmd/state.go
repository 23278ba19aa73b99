package main

import (
	"fmt"

	"github.com/spf13/cobra"

	stateRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/state"
)

func newStateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset persisted application state",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the state blob as JSON",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(cmd.Context(), *configPath)
				if err != nil {
					return err
				}
				defer a.Close()

				data, err := stateRepo.Encode(a.state.Load(cmd.Context()))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Regenerate parking slots and drop all bookings",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(cmd.Context(), *configPath)
				if err != nil {
					return err
				}
				defer a.Close()

				if err := a.slots().Reset(cmd.Context()); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "state reset")
				return err
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the state blob from storage",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(cmd.Context(), *configPath)
				if err != nil {
					return err
				}
				defer a.Close()

				if err := a.state.Clear(cmd.Context()); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "state cleared")
				return err
			},
		},
	)

	return cmd
}
