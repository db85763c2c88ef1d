package main

import (
	"fmt"

	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/spf13/cobra"
)

// hashPasswordCmd prints a value for DEV_LOGIN_PASSWORD_HASH.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for the development login guard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := (&auth.HashService{}).HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
