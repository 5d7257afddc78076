package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwtgen "trading_backend/internal/platform/jwt"
)

func newTokenCmd() *cobra.Command {
	var (
		email  string
		ttl    time.Duration
		secret string
	)

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Mint a development session token",
		Long: `Prints an HS256 JWT with sub, email and exp claims. POST it to /session to
store a session locally; the server reads the claims but never verifies the
signature.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := jwtgen.NewGenerator(secret, ttl).GenerateToken(args[0], email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().StringVar(&secret, "secret", "dev-secret", "signing secret")
	return cmd
}
