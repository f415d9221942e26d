package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/notes-backend/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		Long: `Signs an access token with the configured JWT secret and issuer.
The subject becomes the owner id of every note created with the token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				return errors.New("--subject is required")
			}

			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(subject)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "owner id to put in the sub claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: auth.access_token_ttl)")

	return cmd
}
