package cli

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vacuum-planner/infrastruture/token"
	"github.com/spf13/cobra"
)

// newTokenCmd creates the token command.
func (a *App) newTokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue a bearer token for the planning API",
		Long: `Issue a bearer token signed with JWT_SECRET for use against a server
started with the same secret.

Example:
  curl -H "Authorization: Bearer $(vacuum token ci)" ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.JWTSecret == "" {
				return ErrMissingSecret
			}
			signed, err := token.NewJwtService(a.cfg.JWTSecret, a.cfg.JWTIssuer).Issue(args[0], ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, signed)
			return err
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")

	return cmd
}
