package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bizfeed/config"
	"bizfeed/internal/middleware"
)

var (
	tokenUID  string
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token signed with JWT_SECRET",
	Long: `Mint an HS256 token the server accepts, for local testing.

Examples:
  feedctl token --uid shop-1
  feedctl token --uid dev-1 --role DEVELOPER --ttl 1h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.LoadConfig()
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}
		tok, err := middleware.NewToken(cfg.JWTSecret, tokenUID, tokenRole, tokenTTL, time.Now())
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUID, "uid", "", "User id (required)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "MEMBER", "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Lifetime, 0 for no expiry")
	_ = tokenCmd.MarkFlagRequired("uid")
}
