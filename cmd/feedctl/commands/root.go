package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bizfeed/config"
	"bizfeed/internal/app"
)

var jsonOutput bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "feedctl",
	Short: "Administer the business feed store",
	Long: `feedctl runs maintenance against the store configured by the same
environment (and .env file) the server reads: STORE_DRIVER, STORE_PATH,
MONGO_URI, POSTGRES_DSN and friends.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// withRuntime opens the configured store and engine for the duration of fn.
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *app.Runtime) error) error {
	cfg, _ := config.LoadConfig()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close(context.Background())
	return fn(ctx, rt)
}
