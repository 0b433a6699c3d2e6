package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bizfeed/internal/app"
	"bizfeed/internal/feed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo posts into an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *app.Runtime) error {
			n, err := rt.Seed(ctx)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "store not empty, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts\n", n)
			return nil
		})
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Persist ACTIVE to EXPIRED transitions that are due",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *app.Runtime) error {
			n, err := rt.Engine.SweepExpired(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d posts expired\n", n)
			return nil
		})
	},
}

var (
	listAll   bool
	listQuery string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the ranked feed",
	Long: `Print the feed in ranking order. Like the server, listing persists
due expiries first.

Examples:
  feedctl list
  feedctl list --all --query bakery --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *app.Runtime) error {
			posts, err := rt.Engine.Search(ctx, feed.SearchOptions{Query: listQuery, IncludeAll: listAll})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				for _, p := range posts {
					if err := enc.Encode(p); err != nil {
						return err
					}
				}
				return nil
			}
			for i, p := range posts {
				pin := "-"
				if p.PinnedRank != nil {
					pin = fmt.Sprint(*p.PinnedRank)
				}
				fmt.Fprintf(out, "%3d  %-8s %-8s pin=%-3s score=%-7.1f %s  %s\n",
					i+1, p.PlanType, p.VisibilityStatus, pin, p.RankingScore, p.PostID, p.Title)
			}
			return nil
		})
	},
}

var (
	quotaOwner string
	quotaPlan  string
)

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show an owner's remaining allowance for a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *app.Runtime) error {
			info, err := rt.Engine.PlanQuotaInfo(ctx, quotaOwner, strings.ToUpper(quotaPlan))
			if err != nil {
				return err
			}
			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d left (%s window)\n",
				info.Plan, info.Remaining, info.Limit, info.Window)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd, sweepCmd, listCmd, quotaCmd)

	listCmd.Flags().BoolVar(&listAll, "all", false, "Include paused, expired and deleted posts")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only posts matching this text")

	quotaCmd.Flags().StringVar(&quotaOwner, "owner", "", "Owner id")
	quotaCmd.Flags().StringVar(&quotaPlan, "plan", "", "WELCOME, ENTRY, BASIC or PRO (required)")
	_ = quotaCmd.MarkFlagRequired("plan")
}
