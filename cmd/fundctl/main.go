// Command fundctl browses and funds campaigns through a fundscope server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fundscope/internal/apiclient"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FUNDSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "fundctl",
		Short:         "Browse and fund crowdfunding campaigns",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(out)
	root.PersistentFlags().String("server", "http://localhost:8080", "fundscope server URL")
	root.PersistentFlags().Bool("json", false, "print raw JSON")
	root.PersistentFlags().Int("retries", 3, "retries for failed reads")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "per request timeout")
	_ = v.BindPFlags(root.PersistentFlags())

	app := &cli{v: v, out: out}
	root.AddCommand(
		app.campaignsCmd(),
		app.accountsCmd(),
		app.fundCmd(),
		app.withdrawCmd(),
		app.tiersCmd(),
	)
	return root
}

type cli struct {
	v   *viper.Viper
	out io.Writer
}

func (c *cli) client() (*apiclient.Client, error) {
	return apiclient.New(c.v.GetString("server"), c.v.GetInt("retries"), c.v.GetDuration("timeout"))
}

func (c *cli) campaignsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "campaigns", Short: "Inspect campaigns"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List campaigns with their funding progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetString("status")
			api, err := c.client()
			if err != nil {
				return err
			}
			campaigns, err := api.ListCampaigns(cmd.Context(), strings.ToUpper(status))
			if err != nil {
				return err
			}
			return c.printCampaigns(campaigns)
		},
	}
	list.Flags().String("status", "", "ONGOING, SUCCESSFUL, FAILED or ALL")

	show := &cobra.Command{
		Use:   "show <address>",
		Short: "Show a campaign with tiers and account capabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, _ := cmd.Flags().GetString("account")
			api, err := c.client()
			if err != nil {
				return err
			}
			detail, err := api.GetCampaign(cmd.Context(), args[0], account)
			if err != nil {
				return err
			}
			return c.printDetail(detail)
		},
	}
	show.Flags().String("account", "", "account whose capabilities to show")

	txs := &cobra.Command{
		Use:   "transactions <address>",
		Short: "List transactions relayed to a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}
			records, err := api.Transactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c.v.GetBool("json") {
				return c.printJSON(records)
			}
			tw := c.table()
			tw.AppendHeader(table.Row{"Time", "Kind", "Account", "Tier", "Amount", "Tx"})
			for _, r := range records {
				tier := r.TierName
				if r.TierIndex != nil {
					tier = fmt.Sprintf("%d %s", *r.TierIndex, r.TierName)
				}
				tw.AppendRow(table.Row{r.CreatedAt.Format(time.RFC3339), r.Kind, r.Account, tier, r.Amount, r.TxHash})
			}
			tw.Render()
			return nil
		},
	}

	cmd.AddCommand(list, show, txs)
	return cmd
}

func (c *cli) accountsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "accounts", Short: "Inspect accounts"}
	cmd.AddCommand(&cobra.Command{
		Use:   "campaigns <address>",
		Short: "List campaigns created by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}
			campaigns, err := api.UserCampaigns(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printCampaigns(campaigns)
		},
	})
	return cmd
}

func (c *cli) fundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund <address>",
		Short: "Fund a campaign with the amount of a tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, _ := cmd.Flags().GetUint64("tier")
			account, _ := cmd.Flags().GetString("account")
			api, err := c.client()
			if err != nil {
				return err
			}
			res, err := api.Fund(cmd.Context(), args[0], account, tier)
			if err != nil {
				return err
			}
			return c.printTx(res)
		},
	}
	cmd.Flags().Uint64("tier", 0, "tier index")
	cmd.Flags().String("account", "", "sending account")
	_ = cmd.MarkFlagRequired("tier")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func (c *cli) withdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw <address>",
		Short: "Withdraw the balance of a successful campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, _ := cmd.Flags().GetString("account")
			api, err := c.client()
			if err != nil {
				return err
			}
			res, err := api.Withdraw(cmd.Context(), args[0], account)
			if err != nil {
				return err
			}
			return c.printTx(res)
		},
	}
	cmd.Flags().String("account", "", "owner account")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func (c *cli) tiersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tiers", Short: "Manage the funding tiers of a campaign"}

	add := &cobra.Command{
		Use:   "add <address>",
		Short: "Append a tier of the given amount in wei",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, _ := cmd.Flags().GetString("account")
			name, _ := cmd.Flags().GetString("name")
			amount, _ := cmd.Flags().GetString("amount")
			api, err := c.client()
			if err != nil {
				return err
			}
			res, err := api.AddTier(cmd.Context(), args[0], account, name, amount)
			if err != nil {
				return err
			}
			return c.printTx(res)
		},
	}
	add.Flags().String("account", "", "owner account")
	add.Flags().String("name", "", "tier name")
	add.Flags().String("amount", "", "tier amount in wei")
	for _, f := range []string{"account", "name", "amount"} {
		_ = add.MarkFlagRequired(f)
	}

	remove := &cobra.Command{
		Use:   "remove <address>",
		Short: "Remove the tier at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, _ := cmd.Flags().GetString("account")
			index, _ := cmd.Flags().GetUint64("index")
			api, err := c.client()
			if err != nil {
				return err
			}
			res, err := api.RemoveTier(cmd.Context(), args[0], account, index)
			if err != nil {
				return err
			}
			return c.printTx(res)
		},
	}
	remove.Flags().String("account", "", "owner account")
	remove.Flags().Uint64("index", 0, "tier index")
	_ = remove.MarkFlagRequired("account")
	_ = remove.MarkFlagRequired("index")

	cmd.AddCommand(add, remove)
	return cmd
}

func (c *cli) table() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(c.out)
	tw.SetStyle(table.StyleLight)
	return tw
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printCampaigns(campaigns []apiclient.Campaign) error {
	if c.v.GetBool("json") {
		return c.printJSON(campaigns)
	}
	tw := c.table()
	tw.AppendHeader(table.Row{"Address", "Name", "Funded", "Days left", "Status", "Note"})
	for _, cp := range campaigns {
		tw.AppendRow(table.Row{cp.Address, cp.Name, percent(cp), daysLeft(cp), cp.Status, note(cp)})
	}
	tw.Render()
	return nil
}

func (c *cli) printDetail(d *apiclient.CampaignDetail) error {
	if c.v.GetBool("json") {
		return c.printJSON(d)
	}
	fmt.Fprintf(c.out, "%s (%s)\n%s\n\n", d.Name, d.Address, d.Description)
	fmt.Fprintf(c.out, "Owner:     %s\n", d.Owner)
	fmt.Fprintf(c.out, "Goal:      %s wei\n", d.Goal)
	fmt.Fprintf(c.out, "Balance:   %s wei\n", d.Balance)
	fmt.Fprintf(c.out, "Funded:    %s\n", percent(d.Campaign))
	fmt.Fprintf(c.out, "Days left: %s\n", daysLeft(d.Campaign))
	fmt.Fprintf(c.out, "Status:    %s (contract %s)\n", d.Status, d.ContractState)
	if d.Account != "" {
		fmt.Fprintf(c.out, "As %s: fund=%t withdraw=%t edit=%t\n",
			d.Account, d.Capabilities.CanFund, d.Capabilities.CanWithdraw, d.Capabilities.CanEdit)
	}

	tw := c.table()
	tw.AppendHeader(table.Row{"#", "Tier", "Amount (wei)", "Backers"})
	for _, t := range d.Tiers {
		tw.AppendRow(table.Row{t.Index, t.Name, t.Amount, t.Backers})
	}
	tw.Render()
	return nil
}

func (c *cli) printTx(res *apiclient.TxResult) error {
	if c.v.GetBool("json") {
		return c.printJSON(res)
	}
	state := "pending"
	if res.Confirmed {
		state = fmt.Sprintf("confirmed in block %d", res.BlockNumber)
	}
	fmt.Fprintf(c.out, "%s %s: %s\n", res.Transaction.Kind, res.Transaction.TxHash, state)
	if res.Campaign != nil {
		fmt.Fprintf(c.out, "Campaign now %s funded, %s\n", percent(*res.Campaign), res.Campaign.Status)
	}
	return nil
}

func percent(cp apiclient.Campaign) string {
	if cp.FundedPercentageText == "" {
		return "-"
	}
	return cp.FundedPercentageText + "%"
}

func daysLeft(cp apiclient.Campaign) string {
	if cp.RemainingDays == nil {
		return "-"
	}
	return fmt.Sprint(*cp.RemainingDays)
}

func note(cp apiclient.Campaign) string {
	switch {
	case cp.Error != "":
		return cp.Error
	case cp.Stale:
		return "stale"
	default:
		return ""
	}
}
