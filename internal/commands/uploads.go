package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calden/bankintake/internal/statement"
)

func newUploadsCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uploads",
		Short: "Inspect and remove statement uploads",
	}
	cmd.AddCommand(newUploadsListCommand(deps))
	cmd.AddCommand(newUploadsDeleteCommand(deps))
	return cmd
}

func newUploadsListCommand(deps *Deps) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active uploads for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			uploads, err := deps.Uploads.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(uploads) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no uploads")
				return nil
			}
			for _, u := range uploads {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s/%s  %d transactions  %s\n",
					u.ID, u.Filename, u.Institution, u.AccountKind,
					u.TransactionCount, u.CreatedAt.In(deps.location()).Format(time.DateOnly))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "project id (required)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newUploadsDeleteCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <upload-id>",
		Short: "Soft delete an upload and hide its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Uploads.SoftDelete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting upload: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted upload %s\n", args[0])
			return nil
		},
	}
}

func newTransactionsCommand(deps *Deps) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List imported transactions for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := deps.Transactions.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no transactions")
				return nil
			}
			for _, t := range txs {
				memo := ""
				if t.Memo != nil {
					memo = "  " + *t.Memo
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %10s  %s%s\n",
					t.Date.Format(time.DateOnly), statement.FormatCents(t.AmountCents), t.Description, memo)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "project id (required)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
