package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calden/bankintake/internal/bank"
)

func newImportCommand(deps *Deps) *cobra.Command {
	var projectID string
	var institution string
	var kind string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank statement CSV into a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			res, err := deps.Importer.ImportFile(cmd.Context(), projectID, institution,
				bank.AccountKind(kind), filepath.Base(args[0]), raw)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "upload %s: imported %d, filtered %d\n",
				res.UploadID, res.Imported, res.Filtered)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "project id (required)")
	_ = cmd.MarkFlagRequired("project")
	cmd.Flags().StringVar(&institution, "institution", "",
		fmt.Sprintf("institution key, one of: %s (required)", strings.Join(bank.Keys(), ", ")))
	_ = cmd.MarkFlagRequired("institution")
	cmd.Flags().StringVar(&kind, "account", string(bank.AccountChecking), "account kind: checking or credit")

	return cmd
}
