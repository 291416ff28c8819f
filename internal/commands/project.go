package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/calden/bankintake/internal/database/repository"
)

func newProjectCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage client projects and their reporting periods",
	}
	cmd.AddCommand(newProjectCreateCommand(deps))
	cmd.AddCommand(newProjectListCommand(deps))
	cmd.AddCommand(newProjectDeleteCommand(deps))
	return cmd
}

func newProjectCreateCommand(deps *Deps) *cobra.Command {
	var client string
	var start, end string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project for a client and reporting period",
		RunE: func(cmd *cobra.Command, args []string) error {
			periodStart, err := time.Parse(time.DateOnly, start)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			periodEnd, err := time.Parse(time.DateOnly, end)
			if err != nil {
				return fmt.Errorf("parsing --end: %w", err)
			}
			if !periodStart.Before(periodEnd) {
				return fmt.Errorf("period start %s must be before end %s", start, end)
			}

			p := repository.Project{
				ID:          uuid.NewString(),
				ClientName:  client,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			}
			if err := deps.Projects.Create(cmd.Context(), p); err != nil {
				return fmt.Errorf("creating project: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created project %s (%s, %s to %s)\n", p.ID, client, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	_ = cmd.MarkFlagRequired("client")
	cmd.Flags().StringVar(&start, "start", "", "period start, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("start")
	cmd.Flags().StringVar(&end, "end", "", "period end, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newProjectListCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := deps.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no projects")
				return nil
			}
			for _, p := range projects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s to %s\n",
					p.ID, p.ClientName,
					p.PeriodStart.Format(time.DateOnly), p.PeriodEnd.Format(time.DateOnly))
			}
			return nil
		},
	}
}

func newProjectDeleteCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Soft delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Projects.SoftDelete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting project: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted project %s\n", args[0])
			return nil
		},
	}
}
