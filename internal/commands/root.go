// Package commands wires the CLI surface.
package commands

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/calden/bankintake/internal/buildinfo"
	"github.com/calden/bankintake/internal/database/repository"
	"github.com/calden/bankintake/internal/service"
)

// Deps carries the wired collaborators every command shares.
type Deps struct {
	DB           *sql.DB
	Projects     *repository.ProjectRepo
	Uploads      *repository.UploadRepo
	Transactions *repository.TransactionRepo
	Importer     *service.ImportService
	// Location is the display timezone for stored timestamps.
	Location *time.Location
	Log      *log.Logger
}

func (d *Deps) location() *time.Location {
	if d.Location != nil {
		return d.Location
	}
	return time.Local
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(deps *Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bankintake",
		Short:   "Import and normalize bank statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProjectCommand(deps))
	rootCmd.AddCommand(newImportCommand(deps))
	rootCmd.AddCommand(newUploadsCommand(deps))
	rootCmd.AddCommand(newTransactionsCommand(deps))

	return rootCmd
}
