package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/calden/bankintake/internal/commands"
	"github.com/calden/bankintake/internal/config"
	"github.com/calden/bankintake/internal/database"
	"github.com/calden/bankintake/internal/database/repository"
	"github.com/calden/bankintake/internal/service"
)

func main() {
	logger := log.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	loc, err := cfg.UI.Location()
	if err != nil {
		logger.Fatal("timezone", "err", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logger.Fatal("mkdir db dir", "err", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open db", "err", err)
	}
	defer db.Close()

	if err := database.RunMigrationsWithDB(db); err != nil {
		logger.Fatal("migrate", "err", err)
	}

	projectRepo := repository.NewProjectRepo(db)
	uploadRepo := repository.NewUploadRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	importer := &service.ImportService{
		DB:           db,
		Projects:     projectRepo,
		Uploads:      uploadRepo,
		Transactions: txRepo,
		Log:          logger,
	}

	rootCmd := commands.NewRootCommand(&commands.Deps{
		DB:           db,
		Projects:     projectRepo,
		Uploads:      uploadRepo,
		Transactions: txRepo,
		Importer:     importer,
		Location:     loc,
		Log:          logger,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
