package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jfotso/immogest-backend/internal/infrastructure/config"
	"github.com/jfotso/immogest-backend/internal/infrastructure/logging"
	"github.com/jfotso/immogest-backend/internal/infrastructure/persistence/postgres"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Ferramenta de migração e seed do banco",
	}

	rootCmd.AddCommand(upCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Cria ou atualiza o schema do banco",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			return db.AutoMigrate(postgres.AllModels()...)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Grava os dados de referência (status, tipos)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			return postgres.Seed(db)
		},
	}
}

func connect() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	return postgres.NewDatabaseConnection(&cfg.Database, logger)
}
