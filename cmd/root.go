package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agos/internal/database"
	"agos/internal/recordstore"
)

var SchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Ensure the database schema manually.",
	Long:  `Applies the declared collections and indexes to the database file without starting the server.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("db")

		db, err := database.NewSQLiteConnection(path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		store := recordstore.New(db)
		if err := store.EnsureSchema(database.SchemaVersion, database.Declarations()); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}

		fmt.Printf("Schema at version %d in %s\n", database.SchemaVersion, path)
		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "agos",
		Short: "Agos asset administration service",
	}
	SchemaCmd.Flags().String("db", "agos.db", "Path to the database file")
	rootCmd.AddCommand(SchemaCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
