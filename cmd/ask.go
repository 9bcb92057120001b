package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"claimsight/src/core/nlsql"
	"claimsight/src/infrastructure/integrations/ollama"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/querylogctrl"
)

var askQuestion string

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a natural-language question against the claims database",
	Long: `The ask command translates a natural-language question into SQL, runs it
against the claims database and prints the generated SQL and result rows.`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	settingDefaultConfig()

	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Natural-language question (required)")
	askCmd.MarkFlagRequired("question")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, err := claimsdb.Open(viper.GetString("sqlite.path"))
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&querylogctrl.QueryLog{}); err != nil {
		return fmt.Errorf("failed to migrate query log schema: %v", err)
	}
	queryLogCtrl, err := querylogctrl.NewQueryLogService(db)
	if err != nil {
		return fmt.Errorf("failed to initialize query log service: %v", err)
	}

	ollamaClient := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{
		Timeout: 120 * time.Second,
	})
	provider := ollama.NewProvider(ollamaClient, viper.GetString("ollama.model"))

	queryService := nlsql.NewService(provider, claimsdb.NewStore(db), queryLogCtrl)

	result, err := queryService.Ask(ctx, askQuestion)
	if err != nil {
		return err
	}

	fmt.Printf("SQL: %s\n\n", result.GeneratedSQL)
	rows, err := json.MarshalIndent(result.Rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result rows: %v", err)
	}
	fmt.Printf("%s\n\n%d row(s)\n", rows, result.RowCount)

	return nil
}
