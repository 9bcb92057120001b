package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"claimsight/src/core/claimdocs"
	"claimsight/src/core/decisionflow"
	"claimsight/src/infrastructure/integrations/ollama"
)

var decideQuery string

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Render a claim decision from the indexed policy clauses",
	Long: `The decide command structures a claim query, retrieves the most relevant
policy clauses from the vector index and prints the decision JSON.`,
	RunE: runDecide,
}

func init() {
	rootCmd.AddCommand(decideCmd)
	settingDefaultConfig()

	decideCmd.Flags().StringVarP(&decideQuery, "query", "q", "", "Claim query, e.g. \"46M, knee surgery, Pune, 3-month policy\" (required)")
	decideCmd.MarkFlagRequired("query")
}

func runDecide(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ollamaClient := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{
		Timeout: 120 * time.Second,
	})
	provider := ollama.NewProvider(ollamaClient, viper.GetString("ollama.model"))

	clauseIndex := buildClauseIndex()
	if err := clauseIndex.EnsureReady(ctx); err != nil {
		return fmt.Errorf("failed to prepare clause index: %v", err)
	}

	searchService := claimdocs.NewSearchService(clauseIndex, provider)
	flow := decisionflow.NewDecisionFlow(provider, searchService)

	decision, err := flow.Process(ctx, decideQuery)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(decision, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode decision: %v", err)
	}
	fmt.Printf("%s\n", out)

	return nil
}
