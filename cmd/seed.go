package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"claimsight/src/log"
	"claimsight/src/storage/sqlite/claimsdb"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the claims schema and load the sample dataset",
	Long: `The seed command creates the SQLite claims schema and loads the curated
sample dataset. With --generate it additionally fills the schema with a
large synthetic dataset for load testing.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	settingDefaultConfig()

	seedCmd.Flags().BoolP("generate", "g", false, "Generate a large synthetic dataset after seeding")
	seedCmd.Flags().Int("insured", 2000, "Number of synthetic insured persons to generate")
	seedCmd.Flags().Int("claims", 3000, "Number of synthetic claims to generate")
}

func runSeed(cmd *cobra.Command, args []string) error {
	generate, _ := cmd.Flags().GetBool("generate")
	insuredCount, _ := cmd.Flags().GetInt("insured")
	claimCount, _ := cmd.Flags().GetInt("claims")

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

	if err := claimsdb.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate claims schema: %v", err)
	}

	if err := claimsdb.Seed(ctx, db); err != nil {
		return fmt.Errorf("failed to seed sample data: %v", err)
	}
	log.Info("Sample dataset loaded", "path", viper.GetString("sqlite.path"))

	if !generate {
		return nil
	}

	bar := progressbar.Default(int64(insuredCount+claimCount), "generating")
	err = claimsdb.Generate(ctx, db, claimsdb.GenerateOptions{
		InsuredCount: insuredCount,
		ClaimCount:   claimCount,
		Progress: func(n int) {
			bar.Add(n)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to generate synthetic data: %v", err)
	}
	bar.Finish()

	log.Info("Synthetic dataset generated", "insured", insuredCount, "claims", claimCount)
	return nil
}
