// =============================================================================
// Daily Sales Summary - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which writes random but valid
// sample invoices. It is meant for demos and for trying the tool out.
//
// COMMAND USAGE:
//   salesummary generate [--invoices-dir <path>] [--count <n>] [--seed <s>]
//
// Each invoice is written as invoice_<uuid>.txt. A non-zero --seed makes the
// invoice contents reproducible; file names are always unique.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/daily-sales-summary/internal/invoice"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
	"github.com/ginjaninja78/daily-sales-summary/pkg/utils"
)

// generateCount is the number of invoices to write.
var generateCount int

// generateSeed seeds the random generator. Zero means time-based.
var generateSeed uint64

// samplePrices are the unit prices used for generated invoices, indexed by
// types.MenuItem.
var samplePrices = [types.MenuItemCount]decimal.Decimal{
	decimal.RequireFromString("3.50"), // hummous
	decimal.RequireFromString("3.00"), // fool
	decimal.RequireFromString("2.50"), // falafel
	decimal.RequireFromString("1.00"), // tea
	decimal.RequireFromString("1.50"), // cola
	decimal.RequireFromString("0.75"), // water
}

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write random sample invoices",
	Long:  `Write random, valid invoice files into the invoices directory, creating it if needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		seed := generateSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		return runGenerate(cfg.InvoicesDir, generateCount, seed, cmd.OutOrStdout())
	},
}

// init registers the generate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(
		&generateCount,
		"count",
		10,
		"Number of invoices to generate",
	)

	generateCmd.Flags().Uint64Var(
		&generateSeed,
		"seed",
		0,
		"Random seed for invoice contents (0 = time-based)",
	)
}

// runGenerate writes count sample invoices into dir.
func runGenerate(dir string, count int, seed uint64, stdout io.Writer) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create invoices directory: %w", err)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < count; i++ {
		order := sampleOrder(rng)
		path := filepath.Join(dir, utils.GenerateInvoiceFileName())
		if err := os.WriteFile(path, []byte(invoice.Format(order)), 0644); err != nil {
			return fmt.Errorf("failed to write invoice %d: %w", i+1, err)
		}
	}

	fmt.Fprintf(stdout, "Generated %d invoice(s) in %s\n", count, dir)
	return nil
}

// sampleOrder builds one random, consistent order.
func sampleOrder(rng *rand.Rand) types.Order {
	item := types.Menu[rng.IntN(types.MenuItemCount)]
	quantity := 1 + rng.IntN(5)
	price := samplePrices[item]

	return types.Order{
		Kind:         types.Kinds[rng.IntN(types.KindCount)],
		Item:         item,
		Quantity:     quantity,
		PricePerItem: price,
		TotalPrice:   price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
