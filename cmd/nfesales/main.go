package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/nfesales/pkg/config"
	"github.com/yurifrl/nfesales/pkg/plan"
	"github.com/yurifrl/nfesales/pkg/render"
	"github.com/yurifrl/nfesales/pkg/selection"
	"github.com/yurifrl/nfesales/pkg/service"
	"github.com/yurifrl/nfesales/pkg/summary"
)

var (
	cfgFile   string
	planFile  string
	criterion string
	selected  string
	dump      bool
)

var rootCmd = &cobra.Command{
	Use:   "nfesales",
	Short: "NFe sales analyzer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var loadCmd = &cobra.Command{
	Use:   "load [flags] <file>...",
	Short: "Load NFe files (XML or JSON) and show the sales table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "nfesales",
			Level:           logLevel(cfg.LogLevel),
		})

		paths := args
		if planFile != "" {
			p, err := plan.Load(planFile)
			if err != nil {
				return err
			}
			paths = append(paths, p.Files...)
			if criterion == "" {
				criterion = p.Criterion
			}
		}
		if len(paths) == 0 {
			return fmt.Errorf("no input files")
		}

		session := service.NewSession()
		processor := service.NewProcessor(cfg, logger)
		result := processor.LoadFiles(session, paths)

		for _, failure := range result.Failures {
			fmt.Fprintf(os.Stderr, "Erro ao carregar %s\n", failure.Error())
		}

		fmt.Println(summary.Summarize(result.Total, session.Days, session.Dates))
		fmt.Println()

		rows := render.Rows(session.Records.Records(), criterion, cfg.CurrencySymbol)
		for _, row := range rows {
			fmt.Printf("%s | %v | %s | %s\n", row.Product, row.Quantity, row.Value, row.Date)
		}

		if dump {
			pp.Println(session.Records.Records())
		}

		if selected != "" {
			subset := pickRows(rows, selected, logger)
			totals := selection.AggregateRecords(session.Records.Records(), subset, cfg.CurrencySymbol)
			if totals.Skipped > 0 {
				logger.Warn("selected rows left out of the totals", "skipped", totals.Skipped)
			}
			fmt.Printf("Total Quantidade: %v\n", totals.Quantity)
			fmt.Printf("Total Vendido: %s %s\n", cfg.CurrencySymbol, render.FormatValue(totals.Value))
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Preview a YAML manifest of invoice files (dry-run)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Plan preview for %s\n", args[0])
		p.Print()
		return nil
	},
}

// pickRows resolves 1-based displayed row numbers into a selection subset.
func pickRows(rows []render.DisplayRow, spec string, logger *log.Logger) []render.DisplayRow {
	var subset []render.DisplayRow
	for _, field := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 || n > len(rows) {
			logger.Warn("ignoring invalid row selection", "value", field)
			continue
		}
		subset = append(subset, rows[n-1])
	}
	return subset
}

func logLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")

	loadCmd.Flags().StringVar(&planFile, "plan", "", "YAML manifest of invoice files to load")
	loadCmd.Flags().StringVar(&criterion, "search", "", "Filter by product, date or value")
	loadCmd.Flags().StringVar(&selected, "select", "", "Comma-separated displayed row numbers to total")
	loadCmd.Flags().BoolVar(&dump, "dump", false, "Pretty-print the extracted records")
	loadCmd.Flags().String("symbol", "", "Currency symbol for displayed values")
	loadCmd.Flags().String("fallback", "", "Product name used when a source item has none")
	loadCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
