package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/internal/load"
	"github.com/ajitpratap0/tabular/pkg/compression"
	"github.com/ajitpratap0/tabular/pkg/config"
	"github.com/ajitpratap0/tabular/pkg/logger"
	"github.com/ajitpratap0/tabular/pkg/query"
	"github.com/ajitpratap0/tabular/pkg/table"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	var configFile, logLevel string
	var firstRowHeader bool

	cfg := config.Default()

	root := &cobra.Command{
		Use:   "tabular",
		Short: "Tabular - Immutable in-memory tables with indexing and search",
		Long: `Tabular loads CSV or JSON rowsets into immutable in-memory tables
and runs column searches over them, with optional per-column indexes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := config.Load(configFile, cfg); err != nil {
					return err
				}
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			return logger.Init(logger.Config{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
				Encoding:    cfg.Logging.Encoding,
			})
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&firstRowHeader, "first-row-header", true, "treat the first CSV row as the header")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Tabular v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	renderCmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Pretty-print a table loaded from a CSV or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadFile(cmd, args[0], cfg, firstRowHeader)
			if err != nil {
				return err
			}
			fmt.Print(t.Render())
			return nil
		},
	}
	root.AddCommand(renderCmd)

	var grepColumn, grepMode string
	var grepAll, grepAny []string
	grepCmd := &cobra.Command{
		Use:   "grep <file>",
		Short: "Search a column with substring predicates",
		Long: `Search a column for rows matching substring predicates. --all requires
every substring to occur in the cell, --any requires at least one.

Example:
  tabular grep trades.csv --column Countries --all US --all RU --mode rows`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadFile(cmd, args[0], cfg, firstRowHeader)
			if err != nil {
				return err
			}

			pred, err := buildPredicate(grepAll, grepAny)
			if err != nil {
				return err
			}
			mode, err := parseMode(grepMode)
			if err != nil {
				return err
			}

			q := query.New(t)
			result, err := q.Grep(pred, grepColumn, mode)
			if err != nil {
				return err
			}
			return printResult(t, result)
		},
	}
	grepCmd.Flags().StringVar(&grepColumn, "column", "", "column to search")
	grepCmd.Flags().StringArrayVar(&grepAll, "all", nil, "substring that must occur (repeatable, AND)")
	grepCmd.Flags().StringArrayVar(&grepAny, "any", nil, "substring of which one must occur (repeatable, OR)")
	grepCmd.Flags().StringVar(&grepMode, "mode", "hash", "output mode: numbers, rows, hash, row-to-raw, row-to-hash")
	_ = grepCmd.MarkFlagRequired("column")
	root.AddCommand(grepCmd)

	indexCmd := &cobra.Command{
		Use:   "index <file> <column>...",
		Short: "Build indexes and report their selectivity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadFile(cmd, args[0], cfg, firstRowHeader)
			if err != nil {
				return err
			}
			q := query.New(t)
			for _, column := range args[1:] {
				selectivity, err := q.AddIndex(column)
				if err != nil {
					return err
				}
				idx, _ := q.Index(column)
				fmt.Printf("%s\tdistinct=%d\trows=%d\tselectivity=%.4f\n",
					column, idx.Distinct(), t.Rows(), selectivity)
			}
			return nil
		},
	}
	root.AddCommand(indexCmd)

	var takeRows []int
	takeCmd := &cobra.Command{
		Use:   "take <file>",
		Short: "Extract rows by number into a new table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadFile(cmd, args[0], cfg, firstRowHeader)
			if err != nil {
				return err
			}
			positions := make([]table.Position, len(takeRows))
			for i, r := range takeRows {
				positions[i] = table.Position(r)
			}
			sub, err := t.Take(positions)
			if err != nil {
				return err
			}
			fmt.Print(sub.Render())
			return nil
		},
	}
	takeCmd.Flags().IntSliceVar(&takeRows, "rows", nil, "1-based row numbers, in output order")
	_ = takeCmd.MarkFlagRequired("rows")
	root.AddCommand(takeCmd)

	var packOut string
	packCmd := &cobra.Command{
		Use:   "pack <file>",
		Short: "Archive a table in compressed form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadFile(cmd, args[0], cfg, firstRowHeader)
			if err != nil {
				return err
			}
			algorithm, err := compression.ParseAlgorithm(cfg.Archive.Algorithm)
			if err != nil {
				return err
			}
			packed, err := table.Pack(t, algorithm)
			if err != nil {
				return err
			}
			if err := os.WriteFile(packOut, packed, 0644); err != nil { //nolint:gosec
				return err
			}
			logger.Info("table archived",
				zap.String("output", packOut),
				zap.String("algorithm", string(algorithm)),
				zap.Int("bytes", len(packed)))
			return nil
		},
	}
	packCmd.Flags().StringVar(&packOut, "out", "table.packed", "output path")
	root.AddCommand(packCmd)

	unpackCmd := &cobra.Command{
		Use:   "unpack <archive>",
		Short: "Restore an archived table and pretty-print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := os.ReadFile(args[0]) //nolint:gosec // G304: path comes from the CLI invocation
			if err != nil {
				return err
			}
			t, err := table.Unpack(packed)
			if err != nil {
				return err
			}
			fmt.Print(t.Render())
			return nil
		},
	}
	root.AddCommand(unpackCmd)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func loadFile(cmd *cobra.Command, path string, cfg *config.ToolConfig, firstRowHeader bool) (*table.Table, error) {
	opts := load.Options{
		FirstRowHeader: effectiveFirstRowHeader(
			cmd.Flags().Changed("first-row-header"), firstRowHeader, cfg),
	}
	var sink table.RejectedSink
	if cfg.Ingest.CaptureRejected {
		opts.Rejected = &sink
	}
	t, err := load.File(path, opts)
	if err != nil {
		return nil, err
	}
	if rejected := len(sink.Rows) + len(sink.Cells); rejected > 0 {
		logger.Warn("input rows or cells were rejected during ingestion",
			zap.Int("rejected", rejected))
	}
	return t, nil
}

// effectiveFirstRowHeader resolves the CSV header setting: a flag the user
// set explicitly wins over the config file, which wins over the default.
func effectiveFirstRowHeader(flagChanged, flagValue bool, cfg *config.ToolConfig) bool {
	if flagChanged {
		return flagValue
	}
	return cfg.Ingest.FirstRowHeader
}

func buildPredicate(all, any []string) (query.Predicate, error) {
	var parts []query.Predicate
	if len(all) > 0 {
		preds := make([]query.Predicate, len(all))
		for i, sub := range all {
			preds[i] = query.Contains(sub)
		}
		parts = append(parts, query.And(preds...))
	}
	if len(any) > 0 {
		preds := make([]query.Predicate, len(any))
		for i, sub := range any {
			preds[i] = query.Contains(sub)
		}
		parts = append(parts, query.Any(preds...))
	}
	switch len(parts) {
	case 0:
		return nil, fmt.Errorf("at least one --all or --any substring is required")
	case 1:
		return parts[0], nil
	default:
		return query.And(parts...), nil
	}
}

func parseMode(s string) (query.Mode, error) {
	switch strings.ToLower(s) {
	case "numbers":
		return query.RowNumbers, nil
	case "rows":
		return query.RawRows, nil
	case "hash":
		return query.HashRows, nil
	case "row-to-raw":
		return query.RowToRawRow, nil
	case "row-to-hash":
		return query.RowToHashRow, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q", s)
	}
}

func printResult(t *table.Table, result *query.Result) error {
	switch result.Mode {
	case query.RowNumbers:
		nums := make([]string, len(result.Positions))
		for i, p := range result.Positions {
			nums[i] = strconv.Itoa(int(p))
		}
		fmt.Println(strings.Join(nums, " "))

	case query.RawRows:
		for _, row := range result.Rows {
			fmt.Println(formatRow(row))
		}

	case query.HashRows:
		for _, row := range result.HashRows {
			fmt.Println(formatHashRow(t, row))
		}

	case query.RowToRawRow:
		for _, p := range sortedKeys(result.RowToRaw) {
			fmt.Printf("%d\t%s\n", p, formatRow(result.RowToRaw[p]))
		}

	case query.RowToHashRow:
		for _, p := range sortedHashKeys(result.RowToHash) {
			fmt.Printf("%d\t%s\n", p, formatHashRow(t, result.RowToHash[p]))
		}
	}
	return nil
}

func formatRow(row []interface{}) string {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = fmt.Sprintf("[%v]", v)
	}
	return strings.Join(cells, "\t")
}

func formatHashRow(t *table.Table, row map[string]interface{}) string {
	cells := make([]string, 0, len(row))
	for _, name := range t.Header() {
		cells = append(cells, fmt.Sprintf("%s=[%v]", name, row[name]))
	}
	return strings.Join(cells, "\t")
}

func sortedKeys(m map[table.Position][]interface{}) []table.Position {
	keys := make([]table.Position, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedHashKeys(m map[table.Position]map[string]interface{}) []table.Position {
	keys := make([]table.Position, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
