package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/rosterscan/internal/interpret"
)

var (
	setRow    int
	setValues []string
)

// setCmd writes result values onto one row of an analyzed file
var setCmd = &cobra.Command{
	Use:   "set FILE --row N --value COLUMN=VALUE",
	Short: "Write result values onto one row of a roster file",
	Long: `Analyzes the file, then stores the given column values on the row and
persists the whole file. Columns that do not exist yet are appended;
everything the analysis did not understand is preserved as it was.

Example:
  rosterscan set roster.xlsx --row 4 --value Grade=PASS --value "Reported=2026-01-12"`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	values, err := parseValues(setValues)
	if err != nil {
		return err
	}

	ctx, cancel := analysisContext()
	defer cancel()

	a, err := interpret.AnalyzeFile(ctx, args[0], interpret.Options{
		MaxHeaderShift: cfg.Analyze.MaxHeaderShift,
		Serial:         cfg.Analyze.Serial,
	})
	if err != nil {
		return err
	}

	if err := a.Results.SetResults(setRow, values); err != nil {
		return err
	}
	fmt.Printf("row %d updated in %s\n", setRow, a.Path)
	return nil
}

// parseValues splits repeated COLUMN=VALUE flags into a map.
func parseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("value %q is not COLUMN=VALUE", pair)
		}
		values[name] = value
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values given, use --value COLUMN=VALUE")
	}
	return values, nil
}

func init() {
	setCmd.Flags().IntVar(&setRow, "row", 0, "Row position to update (as printed by analyze)")
	setCmd.Flags().StringArrayVar(&setValues, "value", nil, "COLUMN=VALUE pair to store, repeatable")
	setCmd.MarkFlagRequired("row")
	setCmd.MarkFlagRequired("value")
}
