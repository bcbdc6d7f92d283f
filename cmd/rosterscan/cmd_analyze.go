package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/rosterscan/internal/interpret"
)

var analyzeJSON bool

// analyzeCmd reads one roster file and prints its unique interpretation
var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyze a roster file and print the person list",
	Long: `Reads the file under every header offset hypothesis, requires exactly
one of them to yield a valid person list, and prints which columns
were bound to which roles along with the persons found.

Example:
  rosterscan analyze roster.xlsx
  rosterscan analyze roster.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := analysisContext()
	defer cancel()

	a, err := interpret.AnalyzeFile(ctx, args[0], interpret.Options{
		MaxHeaderShift: cfg.Analyze.MaxHeaderShift,
		Serial:         cfg.Analyze.Serial,
	})
	if err != nil {
		return err
	}

	if analyzeJSON {
		return printAnalysisJSON(a)
	}
	printAnalysisText(a)
	return nil
}

type analysisReport struct {
	Path     string              `json:"path"`
	Shift    int                 `json:"header_shift"`
	Bindings []interpret.Binding `json:"bindings"`
	Persons  []interpret.Person  `json:"persons"`
}

func printAnalysisJSON(a *interpret.Analysis) error {
	report := analysisReport{
		Path:     a.Path,
		Shift:    a.Shift,
		Bindings: a.Persons.Bindings(),
		Persons:  a.Persons.Persons,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printAnalysisText(a *interpret.Analysis) {
	fmt.Printf("file: %s\n", a.Path)
	fmt.Printf("header row: %d\n", a.Shift)

	fmt.Println("bindings:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, b := range a.Persons.Bindings() {
		fmt.Fprintf(w, "  %s\t%s\n", b.Role, b.Header)
	}
	w.Flush()

	fmt.Printf("persons (%d):\n", len(a.Persons.Persons))
	w = tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  row\tidentifier\tgiven name\tfamily name\temail")
	for _, p := range a.Persons.Persons {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n", p.Row, p.Identifier, p.GivenName, p.FamilyName, p.Email)
	}
	w.Flush()
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
}
