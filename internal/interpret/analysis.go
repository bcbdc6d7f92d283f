package interpret

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/rosterscan/internal/diag"
	"github.com/JonMunkholm/rosterscan/internal/logging"
	"github.com/JonMunkholm/rosterscan/internal/sheet"
)

// DefaultMaxHeaderShift is the highest header row offset tried when
// the caller does not say otherwise: offsets 0 through 3.
const DefaultMaxHeaderShift = 3

// Options tunes a file analysis.
type Options struct {
	// MaxHeaderShift is the highest header row offset tried,
	// inclusive. Zero means DefaultMaxHeaderShift.
	MaxHeaderShift int

	// Serial forces the offset hypotheses to run one after another.
	// The outcome is identical either way.
	Serial bool
}

// Analysis is the unique successful reading of one file.
type Analysis struct {
	Path    string
	Shift   int
	Persons *PersonList
	Results *Collector
}

// hypothesis is one header offset's successful reading, kept together
// with the table it was read from so write-back can reuse it.
type hypothesis struct {
	table   *sheet.Table
	persons *PersonList
}

// AnalyzeFile reads the file under every header offset hypothesis and
// requires exactly one of them to produce a valid person list.
//
// Each hypothesis reads its own table, shares nothing with the
// others, and may run concurrently; failure aggregation is always in
// ascending offset order.
func AnalyzeFile(ctx context.Context, path string, opts Options) (*Analysis, error) {
	maxShift := opts.MaxHeaderShift
	if maxShift <= 0 {
		maxShift = DefaultMaxHeaderShift
	}

	log := logging.WithRun(uuid.NewString()).With("file", path)

	// Every outcome slot gets assigned, cancelled hypotheses included,
	// so failure aggregation below can walk the full range.
	outcomes := make([]diag.Result[*hypothesis], maxShift+1)
	if opts.Serial {
		for shift := 0; shift <= maxShift; shift++ {
			if err := ctx.Err(); err != nil {
				outcomes[shift] = diag.Failure[*hypothesis](diag.FromError(err))
				continue
			}
			outcomes[shift] = analyzeAt(path, shift)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for shift := 0; shift <= maxShift; shift++ {
			shift := shift // pin per iteration; go directive is below 1.22
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					outcomes[shift] = diag.Failure[*hypothesis](diag.FromError(err))
					return nil
				}
				outcomes[shift] = analyzeAt(path, shift)
				return nil
			})
		}
		_ = g.Wait()
	}

	var winners []int
	for shift, res := range outcomes {
		if res.Ok() {
			winners = append(winners, shift)
			log.Debug("header hypothesis succeeded", "shift", shift, "persons", len(res.Value.persons.Persons))
		} else {
			log.Debug("header hypothesis failed", "shift", shift)
		}
	}

	switch len(winners) {
	case 1:
		shift := winners[0]
		raw, err := sheet.ReadRaw(path)
		if err != nil {
			return nil, fmt.Errorf("reread %s for write-back: %w", path, err)
		}
		if shift > len(raw.Rows) {
			return nil, fmt.Errorf("file %s shrank between reads", path)
		}
		win := outcomes[shift].Value
		log.Info("file analyzed", "shift", shift, "persons", len(win.persons.Persons))
		return &Analysis{
			Path:    path,
			Shift:   shift,
			Persons: win.persons,
			Results: newCollector(path, shift, &sheet.Grid{Rows: raw.Rows[:shift]}, win.table),
		}, nil

	case 0:
		children := make([]*diag.Diagnostic, 0, len(outcomes))
		for shift, res := range outcomes {
			children = append(children, diag.Wrap(fmt.Sprintf("header row shift %d", shift), res.Diag))
		}
		return nil, diag.Composite(fmt.Sprintf("no consistent interpretation of file %q", path), children...)

	default:
		return nil, diag.New("ambiguous interpretation of file %q: header row shifts %s all yield a valid person list",
			path, joinInts(winners))
	}
}

// analyzeAt runs one header offset hypothesis end to end.
func analyzeAt(path string, shift int) diag.Result[*hypothesis] {
	t, err := sheet.Read(path, shift)
	if err != nil {
		return diag.Failure[*hypothesis](diag.FromError(err))
	}

	res := AssemblePersons(AnalyzeColumns(t))
	if !res.Ok() {
		return diag.Failure[*hypothesis](res.Diag)
	}
	return diag.Success(&hypothesis{table: t, persons: res.Value})
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	if len(parts) == 2 {
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts, ", ")
}
