package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/vec/internal/cli/output"
	"github.com/marmos91/vec/internal/logger"
	"github.com/marmos91/vec/pkg/vector"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Report allocation behavior under growth workloads",
	Long: `Run the configured append workloads and report how the doubling
growth policy behaves: reallocations performed, elements copied, and the
final capacity for each workload size. Amortized O(1) appends show up as
a logarithmic reallocation count and a copy total linear in the size.

A second report covers bulk insertion, which must reach its target
capacity in a single growth step.`,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	appends := output.NewTableData("APPENDS", "REALLOCS", "ELEM COPIES", "FINAL CAP", "ELAPSED")
	for _, size := range cfg.Bench.Sizes {
		var counters vector.Counters
		v := vector.New[int]()
		v.SetObserver(&counters)

		start := time.Now()
		for i := 0; i < size; i++ {
			v.Append(i)
		}
		elapsed := time.Since(start)

		logger.Debug("append workload done",
			"size", size,
			"reallocs", counters.Reallocs(),
			"cap", v.Cap())
		appends.AddRow(
			fmt.Sprint(size),
			fmt.Sprint(counters.Reallocs()),
			fmt.Sprint(counters.ElemCopies()),
			fmt.Sprint(v.Cap()),
			elapsed.String(),
		)
	}

	fmt.Println("Append growth:")
	if err := output.PrintTable(os.Stdout, appends); err != nil {
		return err
	}

	// Bulk insert: one growth step regardless of count.
	var counters vector.Counters
	v := vector.Of(1, 2, 3)
	v.SetObserver(&counters)
	if err := v.InsertN(1, cfg.Bench.InsertCount, 0); err != nil {
		return err
	}

	bulk := output.NewTableData("INSERTED", "REALLOCS", "FINAL LEN", "FINAL CAP")
	bulk.AddRow(
		fmt.Sprint(cfg.Bench.InsertCount),
		fmt.Sprint(counters.Reallocs()),
		fmt.Sprint(v.Len()),
		fmt.Sprint(v.Cap()),
	)

	fmt.Println()
	fmt.Println("Bulk insert:")
	return output.PrintTable(os.Stdout, bulk)
}
