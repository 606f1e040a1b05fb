package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/vec/internal/cli/output"
	"github.com/marmos91/vec/internal/logger"
	"github.com/marmos91/vec/pkg/stack"
	"github.com/marmos91/vec/pkg/vector"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the container lifecycle",
	Long: `Run a scripted walk-through of the vector lifecycle: appends with
doubling growth, resize, shrink-to-fit, positional insert and remove,
clear, and the stack adapter. Each step prints the observable state
(length, capacity, contents).`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	table := output.NewTableData("STEP", "LEN", "CAP", "CONTENTS")
	record := func(step string, v *vector.Vector[int]) {
		table.AddRow(step, fmt.Sprint(v.Len()), fmt.Sprint(v.Cap()), formatInts(v.Data()))
	}

	v := vector.New[int]()
	record("new", v)

	for i := 1; i <= cfg.Demo.Seed; i++ {
		v.Append(i)
	}
	record(fmt.Sprintf("append x%d", cfg.Demo.Seed), v)

	if err := v.Resize(cfg.Demo.Seed+2, 100); err != nil {
		return err
	}
	record("resize +2 fill=100", v)

	v.ShrinkToFit()
	record("shrink_to_fit", v)

	if err := v.Insert(0, 42); err != nil {
		return err
	}
	record("insert 42 at 0", v)

	if err := v.RemoveAt(0); err != nil {
		return err
	}
	record("remove at 0", v)

	if err := v.Resize(2, 0); err != nil {
		return err
	}
	record("resize 2", v)

	v.Clear()
	record("clear", v)

	v.ShrinkToFit()
	record("shrink_to_fit", v)

	if err := output.PrintTable(os.Stdout, table); err != nil {
		return err
	}

	// Stack adapter over the same element type.
	s := stack.New[int]()
	for i := 1; i <= cfg.Demo.Seed; i++ {
		s.Push(i * 10)
	}
	logger.Info("stack filled", "len", s.Len())
	for !s.IsEmpty() {
		top, err := s.Pop()
		if err != nil {
			return err
		}
		logger.Info("stack pop", "value", top, "remaining", s.Len())
	}

	return nil
}

func formatInts(items []int) string {
	if len(items) == 0 {
		return "[]"
	}
	parts := make([]string, len(items))
	for i, n := range items {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
