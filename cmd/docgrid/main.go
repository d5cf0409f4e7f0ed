// Package main provides the CLI entry point for docgrid-go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/docgrid/docgrid-go/pkg/docgrid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/grid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/render"
)

var (
	outputPath string
	fromCoord  string
	toCoord    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docgrid",
		Short: "Inspect and merge document table grids",
		Long: `docgrid maps a table's rows and cells onto a logical rectangular grid
and merges rectangular regions of cells. Tables are read and written as YAML
definitions (.yaml/.yml) or xlsx workbooks (.xlsx).`,
	}

	showCmd := &cobra.Command{
		Use:   "show [table file]",
		Short: "Render a table's logical grid as ASCII",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	mergeCmd := &cobra.Command{
		Use:   "merge [table file]",
		Short: "Merge the rectangle spanned by two diagonal corner cells",
		Args:  cobra.ExactArgs(1),
		RunE:  runMerge,
	}
	mergeCmd.Flags().StringVar(&fromCoord, "from", "", "First corner cell as row,col (0-based)")
	mergeCmd.Flags().StringVar(&toCoord, "to", "", "Second corner cell as row,col (0-based)")
	mergeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: rewrite input)")
	mergeCmd.MarkFlagRequired("from")
	mergeCmd.MarkFlagRequired("to")

	checkCmd := &cobra.Command{
		Use:   "check [table file]",
		Short: "Verify the table is a well-formed grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [table file]",
		Short: "Convert a table between the YAML and xlsx formats",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	convertCmd.MarkFlagRequired("output")

	diffCmd := &cobra.Command{
		Use:   "diff [table file] [table file]",
		Short: "Show a unified diff of two tables' rendered grids",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}

	rootCmd.AddCommand(showCmd, mergeCmd, checkCmd, convertCmd, diffCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := docgrid.Load(args[0])
	if err != nil {
		return err
	}
	return render.NewRenderer(os.Stdout).Table(t)
}

func runMerge(cmd *cobra.Command, args []string) error {
	r1, c1, err := parseCoord(fromCoord)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	r2, c2, err := parseCoord(toCoord)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	t, err := docgrid.Load(args[0])
	if err != nil {
		return err
	}
	if _, err := docgrid.MergeAt(t, r1, c1, r2, c2); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	out := outputPath
	if out == "" {
		out = args[0]
	}
	if err := docgrid.Save(t, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	t, err := docgrid.Load(args[0])
	if err != nil {
		return err
	}
	if err := grid.Check(t); err != nil {
		return err
	}
	fmt.Printf("ok: %d rows x %d columns\n", t.RowCount(), t.ColCount())
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	t, err := docgrid.Load(args[0])
	if err != nil {
		return err
	}
	if err := docgrid.Save(t, outputPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := docgrid.Load(args[0])
	if err != nil {
		return err
	}
	b, err := docgrid.Load(args[1])
	if err != nil {
		return err
	}

	renderedA, err := render.TableString(a)
	if err != nil {
		return err
	}
	renderedB, err := render.TableString(b)
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(renderedA),
		B:        difflib.SplitLines(renderedB),
		FromFile: args[0],
		ToFile:   args[1],
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err
	}
	if text != "" {
		fmt.Print(text)
	}
	return nil
}

// parseCoord parses a "row,col" pair of 0-based grid coordinates.
func parseCoord(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column in %q", s)
	}
	return row, col, nil
}
