// Package main provides the CLI entry point for platemap-go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wellgrid/platemap-go/pkg/platemap"
	"github.com/wellgrid/platemap-go/pkg/platemap/codec"
	"github.com/wellgrid/platemap-go/pkg/platemap/infer"
	"github.com/wellgrid/platemap-go/pkg/platemap/models"
	"github.com/wellgrid/platemap-go/pkg/platemap/well"
)

var (
	outputPath    string
	positionCol   string
	rowCol        string
	colCol        string
	numericRows   bool
	valueCol      string
	plateCol      string
	format        string
	plateSize     int
	sheet         string
	catalogPath   string
	splitPosition bool

	convertFrom string
	convertTo   string
	convertSize int

	templateStart   string
	templateFormat  string
	templatePartial bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platemap",
		Short: "Normalize and template microplate tabular data",
		Long: `platemap maps per-well plate data between the three well-position
notations (letter-number, sequential, row_column), infers position and
value columns from loosely structured tables, and generates plate-map
templates.`,
	}
	rootCmd.AddCommand(normalizeCmd(), convertCmd(), templateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [input.csv|input.tsv|input.xlsx]",
		Short: "Normalize a plate table to (position, value[, plate])",
		Args:  cobra.ExactArgs(1),
		RunE:  runNormalize,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout as CSV)")
	cmd.Flags().StringVar(&positionCol, "position-col", "", "Column holding combined positions")
	cmd.Flags().StringVar(&rowCol, "row-col", "", "Column holding the row field (paired with --col-col)")
	cmd.Flags().StringVar(&colCol, "col-col", "", "Column holding the column field (paired with --row-col)")
	cmd.Flags().BoolVar(&numericRows, "numeric-rows", false, "Row field carries row numbers, not letters")
	cmd.Flags().StringVar(&valueCol, "value-col", "", "Column holding the measurement")
	cmd.Flags().StringVar(&plateCol, "plate-col", "", "Column grouping rows into plates")
	cmd.Flags().StringVar(&format, "format", "letternumber", "Output notation: letternumber, sequential, rowcolumn")
	cmd.Flags().IntVar(&plateSize, "size", 0, "Plate size (6, 12, 24, 48, 96, 384, 1536); required when conversion needs geometry")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name for xlsx input (default: first sheet)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML file with extra column-name conventions")
	cmd.Flags().BoolVar(&splitPosition, "split-position", false, "Export separate row/column fields instead of a combined position")
	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	t, err := readTable(args[0])
	if err != nil {
		return err
	}

	target, err := well.ParseNotation(format)
	if err != nil {
		return err
	}

	opts := platemap.Options{
		PositionColumn: positionCol,
		RowColumn:      rowCol,
		ColColumn:      colCol,
		ValueColumn:    valueCol,
		PlateColumn:    plateCol,
		TargetFormat:   target,
		PlateSize:      plateSize,
	}
	if cmd.Flags().Changed("numeric-rows") {
		opts.RowIsNumeric = &numericRows
	}
	if catalogPath != "" {
		cat, err := infer.LoadCatalogFile(catalogPath)
		if err != nil {
			return err
		}
		opts.Catalog = &cat
	}

	ds, err := platemap.Normalize(t, opts)
	if err != nil {
		return err
	}
	return writeDataset(ds)
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [position]",
		Short: "Convert a single well position between notations",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	cmd.Flags().StringVar(&convertFrom, "from", "", "Source notation (default: detect)")
	cmd.Flags().StringVar(&convertTo, "to", "letternumber", "Target notation")
	cmd.Flags().IntVar(&convertSize, "size", 96, "Plate size")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	g, err := well.Dimensions(convertSize)
	if err != nil {
		return err
	}
	v := models.Parse(args[0])

	from := well.Detect(v)
	if convertFrom != "" {
		if from, err = well.ParseNotation(convertFrom); err != nil {
			return err
		}
	} else if from == well.Unknown {
		return fmt.Errorf("%w: %q", well.ErrUnrecognizedPositionFormat, args[0])
	}
	to, err := well.ParseNotation(convertTo)
	if err != nil {
		return err
	}

	out, err := well.Convert(v, from, to, g)
	if err != nil {
		return err
	}
	fmt.Println(out.String())
	return nil
}

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template [wells]",
		Short: "Generate a full plate-map position template",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout as CSV)")
	cmd.Flags().StringVar(&templateStart, "start", "A1", "Position the enumeration begins at")
	cmd.Flags().StringVar(&templateFormat, "format", "letternumber", "Output notation")
	cmd.Flags().BoolVar(&templatePartial, "partial", false, "Stop at the plate boundary instead of wrapping back to A1")
	return cmd
}

func runTemplate(cmd *cobra.Command, args []string) error {
	wells, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid well count %q", args[0])
	}
	target, err := well.ParseNotation(templateFormat)
	if err != nil {
		return err
	}
	ds, err := platemap.Generate(wells, templateStart, target, !templatePartial)
	if err != nil {
		return err
	}
	return writeDataset(ds)
}

func readTable(path string) (*models.Table, error) {
	if isXLSX(path) {
		return codec.ReadXLSX(path, sheet)
	}
	return codec.ReadCSV(path, codec.DelimiterFor(path))
}

func writeDataset(ds *models.Dataset) error {
	g := well.Geometry{}
	if splitPosition {
		var err error
		if g, err = well.Dimensions(plateSize); err != nil {
			return fmt.Errorf("--split-position needs --size: %w", err)
		}
	}
	t, err := codec.DatasetTable(ds, splitPosition, g)
	if err != nil {
		return err
	}
	if outputPath == "" {
		return codec.WriteCSVTo(t, os.Stdout, ',')
	}
	if isXLSX(outputPath) {
		return codec.WriteXLSX(t, outputPath, "")
	}
	return codec.WriteCSV(t, outputPath, codec.DelimiterFor(outputPath))
}

func isXLSX(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm")
}
