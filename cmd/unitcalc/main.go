// Package main provides unitcalc, a small demo calculator over the unitful
// catalog: list the known units, convert between scales, and inspect the
// dimensional shape of a value.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/unitful/symbol"
	"github.com/katalvlaran/unitful/units"
)

// Version information (set at build time).
var (
	Version = "0.1.0"
)

var asciiFlag bool

// newRootCmd creates and returns the root command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitcalc",
		Short: "unitcalc - dimensional-analysis calculator",
		Long: `unitcalc explores the unitful catalog of SI-based units.

It can list every registered unit with its dimensional shape, convert a
value between units of the same dimension, and break a value down into
its base-dimension exponents.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if asciiFlag {
				symbol.SetNotation(symbol.ASCII)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&asciiFlag, "ascii", false,
		"render exponents as ^n instead of superscript runes")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newDimCmd())

	return rootCmd
}

// newListCmd renders the whole catalog as a table.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every unit in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Symbol", "Name", "Type", "Dimensions"})
			for _, k := range units.Catalog() {
				one, err := units.New(k, units.Scalar(1))
				if err != nil {
					return err
				}
				tw.AppendRow(table.Row{k.Symbol(), k.Name(), one.TypeName(), one.Describe()})
			}
			tw.Render()

			return nil
		},
	}
}

// newConvertCmd converts a value between two units of one dimension.
func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from-symbol> <to-symbol>",
		Short: "Convert a value between units of the same dimension",
		Example: `  unitcalc convert 2500 m km
  unitcalc convert 37.5 C F`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q is not a number", args[0])
			}
			from, to, err := lookupPair(args[1], args[2])
			if err != nil {
				return err
			}

			src, err := units.New(from, units.Scalar(v))
			if err != nil {
				return err
			}
			dst, err := units.New(to, src)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dst)

			return nil
		},
	}
}

// newDimCmd breaks a value down into its dimensional shape.
func newDimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dim <value> <symbol>",
		Short: "Show the dimensional shape and type of a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q is not a number", args[0])
			}
			kind, ok := units.Lookup(args[1])
			if !ok {
				return fmt.Errorf("unknown unit symbol %q", args[1])
			}

			q, err := units.New(kind, units.Scalar(v))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, q)
			fmt.Fprintf(out, "type:       %s\n", q.TypeName())
			fmt.Fprintf(out, "dimensions: %s\n", q.Describe())

			return nil
		},
	}
}

// lookupPair resolves two unit symbols, reporting the first miss.
func lookupPair(fromSym, toSym string) (from, to *units.Kind, err error) {
	from, ok := units.Lookup(fromSym)
	if !ok {
		return nil, nil, fmt.Errorf("unknown unit symbol %q", fromSym)
	}
	to, ok = units.Lookup(toSym)
	if !ok {
		return nil, nil, fmt.Errorf("unknown unit symbol %q", toSym)
	}

	return from, to, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
