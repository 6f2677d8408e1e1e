package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/rawvalue/types"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		typeName string
		null     bool
		count    bool
	)

	cmd := &cobra.Command{
		Use:   "format [value]",
		Short: "Print the raw value text of one value",
		Long: `Parses value as the given type and prints its raw value text.

Types are primitive names (s32, f64, datetimeoffset, ...), EDM names such as
Edm.Int32, enums declared in the config file, and nullable forms written
option<T> or T?. With --count the value is rendered as a $count result and
--type is ignored.

A value starting with "-" reads as a flag; put it after "--".`,
		Example: `  rawvalue format --type f64 5.0
  rawvalue format --type Color "Red, Blue" --config enums.yaml
  rawvalue format --type "s32?" --null --null-policy empty
  rawvalue format --count 42
  rawvalue format --type s64 -- -12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request{null: null, count: count}
			if len(args) == 1 {
				req.text = args[0]
			} else if !null {
				return fmt.Errorf("a value or --null is required")
			}

			if typeName != "" {
				d, err := types.Parse(typeName, a.reg)
				if err != nil {
					return err
				}
				req.declared = d
			}

			out, err := a.render(req)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), out)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&typeName, "type", "t", "", "declared type of the value")
	f.BoolVar(&null, "null", false, "render a null value")
	f.BoolVar(&count, "count", false, "render as a $count result")
	return cmd
}

func newTypesCmd(a *app) *cobra.Command {
	var aliases bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List accepted type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			names := types.PrimitiveNames()
			if aliases {
				names = types.Aliases()
			}
			fmt.Fprintln(w, strings.Join(names, "\n"))

			for _, name := range a.reg.Names() {
				e, _ := a.reg.LookupName(name)
				kind := "enum"
				if e.Flags {
					kind = "flags"
				}
				members := make([]string, len(e.Members))
				for i, m := range e.Members {
					members[i] = fmt.Sprintf("%s=%d", m.Name, m.Value)
				}
				fmt.Fprintf(w, "%s (%s: %s)\n", name, kind, strings.Join(members, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&aliases, "aliases", false, "include every accepted spelling")
	return cmd
}
