package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/linkedlist"
)

func newListCommand(opts *options) *cobra.Command {
	var (
		values  []string
		removes []int
		gets    []int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build a linked list, remove and look up by index",
		Long: `Append --values to an empty linked list in order, apply every --remove index
in the order given, then look up every --get index.`,
		Example: `  dsakit list --values 1,2,3 --remove 1
  dsakit list --values a,b,c --get 0 --get 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := linkedlist.From(values...)

			fields := []field{}
			for _, idx := range removes {
				v, ok := l.RemoveAt(idx)
				if !ok {
					opts.logger.Warn("Remove index out of range",
						slog.Int("index", idx), slog.Int("size", l.Size()))
					fields = append(fields, field{fmt.Sprintf("removed[%d]", idx), "not found"})
					continue
				}
				fields = append(fields, field{fmt.Sprintf("removed[%d]", idx), v})
			}

			for _, idx := range gets {
				v, ok := l.GetAt(idx)
				if !ok {
					fields = append(fields, field{fmt.Sprintf("get[%d]", idx), "not found"})
					continue
				}
				fields = append(fields, field{fmt.Sprintf("get[%d]", idx), v})
			}

			fields = append(fields,
				field{"list", l.String()},
				field{"size", l.Size()},
			)
			opts.logger.Debug("List command finished", slog.Int("size", l.Size()))

			return render(cmd.OutOrStdout(), opts.conf.Output, fields)
		},
	}

	cmd.Flags().StringSliceVarP(&values, "values", "v", nil, "Values to append, in order")
	cmd.Flags().IntSliceVarP(&removes, "remove", "r", nil, "Indices to remove, applied in order")
	cmd.Flags().IntSliceVarP(&gets, "get", "g", nil, "Indices to look up after removals")

	return cmd
}
