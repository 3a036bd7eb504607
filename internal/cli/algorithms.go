package cli

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/leetcode"
	"github.com/katalvlaran/dsakit/sorting"
)

func newSortCommand(opts *options) *cobra.Command {
	var values []string

	cmd := &cobra.Command{
		Use:     "sort",
		Short:   "Quicksort a list of integers",
		Example: `  dsakit sort --values 3,6,1,8`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nums, err := parseInts("values", values)
			if err != nil {
				return err
			}
			sorted := sorting.QuickSort(nums)
			opts.logger.Debug("Sorted", slog.Int("count", len(sorted)))

			return render(cmd.OutOrStdout(), opts.conf.Output, []field{{"sorted", sorted}})
		},
	}
	cmd.Flags().StringSliceVarP(&values, "values", "v", nil, "Integers to sort")

	return cmd
}

func newTwoSumCommand(opts *options) *cobra.Command {
	var (
		values []string
		target int
		brute  bool
	)

	cmd := &cobra.Command{
		Use:     "twosum",
		Short:   "Find two indices whose values add up to --target",
		Example: `  dsakit twosum --values 2,7,11,15 --target 9`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nums, err := parseInts("values", values)
			if err != nil {
				return err
			}

			solve := leetcode.TwoSum
			if brute {
				solve = leetcode.TwoSumBruteForce
			}
			i, j, ok := solve(nums, target)
			if !ok {
				return errors.Errorf("no two values add up to %d", target)
			}
			opts.logger.Debug("Pair found", slog.Int("i", i), slog.Int("j", j))

			return render(cmd.OutOrStdout(), opts.conf.Output, []field{{"indices", []int{i, j}}})
		},
	}
	cmd.Flags().StringSliceVarP(&values, "values", "v", nil, "Integers to search")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Sum to find")
	cmd.Flags().BoolVar(&brute, "brute-force", false, "Use the O(n²) pairwise search")

	return cmd
}

func newAnagramsCommand(opts *options) *cobra.Command {
	var byCount bool

	cmd := &cobra.Command{
		Use:     "anagrams WORD...",
		Short:   "Group words that are anagrams of each other",
		Example: `  dsakit anagrams eat tea tan ate nat bat`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := leetcode.GroupAnagrams
			if byCount {
				for _, w := range args {
					for _, r := range w {
						if r < 'a' || r > 'z' {
							return errors.Errorf("--by-count needs lowercase a-z words, got %q", w)
						}
					}
				}
				group = leetcode.GroupAnagramsByCount
			}
			groups := group(args)
			opts.logger.Debug("Grouped", slog.Int("words", len(args)), slog.Int("groups", len(groups)))

			return render(cmd.OutOrStdout(), opts.conf.Output, []field{{"groups", groups}})
		},
	}
	cmd.Flags().BoolVar(&byCount, "by-count", false, "Key groups by letter counts instead of sorted letters")

	return cmd
}
