package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/benz9527/xtree/internal/wordtree"
	"github.com/benz9527/xtree/lib/infra"
)

func (a *app) sortCmd() *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "sort [files...]",
		Short: "Sort the input lines, stdin if no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}
			t, err := wordtree.Build(a.cfg.Tree, lines, unique, a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for it := t.Iterator(); it.HasNext(); {
				line, err := it.Next()
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("reverse", "r", false, "sort in descending order")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "skip the duplicated lines")
	return cmd
}

func (a *app) shapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape [files...]",
		Short: "Print the shape of the tree built from the input words",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.readWords(cmd, args)
			if err != nil {
				return err
			}
			t, err := wordtree.Build(a.cfg.Tree, lo.Uniq(words), false, a.logger)
			if err != nil {
				return err
			}
			return wordtree.WriteShape[string](cmd.OutOrStdout(), t)
		},
	}
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Print the size, the height and the invariant checks of the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.readWords(cmd, args)
			if err != nil {
				return err
			}
			t, err := wordtree.Build(a.cfg.Tree, words, false, a.logger)
			if err != nil {
				return err
			}
			validateErr := wordtree.Validate(t, wordtree.EffectiveOrder(a.cfg.Tree, infra.OrderedKeyCompare[string]))
			if validateErr != nil {
				a.logger.Error(validateErr, "[xtree] tree invariants violated")
			}
			wordtree.WriteStats(cmd.OutOrStdout(), wordtree.CollectStats(a.cfg.Tree.Kind, t, validateErr))
			return nil
		},
	}
	return cmd
}

func (a *app) countCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "count [files...]",
		Short: "Rank the input words by frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.readWords(cmd, args)
			if err != nil {
				return err
			}
			counts, err := wordtree.CountWords(a.cfg.Tree, words, top, a.logger)
			if err != nil {
				return err
			}
			wordtree.WriteCounts(cmd.OutOrStdout(), counts)
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "only print the N most frequent words, 0 prints all")
	return cmd
}
