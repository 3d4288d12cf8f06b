package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/handiism/discman/internal/codec"
)

func newOrdinalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <n>...",
		Short: "Print English ordinals (1st, 2nd, 11th, 23rd)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%q is not an integer", arg)
				}
				fmt.Fprintln(a.stdout, codec.Ordinal(n))
			}
			return nil
		},
	}
}
