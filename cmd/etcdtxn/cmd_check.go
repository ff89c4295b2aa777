package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/etcdtxn/txn"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that transaction files parse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			okMark := color.New(color.FgGreen).SprintFunc()
			failMark := color.New(color.FgRed).SprintFunc()

			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err == nil {
					_, err = txn.Parse(data)
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", failMark("FAIL"), path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okMark("OK"), path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
