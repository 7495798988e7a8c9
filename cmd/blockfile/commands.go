package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vogtb/go-block/packages/block"
)

func newEncodeCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode FILE...",
		Short: "Embed files from the store into a CSV grid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, release, err := opts.openStore()
			if err != nil {
				return err
			}
			defer release()

			columns := make([]*block.Block, 0, len(args))
			for _, name := range args {
				b, err := block.EncodeFile(cmd.Context(), st, name)
				if err != nil {
					return fmt.Errorf("encode %s: %w", name, err)
				}
				log.Printf("[blockfile] encoded %s into %d rows", name, b.Rows())
				columns = append(columns, b)
			}

			grid, err := sideBySide(columns)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return writeCSV(cmd.OutOrStdout(), grid)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := writeCSV(f, grid); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the CSV grid to this path instead of stdout")
	return cmd
}

func newDecodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode GRID.csv",
		Short: "Extract every embedded file of a CSV grid into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			grid, err := readCSV(f)
			if err != nil {
				return err
			}

			st, release, err := opts.openStore()
			if err != nil {
				return err
			}
			defer release()

			n, err := grid.DecodeToFiles(cmd.Context(), st)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			log.Printf("[blockfile] decoded %d file(s) from %s", n, args[0])
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [PREFIX]",
		Short: "List files in the store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, release, err := opts.openStore()
			if err != nil {
				return err
			}
			defer release()

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			names, err := st.List(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
