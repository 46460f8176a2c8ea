package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MalithGihan/taxnotice-service/internal/ingest"
	"github.com/MalithGihan/taxnotice-service/internal/summarize"
)

func summarizeCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <pdf>",
		Short: "Run the full pipeline on a PDF and print the summary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			p, err := newPipeline(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			sum, err := p.Run(cmd.Context(), data)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(sum, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Print the text layer of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text, err := ingest.ExtractPDF(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <pdf>",
		Short: "Print the model prompt a PDF would produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text, err := ingest.ExtractPDF(data)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summarize.DefaultTemplate().Build(text))
			return nil
		},
	}
}
