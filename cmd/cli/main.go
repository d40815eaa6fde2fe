package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"censusboard/app"
	"censusboard/domain/census"
	"censusboard/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "censusboard-cli",
		Short: "Inspect census extracts from the command line",
	}

	rootCmd.AddCommand(
		newPagesCmd(),
		newTop5Cmd(),
		newChartCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(dataDir string) (*app.DashboardService, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	return app.NewDashboardService(cfg, nil), nil
}

func newPagesCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the configured dashboard pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(dataDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tTITLE\tFILE")
			for _, page := range service.Pages() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", page.Slug, page.Title, page.Path)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory containing the extract files")
	return cmd
}

func newTop5Cmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "top5 [page]",
		Short: "Print the top-5 regions by total population for a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(dataDir)
			if err != nil {
				return err
			}

			top, err := service.TopFive(context.Background(), args[0])
			if err != nil {
				return err
			}
			summaries, err := service.Summaries(context.Background(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tREGION\tTOTAL\tMEAN AGE\tPEAK AGE")
			for i, row := range top.Rows {
				fmt.Fprintf(w, "%d\t%s\t%d\t%.1f\t%d\n",
					i+1, row.Region, row.Total, summaries[i].MeanAge, summaries[i].PeakAge)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory containing the extract files")
	return cmd
}

func newChartCmd() *cobra.Command {
	var dataDir string
	var shape string

	cmd := &cobra.Command{
		Use:   "chart [page]",
		Short: "Print the chart-ready reshape of a page's top-5 table as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(dataDir)
			if err != nil {
				return err
			}

			chart, err := service.Chart(context.Background(), args[0], census.ChartShape(shape))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(chart)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory containing the extract files")
	cmd.Flags().StringVar(&shape, "shape", "", "chart shape: transpose or melt (default: page's own)")
	return cmd
}
