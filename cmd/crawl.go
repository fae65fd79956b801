package cmd

import (
	"context"

	"presswatch/internal/storage"

	"github.com/spf13/cobra"
)

// crawlCmd groups the one-shot batch commands. Each runs a single
// aggregation with the same wiring the scheduler uses, writes the snapshot
// and latest files, and exits.
var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Run one-off crawl batches",
}

var crawlPressCmd = &cobra.Command{
	Use:   "press",
	Short: "Crawl press releases once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if pages, _ := cmd.Flags().GetInt("pages"); pages > 0 {
			cfg.Press.MaxPages = pages
		}
		store, err := storage.NewFileStore(cfg.App.DataDir)
		if err != nil {
			return err
		}
		job, err := buildPressCrawler(cfg, store, nil)
		if err != nil {
			return err
		}
		job.Run(context.Background())
		return nil
	},
}

var crawlNewsCmd = &cobra.Command{
	Use:   "news",
	Short: "Crawl keyword news once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if n, _ := cmd.Flags().GetInt("max-items"); n > 0 {
			cfg.News.MaxItemsPerSource = n
		}
		store, err := storage.NewFileStore(cfg.App.DataDir)
		if err != nil {
			return err
		}
		job, err := buildNewsCrawler(cfg, store, nil)
		if err != nil {
			return err
		}
		job.Run(context.Background())
		return nil
	},
}

func init() {
	crawlPressCmd.Flags().Int("pages", 0, "list pages to scan per source (default from config)")
	crawlNewsCmd.Flags().Int("max-items", 0, "max items per source per keyword (default from config)")
	crawlCmd.AddCommand(crawlPressCmd)
	crawlCmd.AddCommand(crawlNewsCmd)
	rootCmd.AddCommand(crawlCmd)
}
