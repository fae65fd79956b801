package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"presswatch/internal/config"
	"presswatch/internal/fetch"
	"presswatch/internal/logging"
	"presswatch/internal/news"
	"presswatch/internal/press"
	"presswatch/internal/redisclient"
	"presswatch/internal/render"
	"presswatch/internal/storage"
	"presswatch/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the crawl scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		schedLog, err := logging.New("scheduler", cfg.App.LogDir, cfg.App.LogLevel)
		if err != nil {
			return err
		}
		store, err := storage.NewFileStore(cfg.App.DataDir)
		if err != nil {
			return err
		}
		var pub *storage.RedisPublisher
		if cfg.Redis.Addr != "" {
			rdb := redisclient.New(cfg.Redis)
			defer rdb.Close()
			pub = storage.NewRedisPublisher(rdb)
			schedLog.Info("redis latest mirror enabled", "addr", cfg.Redis.Addr)
		}

		pressJob, err := buildPressCrawler(cfg, store, pub)
		if err != nil {
			return err
		}
		newsJob, err := buildNewsCrawler(cfg, store, pub)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		// Warm-up: one synchronous run of each job before the recurring
		// schedule is armed.
		schedLog.Info("initial crawl started")
		pressJob.Run(ctx)
		newsJob.Run(ctx)
		schedLog.Info("initial crawl completed")

		schedLog.Info("scheduler armed", "press_minute", pressJob.Minute, "news_minute", newsJob.Minute)
		mgr := worker.NewManager(pressJob, newsJob)
		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func buildPressCrawler(cfg config.Config, store *storage.FileStore, pub *storage.RedisPublisher) (*worker.PressCrawler, error) {
	pressLog, err := logging.New("press_crawler", cfg.App.LogDir, cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	client := fetch.NewClient(cfg.HTTP)
	cutoff := time.Now().AddDate(0, 0, -cfg.Press.WindowDays)
	agg := &press.Aggregator{
		Adapters: []press.Adapter{
			press.NewFSC(cfg.Press.FSC, client, cutoff),
			press.NewFSS(cfg.Press.FSS, client, cutoff),
			press.NewBOK(cfg.Press.BOK, client, cutoff),
			press.NewMSIT(cfg.Press.MSIT, client, cutoff),
		},
		Log: pressLog,
	}
	return &worker.PressCrawler{
		Aggregator: agg,
		Store:      store,
		Publisher:  pub,
		MaxPages:   cfg.Press.MaxPages,
		Minute:     cfg.Schedule.PressMinute,
		Log:        pressLog,
	}, nil
}

func buildNewsCrawler(cfg config.Config, store *storage.FileStore, pub *storage.RedisPublisher) (*worker.NewsCrawler, error) {
	newsLog, err := logging.New("news_crawler", cfg.App.LogDir, cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	rcfg := render.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   time.Duration(cfg.HTTP.TimeoutSeconds+cfg.News.WaitSeconds) * time.Second,
	}
	agg := &news.Aggregator{
		Adapters: []news.Adapter{
			&news.NaverAdapter{Render: rcfg},
			&news.GoogleAdapter{Render: rcfg},
		},
		Keywords: cfg.News.Keywords,
		Log:      newsLog,
	}
	return &worker.NewsCrawler{
		Aggregator:        agg,
		Store:             store,
		Publisher:         pub,
		MaxItemsPerSource: cfg.News.MaxItemsPerSource,
		Minute:            cfg.Schedule.NewsMinute,
		Log:               newsLog,
	}, nil
}
