package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/config"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/server"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/service"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/source/podcastfeed"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/source/sanity"
)

const (
	ExitGeneralError = 1
	ExitUsageError   = 2
)

func main() {
	app := &cli.App{
		Name:    "contentctl",
		Usage:   "Serve and inspect Disability Sports Channel content",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "Path to config file",
				EnvVars: []string{"CONTENT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the content HTTP API",
				Action: serve,
			},
			{
				Name:  "articles",
				Usage: "List news articles",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "sport",
						Aliases: []string{"s"},
						Usage:   "Only articles tagged with this sport",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "Maximum number of articles (0 for all)",
					},
				},
				Action: listArticles,
			},
			{
				Name:   "videos",
				Usage:  "List videos",
				Action: listVideos,
			},
			{
				Name:   "podcasts",
				Usage:  "List podcast episodes",
				Action: listPodcasts,
			},
			{
				Name:  "events",
				Usage: "List live and upcoming events",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "live",
						Usage: "Only events that are live now",
					},
				},
				Action: listEvents,
			},
			{
				Name:   "sports",
				Usage:  "List sports",
				Action: listSports,
			},
			{
				Name:      "image",
				Usage:     "Resolve an image reference or path to a URL",
				ArgsUsage: "<ref-or-path>",
				Action:    resolveImage,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	content *service.ContentService
	images  *sanity.ImageResolver
}

func setup(c *cli.Context) (*runtime, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("Failed to load config: %v", err), ExitUsageError)
	}

	level := cfg.LogLevel
	if l := c.String("log-level"); l != "" {
		level = l
	}
	logger := setupLogger(level)

	// Leave the interfaces nil when unconfigured; the service treats nil as
	// "serve fixtures".
	var cms service.CMS
	images := &sanity.ImageResolver{ProjectID: cfg.CMS.ProjectID, Dataset: cfg.CMS.Dataset, Logger: logger}
	if cfg.CMS.Configured() {
		client := sanity.New(sanity.Config{
			ProjectID:      cfg.CMS.ProjectID,
			Dataset:        cfg.CMS.Dataset,
			APIVersion:     cfg.CMS.APIVersion,
			Token:          cfg.CMS.Token,
			UseCDN:         cfg.CMS.UseCDN,
			Timeout:        cfg.CMS.Timeout,
			MaxAttempts:    cfg.CMS.Retry.MaxAttempts,
			InitialBackoff: cfg.CMS.Retry.InitialBackoff,
			MaxBackoff:     cfg.CMS.Retry.MaxBackoff,
		}, logger)
		cms = client
		images = client.Images()
	} else {
		logger.Warn("cms not configured, serving fixtures")
	}

	var feed service.PodcastFeed
	if cfg.Podcast.FeedURL != "" {
		feed = podcastfeed.New(cfg.Podcast.FeedURL, cfg.CMS.Timeout, logger)
	}

	content := service.NewContentService(cms, feed, logger, service.ContentConfig{
		Limit:   cfg.CMS.Limit,
		Timeout: cfg.CMS.Timeout,
	})

	return &runtime{cfg: cfg, logger: logger, content: content, images: images}, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// stdout carries command output, so logs go to stderr.
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}

func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

type resultOutput[T any] struct {
	Origin domain.Origin `json:"origin"`
	Reason string        `json:"reason,omitempty"`
	Count  int           `json:"count"`
	Items  []T           `json:"items"`
}

func outputResult[T any](res domain.Result[T]) error {
	out := resultOutput[T]{Origin: res.Origin, Count: len(res.Items), Items: res.Items}
	if res.Reason != nil {
		out.Reason = res.Reason.Error()
	}
	if out.Items == nil {
		out.Items = []T{}
	}
	return outputJSON(out)
}

func serve(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	handler := server.NewHandler(rt.content, rt.images, rt.logger)
	router := server.NewRouter(handler, rt.logger)

	if err := server.Run(ctx, rt.cfg.Server.Addr(), router, rt.logger); err != nil {
		return cli.Exit(fmt.Sprintf("Server error: %v", err), ExitGeneralError)
	}
	return nil
}

func listArticles(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}

	ctx := contextOf(c)
	var res domain.Result[domain.Article]
	switch sport, limit := c.String("sport"), c.Int("limit"); {
	case sport != "":
		res = rt.content.FetchArticlesBySport(ctx, sport)
	case limit > 0:
		res = rt.content.FetchFeaturedArticles(ctx, limit)
	default:
		res = rt.content.FetchArticles(ctx)
	}
	return outputResult(res)
}

func listVideos(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}
	return outputResult(rt.content.FetchVideos(contextOf(c)))
}

func listPodcasts(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}
	return outputResult(rt.content.FetchPodcasts(contextOf(c)))
}

func listEvents(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}

	if c.Bool("live") {
		return outputJSON(rt.content.LiveEvents())
	}
	return outputJSON(map[string]any{
		"live":     rt.content.LiveEvents(),
		"upcoming": rt.content.UpcomingEvents(),
	})
}

func listSports(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}
	return outputJSON(rt.content.Sports())
}

func resolveImage(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: contentctl image <ref-or-path>", ExitUsageError)
	}

	rt, err := setup(c)
	if err != nil {
		return err
	}

	arg := c.Args().Get(0)
	img := &sanity.Image{Raw: arg}
	if strings.HasPrefix(arg, "image-") {
		img = &sanity.Image{Asset: &sanity.ImageAsset{Ref: arg}}
	}

	return outputJSON(server.ImageResponse{
		URL:  rt.images.Resolve(img),
		Kind: rt.images.Classify(img).String(),
	})
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
