// Package podcastfeed reads podcast episodes from the show's RSS feed.
package podcastfeed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

const (
	DisplayDate  = "January 2, 2006"
	NoSummary    = "No description available"
	DefaultHost  = "DSC Podcast"
	defaultImage = "/placeholder.svg"
)

// Feed fetches and converts a podcast RSS feed.
type Feed struct {
	url    string
	parser *gofeed.Parser
	logger *slog.Logger
}

func New(url string, timeout time.Duration, logger *slog.Logger) *Feed {
	parser := gofeed.NewParser()
	parser.UserAgent = "DSCContent/1.0"
	if timeout > 0 {
		parser.Client = &http.Client{Timeout: timeout}
	}
	return &Feed{
		url:    url,
		parser: parser,
		logger: logger.With("source", "podcast_feed"),
	}
}

// FetchEpisodes retrieves up to limit episodes, newest first as published.
func (f *Feed) FetchEpisodes(ctx context.Context, limit int) ([]domain.PodcastEpisode, error) {
	parsed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch podcast feed %s: %w", f.url, err)
	}

	episodes := Convert(parsed, limit)
	f.logger.Debug("fetched podcast feed", "episodes", len(episodes))
	return episodes, nil
}

// Parse converts feed content that was fetched elsewhere.
func Parse(content string, limit int) ([]domain.PodcastEpisode, error) {
	if content == "" {
		return nil, fmt.Errorf("feed content is empty")
	}
	parsed, err := gofeed.NewParser().ParseString(content)
	if err != nil {
		return nil, fmt.Errorf("parse podcast feed: %w", err)
	}
	return Convert(parsed, limit), nil
}

// Convert maps gofeed items onto episodes. limit <= 0 means all items.
func Convert(gf *gofeed.Feed, limit int) []domain.PodcastEpisode {
	showImage := defaultImage
	if gf.Image != nil && gf.Image.URL != "" {
		showImage = gf.Image.URL
	}
	host := DefaultHost
	if len(gf.Authors) > 0 && gf.Authors[0].Name != "" {
		host = gf.Authors[0].Name
	}

	episodes := make([]domain.PodcastEpisode, 0, len(gf.Items))
	for _, item := range gf.Items {
		if limit > 0 && len(episodes) >= limit {
			break
		}
		episodes = append(episodes, convertItem(item, showImage, host))
	}
	return episodes
}

func convertItem(item *gofeed.Item, showImage, host string) domain.PodcastEpisode {
	ep := domain.PodcastEpisode{
		ID:          item.GUID,
		Title:       item.Title,
		Description: strings.TrimSpace(item.Description),
		Image:       showImage,
		Duration:    "0:00",
		Date:        "Date TBA",
		Host:        host,
		URL:         item.Link,
	}

	if ep.ID == "" {
		ep.ID = item.Link
	}
	if ep.Description == "" {
		ep.Description = NoSummary
	}
	if item.Image != nil && item.Image.URL != "" {
		ep.Image = item.Image.URL
	}
	if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		ep.Host = item.Authors[0].Name
	}

	if item.ITunesExt != nil {
		if item.ITunesExt.Duration != "" {
			ep.Duration = item.ITunesExt.Duration
		}
		if item.ITunesExt.Image != "" {
			ep.Image = item.ITunesExt.Image
		}
		if ep.Description == NoSummary && item.ITunesExt.Summary != "" {
			ep.Description = item.ITunesExt.Summary
		}
	}

	if item.PublishedParsed != nil {
		ep.Date = item.PublishedParsed.Format(DisplayDate)
	} else if item.UpdatedParsed != nil {
		ep.Date = item.UpdatedParsed.Format(DisplayDate)
	}

	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "audio/") {
			ep.AudioURL = enc.URL
			break
		}
	}

	return ep
}
