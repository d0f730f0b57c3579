package sanity

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

const (
	NoExcerpt       = "No excerpt available"
	DefaultAuthor   = "DSC Staff"
	DefaultCategory = "News"
	DefaultTitle    = "Untitled"
	DateTBA         = "Date TBA"

	ExcerptLength = 200
	DisplayDate   = "January 2, 2006"

	articlePathPrefix = "/news/"
	videoPathPrefix   = "/videos/"
	podcastPathPrefix = "/podcasts/"
)

// Transformer maps CMS documents onto domain types. Every output field is
// populated, however sparse the input.
type Transformer struct {
	Images *ImageResolver
}

func NewTransformer(images *ImageResolver) *Transformer {
	if images == nil {
		images = &ImageResolver{}
	}
	return &Transformer{Images: images}
}

func (t *Transformer) PostToArticle(p Post) domain.Article {
	article := domain.Article{
		ID:        p.ID,
		Title:     orDefault(p.Title, DefaultTitle),
		Excerpt:   excerpt(p.Body),
		Image:     t.Images.Resolve(p.MainImage),
		Author:    DefaultAuthor,
		Category:  DefaultCategory,
		URL:       slugPath(articlePathPrefix, p.Slug),
		SportTags: cleanTags(p.SportTags),
	}

	if p.Author != nil {
		article.Author = orDefault(p.Author.Name, DefaultAuthor)
	}
	if len(p.Categories) > 0 {
		article.Category = orDefault(p.Categories[0].Title, DefaultCategory)
	}

	article.PublishedAt = parseTime(p.PublishedAt, p.CreatedAt)
	article.Date = displayDate(article.PublishedAt)
	article.UpdatedAt = parseTime(p.UpdatedAt, p.CreatedAt)

	return article
}

func (t *Transformer) ArticleToArticle(a CMSArticle) domain.Article {
	article := domain.Article{
		ID:        a.ID,
		Title:     orDefault(a.Title, DefaultTitle),
		Image:     t.Images.Resolve(a.Image),
		Author:    orDefault(a.Author, DefaultAuthor),
		Category:  orDefault(a.Category, DefaultCategory),
		URL:       slugPath(articlePathPrefix, a.Slug),
		SportTags: cleanTags(a.Tags),
	}

	if ex := strings.TrimSpace(a.Excerpt); ex != "" {
		article.Excerpt = truncate(ex)
	} else {
		article.Excerpt = excerpt(a.Body)
	}

	article.PublishedAt = parseTime(a.PublishedAt, a.CreatedAt)
	article.Date = displayDate(article.PublishedAt)
	article.UpdatedAt = parseTime(a.UpdatedAt, a.CreatedAt)

	return article
}

func (t *Transformer) VideoToContent(v Video) domain.VideoContent {
	return domain.VideoContent{
		ID:          v.ID,
		Title:       orDefault(v.Title, DefaultTitle),
		Description: orDefault(strings.TrimSpace(v.Description), NoExcerpt),
		Thumbnail:   t.Images.Resolve(v.Thumbnail),
		Duration:    orDefault(v.Duration, "0:00"),
		Views:       formatViews(v.Views),
		Date:        displayDate(parseTime(v.PublishedAt, v.CreatedAt)),
		Category:    orDefault(v.Category, DefaultCategory),
		URL:         slugPath(videoPathPrefix, v.Slug),
	}
}

func (t *Transformer) PodcastToEpisode(p Podcast) domain.PodcastEpisode {
	return domain.PodcastEpisode{
		ID:          p.ID,
		Title:       orDefault(p.Title, DefaultTitle),
		Description: orDefault(strings.TrimSpace(p.Description), NoExcerpt),
		Image:       t.Images.Resolve(p.CoverImage),
		Duration:    orDefault(p.Duration, "0:00"),
		Date:        displayDate(parseTime(p.PublishedAt, p.CreatedAt)),
		Host:        orDefault(p.Host, DefaultAuthor),
		URL:         slugPath(podcastPathPrefix, p.Slug),
		AudioURL:    p.AudioURL,
	}
}

// excerpt takes the first span of the first text block.
func excerpt(body []Block) string {
	for _, b := range body {
		if b.Type != "" && b.Type != "block" {
			continue
		}
		if len(b.Children) == 0 {
			break
		}
		text := strings.TrimSpace(b.Children[0].Text)
		if text == "" {
			break
		}
		return truncate(text)
	}
	return NoExcerpt
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= ExcerptLength {
		return s
	}
	return strings.TrimRight(string(runes[:ExcerptLength]), " ") + "..."
}

func slugPath(prefix string, slug *Slug) string {
	if slug == nil {
		return ""
	}
	s := strings.TrimSpace(slug.Current)
	if s == "" {
		return ""
	}
	return prefix + s
}

func parseTime(values ...string) time.Time {
	for _, v := range values {
		if v == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return DateTBA
	}
	return t.Format(DisplayDate)
}

func formatViews(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
