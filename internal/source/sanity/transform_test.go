package sanity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestTransformer() *Transformer {
	return NewTransformer(&ImageResolver{ProjectID: "proj1", Dataset: "production"})
}

func TestPostToArticle_Full(t *testing.T) {
	post := Post{
		ID:          "post-1",
		UpdatedAt:   "2024-03-16T08:00:00Z",
		Title:       "Paralympic Swimming Trials",
		Slug:        &Slug{Current: "  swimming-trials  "},
		PublishedAt: "2024-03-15T10:30:00Z",
		MainImage:   &Image{Asset: &ImageAsset{Ref: "image-abc123-800x450-png"}},
		Body: []Block{
			{Type: "block", Children: []BlockSpan{{Type: "span", Text: "Trials opened on Friday."}}},
			{Type: "block", Children: []BlockSpan{{Type: "span", Text: "Second paragraph."}}},
		},
		Author:     &Author{Name: "Jane Reporter"},
		Categories: []Category{{Title: "Swimming"}},
		SportTags:  []string{"swimming", " ", "paralympics "},
	}

	article := newTestTransformer().PostToArticle(post)

	assert.Equal(t, "post-1", article.ID)
	assert.Equal(t, "Paralympic Swimming Trials", article.Title)
	assert.Equal(t, "Trials opened on Friday.", article.Excerpt)
	assert.Equal(t, "https://cdn.sanity.io/images/proj1/production/abc123-800x450.png", article.Image)
	assert.Equal(t, "March 15, 2024", article.Date)
	assert.Equal(t, "Jane Reporter", article.Author)
	assert.Equal(t, "Swimming", article.Category)
	assert.Equal(t, "/news/swimming-trials", article.URL)
	assert.Equal(t, []string{"swimming", "paralympics"}, article.SportTags)
	assert.Equal(t, time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC), article.UpdatedAt)
}

func TestPostToArticle_Sparse(t *testing.T) {
	article := newTestTransformer().PostToArticle(Post{ID: "post-2"})

	assert.Equal(t, NoExcerpt, article.Excerpt)
	assert.Equal(t, DefaultTitle, article.Title)
	assert.Equal(t, PlaceholderImage, article.Image)
	assert.Equal(t, DateTBA, article.Date)
	assert.Equal(t, DefaultAuthor, article.Author)
	assert.Equal(t, DefaultCategory, article.Category)
	assert.Equal(t, "", article.URL)
	assert.NotNil(t, article.SportTags)
	assert.Empty(t, article.SportTags)
}

func TestPostToArticle_TruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("a", 250)
	post := Post{Body: []Block{{Type: "block", Children: []BlockSpan{{Text: long}}}}}

	article := newTestTransformer().PostToArticle(post)

	assert.Equal(t, strings.Repeat("a", ExcerptLength)+"...", article.Excerpt)
}

func TestPostToArticle_SkipsNonTextBlocks(t *testing.T) {
	post := Post{Body: []Block{
		{Type: "image"},
		{Type: "block", Children: []BlockSpan{{Text: "After the photo."}}},
	}}

	article := newTestTransformer().PostToArticle(post)

	assert.Equal(t, "After the photo.", article.Excerpt)
}

func TestPostToArticle_FallsBackToCreatedAt(t *testing.T) {
	post := Post{PublishedAt: "not a date", CreatedAt: "2023-11-02T00:00:00Z"}

	article := newTestTransformer().PostToArticle(post)

	assert.Equal(t, "November 2, 2023", article.Date)
}

func TestArticleToArticle_PrefersExplicitExcerpt(t *testing.T) {
	doc := CMSArticle{
		ID:       "article-1",
		Title:    "Wheelchair Rugby Final",
		Excerpt:  "  Hosts win gold.  ",
		Body:     []Block{{Type: "block", Children: []BlockSpan{{Text: "Body text"}}}},
		Image:    &Image{Raw: "/images/rugby.jpg"},
		Author:   "Sam Writer",
		Category: "Results",
		Tags:     []string{"wheelchair-rugby"},
		Slug:     &Slug{Current: "rugby-final"},
	}

	article := newTestTransformer().ArticleToArticle(doc)

	assert.Equal(t, "Hosts win gold.", article.Excerpt)
	assert.Equal(t, "/images/rugby.jpg", article.Image)
	assert.Equal(t, "Sam Writer", article.Author)
	assert.Equal(t, "Results", article.Category)
	assert.Equal(t, "/news/rugby-final", article.URL)
	assert.Equal(t, []string{"wheelchair-rugby"}, article.SportTags)
}

func TestArticleToArticle_SparseUsesBodyThenDefault(t *testing.T) {
	tr := newTestTransformer()

	withBody := tr.ArticleToArticle(CMSArticle{Body: []Block{{Children: []BlockSpan{{Text: "From body"}}}}})
	assert.Equal(t, "From body", withBody.Excerpt)

	empty := tr.ArticleToArticle(CMSArticle{})
	assert.Equal(t, NoExcerpt, empty.Excerpt)
	assert.Equal(t, DefaultAuthor, empty.Author)
	assert.Equal(t, DefaultCategory, empty.Category)
	assert.Equal(t, PlaceholderImage, empty.Image)
}

func TestVideoToContent(t *testing.T) {
	video := Video{
		ID:          "video-1",
		Title:       "Boccia Highlights",
		Slug:        &Slug{Current: "boccia-highlights"},
		Views:       15300,
		Duration:    "8:42",
		PublishedAt: "2024-05-01",
	}

	content := newTestTransformer().VideoToContent(video)

	assert.Equal(t, "15.3K", content.Views)
	assert.Equal(t, "8:42", content.Duration)
	assert.Equal(t, "May 1, 2024", content.Date)
	assert.Equal(t, "/videos/boccia-highlights", content.URL)
	assert.Equal(t, PlaceholderImage, content.Thumbnail)
	assert.Equal(t, NoExcerpt, content.Description)
}

func TestPodcastToEpisode(t *testing.T) {
	episode := newTestTransformer().PodcastToEpisode(Podcast{
		ID:       "pod-1",
		Host:     "Alex Host",
		AudioURL: "https://media.example/ep1.mp3",
	})

	assert.Equal(t, "Alex Host", episode.Host)
	assert.Equal(t, "0:00", episode.Duration)
	assert.Equal(t, "https://media.example/ep1.mp3", episode.AudioURL)
	assert.Equal(t, "", episode.URL)
}

func TestFormatViews(t *testing.T) {
	assert.Equal(t, "999", formatViews(999))
	assert.Equal(t, "1.0K", formatViews(1000))
	assert.Equal(t, "2.5M", formatViews(2_500_000))
}
