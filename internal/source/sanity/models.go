package sanity

import (
	"bytes"
	"encoding/json"
)

type Slug struct {
	Current string `json:"current"`
}

// Image is a CMS image field. It decodes from either an object with an
// asset sub-object or a bare string.
type Image struct {
	Asset *ImageAsset
	Raw   string
}

type ImageAsset struct {
	URL string `json:"url"`
	Ref string `json:"_ref"`
}

func (i *Image) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &i.Raw)
	}

	var obj struct {
		Asset *ImageAsset `json:"asset"`
		URL   string      `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	i.Asset = obj.Asset
	// Projections like `"image": mainImage.asset->` yield {url: ...} directly.
	if i.Asset == nil && obj.URL != "" {
		i.Asset = &ImageAsset{URL: obj.URL}
	}
	return nil
}

// Block is a Portable Text block.
type Block struct {
	Type     string      `json:"_type"`
	Style    string      `json:"style"`
	Children []BlockSpan `json:"children"`
}

type BlockSpan struct {
	Type string `json:"_type"`
	Text string `json:"text"`
}

type Author struct {
	Name string `json:"name"`
}

type Category struct {
	Title string `json:"title"`
}

// Post is a `post` document as returned by PostsQuery.
type Post struct {
	ID          string     `json:"_id"`
	CreatedAt   string     `json:"_createdAt"`
	UpdatedAt   string     `json:"_updatedAt"`
	Title       string     `json:"title"`
	Slug        *Slug      `json:"slug"`
	PublishedAt string     `json:"publishedAt"`
	MainImage   *Image     `json:"mainImage"`
	Body        []Block    `json:"body"`
	Author      *Author    `json:"author"`
	Categories  []Category `json:"categories"`
	SportTags   []string   `json:"sportTags"`
}

// CMSArticle is an `article` document as returned by ArticlesQuery.
type CMSArticle struct {
	ID          string   `json:"_id"`
	CreatedAt   string   `json:"_createdAt"`
	UpdatedAt   string   `json:"_updatedAt"`
	Title       string   `json:"title"`
	Slug        *Slug    `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	PublishedAt string   `json:"publishedAt"`
	Image       *Image   `json:"image"`
	Body        []Block  `json:"body"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type Video struct {
	ID          string `json:"_id"`
	CreatedAt   string `json:"_createdAt"`
	Title       string `json:"title"`
	Slug        *Slug  `json:"slug"`
	Description string `json:"description"`
	Thumbnail   *Image `json:"thumbnail"`
	Duration    string `json:"duration"`
	Views       int    `json:"views"`
	PublishedAt string `json:"publishedAt"`
	Category    string `json:"category"`
}

type Podcast struct {
	ID          string `json:"_id"`
	CreatedAt   string `json:"_createdAt"`
	Title       string `json:"title"`
	Slug        *Slug  `json:"slug"`
	Description string `json:"description"`
	CoverImage  *Image `json:"coverImage"`
	Duration    string `json:"duration"`
	PublishedAt string `json:"publishedAt"`
	Host        string `json:"host"`
	AudioURL    string `json:"audioUrl"`
}
