package domain

import "time"

// Article is the site's uniform representation of a news story, whether it
// came from the CMS or from the static fixtures.
type Article struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Image     string   `json:"image"`
	Date      string   `json:"date"` // display-formatted
	Author    string   `json:"author"`
	Category  string   `json:"category"`
	URL       string   `json:"url"`
	SportTags []string `json:"sportTags"`

	// Zero for fixtures.
	PublishedAt time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// HasSportTag reports whether the article carries tag, ignoring case.
func (a Article) HasSportTag(tag string) bool {
	for _, t := range a.SportTags {
		if equalFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with a.
func (a Article) Clone() Article {
	a.SportTags = append([]string{}, a.SportTags...)
	return a
}

type VideoContent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Views       string `json:"views"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	URL         string `json:"url"`
}

type PodcastEpisode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
	Host        string `json:"host"`
	URL         string `json:"url"`
	AudioURL    string `json:"audioUrl,omitempty"`
}
