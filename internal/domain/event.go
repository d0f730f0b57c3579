package domain

import "strings"

type EventStatus string

const (
	EventLive     EventStatus = "live"
	EventUpcoming EventStatus = "upcoming"
)

// LiveEvent is a stream shown in the live viewer shell.
type LiveEvent struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Sport     string      `json:"sport"`
	Status    EventStatus `json:"status"`
	StartTime string      `json:"startTime"`
	Viewers   int         `json:"viewers"`
	Thumbnail string      `json:"thumbnail"`
}

// Sport describes one sport-information page.
type Sport struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Classifications []string `json:"classifications"`
}

func (s Sport) Clone() Sport {
	s.Classifications = append([]string{}, s.Classifications...)
	return s
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
