package fixtures

import "github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"

var liveEvents = []domain.LiveEvent{
	{
		ID:        "live-1",
		Title:     "Wheelchair Tennis Open: Men's Semi-Final",
		Sport:     "Wheelchair Tennis",
		Status:    domain.EventLive,
		StartTime: "Live now",
		Viewers:   3420,
		Thumbnail: "/images/live/wheelchair-tennis.jpg",
	},
	{
		ID:        "live-2",
		Title:     "Para Cycling Time Trial",
		Sport:     "Para Cycling",
		Status:    domain.EventLive,
		StartTime: "Live now",
		Viewers:   1875,
		Thumbnail: "/images/live/para-cycling.jpg",
	},
}

var upcomingEvents = []domain.LiveEvent{
	{
		ID:        "up-1",
		Title:     "Goalball International Series",
		Sport:     "Goalball",
		Status:    domain.EventUpcoming,
		StartTime: "March 22, 2024 7:00 PM",
		Thumbnail: "/images/live/goalball.jpg",
	},
	{
		ID:        "up-2",
		Title:     "Boccia European Championships Opening Session",
		Sport:     "Boccia",
		Status:    domain.EventUpcoming,
		StartTime: "April 3, 2024 10:00 AM",
		Thumbnail: "/images/live/boccia.jpg",
	},
	{
		ID:        "up-3",
		Title:     "Adaptive Surfing Pro Tour",
		Sport:     "Adaptive Surfing",
		Status:    domain.EventUpcoming,
		StartTime: "April 12, 2024 9:00 AM",
		Thumbnail: "/images/live/adaptive-surfing.jpg",
	},
}

func LiveEvents() []domain.LiveEvent {
	return append([]domain.LiveEvent{}, liveEvents...)
}

func UpcomingEvents() []domain.LiveEvent {
	return append([]domain.LiveEvent{}, upcomingEvents...)
}
