package fixtures

import "github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"

var videos = []domain.VideoContent{
	{
		ID:          "v1",
		Title:       "Wheelchair Basketball Finals: Full Highlights",
		Description: "Every key play from a championship decided in the final seconds.",
		Thumbnail:   "/images/videos/basketball-highlights.jpg",
		Duration:    "12:34",
		Views:       "24.5K",
		Date:        "March 16, 2024",
		Category:    "Highlights",
		URL:         "/videos/basketball-finals-highlights",
	},
	{
		ID:          "v2",
		Title:       "Training Day with the Para Swimming Squad",
		Description: "A behind-the-scenes look at a national team training camp.",
		Thumbnail:   "/images/videos/swimming-training.jpg",
		Duration:    "8:15",
		Views:       "11.2K",
		Date:        "March 11, 2024",
		Category:    "Behind the Scenes",
		URL:         "/videos/para-swimming-training-day",
	},
	{
		ID:          "v3",
		Title:       "How Goalball Works",
		Description: "The rules, the equipment and the skills behind the sport built for visually impaired athletes.",
		Thumbnail:   "/images/videos/goalball-explained.jpg",
		Duration:    "5:42",
		Views:       "8.9K",
		Date:        "March 6, 2024",
		Category:    "Explainers",
		URL:         "/videos/how-goalball-works",
	},
	{
		ID:          "v4",
		Title:       "Sitting Volleyball Nations Cup: Day One",
		Description: "Match recaps and interviews from the opening day.",
		Thumbnail:   "/images/videos/sitting-volleyball.jpg",
		Duration:    "15:03",
		Views:       "6.4K",
		Date:        "March 2, 2024",
		Category:    "Highlights",
		URL:         "/videos/sitting-volleyball-day-one",
	},
}

var podcasts = []domain.PodcastEpisode{
	{
		ID:          "p1",
		Title:       "The Road to the Paralympics",
		Description: "Two-time medallists talk qualification, pressure and life in the athletes' village.",
		Image:       "/images/podcasts/road-to-paralympics.jpg",
		Duration:    "45:20",
		Date:        "March 14, 2024",
		Host:        "Alex Rivera",
		URL:         "/podcasts/road-to-the-paralympics",
	},
	{
		ID:          "p2",
		Title:       "Classification Explained",
		Description: "What sport classification is, why it matters and how athletes are assessed.",
		Image:       "/images/podcasts/classification.jpg",
		Duration:    "38:05",
		Date:        "March 7, 2024",
		Host:        "Alex Rivera",
		URL:         "/podcasts/classification-explained",
	},
	{
		ID:          "p3",
		Title:       "Building Accessible Clubs",
		Description: "Grassroots organisers share how they opened their doors to disabled athletes.",
		Image:       "/images/podcasts/accessible-clubs.jpg",
		Duration:    "41:47",
		Date:        "February 29, 2024",
		Host:        "Priya Shah",
		URL:         "/podcasts/building-accessible-clubs",
	},
}

func Videos() []domain.VideoContent {
	return append([]domain.VideoContent{}, videos...)
}

func Podcasts() []domain.PodcastEpisode {
	return append([]domain.PodcastEpisode{}, podcasts...)
}
