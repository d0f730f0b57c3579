// Package fixtures holds the static content served whenever the CMS is
// unavailable. Accessors return copies; the package-level values are never
// mutated.
package fixtures

import "github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"

var articles = []domain.Article{
	{
		ID:        "1",
		Title:     "Wheelchair Basketball Championship Finals Set for Record Crowd",
		Excerpt:   "The national wheelchair basketball finals are expected to draw the largest audience in the event's history as two unbeaten teams meet for the title.",
		Image:     "/images/wheelchair-basketball.jpg",
		Date:      "March 15, 2024",
		Author:    "Sarah Mitchell",
		Category:  "Basketball",
		URL:       "/news/wheelchair-basketball-finals",
		SportTags: []string{"wheelchair-basketball"},
	},
	{
		ID:        "2",
		Title:     "Para Swimming World Records Fall at Spring Invitational",
		Excerpt:   "Three world records were broken over the weekend as the world's best para swimmers tuned up for the international season.",
		Image:     "/images/para-swimming.jpg",
		Date:      "March 12, 2024",
		Author:    "James Cooper",
		Category:  "Swimming",
		URL:       "/news/para-swimming-records",
		SportTags: []string{"para-swimming"},
	},
	{
		ID:        "3",
		Title:     "Blind Football League Expands to Twelve Clubs",
		Excerpt:   "The domestic blind football league welcomes four new clubs this season, giving more visually impaired players a pathway to elite competition.",
		Image:     "/images/blind-football.jpg",
		Date:      "March 10, 2024",
		Author:    "Maria Lopez",
		Category:  "Football",
		URL:       "/news/blind-football-expansion",
		SportTags: []string{"blind-football"},
	},
	{
		ID:        "4",
		Title:     "Boccia Stars Prepare for European Championships",
		Excerpt:   "The national boccia squad has been named, with two debutants joining an experienced core for next month's championships.",
		Image:     "/images/boccia.jpg",
		Date:      "March 8, 2024",
		Author:    "David Chen",
		Category:  "Boccia",
		URL:       "/news/boccia-european-squad",
		SportTags: []string{"boccia"},
	},
	{
		ID:        "5",
		Title:     "Wheelchair Rugby: Inside the Toughest Game on Wheels",
		Excerpt:   "We spent a week with a top wheelchair rugby side to see what it takes to compete in the sport once known as murderball.",
		Image:     "/images/wheelchair-rugby.jpg",
		Date:      "March 5, 2024",
		Author:    "Sarah Mitchell",
		Category:  "Features",
		URL:       "/news/wheelchair-rugby-feature",
		SportTags: []string{"wheelchair-rugby"},
	},
	{
		ID:        "6",
		Title:     "Para Athletics Grand Prix Heads to the Coast",
		Excerpt:   "The next stop on the para athletics grand prix circuit brings sprinting, throwing and jumping events to a brand-new seaside venue.",
		Image:     "/images/para-athletics.jpg",
		Date:      "March 1, 2024",
		Author:    "James Cooper",
		Category:  "Athletics",
		URL:       "/news/para-athletics-grand-prix",
		SportTags: []string{"para-athletics"},
	},
}

// Articles returns the fixture articles in display order.
func Articles() []domain.Article {
	out := make([]domain.Article, len(articles))
	for i, a := range articles {
		out[i] = a.Clone()
	}
	return out
}
