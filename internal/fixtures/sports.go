package fixtures

import "github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"

var sports = []domain.Sport{
	{
		Slug:            "wheelchair-basketball",
		Name:            "Wheelchair Basketball",
		Description:     "Fast, physical basketball played on a standard court with sport wheelchairs and a points-based classification system.",
		Image:           "/images/sports/wheelchair-basketball.jpg",
		Classifications: []string{"1.0", "1.5", "2.0", "2.5", "3.0", "3.5", "4.0", "4.5"},
	},
	{
		Slug:            "para-swimming",
		Name:            "Para Swimming",
		Description:     "Swimming for athletes with physical, visual and intellectual impairments across every stroke.",
		Image:           "/images/sports/para-swimming.jpg",
		Classifications: []string{"S1-S10", "S11-S13", "S14"},
	},
	{
		Slug:            "blind-football",
		Name:            "Blind Football",
		Description:     "Five-a-side football with a ball that rattles, sighted goalkeepers and guides behind the goal.",
		Image:           "/images/sports/blind-football.jpg",
		Classifications: []string{"B1"},
	},
	{
		Slug:            "boccia",
		Name:            "Boccia",
		Description:     "A precision ball sport for athletes with severe physical impairments, played individually, in pairs or in teams.",
		Image:           "/images/sports/boccia.jpg",
		Classifications: []string{"BC1", "BC2", "BC3", "BC4"},
	},
	{
		Slug:            "goalball",
		Name:            "Goalball",
		Description:     "A team sport for visually impaired athletes who throw a ball containing bells towards the opposing goal.",
		Image:           "/images/sports/goalball.jpg",
		Classifications: []string{"B1", "B2", "B3"},
	},
	{
		Slug:            "wheelchair-rugby",
		Name:            "Wheelchair Rugby",
		Description:     "Full-contact mixed-team sport combining elements of rugby, basketball and handball.",
		Image:           "/images/sports/wheelchair-rugby.jpg",
		Classifications: []string{"0.5", "1.0", "1.5", "2.0", "2.5", "3.0", "3.5"},
	},
	{
		Slug:            "para-athletics",
		Name:            "Para Athletics",
		Description:     "Track, field and road events for athletes across a wide range of impairment groups.",
		Image:           "/images/sports/para-athletics.jpg",
		Classifications: []string{"T11-T13", "T20", "T31-T38", "T40-T47", "T51-T54", "T61-T64"},
	},
}

func Sports() []domain.Sport {
	out := make([]domain.Sport, len(sports))
	for i, s := range sports {
		out[i] = s.Clone()
	}
	return out
}

// Sport looks a sport up by slug.
func Sport(slug string) (domain.Sport, bool) {
	for _, s := range sports {
		if s.Slug == slug {
			return s.Clone(), true
		}
	}
	return domain.Sport{}, false
}
