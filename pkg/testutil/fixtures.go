package testutil

import "content-gateway/pkg/models"

// SampleContent returns a complete, valid content document
func SampleContent() models.Content {
	return models.Content{
		Hero: models.HeroSection{
			Badge:             "Studio",
			HeadlinePart1:     "We build",
			HeadlineHighlight: "things.",
			Subheadline:       "Software for people.",
			CTAPrimary:        "Talk to us",
			CTASecondary:      "See work",
		},
		About: &models.AboutSection{
			Badge:       "About",
			Headline:    "Who we are",
			Description: "A small team.",
			ImageURL:    "https://example.com/team.jpg",
		},
		Services: []models.ServiceItem{
			{Title: "Web", Description: "Web apps"},
			{Title: "Mobile", Description: "Mobile apps"},
		},
		Stats: []models.StatsItem{
			{Value: "50+", Label: "Projects"},
		},
		ContactEmail: "hello@example.com",
		ContactPhone: "+1 555 0100",
	}
}

// SeedContentRow stores content as row id in the site_content table
func SeedContentRow(m *MemoryStore, id int, content models.Content) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, err := toRow(map[string]interface{}{"id": id, "content": content})
	if err != nil {
		panic(err)
	}
	m.tables["site_content"] = append(m.tables["site_content"], row)
}
