package models

// HeroSection is the landing banner at the top of the site
type HeroSection struct {
	Badge             string `json:"badge"`
	HeadlinePart1     string `json:"headline_part1"`
	HeadlineHighlight string `json:"headline_highlight"`
	Subheadline       string `json:"subheadline"`
	CTAPrimary        string `json:"cta_primary"`
	CTASecondary      string `json:"cta_secondary"`
}

type AboutSection struct {
	Badge       string `json:"badge"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StatsItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Content is the singleton document holding all editable website copy.
// Writes replace it as a whole. Every non-pointer field must be present in
// the JSON, though strings may be empty.
type Content struct {
	Hero         HeroSection   `json:"hero"`
	About        *AboutSection `json:"about,omitempty"`
	Services     []ServiceItem `json:"services" validate:"required,dive"`
	Stats        []StatsItem   `json:"stats" validate:"required,dive"`
	ContactEmail string        `json:"contact_email"`
	ContactPhone string        `json:"contact_phone"`
}
