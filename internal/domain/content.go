package domain

// ImageCategory is a logical namespace for uploaded images. Categories map
// one-to-one to storage folders; they are configuration, not stored entities.
type ImageCategory struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Folder      string      `json:"folder"`
	MaxImages   int         `json:"maxImages,omitempty"`
	MaxSizeMB   int         `json:"maxSizeMB,omitempty"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
}

// Dimensions describes the preferred geometry for a category's images.
type Dimensions struct {
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
}

// CategorySummary is the per-category image count returned by the admin
// summary endpoint.
type CategorySummary struct {
	Category ImageCategory `json:"category"`
	Count    int           `json:"count"`
}

// Experience is a work/project history entry rendered on the site.
type Experience struct {
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Date         string           `json:"date"`
	Location     string           `json:"location,omitempty"`
	CoverImage   string           `json:"coverImage"`
	Logo         string           `json:"logo,omitempty"`
	Tags         []string         `json:"tags"`
	Technologies []string         `json:"technologies"`
	Images       []string         `json:"images"`
	Links        []ExperienceLink `json:"links,omitempty"`
	Content      ExperienceBody   `json:"content"`
}

// ExperienceLink is an external reference attached to an experience.
type ExperienceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ExperienceBody holds the long-form sections of an experience page.
type ExperienceBody struct {
	Overview     string   `json:"overview"`
	Challenge    string   `json:"challenge"`
	Solution     string   `json:"solution"`
	Thoughts     string   `json:"thoughts"`
	Achievements []string `json:"achievements,omitempty"`
}

// SkillGroup is a named group of skills shown on the homepage.
type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}
