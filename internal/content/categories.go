// Package content holds the static site data: image categories, work
// experiences, and skill groups. It is configuration, not behavior; edits
// here ship with a deploy, there is no CMS behind it.
package content

import "github.com/harshmehta/portfolio-api/internal/domain"

// Categories defines every image namespace the admin area can upload into.
// Folder names double as blob store key prefixes.
var Categories = []domain.ImageCategory{
	{
		ID:          "hero",
		Name:        "Hero Section",
		Description: "Main hero image displayed at the top of the homepage",
		Folder:      "hero",
		MaxImages:   1,
		Dimensions:  &domain.Dimensions{AspectRatio: 16.0 / 9.0},
	},
	{
		ID:          "gallery",
		Name:        "Gallery",
		Description: "Images displayed in the portfolio gallery section",
		Folder:      "gallery",
	},
	{
		ID:          "experience",
		Name:        "Experience",
		Description: "Images for experience/work history entries",
		Folder:      "experience",
	},
	{
		ID:          "projects",
		Name:        "Projects",
		Description: "Images for project showcases",
		Folder:      "projects",
	},
	{
		ID:          "blog",
		Name:        "Blog Posts",
		Description: "Cover images for blog posts",
		Folder:      "blog",
		Dimensions:  &domain.Dimensions{AspectRatio: 16.0 / 9.0},
	},
	{
		ID:          "skills",
		Name:        "Skills",
		Description: "Icons or images representing skills",
		Folder:      "skills",
		MaxSizeMB:   1,
	},
	{
		ID:          "about",
		Name:        "About Me",
		Description: "Personal photos or images for the about section",
		Folder:      "about",
		MaxImages:   3,
	},
}

// CategoryByID returns the category with the given id, or nil
func CategoryByID(id string) *domain.ImageCategory {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// CategoryFolder returns the storage folder for a category id,
// falling back to the default folder for unknown ids.
func CategoryFolder(id string) string {
	if cat := CategoryByID(id); cat != nil {
		return cat.Folder
	}
	return domain.DefaultFolder
}
