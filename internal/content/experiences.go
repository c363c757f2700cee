package content

import "github.com/harshmehta/portfolio-api/internal/domain"

// Experiences lists the work/project history entries, newest first.
var Experiences = []domain.Experience{
	{
		Slug:         "ensemble-ai",
		Title:        "Ensemble AI",
		Description:  "AI powered venue booking platform using agent based architecture",
		Date:         "Feb 2025 - Present",
		Location:     "Madison, WI / Remote",
		CoverImage:   "/nsflogo.jpg",
		Logo:         "/logo/nsflogo.jpg",
		Tags:         []string{"AI", "Founder", "Platform"},
		Technologies: []string{"n8n", "A2A Protocol", "ML", "Python", "AWS"},
		Images:       []string{"/nsficorps.png", "/teonsf.png"},
		Links: []domain.ExperienceLink{
			{Title: "Website", URL: "https://teo.wisc.edu/nsf-i-corps/"},
		},
		Content: domain.ExperienceBody{
			Overview:  "Leading the development of an AI powered venue booking platform using agent based architecture. Focused on real time sync and secure payments; selected for the NSF I-Corps program to explore commercial scaling.",
			Challenge: "Creating a seamless booking experience handling complex venue availability, pricing variations, and real-time synchronization across multiple calendars and payment systems.",
			Solution:  "An agent-based architecture that automates the booking process, with machine learning driven venue recommendations, secure payment processing, and real-time calendar synchronization.",
			Thoughts:  "Building in the AI agent space while the tooling is still settling has been equal parts frustrating and energizing.",
		},
	},
	{
		Slug:         "hp-tech-ventures",
		Title:        "HP Tech Ventures",
		Description:  "Corporate venture arm of HP - sourcing and evaluating startups",
		Date:         "2024",
		CoverImage:   "/hp-cover.jpg",
		Tags:         []string{"Venture Capital", "Strategy"},
		Technologies: []string{"Market Research", "Financial Modeling", "AI Strategy"},
		Images:       []string{},
		Content: domain.ExperienceBody{
			Overview:  "Sourced and evaluated early-stage startups for HP's corporate venture arm, focusing on AI and sustainable technology.",
			Challenge: "Separating durable technology advantages from hype in a crowded AI startup landscape.",
			Solution:  "Built a structured evaluation framework combining market sizing, technical due diligence, and founder assessment.",
			Thoughts:  "Seeing hundreds of pitches teaches you what a crisp problem statement looks like.",
		},
	},
	{
		Slug:         "uw-transportation",
		Title:        "UW-Madison Transportation Services",
		Description:  "Data analysis and process automation for campus transportation",
		Date:         "2022 - 2024",
		Location:     "Madison, WI",
		CoverImage:   "/uwtransport.jpg",
		Tags:         []string{"Data", "Automation"},
		Technologies: []string{"Python", "SQL", "Tableau", "ETL"},
		Images:       []string{},
		Content: domain.ExperienceBody{
			Overview:  "Automated reporting pipelines and analyzed ridership data for campus transportation services.",
			Challenge: "Legacy manual reporting consumed analyst hours and produced inconsistent numbers across teams.",
			Solution:  "ETL pipelines feeding shared dashboards, with validation checks that caught data issues before publication.",
			Thoughts:  "Unglamorous automation often has the highest return of anything you can build.",
		},
	},
}

// ExperienceBySlug returns the experience with the given slug, or nil
func ExperienceBySlug(slug string) *domain.Experience {
	for i := range Experiences {
		if Experiences[i].Slug == slug {
			return &Experiences[i]
		}
	}
	return nil
}
