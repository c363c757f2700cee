package content

import "github.com/harshmehta/portfolio-api/internal/domain"

// SkillGroups lists the homepage skill sections in display order.
var SkillGroups = []domain.SkillGroup{
	{
		Name: "Data Science & ML",
		Skills: []string{
			"Python", "NumPy", "Pandas", "Scikit-learn", "Data Cleaning", "SQL",
			"R", "Data Mining", "Data Modeling", "ETL", "ELT", "NLP",
			"Statistical Analysis",
		},
	},
	{
		Name: "Visualization & BI",
		Skills: []string{
			"Tableau", "Power BI", "Data Visualization", "Excel", "Matplotlib",
			"Seaborn", "Plotly",
		},
	},
	{
		Name: "Cloud & Infrastructure",
		Skills: []string{
			"AWS", "AWS S3", "AWS Glue", "AWS Redshift", "AWS SageMaker",
			"Azure", "Snowflake", "Databricks", "Docker", "Git", "Github",
		},
	},
	{
		Name: "Business & Strategy",
		Skills: []string{
			"Business Intelligence", "Data Analytics", "Project Management",
			"Agile", "SDLC", "Business Analysis", "Financial Forecasting",
			"AI Strategy", "Product Development", "Automation", "AI agents",
		},
	},
	{
		Name: "AI & Automation",
		Skills: []string{
			"AI", "Machine Learning", "Predictive Modeling",
			"Recommendation Systems", "n8n", "A2A Protocol",
			"Product Analytics", "Marketing Analytics",
		},
	},
	{
		Name: "Web & Development",
		Skills: []string{
			"HTML", "CSS", "JavaScript", "Node.js", "MongoDB", "Linux",
			"API Development",
		},
	},
	{
		Name:   "Media & AV",
		Skills: []string{"Live Audio", "AV Technology", "Audio Engineering", "Acoustics", "Sound Design"},
	},
}
