package jdparser

import "strings"

// skillsVocabulary is the fixed keyword list scanned against the text.
// Matches are case-insensitive substring checks; results keep vocabulary
// order, not text-occurrence order. The list itself is the only dedup.
var skillsVocabulary = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"C++",
	"C#",
	"Golang",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Express",
	"Next.js",
	"Django",
	"Flask",
	"Spring",
	"HTML",
	"CSS",
	"Tailwind",
	"SQL",
	"MySQL",
	"PostgreSQL",
	"MongoDB",
	"Redis",
	"Firebase",
	"GraphQL",
	"REST API",
	"AWS",
	"Azure",
	"GCP",
	"Docker",
	"Kubernetes",
	"Git",
	"CI/CD",
	"Linux",
	"Machine Learning",
	"Deep Learning",
	"Data Analysis",
	"Data Structures",
	"Agile",
	"Scrum",
	"Communication",
	"Problem Solving",
}

// extractSkills returns every vocabulary term whose lowercase form appears
// as a substring of the lowercased text.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	skills := make([]string, 0, 8)
	for _, skill := range skillsVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}
