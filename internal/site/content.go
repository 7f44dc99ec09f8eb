// Package site holds the static portfolio content served by the content
// endpoints. The data is compiled in; the site has no storage.
package site

// Project is one portfolio project card.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Highlights  []string `json:"highlights"`
	DevStats    DevStats `json:"devStats"`
}

// DevStats are the tongue-in-cheek counters shown on a project card.
type DevStats struct {
	Commits  int    `json:"commits"`
	Caffeine string `json:"caffeine"`
	Bugs     string `json:"bugs"`
}

// Skills groups the skill badges by category.
type Skills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Databases  []string `json:"databases"`
	Tools      []string `json:"tools"`
}

// Experience is one entry of the experience section.
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Period     string   `json:"period"`
	Location   string   `json:"location"`
	Highlights []string `json:"highlights"`
}

// Content is everything the page renders.
type Content struct {
	Projects   []Project    `json:"projects"`
	Skills     Skills       `json:"skills"`
	Experience []Experience `json:"experience"`
}

var content = Content{
	Projects: []Project{
		{
			Title:       "Calley - Auto Call Dialer",
			Description: "Outbound calling platform for sales teams to automate and manage lead-based calls efficiently.",
			Tech:        []string{"Next.js", "MongoDB", "RabbitMQ"},
			Highlights: []string{
				"Built scalable web app with queue-based background handling",
				"Developed admin, agent, and team management dashboards",
				"Integrated SIM-based and VoIP-based calling workflows",
			},
			DevStats: DevStats{Commits: 120, Caffeine: "40L", Bugs: "3 (Known)"},
		},
		{
			Title:       "RAG WhatsApp Chatbot",
			Description: "RAG-based WhatsApp chatbot for automated customer support and admin reporting.",
			Tech:        []string{"RAG", "WhatsApp API", "Analytics"},
			Highlights: []string{
				"Implemented knowledge retrieval for context-aware responses",
				"Built conversation logs and analytics dashboards",
				"Scalable message handling for high-volume interactions",
			},
			DevStats: DevStats{Commits: 85, Caffeine: "25L", Bugs: "0 (Lies)"},
		},
		{
			Title:       "CostHub",
			Description: "Company-wide internal platform for task tracking, ticket management, and cost analysis.",
			Tech:        []string{"Next.js", "Role-based Auth", "Dashboards"},
			Highlights: []string{
				"Task tracking and ticket management system",
				"Cost analysis and internal reporting modules",
				"Role-based dashboards for multiple teams",
			},
			DevStats: DevStats{Commits: 210, Caffeine: "Too much", Bugs: "Infinite"},
		},
		{
			Title:       "ThrottleTribe",
			Description: "A social media platform tailored for motorcyclists with trip planning and image sharing.",
			Tech:        []string{"Next.js", "PostgreSQL", "Prisma", "Cloudinary"},
			Highlights: []string{
				"User authentication and media uploads",
				"Route planning with Google Maps integration",
				"NeonDB for scalable database solutions",
			},
			DevStats: DevStats{Commits: 340, Caffeine: "100L", Bugs: "Yes"},
		},
	},
	Skills: Skills{
		Languages:  []string{"TypeScript", "JavaScript", "Python", "Java", "C"},
		Frameworks: []string{"Next.js", "React.js", "Express", "Spring Boot"},
		Databases:  []string{"MongoDB", "PostgreSQL", "MS SQL Server"},
		Tools:      []string{"Docker", "Git", "RabbitMQ", "N8N", "Zapier", "Ollama", "Plesk"},
	},
	Experience: []Experience{
		{
			Title:    "Full Stack Developer",
			Company:  "C S Tech Infosolutions Private Limited",
			Period:   "2025 - Present",
			Location: "On-Site",
			Highlights: []string{
				"Worked on production-grade web applications using Next.js, contributing to system modernization and performance improvements.",
				"Designed and implemented backend systems involving asynchronous job queues, containerized deployments, and scalable architectures.",
				"Built and deployed Dockerized applications on a Plesk-managed VPS for multiple internal and client-facing platforms.",
				"Contributed to internal tooling, automation workflows, and admin dashboards to improve operational efficiency.",
			},
		},
	},
}

// Get returns the full portfolio content.
func Get() Content {
	return content
}
