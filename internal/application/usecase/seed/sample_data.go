package seed

import (
	"time"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
)

type CategorySeed struct {
	Name         string
	Description  string
	DisplayOrder int
	Skills       []string
}

type ProfileSeed struct {
	Name         string
	Title        string
	Summary      string
	Location     string
	Availability string
	Email        string
	LinkedInURL  string
	GitHubURL    string
}

type ExperienceSeed struct {
	Company      string
	Position     string
	Description  string
	StartDate    time.Time
	EndDate      *time.Time
	IsCurrent    bool
	Technologies []string
	Achievements []string
}

type ProjectSeed struct {
	Title        string
	Company      string
	Description  string
	Impact       string
	Type         project.ProjectType
	IsFeatured   bool
	Technologies []string
}

// Data is everything the loader writes into an empty store.
type Data struct {
	Categories  []CategorySeed
	Profile     ProfileSeed
	Experiences []ExperienceSeed
	Projects    []ProjectSeed
}

const (
	defaultProficiency = 8
	defaultYears       = 3
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func monthPtr(year int, m time.Month) *time.Time {
	t := month(year, m)
	return &t
}

// SampleData is the portfolio shipped with the service.
func SampleData() Data {
	return Data{
		Categories: []CategorySeed{
			{
				Name:         "Backend & Cloud",
				Description:  "Backend technologies and cloud platforms",
				DisplayOrder: 1,
				Skills:       []string{"Python", "Java", "Go", "AWS", "GCP", "Docker", "Kubernetes", "Kafka", "Redis", "Memcached", "Elasticsearch"},
			},
			{
				Name:         "AI/ML & GenAI",
				Description:  "Artificial Intelligence and Machine Learning",
				DisplayOrder: 2,
				Skills: []string{
					"Hugging Face",
					"LangChain",
					"OpenAI API",
					"RAG pipelines",
					"Vector databases (Pinecone, Weaviate, FAISS)",
					"Embedding search",
					"LLM fine-tuning",
					"Prompt engineering",
				},
			},
			{
				Name:         "Specialties",
				Description:  "Specialized technologies and domains",
				DisplayOrder: 3,
				Skills:       []string{"Ceph", "Block Storage", "Network Security"},
			},
			{
				Name:         "Data Engineering",
				Description:  "Data processing and analytics",
				DisplayOrder: 4,
				Skills:       []string{"dbt", "Snowflake", "Hive", "Spark"},
			},
			{
				Name:         "Leadership & Delivery",
				Description:  "Technical leadership and delivery practices",
				DisplayOrder: 5,
				Skills:       []string{"Technical leadership", "Mentoring", "System design reviews"},
			},
		},
		Profile: ProfileSeed{
			Name:         "Sagar Neeli",
			Title:        "Senior Backend & AI Engineer",
			Summary:      "Building scalable, intelligent systems with ~10 years of experience in backend engineering, distributed architectures, cloud engineering, and cutting-edge AI/ML solutions.",
			Location:     "United States",
			Availability: "Open to opportunities",
			Email:        "sagarneeli1191@gmail.com",
			LinkedInURL:  "https://linkedin.com/in/sagarneeli",
			GitHubURL:    "https://github.com/sagarneeli",
		},
		Experiences: []ExperienceSeed{
			{
				Company:      "Akamai Technologies",
				Position:     "Senior Software Engineer",
				Description:  "Storage Engineering",
				StartDate:    month(2025, time.July),
				IsCurrent:    true,
				Technologies: []string{"Python", "Ceph", "Block Storage"},
				Achievements: []string{
					"Implementing ML-driven monitoring for block storage services",
					"Anomaly detection in storage systems",
				},
			},
			{
				Company:      "CVS Health",
				Position:     "Senior Software Engineer",
				Description:  "Enterprise Data ML Team",
				StartDate:    month(2025, time.March),
				EndDate:      monthPtr(2025, time.July),
				Technologies: []string{"Python", "ML", "Healthcare Data"},
				Achievements: []string{
					"AI-assisted prior authorization workflows",
					"Healthcare data processing",
				},
			},
			{
				Company:      "HubSpot",
				Position:     "Senior Software Engineer",
				Description:  "Architected CMS with microservices",
				StartDate:    month(2023, time.January),
				EndDate:      monthPtr(2025, time.February),
				Technologies: []string{"Python", "Microservices", "CMS", "Scalability"},
				Achievements: []string{
					"50% onboarding time reduction",
					"30+ languages, 95% adoption",
					"+20% engagement through CRM APIs",
				},
			},
			{
				Company:      "Jetty",
				Position:     "Senior Software Engineer, Technical Lead",
				Description:  "Partner integrations syncing 500k+ records via event-driven AWS",
				StartDate:    month(2021, time.March),
				EndDate:      monthPtr(2023, time.January),
				Technologies: []string{"AWS SQS", "Python CDK", "Event-driven", "Synchronization"},
				Achievements: []string{
					"500k+ records synced via event-driven AWS",
					"Predictive analysis dashboards",
				},
			},
			{
				Company:      "Wayfair",
				Position:     "Senior Software Engineer, Technical Lead",
				Description:  "Real-time ad-serving pipeline",
				StartDate:    month(2016, time.February),
				EndDate:      monthPtr(2021, time.February),
				Technologies: []string{"Real-time", "Ad-serving", "Performance"},
				Achievements: []string{
					"+60% performance improvement",
					"Automated supplier reporting",
				},
			},
		},
		Projects: []ProjectSeed{
			{
				Title:        "Next-Gen CMS Platform",
				Company:      "HubSpot",
				Description:  "Unified 5+ content types; scalable microservices",
				Impact:       "50% onboarding time reduction",
				Type:         project.TypeBackend,
				IsFeatured:   true,
				Technologies: []string{"Python", "Microservices", "CMS", "Scalability"},
			},
			{
				Title:        "AI Translation at Scale",
				Company:      "HubSpot",
				Description:  "DeepL + automation for 30+ languages, 95% adoption",
				Impact:       "95% adoption rate",
				Type:         project.TypeAI,
				IsFeatured:   true,
				Technologies: []string{"AI", "DeepL", "Automation", "Multi-language"},
			},
			{
				Title:        "Event-Driven Messaging System",
				Company:      "Jetty",
				Description:  "SQS + Python CDK for vendor synchronization",
				Impact:       "90% faster vendor sync",
				Type:         project.TypeBackend,
				IsFeatured:   true,
				Technologies: []string{"AWS SQS", "Python CDK", "Event-driven", "Synchronization"},
			},
			{
				Title:        "GenAI-Powered Content Personalization",
				Company:      "HubSpot",
				Description:  "CRM API + LLM for dynamic marketing copy",
				Impact:       "Dynamic content generation",
				Type:         project.TypeAI,
				IsFeatured:   true,
				Technologies: []string{"GenAI", "LLM", "CRM", "Personalization"},
			},
			{
				Title:        "Partner Onboarding Automation",
				Company:      "Jetty",
				Description:  "Flask + React/GraphQL, 70% manual work reduction",
				Impact:       "70% manual work reduction",
				Type:         project.TypeFullstack,
				IsFeatured:   true,
				Technologies: []string{"Flask", "React", "GraphQL", "Automation"},
			},
		},
	}
}
