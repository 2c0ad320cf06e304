package content

// SeedServices returns the default services.
func SeedServices() []Service {
	return []Service{
		{
			ID:          "s1",
			Title:       "Enterprise Software",
			Description: "Bespoke software solutions tailored for large-scale operations and complex workflows.",
			Icon:        "Terminal",
			Features:    []string{"Scalability", "High Availability", "Custom Integrations"},
		},
		{
			ID:          "s2",
			Title:       "Cloud Infrastructure",
			Description: "Modernizing legacy systems and architecting future-proof cloud environments.",
			Icon:        "Cloud",
			Features:    []string{"Multi-cloud Strategy", "Security Compliance", "DevOps Automation"},
		},
		{
			ID:          "s3",
			Title:       "Strategic Consulting",
			Description: "Expert guidance on digital transformation and technical roadmapping.",
			Icon:        "TrendingUp",
			Features:    []string{"Technical Audits", "Market Analysis", "Efficiency Strategy"},
		},
	}
}

// SeedAbout returns the default about-page content. An empty logo means the
// site falls back to its built-in mark.
func SeedAbout() About {
	return About{
		Description:  "Founded on the principles of engineering excellence and strategic innovation, Pranikov has grown into a global leader in enterprise digital transformation. We bridge the gap between complex technical challenges and elegant, scalable business solutions.",
		Mission:      "To empower enterprises with intelligent technology that drives sustainable growth and defines the future of industry.",
		Vision:       "To be the most trusted global partner for high-stakes digital engineering and strategic innovation.",
		ProfileImage: "https://images.unsplash.com/photo-1497366216548-37526070297c?q=80&w=1200",
		Logo:         "",
		Values: []Value{
			{Title: "Integrity", Description: "We uphold the highest standards of transparency in every line of code and every client interaction."},
			{Title: "Precision", Description: "Our engineering approach is rooted in mathematical accuracy and performance optimization."},
			{Title: "Innovation", Description: "We don't just follow trends; we set the benchmark for what's possible in enterprise tech."},
		},
		Milestones: []Milestone{
			{Year: "2015", Title: "Inception", Description: "Pranikov founded as a specialized software consultancy in San Francisco."},
			{Year: "2018", Title: "Global Expansion", Description: "Opened European headquarters and scaled to 50+ enterprise clients."},
			{Year: "2023", Title: "AI Revolution", Description: "Launched our proprietary AI infrastructure framework for logistics."},
		},
	}
}
