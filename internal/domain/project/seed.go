package project

// Seed returns the sample projects served when the backend is unavailable.
// Each call returns a fresh copy.
func Seed() []Project {
	return []Project{
		{
			ID:           "p1",
			Title:        "FinTech Alpha",
			Description:  "A revolutionary core banking system designed for micro-service architecture and high-throughput transactions.",
			Image:        "https://images.unsplash.com/photo-1551288049-bbbda536639a?q=80&w=1200",
			Technologies: []string{"React", "Node.js", "PostgreSQL", "AWS"},
			Category:     "Enterprise",
			Featured:     true,
		},
		{
			ID:           "p2",
			Title:        "Logistics Stream",
			Description:  "Real-time supply chain monitoring platform integrating IoT sensors and predictive AI.",
			Image:        "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?q=80&w=1200",
			Technologies: []string{"Python", "TensorFlow", "React", "Go"},
			Category:     "Enterprise",
			Featured:     true,
		},
	}
}
