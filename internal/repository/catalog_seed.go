package repository

import "github.com/noah-isme/mentor-hub-api/internal/models"

func seedMentors() []models.Mentor {
	return []models.Mentor{
		{
			ID:              1,
			Name:            "Marcus Johnson",
			Title:           "Product Manager",
			Company:         "Microsoft",
			Avatar:          "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"Product Strategy", "Agile", "Data Analysis", "Leadership"},
			Bio:             "Product management leader specializing in career transitions and leadership development. Helps professionals advance from IC to management roles. 10+ years of experience.",
			Availability:    models.AvailabilityAvailable,
			Rating:          4.8,
			Students:        89,
			Experience:      "10 years",
			Location:        "Seattle, WA",
			HourlyRate:      "$150",
			Languages:       []string{"English", "Spanish"},
			Specializations: []string{"Product Management", "Strategy", "Team Leadership"},
		},
		{
			ID:              2,
			Name:            "Dr. Priya Patel",
			Title:           "Data Science Lead",
			Company:         "Netflix",
			Avatar:          "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"Python", "Machine Learning", "Statistics", "SQL"},
			Bio:             "Data science expert with PhD in Statistics. Specializes in machine learning, predictive modeling, and helping professionals transition into data science.",
			Availability:    models.AvailabilityLimited,
			Rating:          4.9,
			Students:        156,
			Experience:      "12 years",
			Location:        "Los Angeles, CA",
			HourlyRate:      "$180",
			Languages:       []string{"English", "Hindi", "Gujarati"},
			Specializations: []string{"Data Science", "Machine Learning", "Career Transition"},
		},
		{
			ID:              3,
			Name:            "Alex Rodriguez",
			Title:           "Full Stack Developer",
			Company:         "Stripe",
			Avatar:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"Node.js", "React", "PostgreSQL", "AWS"},
			Bio:             "Full-stack developer passionate about clean code and scalable architecture. Loves teaching and helping developers grow their technical skills.",
			Availability:    models.AvailabilityAvailable,
			Rating:          4.7,
			Students:        98,
			Experience:      "6 years",
			Location:        "Austin, TX",
			HourlyRate:      "$110",
			Languages:       []string{"English", "Spanish"},
			Specializations: []string{"Full Stack Development", "System Design", "Code Reviews"},
		},
		{
			ID:              4,
			Name:            "Emily Watson",
			Title:           "UX Designer",
			Company:         "Figma",
			Avatar:          "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"Figma", "User Research", "Prototyping", "Design Systems"},
			Bio:             "UX designer with a focus on creating intuitive and accessible user experiences. Expert in design thinking and user-centered design processes.",
			Availability:    models.AvailabilityAvailable,
			Rating:          4.8,
			Students:        73,
			Experience:      "7 years",
			Location:        "New York, NY",
			HourlyRate:      "$130",
			Languages:       []string{"English", "French"},
			Specializations: []string{"UX Design", "User Research", "Design Systems"},
		},
		{
			ID:              6,
			Name:            "David Kim",
			Title:           "DevOps Engineer",
			Company:         "Amazon",
			Avatar:          "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"Docker", "Kubernetes", "AWS", "CI/CD"},
			Bio:             "DevOps engineer specializing in cloud infrastructure and automation. Passionate about helping teams implement best practices for deployment and monitoring.",
			Availability:    models.AvailabilityAvailable,
			Rating:          4.6,
			Students:        64,
			Experience:      "9 years",
			Location:        "Seattle, WA",
			HourlyRate:      "$140",
			Languages:       []string{"English", "Korean"},
			Specializations: []string{"DevOps", "Cloud Infrastructure", "Automation"},
		},
		{
			ID:              7,
			Name:            "Lisa Thompson",
			Title:           "Marketing Director",
			Company:         "HubSpot",
			Avatar:          "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"Digital Marketing", "SEO", "Content Strategy", "Analytics"},
			Bio:             "Marketing professional with expertise in digital marketing, content strategy, and growth hacking. Loves helping professionals build their personal brand.",
			Availability:    models.AvailabilityLimited,
			Rating:          4.7,
			Students:        112,
			Experience:      "11 years",
			Location:        "Boston, MA",
			HourlyRate:      "$125",
			Languages:       []string{"English"},
			Specializations: []string{"Digital Marketing", "Content Strategy", "Personal Branding"},
		},
		{
			ID:              8,
			Name:            "James Wilson",
			Title:           "Mobile Developer",
			Company:         "Airbnb",
			Avatar:          "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&h=150&fit=crop&crop=face",
			Skills:          []string{"React Native", "iOS", "Android", "Swift"},
			Bio:             "Mobile developer with expertise in cross-platform development. Passionate about creating smooth, native-feeling mobile experiences.",
			Availability:    models.AvailabilityAvailable,
			Rating:          4.8,
			Students:        85,
			Experience:      "8 years",
			Location:        "San Francisco, CA",
			HourlyRate:      "$135",
			Languages:       []string{"English"},
			Specializations: []string{"Mobile Development", "Cross-platform", "App Store Optimization"},
		},
	}
}

func seedCategories() []models.SkillCategory {
	return []models.SkillCategory{
		{ID: 1, Name: "Frontend Development", Icon: "💻", Description: "Master modern frontend technologies", Skills: []string{"React", "Vue.js", "Angular", "TypeScript", "CSS", "HTML"}, MatchSkills: []string{"React", "TypeScript", "UI/UX Design"}},
		{ID: 2, Name: "Backend Development", Icon: "⚙️", Description: "Build robust server-side applications", Skills: []string{"Node.js", "Python", "Java", "PostgreSQL", "MongoDB", "AWS"}, MatchSkills: []string{"Node.js", "PostgreSQL", "AWS"}},
		{ID: 3, Name: "Data Science", Icon: "📊", Description: "Extract insights from data", Skills: []string{"Python", "Machine Learning", "Statistics", "SQL", "R", "TensorFlow"}, MatchSkills: []string{"Python", "Machine Learning", "Statistics", "SQL"}},
		{ID: 4, Name: "Product Management", Icon: "📋", Description: "Lead product strategy and development", Skills: []string{"Product Strategy", "Agile", "Data Analysis", "Leadership", "User Research"}, MatchSkills: []string{"Product Strategy", "Agile", "Data Analysis", "Leadership"}},
		{ID: 5, Name: "UX/UI Design", Icon: "🎨", Description: "Create beautiful user experiences", Skills: []string{"Figma", "User Research", "Prototyping", "Design Systems", "Adobe XD"}, MatchSkills: []string{"Figma", "User Research", "Prototyping", "Design Systems"}},
		{ID: 6, Name: "DevOps & Cloud", Icon: "☁️", Description: "Deploy and scale applications", Skills: []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Terraform", "Monitoring"}, MatchSkills: []string{"Docker", "Kubernetes", "AWS", "CI/CD"}},
	}
}

// progress values are fixed per path until learner tracking exists.
func seedLearningPaths() []models.LearningPath {
	return []models.LearningPath{
		{ID: 1, Title: "Frontend Developer Path", Description: "From zero to frontend hero", Duration: "6 months", Difficulty: "Beginner to Intermediate", Skills: []string{"HTML", "CSS", "JavaScript", "React", "TypeScript"}, MatchSkills: []string{"React", "TypeScript", "UI/UX Design"}, Progress: 25},
		{ID: 2, Title: "Full Stack Developer Path", Description: "Master both frontend and backend", Duration: "12 months", Difficulty: "Intermediate to Advanced", Skills: []string{"React", "Node.js", "PostgreSQL", "AWS", "Docker"}, MatchSkills: []string{"React", "Node.js", "PostgreSQL", "AWS"}, Progress: 0},
		{ID: 3, Title: "Data Science Path", Description: "Become a data science expert", Duration: "8 months", Difficulty: "Intermediate to Advanced", Skills: []string{"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization"}, MatchSkills: []string{"Python", "Machine Learning", "Statistics", "SQL"}, Progress: 60},
		{ID: 4, Title: "Product Manager Path", Description: "Lead product strategy and teams", Duration: "6 months", Difficulty: "Intermediate to Advanced", Skills: []string{"Product Strategy", "User Research", "Data Analysis", "Leadership", "Agile"}, MatchSkills: []string{"Product Strategy", "Agile", "Data Analysis", "Leadership"}, Progress: 15},
	}
}
