package entities

// DebateTopic is a proposition participants argue over
type DebateTopic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// BuiltinTopics is the curated topic catalog offered at debate creation.
// Custom topics are accepted as well; these are just starting points.
func BuiltinTopics() []DebateTopic {
	return []DebateTopic{
		{ID: "ai-jobs", Title: "AI will create more jobs than it destroys", Description: "Debate the economic impact of artificial intelligence on employment."},
		{ID: "remote-work", Title: "Remote work is better for society than office work", Description: "Discuss the societal benefits and drawbacks of remote versus office work."},
		{ID: "social-media", Title: "Social media does more harm than good", Description: "Examine the overall impact of social media on individuals and society."},
		{ID: "electric-vehicles", Title: "Electric vehicles are the best path to reduce emissions", Description: "Evaluate electric vehicles as a solution to climate change."},
		{ID: "ai-regulation", Title: "Governments should regulate AI models heavily", Description: "Debate the role of government regulation in AI development."},
		{ID: "ubi", Title: "Universal basic income should be adopted", Description: "Discuss the feasibility and benefits of universal basic income."},
		{ID: "privacy", Title: "Privacy is more important than personalization", Description: "Weigh the trade-offs between privacy and personalized services."},
		{ID: "nuclear-energy", Title: "Nuclear energy is necessary for a clean future", Description: "Examine nuclear power as a solution to energy and climate challenges."},
		{ID: "space-exploration", Title: "Space exploration funding is worth it", Description: "Debate the value and priorities of space exploration spending."},
		{ID: "project-based-learning", Title: "Schools should replace exams with project-based evaluation", Description: "Discuss alternative assessment methods in education."},
	}
}

// TopicByID looks up a builtin topic
func TopicByID(id string) (DebateTopic, bool) {
	for _, t := range BuiltinTopics() {
		if t.ID == id {
			return t, true
		}
	}
	return DebateTopic{}, false
}
