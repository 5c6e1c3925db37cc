package assistant

import "strings"

type faqEntry struct {
	Category string
	Question string
	Answer   string
}

var faqEntries = []faqEntry{
	{
		Category: "General Wellness",
		Question: "How much water should I drink daily?",
		Answer:   "Most adults should aim for 2-3 liters of water per day, but needs vary.",
	},
	{
		Category: "Common Cold",
		Question: "What are the symptoms of a common cold?",
		Answer:   "Common symptoms include runny nose, sore throat, cough, and mild fever.",
	},
	{
		Category: "First Aid",
		Question: "How do I treat a minor cut?",
		Answer:   "Clean the wound with water, apply pressure to stop bleeding, and cover with a sterile bandage.",
	},
	{
		Category: "Fever",
		Question: "When should I see a doctor for a fever?",
		Answer:   "See a doctor if fever exceeds 39.4C, lasts more than three days, or comes with severe symptoms.",
	},
	{
		Category: "Platform",
		Question: "How do I book a consultation?",
		Answer:   "Start a consultation from the home screen, describe your symptoms, and a doctor will be assigned to you.",
	},
}

// matchFAQ answers from the fixed FAQ table: substring containment in either
// direction first, then any-keyword overlap. Returns "" on no match.
func matchFAQ(question string) string {
	lowered := strings.ToLower(question)

	for _, entry := range faqEntries {
		loweredQuestion := strings.ToLower(entry.Question)
		if strings.Contains(lowered, loweredQuestion) || strings.Contains(loweredQuestion, lowered) {
			return entry.Answer
		}
	}

	questionWords := strings.Fields(lowered)
	for _, entry := range faqEntries {
		for _, keyword := range strings.Fields(strings.ToLower(entry.Question)) {
			keyword = strings.Trim(keyword, "?.,!")
			// Short function words would match almost anything.
			if len(keyword) < 4 {
				continue
			}
			for _, word := range questionWords {
				if strings.Trim(word, "?.,!") == keyword {
					return entry.Answer
				}
			}
		}
	}

	return ""
}
