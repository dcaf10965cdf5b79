package catalog

import "holistic-daily/internal/model"

// Default returns the built-in content.
func Default() *Catalog {
	return &Catalog{
		Tasks: map[model.Category][]Entry{
			model.CategoryBelly: {
				{
					Title:       "Try a Mediterranean breakfast bowl",
					Description: "Start your day with a nutritious Mediterranean breakfast bowl featuring Greek yogurt, honey, fresh berries, and a sprinkle of nuts and seeds for protein and healthy fats.",
					ImageURL:    "/placeholder.svg?height=200&width=400&text=Mediterranean+Bowl",
					LinkURL:     "https://example.com/recipe/mediterranean-bowl",
				},
				{
					Title:       "Make a colorful lunch salad",
					Description: "Prepare a vibrant salad with at least 5 different colored vegetables, a lean protein source, and a simple olive oil and lemon dressing for a nutrient-dense lunch.",
					ImageURL:    "/placeholder.svg?height=200&width=400&text=Colorful+Salad",
					LinkURL:     "https://example.com/recipe/colorful-salad",
				},
			},
			model.CategoryBody: {
				{
					Title:       "15-minute mobility routine",
					Description: "Take a short break for this 15-minute mobility routine that focuses on joint health and flexibility. Perfect for counteracting the effects of sitting at a desk.",
					ImageURL:    "/placeholder.svg?height=200&width=400&text=Mobility+Routine",
					LinkURL:     "https://example.com/workout/mobility-routine",
				},
				{
					Title:       "Take a 20-minute nature walk",
					Description: "Step outside for a brief nature walk. Pay attention to your surroundings, breathe deeply, and appreciate the natural environment as you move your body.",
					ImageURL:    "/placeholder.svg?height=200&width=400&text=Nature+Walk",
					LinkURL:     "https://example.com/workout/nature-walk",
				},
			},
			model.CategoryBrain: {
				{
					Title:       "Listen to a thought-provoking podcast",
					Description: "Expand your mind with this 20-minute podcast episode about creative problem-solving and how constraints can actually boost innovation in unexpected ways.",
					ImageURL:    "/placeholder.svg?height=200&width=400&text=Podcast",
					LinkURL:     "https://example.com/podcast/creative-constraints",
				},
				{
					Title:       "Spend 10 minutes on a puzzle",
					Description: "Challenge your brain with a short puzzle session. Try a crossword, sudoku, or another brain game that makes you think differently.",
					ImageURL:    "/placeholder.svg?height=200&width=400&text=Brain+Puzzle",
					LinkURL:     "https://example.com/brain/puzzles",
				},
			},
		},
	}
}
