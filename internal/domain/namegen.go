package domain

import "math/rand"

// Word lists for generated project names.
var (
	Adjectives = []string{
		"Cosmic", "Swift", "Brave", "Quiet", "Bold",
		"Wild", "Gentle", "Fierce", "Clever", "Nimble",
		"Radiant", "Silent", "Mighty", "Mystic", "Noble",
		"Vivid", "Ancient", "Daring", "Golden", "Silver",
	}
	Nouns = []string{
		"Penguin", "Thunder", "Phoenix", "Falcon", "Panda",
		"Tiger", "Orbit", "Comet", "Wave", "Mountain",
		"River", "Forest", "Dragon", "Wolf", "Owl",
		"Spark", "Storm", "Aurora", "Crystal", "Shadow",
	}
)

// RandomProjectName draws an "Adjective Noun" name from the word lists.
// Both words are drawn independently and uniformly from r.
func RandomProjectName(r *rand.Rand) string {
	return Adjectives[r.Intn(len(Adjectives))] + " " + Nouns[r.Intn(len(Nouns))]
}

// RandomColor draws a palette color uniformly from r.
func RandomColor(r *rand.Rand) string {
	return Colors[r.Intn(len(Colors))]
}
