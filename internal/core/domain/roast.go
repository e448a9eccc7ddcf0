package domain

import "time"

// Style is the tone category of a generated roast.
type Style string

const (
	StyleSavage  Style = "savage"
	StyleWitty   Style = "witty"
	StyleBrutal  Style = "brutal"
	StylePlayful Style = "playful"
)

// Language identifies the language a roast is written in.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageBengali Language = "bengali"
)

// ReactionType names one of the per-roast reaction counters.
type ReactionType string

const (
	ReactionFire  ReactionType = "fire"
	ReactionLaugh ReactionType = "laugh"
	ReactionCry   ReactionType = "cry"
)

// ValidReaction reports whether r is one of the known reaction counters.
func ValidReaction(r ReactionType) bool {
	switch r {
	case ReactionFire, ReactionLaugh, ReactionCry:
		return true
	}
	return false
}

// Reactions holds the per-roast reaction counters. Counters only ever grow.
type Reactions struct {
	Fire  int `json:"fire" bson:"fire"`
	Laugh int `json:"laugh" bson:"laugh"`
	Cry   int `json:"cry" bson:"cry"`
}

// Source tags where a generated roast came from.
type Source string

const (
	SourceAI     Source = "ai"
	SourceSample Source = "sample"
	SourceError  Source = "error"
)

// Roast is a single generated insult persisted to a user's history.
type Roast struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Style     string    `json:"style"`
	Language  string    `json:"language"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	UserInput string    `json:"userInput,omitempty"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	Reactions Reactions `json:"reactions"`
}
