package config

// PowerWeights holds how much each interaction moves an author's power.
type PowerWeights struct {
	Favorite int `json:"favorite"`
	Upvote   int `json:"upvote"`
	Downvote int `json:"downvote"`
}

// Limits for user provided collections.
type Limits struct {
	TagsPerIdea     int `json:"tagsPerIdea"`
	LinksPerProfile int `json:"linksPerProfile"`
}

// Rules drive the board's interaction bookkeeping.
type Rules struct {
	Power  PowerWeights `json:"power"`
	Limits Limits       `json:"limits"`
}

// DefaultRules mirror the board's historical constants.
func DefaultRules() Rules {
	return Rules{
		Power: PowerWeights{
			Favorite: 10,
			Upvote:   1,
			Downvote: 1,
		},
		Limits: Limits{
			TagsPerIdea:     5,
			LinksPerProfile: 5,
		},
	}
}
