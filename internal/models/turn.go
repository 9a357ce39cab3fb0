package models

// Turn is a completed turn. It is never modified after creation except by
// an explicit edit, which replaces it.
type Turn struct {
	// Scores are the raw entries of the turn
	Scores []int `json:"scores"`

	// Total is the sum of Scores
	Total int `json:"total"`

	// TurnNumber is 1-based and sequential per player
	TurnNumber int `json:"turnNumber"`

	// ExcessScore is the amount by which the turn overshot the target
	ExcessScore int `json:"excessScore"`

	// IsExcessTurn marks a turn that would have exceeded the target and so scored nothing
	IsExcessTurn bool `json:"isExcessTurn"`
}

// Clone returns a deep copy of the turn
func (t Turn) Clone() Turn {
	out := t
	if t.Scores != nil {
		out.Scores = append([]int{}, t.Scores...)
	}
	return out
}
