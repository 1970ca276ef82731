// Package qa defines the fixed career question set and collects answers to
// it.
package qa

import (
	_ "embed"
	"encoding/json"
)

//go:embed questions.json
var questionsJSON []byte

// Question is one entry in the fixed, ordered career question set
type Question struct {
	Key      string `json:"key"`
	Question string `json:"question"`
}

var questions []Question

func init() {
	if err := json.Unmarshal(questionsJSON, &questions); err != nil {
		panic("qa: invalid embedded questions.json: " + err.Error())
	}
}

// Questions returns the fixed question set in presentation order
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
