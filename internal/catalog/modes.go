package catalog

import "strings"

// GameMode identifies a play mode in analytics.
type GameMode string

const (
	Exploration   GameMode = "exploration"
	Quiz          GameMode = "quiz"
	Matching      GameMode = "matching"
	Memory        GameMode = "memory"
	MathsLearning GameMode = "mathsLearning"
)

// GameModes returns the fixed mode order. Favorite-mode ties resolve to the
// earliest entry.
func GameModes() []GameMode {
	return []GameMode{Exploration, Quiz, Matching, Memory, MathsLearning}
}

// CanonicalMode maps any accepted spelling of a mode to its storage key.
// Every ingress point that receives a mode name goes through here.
func CanonicalMode(name string) (GameMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exploration":
		return Exploration, true
	case "quiz":
		return Quiz, true
	case "matching":
		return Matching, true
	case "memory":
		return Memory, true
	case "mathslearning", "maths-learning", "math-learning", "mathlearning", "maths_learning":
		return MathsLearning, true
	}
	return "", false
}

// WireName is the mode name the client sends for m.
func (m GameMode) WireName() string {
	if m == MathsLearning {
		return "maths-learning"
	}
	return string(m)
}
