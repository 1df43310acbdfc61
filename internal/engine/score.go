package engine

import "github.com/brainit/fastpath/internal/catalog"

// Score sums the weights of boolean questions answered yes. Choice questions
// are informational and never contribute; missing answers contribute 0.
func Score(questions []catalog.Question, answers Answers) int {
	score := 0
	for _, q := range questions {
		if q.IsChoice() {
			continue
		}
		if answers[q.ID].IsYes() {
			score += q.EffectiveWeight()
		}
	}
	return score
}

// Evaluate scores the answers and maps the score with the default recommender.
func Evaluate(questions []catalog.Question, answers Answers) (int, Recommendation) {
	score := Score(questions, answers)
	return score, Recommend(score)
}
