package game

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	maxLevel       = 15
	levelsPerPart  = 5
	pointsPerLevel = 10
)

// NoQuestion is printed for a level without a registered question.
const NoQuestion = "No question available."

var questions = map[int]string{
	1:  "What is AI short for?",
	2:  "What does ML stand for?",
	3:  "What is a neural network?",
	4:  "What is supervised learning?",
	5:  "What is unsupervised learning?",
	6:  "What is reinforcement learning?",
	7:  "What is deep learning?",
	8:  "What is a chatbot?",
	9:  "What is natural language processing?",
	10: "What is computer vision?",
	11: "What is a dataset?",
	12: "What is overfitting?",
	13: "What is bias in AI?",
	14: "What is ethics in AI?",
	15: "What is the future of AI?",
}

var answers = map[int]string{
	1:  "artificial intelligence",
	2:  "machine learning",
	3:  "a network of algorithms modeled after the human brain",
	4:  "learning from labeled data",
	5:  "learning from unlabeled data",
	6:  "learning through trial and error",
	7:  "a subset of machine learning using deep neural networks",
	8:  "a program that simulates conversation",
	9:  "the ability of computers to understand human language",
	10: "the field of AI that trains computers to interpret visual information",
	11: "a collection of data used for training models",
	12: "when a model performs well on training data but poorly on new data",
	13: "prejudice in data or algorithms",
	14: "the study of moral issues in AI development",
	15: "integration with everyday life and advanced capabilities",
}

// Rank messages, picked by the level reached when the game ends.
const (
	RankSoldier = "> Good job, little soldier."
	RankMaster  = "> Now you are a master in the AI system."
	RankHacker  = "> Are you a hacker?"
)

var ranks = []struct {
	upTo    int
	message string
}{
	{5, RankSoldier},
	{10, RankMaster},
}

// Question returns the prompt for level, or NoQuestion.
func Question(level int) string {
	if q, ok := questions[level]; ok {
		return q
	}
	return NoQuestion
}

// Answer returns the reference phrase for level.
func Answer(level int) (string, bool) {
	a, ok := answers[level]
	return a, ok
}

// PartFor groups levels into parts of five. Level 0 (not started) is part 0.
func PartFor(level int) int {
	if level < 1 {
		return 0
	}
	return (level-1)/levelsPerPart + 1
}

// Rank picks the ending message for the level reached.
func Rank(level int) string {
	for _, r := range ranks {
		if level <= r.upTo {
			return r.message
		}
	}
	return RankHacker
}

// fold normalizes text for caseless comparison. A Caser keeps state, so
// each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Score reports whether input contains the reference phrase for level,
// ignoring case. Extra words around the phrase are accepted.
func Score(level int, input string) bool {
	ref, ok := Answer(level)
	if !ok {
		return false
	}
	return strings.Contains(fold(input), fold(ref))
}
