// Package assessment collects one categorical answer per question in a
// fixed order and reduces the sequence to a single plurality-vote
// classification.
package assessment

import "errors"

var (
	// ErrInsufficientData is returned when a classification is
	// requested before any answer has been recorded.
	ErrInsufficientData = errors.New("no answers recorded")

	// ErrFinished is returned when an answer is submitted after the
	// last question.
	ErrFinished = errors.New("assessment is already finished")

	// ErrUnknownLabel is returned for an answer label outside the
	// dosha enumeration.
	ErrUnknownLabel = errors.New("unknown answer label")
)

// Engine is a single-pass quiz state machine. The current question
// index and the answer sequence are kept in lockstep: answering
// advances the index, retreating removes the last answer and
// decrements it.
type Engine struct {
	questions []Question
	answers   []Dosha
}

// NewEngine creates an engine over the questionnaire's fixed question
// order.
func NewEngine(q *Questionnaire) *Engine {
	return &Engine{questions: q.Questions}
}

// TotalQuestions returns the fixed question count.
func (e *Engine) TotalQuestions() int { return len(e.questions) }

// CurrentQuestionIndex returns the 0-indexed position of the next
// unanswered question. Once finished it equals TotalQuestions.
func (e *Engine) CurrentQuestionIndex() int { return len(e.answers) }

// Finished reports whether every question has been answered.
func (e *Engine) Finished() bool { return len(e.answers) == len(e.questions) }

// Answers returns a copy of the recorded answer sequence.
func (e *Engine) Answers() []Dosha {
	out := make([]Dosha, len(e.answers))
	copy(out, e.answers)
	return out
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// finished.
func (e *Engine) CurrentQuestion() *Question {
	if e.Finished() {
		return nil
	}
	return &e.questions[len(e.answers)]
}

// Answer appends a label for the current question. The recorded answer
// is visible immediately; any delay between selection and showing the
// next question is a presentation concern left to the caller.
func (e *Engine) Answer(label Dosha) error {
	if e.Finished() {
		return ErrFinished
	}
	if !validDosha(label) {
		return ErrUnknownLabel
	}
	e.answers = append(e.answers, label)
	return nil
}

// Retreat removes the last recorded answer and moves back one
// question. A no-op when nothing has been answered yet.
func (e *Engine) Retreat() {
	if len(e.answers) > 0 {
		e.answers = e.answers[:len(e.answers)-1]
	}
}

// Classification counts occurrences of each label across the recorded
// answers. The label with the strictly highest count wins; on a tie
// the winner is the first label in the fixed enumeration order, not
// the order answers arrived in. With no answers recorded it fails with
// ErrInsufficientData.
func (e *Engine) Classification() (Dosha, error) {
	if len(e.answers) == 0 {
		return "", ErrInsufficientData
	}

	counts := make(map[Dosha]int, len(Doshas))
	for _, label := range e.answers {
		counts[label]++
	}

	winner := Doshas[0]
	for _, label := range Doshas[1:] {
		if counts[label] > counts[winner] {
			winner = label
		}
	}
	return winner, nil
}

// Restart clears all answers and returns to the first question.
func (e *Engine) Restart() {
	e.answers = e.answers[:0]
}
