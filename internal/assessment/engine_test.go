package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestionnaire(n int) *Questionnaire {
	q := &Questionnaire{}
	for i := 1; i <= n; i++ {
		q.Questions = append(q.Questions, Question{
			ID:       i,
			Question: "question",
			Options: []Option{
				{Text: "a", Dosha: Vata},
				{Text: "b", Dosha: Pitta},
				{Text: "c", Dosha: Kapha},
			},
		})
	}
	return q
}

func TestAnswerAdvancesIndexInLockstep(t *testing.T) {
	e := NewEngine(testQuestionnaire(3))
	assert.Equal(t, 0, e.CurrentQuestionIndex())

	require.NoError(t, e.Answer(Vata))
	assert.Equal(t, 1, e.CurrentQuestionIndex())
	assert.False(t, e.Finished())

	require.NoError(t, e.Answer(Pitta))
	require.NoError(t, e.Answer(Kapha))
	assert.True(t, e.Finished())
	assert.Nil(t, e.CurrentQuestion())

	assert.ErrorIs(t, e.Answer(Vata), ErrFinished)
}

func TestAnswerRejectsUnknownLabel(t *testing.T) {
	e := NewEngine(testQuestionnaire(1))
	assert.ErrorIs(t, e.Answer("tridosha"), ErrUnknownLabel)
	assert.Equal(t, 0, e.CurrentQuestionIndex())
}

func TestClassificationPlurality(t *testing.T) {
	e := NewEngine(testQuestionnaire(3))
	require.NoError(t, e.Answer(Pitta))
	require.NoError(t, e.Answer(Pitta))
	require.NoError(t, e.Answer(Vata))

	result, err := e.Classification()
	require.NoError(t, err)
	assert.Equal(t, Pitta, result)
}

func TestClassificationTieBreaksByEnumerationOrder(t *testing.T) {
	e := NewEngine(testQuestionnaire(2))

	// One vata, one pitta: the tie resolves to the first label in the
	// fixed enumeration order, not the order the answers arrived in.
	require.NoError(t, e.Answer(Vata))
	require.NoError(t, e.Answer(Pitta))

	result, err := e.Classification()
	require.NoError(t, err)
	assert.Equal(t, Vata, result)
}

func TestClassificationTieBreakIgnoresInputOrder(t *testing.T) {
	e := NewEngine(testQuestionnaire(2))
	require.NoError(t, e.Answer(Kapha))
	require.NoError(t, e.Answer(Vata))

	result, err := e.Classification()
	require.NoError(t, err)
	assert.Equal(t, Vata, result)
}

func TestClassificationWithoutAnswersFails(t *testing.T) {
	e := NewEngine(testQuestionnaire(3))
	_, err := e.Classification()
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRetreatTruncatesLastAnswer(t *testing.T) {
	e := NewEngine(testQuestionnaire(5))
	require.NoError(t, e.Answer(Vata))
	require.NoError(t, e.Answer(Pitta))
	require.NoError(t, e.Answer(Kapha))

	e.Retreat()
	assert.Equal(t, []Dosha{Vata, Pitta}, e.Answers())
	assert.Equal(t, 2, e.CurrentQuestionIndex())

	// The next answer overwrites what would have been the third.
	require.NoError(t, e.Answer(Vata))
	assert.Equal(t, []Dosha{Vata, Pitta, Vata}, e.Answers())
}

func TestRetreatAtStartIsNoOp(t *testing.T) {
	e := NewEngine(testQuestionnaire(2))
	e.Retreat()
	assert.Equal(t, 0, e.CurrentQuestionIndex())
}

func TestRestartClearsEverything(t *testing.T) {
	e := NewEngine(testQuestionnaire(2))
	require.NoError(t, e.Answer(Vata))
	require.NoError(t, e.Answer(Vata))
	require.True(t, e.Finished())

	e.Restart()
	assert.Equal(t, 0, e.CurrentQuestionIndex())
	assert.False(t, e.Finished())
	assert.Empty(t, e.Answers())
}

func TestLoadQuestionnaire(t *testing.T) {
	q, err := LoadQuestionnaire("../../config/questions.yaml")
	require.NoError(t, err)
	assert.Len(t, q.Questions, 5)
	for _, question := range q.Questions {
		assert.Len(t, question.Options, 3)
	}
}

func TestLoadQuestionnaireMissingFile(t *testing.T) {
	_, err := LoadQuestionnaire("does-not-exist.yaml")
	assert.Error(t, err)
}
