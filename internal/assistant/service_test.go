package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ayursutra-server/internal/nlu"
)

func TestSendRecordsBothTurns(t *testing.T) {
	mock := nlu.NewMockClient("Drink warm water before meals.")
	svc := NewService(mock, SimulatedTranslator{}, zap.NewNop())

	reply, err := svc.Send(t.Context(), "sess-1", "Priya", "What helps digestion?", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "model", reply.Role)
	assert.Equal(t, "Drink warm water before meals.", reply.Text)

	history := svc.History("sess-1")
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "What helps digestion?", history[0].Text)
	assert.Equal(t, "model", history[1].Role)
}

func TestSendPersonalizesSystemPrompt(t *testing.T) {
	mock := nlu.NewMockClient("ok")
	svc := NewService(mock, SimulatedTranslator{}, zap.NewNop())

	_, err := svc.Send(t.Context(), "sess-1", "Priya", "hello", "en-US")
	require.NoError(t, err)

	require.Len(t, mock.Requests, 1)
	assert.Contains(t, mock.Requests[0].System, "a patient named Priya")
	assert.Contains(t, mock.Requests[0].System, "Priya's current treatment plan")
}

func TestSendTranslatesNonEnglishReply(t *testing.T) {
	mock := nlu.NewMockClient("Rest well tonight.")
	svc := NewService(mock, SimulatedTranslator{}, zap.NewNop())

	reply, err := svc.Send(t.Context(), "sess-1", "Priya", "salaah chahiye", "hi-IN")
	require.NoError(t, err)
	assert.Equal(t, "[hi] Rest well tonight.", reply.Text)
}

func TestSendFailureYieldsCannedReplyAndKeepsHistory(t *testing.T) {
	mock := nlu.NewMockClient("unused")
	svc := NewService(mock, SimulatedTranslator{}, zap.NewNop())

	_, err := svc.Send(t.Context(), "sess-1", "Priya", "first question", "en-US")
	require.NoError(t, err)

	mock.Err = &nlu.Failure{Kind: nlu.KindServer}
	reply, err := svc.Send(t.Context(), "sess-1", "Priya", "second question", "en-US")
	require.Error(t, err)
	assert.Equal(t, "I'm having trouble connecting right now. Please try again.", reply.Text)

	// The failed exchange is still recorded; earlier turns are intact.
	history := svc.History("sess-1")
	require.Len(t, history, 4)
	assert.Equal(t, "first question", history[0].Text)
	assert.Equal(t, "second question", history[2].Text)
	assert.Equal(t, reply.Text, history[3].Text)
}

func TestSendEmptyResponseIsNotAnError(t *testing.T) {
	mock := nlu.NewMockClient("")
	mock.Err = &nlu.Failure{Kind: nlu.KindEmpty}
	svc := NewService(mock, SimulatedTranslator{}, zap.NewNop())

	reply, err := svc.Send(t.Context(), "sess-1", "Priya", "hmm", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't process that.", reply.Text)
}

func TestHistoriesAreIsolatedPerSession(t *testing.T) {
	mock := nlu.NewMockClient("ok")
	svc := NewService(mock, SimulatedTranslator{}, zap.NewNop())

	_, err := svc.Send(t.Context(), "sess-a", "Priya", "hello", "en-US")
	require.NoError(t, err)

	assert.Len(t, svc.History("sess-a"), 2)
	assert.Empty(t, svc.History("sess-b"))
}

func TestSimulatedTranslator(t *testing.T) {
	tr := SimulatedTranslator{}

	out, err := tr.Translate(t.Context(), "hello", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = tr.Translate(t.Context(), "hello", "ta-IN")
	require.NoError(t, err)
	assert.Equal(t, "[ta] hello", out)
}
