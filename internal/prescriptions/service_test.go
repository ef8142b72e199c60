package prescriptions

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ayursutra-server/internal/nlu"
)

const validReply = `{"patientName":"Anita Kumar","patientAge":41,"therapies":[{"name":"Nasya","duration":"5 days"}],"dosageAndTiming":[{"period":"Morning","instruction":"Before breakfast"}]}`

func TestAnalyzeParsesStructuredReply(t *testing.T) {
	svc := NewService(nlu.NewMockClient(validReply), zap.NewNop(), nil)

	analysis, err := svc.Analyze(t.Context(), []byte{0x1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Anita Kumar", analysis.PatientName)
	require.NotNil(t, analysis.PatientAge)
	assert.Equal(t, 41, *analysis.PatientAge)
	require.Len(t, analysis.Therapies, 1)
	assert.Equal(t, "Nasya", analysis.Therapies[0].Name)

	recent := svc.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "Anita Kumar", recent[0].PatientName)
}

func TestAnalyzeHandlesFencedReply(t *testing.T) {
	svc := NewService(nlu.NewMockClient("```json\n"+validReply+"\n```"), zap.NewNop(), nil)

	analysis, err := svc.Analyze(t.Context(), []byte{0x1}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Anita Kumar", analysis.PatientName)
}

func TestParseFailureLeavesRecentUntouched(t *testing.T) {
	seed := Seed()
	mock := nlu.NewMockClient("sorry, I cannot read this prescription")
	svc := NewService(mock, zap.NewNop(), seed)

	_, err := svc.Analyze(t.Context(), []byte{0x1}, "image/png")
	require.Error(t, err)
	assert.Equal(t, nlu.KindParse, nlu.KindOf(err))

	// Prior successful results stay exactly as they were.
	recent := svc.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "Priya Sharma", recent[0].PatientName)
}

func TestUpstreamFailureKindPropagates(t *testing.T) {
	mock := nlu.NewMockClient("")
	mock.Err = &nlu.Failure{Kind: nlu.KindEmpty}
	svc := NewService(mock, zap.NewNop(), nil)

	_, err := svc.Analyze(t.Context(), []byte{0x1}, "image/png")
	require.Error(t, err)
	assert.Equal(t, nlu.KindEmpty, nlu.KindOf(err))
	assert.Empty(t, svc.Recent())
}

// blockingClient parks the first request until released, so a test can
// interleave a newer request ahead of it.
type blockingClient struct {
	started chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (b *blockingClient) GenerateText(_ context.Context, _ nlu.Request) (string, error) {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.mu.Unlock()

	if first {
		close(b.started)
		<-b.release
	}
	return validReply, nil
}

func TestSupersededResponseIsDiscarded(t *testing.T) {
	client := &blockingClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(client, zap.NewNop(), nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Analyze(context.Background(), []byte{0x1}, "image/png")
		firstDone <- err
	}()

	// Wait for the first request to reach the client, then let a
	// second one start and finish ahead of it.
	<-client.started
	_, err := svc.Analyze(context.Background(), []byte{0x2}, "image/png")
	require.NoError(t, err)

	close(client.release)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)

	// Only the newer result was recorded.
	assert.Len(t, svc.Recent(), 1)
}
