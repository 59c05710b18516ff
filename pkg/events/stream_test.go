package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier serves a fixed backlog, simulating the stored stream.
type fakeQuerier struct {
	backlog []*Event
}

func (f *fakeQuerier) GetEventsSince(_ context.Context, crID string, afterSeq int64, limit int) ([]*Event, error) {
	var out []*Event
	for _, e := range f.backlog {
		if e.CRID == crID && e.SequenceID > afterSeq {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func evt(crID string, seq int64, typ EventType) *Event {
	return &Event{SequenceID: seq, CRID: crID, Type: typ, Data: map[string]any{}, Timestamp: time.Now()}
}

func broadcast(t *testing.T, b *Broker, e *Event) {
	t.Helper()
	raw, err := json.Marshal(e)
	require.NoError(t, err)
	b.Broadcast(CRChannel(e.CRID), raw)
}

func collect(t *testing.T, ch <-chan *Event, n int) []*Event {
	t.Helper()
	var out []*Event
	timeout := time.After(2 * time.Second)
	for len(out) < n {
		select {
		case e, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, e)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func TestStreamFromReplayThenLiveNoGapNoDuplicate(t *testing.T) {
	const crID = "cr-11111111"
	q := &fakeQuerier{backlog: []*Event{
		evt(crID, 1, TypePipelineStarted),
		evt(crID, 2, TypeStageEntered),
		evt(crID, 3, TypeStageCompleted),
	}}
	b := NewBroker(q, time.Second)
	s := NewStreamer(b, q)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.StreamFrom(ctx, crID, 1)
	require.NoError(t, err)

	// A live event that duplicates the replay tail, plus genuinely new ones.
	broadcast(t, b, evt(crID, 3, TypeStageCompleted))
	broadcast(t, b, evt(crID, 4, TypeStageEntered))
	broadcast(t, b, evt(crID, 5, TypePipelineCompleted))

	got := collect(t, ch, 4)
	var seqs []int64
	for _, e := range got {
		seqs = append(seqs, e.SequenceID)
	}
	assert.Equal(t, []int64{2, 3, 4, 5}, seqs)

	// Terminal event closed the stream.
	_, open := <-ch
	assert.False(t, open)
}

func TestStreamFromClosesOnTerminalInReplay(t *testing.T) {
	const crID = "cr-22222222"
	q := &fakeQuerier{backlog: []*Event{
		evt(crID, 1, TypePipelineStarted),
		evt(crID, 2, TypePipelinePaused),
		evt(crID, 3, TypePipelineResumed), // after resume; not part of this stream
	}}
	b := NewBroker(q, time.Second)
	s := NewStreamer(b, q)

	ch, err := s.StreamFrom(context.Background(), crID, 0)
	require.NoError(t, err)

	got := collect(t, ch, 2)
	assert.Equal(t, TypePipelinePaused, got[1].Type)
	_, open := <-ch
	assert.False(t, open)
}

func TestStreamFromFiltersEventsOfOtherRuns(t *testing.T) {
	const crID = "cr-33333333"
	q := &fakeQuerier{}
	b := NewBroker(q, time.Second)
	s := NewStreamer(b, q)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.StreamFrom(ctx, crID, 0)
	require.NoError(t, err)

	broadcast(t, b, evt("cr-99999999", 1, TypeStageEntered))
	broadcast(t, b, evt(crID, 2, TypeStageEntered))

	got := collect(t, ch, 1)
	assert.Equal(t, crID, got[0].CRID)
	assert.Equal(t, int64(2), got[0].SequenceID)
}

func TestBrokerSubscribeCancelIdempotentCleanup(t *testing.T) {
	b := NewBroker(nil, time.Second)
	ch, cancel, err := b.Subscribe(context.Background(), "cr-44444444")
	require.NoError(t, err)
	cancel()
	_, open := <-ch
	assert.False(t, open)
	// A second cancel must not panic.
	cancel()
}

func TestBuildNotifyEnvelopeTruncatesOversizedData(t *testing.T) {
	big := make([]byte, 9000)
	for i := range big {
		big[i] = 'x'
	}
	e := evt("cr-55555555", 9, TypeAgentOutput)
	e.Data = map[string]any{"text": string(big)}

	envelope, err := buildNotifyEnvelope(e)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(envelope), 7900)

	decoded, err := DecodeEvent([]byte(envelope))
	require.NoError(t, err)
	assert.True(t, decoded.Truncated)
	assert.Equal(t, int64(9), decoded.SequenceID)
	assert.Empty(t, decoded.Data)
}
