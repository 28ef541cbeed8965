package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"storabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply     string
	err       error
	calls     int
	lastTurns []models.Turn
}

func (f *fakeClient) Complete(ctx context.Context, systemPrompt string, turns []models.Turn) (string, error) {
	f.calls++
	f.lastTurns = turns
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type memoryStore struct {
	sessions map[string][]models.Turn
	getErr   error
	setErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string][]models.Turn)}
}

func (m *memoryStore) Get(ctx context.Context, sessionID string) ([]models.Turn, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.sessions[sessionID], nil
}

func (m *memoryStore) Set(ctx context.Context, sessionID string, turns []models.Turn) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sessions[sessionID] = turns
	return nil
}

func (m *memoryStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func TestRespondHappyPath(t *testing.T) {
	client := &fakeClient{reply: "We have 10x10 units available."}
	store := newMemoryStore()
	svc := NewDefaultAssistantService(client, store)

	reply := svc.Respond(context.Background(), "s1", "What unit sizes do you have?")

	assert.Equal(t, "We have 10x10 units available.", reply)
	require.Len(t, client.lastTurns, 1)
	assert.Equal(t, models.RoleUser, client.lastTurns[0].Role)

	saved := store.sessions["s1"]
	require.Len(t, saved, 2)
	assert.Equal(t, models.RoleAssistant, saved[1].Role)
	assert.Equal(t, reply, saved[1].Content)
}

func TestRespondFallbackOnProviderFault(t *testing.T) {
	client := &fakeClient{err: errors.New("rate limited")}
	store := newMemoryStore()
	store.sessions["s1"] = []models.Turn{{Role: models.RoleUser, Content: "hi"}}
	svc := NewDefaultAssistantService(client, store)

	reply := svc.Respond(context.Background(), "s1", "anyone there?")

	assert.Equal(t, FallbackReply, reply)
	assert.Equal(t, 1, client.calls, "no retry on provider fault")
	// Failed exchanges are not persisted.
	assert.Len(t, store.sessions["s1"], 1)
}

func TestRespondStartsFreshOnStoreFault(t *testing.T) {
	client := &fakeClient{reply: "hello"}
	store := newMemoryStore()
	store.getErr = errors.New("redis down")
	svc := NewDefaultAssistantService(client, store)

	reply := svc.Respond(context.Background(), "s1", "hi")

	assert.Equal(t, "hello", reply)
	require.Len(t, client.lastTurns, 1, "lost context degrades to a fresh conversation")
}

func TestRespondBoundsContext(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	store := newMemoryStore()
	svc := NewDefaultAssistantService(client, store)

	for i := 0; i < 12; i++ {
		svc.Respond(context.Background(), "s1", fmt.Sprintf("message %d", i))
	}

	saved := store.sessions["s1"]
	require.Len(t, saved, maxContextTurns)
	// The oldest turns are discarded first.
	assert.Equal(t, "message 7", saved[0].Content)
	assert.Equal(t, models.RoleUser, saved[0].Role)
}

func TestTrimTurns(t *testing.T) {
	turns := make([]models.Turn, 4)
	assert.Len(t, TrimTurns(turns, 10), 4)
	assert.Len(t, TrimTurns(make([]models.Turn, 15), 10), 10)

	tagged := []models.Turn{
		{Content: "a"}, {Content: "b"}, {Content: "c"},
	}
	trimmed := TrimTurns(tagged, 2)
	assert.Equal(t, "b", trimmed[0].Content)
	assert.Equal(t, "c", trimmed[1].Content)
}
