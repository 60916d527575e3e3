package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/progress"
	"github.com/abhisek/aigua/internal/quiz"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/store"
)

type stubGateway struct {
	answer string
	// block, when set, holds AskQuestion until it is closed.
	block chan struct{}
}

const cancelledAnswer = "cancel·lat"

func (g *stubGateway) AskQuestion(ctx context.Context, _ string) string {
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return cancelledAnswer
		}
	}
	return g.answer
}

func (g *stubGateway) GenerateQuiz(context.Context, quiz.Difficulty) []quiz.Question {
	return []quiz.Question{
		{Question: "Què forma els núvols?", Options: []string{"Fum", "Gotetes", "Sorra"}, CorrectAnswerIndex: 1},
		{Question: "D'on ve l'energia?", Options: []string{"Sol", "Lluna", "Vent"}, CorrectAnswerIndex: 0},
	}
}

func newTestServer(t *testing.T, gw session.Gateway) (*httptest.Server, *Server) {
	t.Helper()
	s := New(":0", Deps{Gateway: gw}, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, s
}

func createSession(t *testing.T, ts *httptest.Server) sessionResponse {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out sessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func postEvent(t *testing.T, ts *httptest.Server, id, body string) (int, session.Snapshot) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/sessions/"+id+"/events", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap session.Snapshot
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	}
	return resp.StatusCode, snap
}

func TestCreateAndGetSession(t *testing.T) {
	ts, s := newTestServer(t, &stubGateway{})

	created := createSession(t, ts)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []cycle.Stage{cycle.Collection}, created.State.Unlocked)
	assert.Equal(t, session.ViewDiagram, created.State.View)
	assert.Equal(t, 1, s.sessions.Len())

	resp, err := http.Get(ts.URL + "/api/sessions/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snap session.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, created.ID, snap.ID)
}

func TestUnknownSession(t *testing.T) {
	ts, _ := newTestServer(t, &stubGateway{})

	resp, err := http.Get(ts.URL + "/api/sessions/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	code, _ := postEvent(t, ts, "nope", `{"type":"quiz-advance"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStageEvents(t *testing.T) {
	ts, _ := newTestServer(t, &stubGateway{})
	id := createSession(t, ts).ID

	code, snap := postEvent(t, ts, id, `{"type":"stage-selected","stage":"COLLECTION"}`)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, cycle.Collection, snap.Detail.Stage)

	code, snap = postEvent(t, ts, id, `{"type":"stage-detail-dismissed","stage":"COLLECTION"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, snap.Detail)
	assert.Equal(t, []cycle.Stage{cycle.Collection, cycle.Evaporation}, snap.Unlocked)
}

func TestQuizOverHTTP(t *testing.T) {
	ts, _ := newTestServer(t, &stubGateway{})
	id := createSession(t, ts).ID

	_, snap := postEvent(t, ts, id, `{"type":"quiz-difficulty-chosen","difficulty":"easy"}`)
	require.Equal(t, quiz.PhaseAnswering, snap.Quiz.Phase)
	assert.Len(t, snap.Quiz.Questions, 2)

	postEvent(t, ts, id, `{"type":"quiz-answer-submitted","index":1}`)
	postEvent(t, ts, id, `{"type":"quiz-advance"}`)
	postEvent(t, ts, id, `{"type":"quiz-answer-submitted","index":2}`)
	_, snap = postEvent(t, ts, id, `{"type":"quiz-advance"}`)

	assert.Equal(t, quiz.PhaseFinished, snap.Quiz.Phase)
	assert.Equal(t, 50, snap.Quiz.Percentage)
	assert.True(t, snap.HasBadge(progress.BadgeQuizMaster))
}

func TestMalformedEvents(t *testing.T) {
	ts, _ := newTestServer(t, &stubGateway{})
	id := createSession(t, ts).ID

	for _, body := range []string{
		`{`,
		`{"type":"teleport"}`,
		`{"type":"quiz-loaded","questions":[]}`,
		`{"type":"stage-selected","stage":"SUBLIMATION"}`,
	} {
		code, _ := postEvent(t, ts, id, body)
		assert.Equal(t, http.StatusBadRequest, code, body)
	}

	code, _ := postEvent(t, ts, id, `{"type":"ask-submitted","question":"`+strings.Repeat("a", maxEventBytes)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
}

func TestAskLoadingVisibleToReaders(t *testing.T) {
	gw := &stubGateway{answer: "Perquè reflecteixen la llum.", block: make(chan struct{})}
	ts, _ := newTestServer(t, gw)
	id := createSession(t, ts).ID

	var wg sync.WaitGroup
	var final session.Snapshot
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, final = postEvent(t, ts, id, `{"type":"ask-submitted","question":"Per què els núvols són blancs?"}`)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/api/sessions/" + id)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var snap session.Snapshot
		if json.NewDecoder(resp.Body).Decode(&snap) != nil {
			return false
		}
		return snap.Ask.Loading
	}, 2*time.Second, 10*time.Millisecond)

	close(gw.block)
	wg.Wait()

	assert.False(t, final.Ask.Loading)
	assert.Equal(t, "Perquè reflecteixen la llum.", final.Ask.Answer)
	assert.Equal(t, 1, final.QuestionsAsked)
}

func TestAskSurvivesClientDisconnect(t *testing.T) {
	gw := &stubGateway{answer: "Perquè reflecteixen la llum.", block: make(chan struct{})}
	ts, _ := newTestServer(t, gw)
	id := createSession(t, ts).ID

	client := &http.Client{Timeout: 50 * time.Millisecond}
	resp, err := client.Post(ts.URL+"/api/sessions/"+id+"/events", "application/json",
		strings.NewReader(`{"type":"ask-submitted","question":"Per què els núvols són blancs?"}`))
	if err == nil {
		resp.Body.Close()
	}
	require.Error(t, err)

	close(gw.block)

	var snap session.Snapshot
	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/api/sessions/" + id)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		if json.NewDecoder(resp.Body).Decode(&snap) != nil {
			return false
		}
		return snap.Ask.Answer != ""
	}, 2*time.Second, 10*time.Millisecond)

	assert.False(t, snap.Ask.Loading)
	assert.Equal(t, "Perquè reflecteixen la llum.", snap.Ask.Answer)
	assert.Equal(t, 1, snap.QuestionsAsked)
}

func TestDeleteSession(t *testing.T) {
	ts, s := newTestServer(t, &stubGateway{})
	id := createSession(t, ts).ID

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+id, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, s.sessions.Len())

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStagesEndpoint(t *testing.T) {
	ts, _ := newTestServer(t, &stubGateway{})

	resp, err := http.Get(ts.URL + "/api/stages")
	require.NoError(t, err)
	defer resp.Body.Close()

	var stages []stageInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stages))
	require.Len(t, stages, 4)
	assert.Equal(t, cycle.Collection, stages[0].Stage)
	assert.NotEmpty(t, stages[0].Title)
}

func TestHealth(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	h := handleHealth(zap.NewNop(), st.DB())
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sqlite":{"status":"ok"}}`, rec.Body.String())

	st.Close()
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthWithoutDB(t *testing.T) {
	rec := httptest.NewRecorder()
	handleHealth(zap.NewNop(), nil)(rec, httptest.NewRequest(http.MethodGet, "/healthz", bytes.NewReader(nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
