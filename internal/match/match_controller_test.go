package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RonakJoshi-17/crickboard/internal/team"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMatchRepo struct {
	matches map[uint]*Match
	nextID  uint
	updates int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[uint]*Match), nextID: 1}
}

func (r *fakeMatchRepo) CreateMatch(m *Match) error {
	m.ID = r.nextID
	r.nextID++
	r.matches[m.ID] = m
	return nil
}

func (r *fakeMatchRepo) GetMatchByID(id uint) (*Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (r *fakeMatchRepo) GetMatches() ([]Match, error) {
	out := make([]Match, 0, len(r.matches))
	for id := uint(1); id < r.nextID; id++ {
		if m, ok := r.matches[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) GetMatchesPaginated(page, pageSize int) ([]Match, int64, error) {
	all, _ := r.GetMatches()
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []Match{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeMatchRepo) UpdateMatch(m *Match) error {
	r.matches[m.ID] = m
	r.updates++
	return nil
}

type fakeTeamRepo struct {
	teams map[uint]*team.Team
}

func (r *fakeTeamRepo) GetTeamByID(id uint) (*team.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTeamRepo) CreateTeam(*team.Team) error    { return nil }
func (r *fakeTeamRepo) GetTeams() ([]team.Team, error) { return nil, nil }
func (r *fakeTeamRepo) UpdateTeam(*team.Team) error    { return nil }
func (r *fakeTeamRepo) DeleteTeam(uint) error          { return nil }
func (r *fakeTeamRepo) AddPlayer(*team.Player) error   { return nil }
func (r *fakeTeamRepo) RemovePlayer(uint) error        { return nil }

type fakeNotifier struct {
	updated  []uint
	allCalls int
}

func (n *fakeNotifier) ScoreUpdate(matchID uint, match interface{}) {
	n.updated = append(n.updated, matchID)
}

func (n *fakeNotifier) ScoreUpdateAll(matches interface{}) {
	n.allCalls++
}

type controllerFixture struct {
	router   *gin.Engine
	repo     *fakeMatchRepo
	notifier *fakeNotifier
}

func newControllerFixture() *controllerFixture {
	repo := newFakeMatchRepo()
	teams := &fakeTeamRepo{teams: map[uint]*team.Team{
		1: {Name: "Falcons", Players: []team.Player{{Name: "Asha"}, {Name: "Bela"}, {Name: "Chand"}}},
		2: {Name: "Tigers", Players: []team.Player{{Name: "Ravi"}, {Name: "Sanju"}, {Name: "Tarun"}}},
	}}
	notifier := &fakeNotifier{}
	controller := NewMatchController(repo, teams, notifier)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/matches", controller.GetMatches)
	api.GET("/matches/:id", controller.GetMatchByID)
	api.POST("/matches", controller.CreateMatch)
	api.POST("/matches/reset-all", controller.ResetAllMatches)
	api.PATCH("/matches/:id", controller.DecideBattingTeam)
	api.POST("/matches/:id/players", controller.SetPlayers)
	api.POST("/matches/:id/deliveries", controller.RecordDelivery)
	api.DELETE("/matches/:id/ball", controller.UndoLastBall)
	api.POST("/matches/:id/reset", controller.ResetMatch)

	return &controllerFixture{router: router, repo: repo, notifier: notifier}
}

// seedLiveMatch stores a match that is mid-innings and ready for deliveries.
func (f *controllerFixture) seedLiveMatch(t *testing.T) *Match {
	t.Helper()
	m := newLiveMatch(t)
	require.NoError(t, f.repo.CreateMatch(m))
	return m
}

func (f *controllerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateMatch(t *testing.T) {
	t.Run("schedules a fresh match", func(t *testing.T) {
		f := newControllerFixture()
		rec := f.do(t, http.MethodPost, "/api/matches", gin.H{
			"team1_id": 1, "team2_id": 2, "overs": 10,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		stored := f.repo.matches[1]
		require.NotNil(t, stored)
		assert.Equal(t, StatusScheduled, stored.Status)
		assert.Equal(t, 10, stored.Overs)
		assert.Empty(t, stored.Score.Team1.Players)
		assert.Empty(t, stored.BallByBall)
		assert.Nil(t, stored.TossTeamID)
	})

	t.Run("unknown team is a 404", func(t *testing.T) {
		f := newControllerFixture()
		rec := f.do(t, http.MethodPost, "/api/matches", gin.H{
			"team1_id": 1, "team2_id": 99, "overs": 10,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("a team cannot play itself", func(t *testing.T) {
		f := newControllerFixture()
		rec := f.do(t, http.MethodPost, "/api/matches", gin.H{
			"team1_id": 1, "team2_id": 1, "overs": 10,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overs is required", func(t *testing.T) {
		f := newControllerFixture()
		rec := f.do(t, http.MethodPost, "/api/matches", gin.H{
			"team1_id": 1, "team2_id": 2,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetMatchesPagination(t *testing.T) {
	f := newControllerFixture()
	for i := 0; i < 3; i++ {
		f.seedLiveMatch(t)
	}

	rec := f.do(t, http.MethodGet, "/api/matches?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Status     string  `json:"status"`
		Data       []Match `json:"data"`
		Pagination struct {
			TotalItems  int64 `json:"total_items"`
			TotalPages  int   `json:"total_pages"`
			CurrentPage int   `json:"current_page"`
			HasNextPage bool  `json:"has_next_page"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(3), body.Pagination.TotalItems)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)

	rec = f.do(t, http.MethodGet, "/api/matches?page=2&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)

	// Garbage paging input falls back to the defaults.
	rec = f.do(t, http.MethodGet, "/api/matches?page=zero&limit=-4", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMatchByID(t *testing.T) {
	f := newControllerFixture()
	m := f.seedLiveMatch(t)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/api/matches/%d", m.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/matches/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/matches/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecideBattingTeamEndpoint(t *testing.T) {
	f := newControllerFixture()
	m := newLiveMatch(t)
	m.CurrentBattingTeam = ""
	m.TossTeamID = nil
	m.Status = StatusScheduled
	require.NoError(t, f.repo.CreateMatch(m))

	rec := f.do(t, http.MethodPatch, fmt.Sprintf("/api/matches/%d", m.ID), gin.H{
		"currentBattingTeam": "team2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, StatusInProgress, m.Status)
	assert.Equal(t, []uint{m.ID}, f.notifier.updated)

	rec = f.do(t, http.MethodPatch, fmt.Sprintf("/api/matches/%d", m.ID), gin.H{
		"currentBattingTeam": "team1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, f.notifier.updated, 1, "a rejected toss is not broadcast")
}

func TestSetPlayersEndpoint(t *testing.T) {
	f := newControllerFixture()
	m := f.seedLiveMatch(t)

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/players", m.ID), gin.H{
		"striker": "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, f.notifier.updated)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/players", m.ID), gin.H{
		"striker": "Chand",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Chand", m.CurrentBatsmen.Striker.Name)
	assert.Len(t, f.notifier.updated, 1)
}

func TestRecordDeliveryEndpoint(t *testing.T) {
	f := newControllerFixture()
	m := f.seedLiveMatch(t)

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/deliveries", m.ID), gin.H{
		"event": "4",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 4, m.Score.Team1.Runs)
	assert.Equal(t, 1, f.repo.updates)
	assert.Equal(t, []uint{m.ID}, f.notifier.updated)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/deliveries", m.ID), gin.H{
		"event": "7",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, f.repo.updates, "a rejected ball is not persisted")

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/deliveries", m.ID), gin.H{
		"event": "Wicket",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "wicket without a type")
}

func TestUndoLastBallEndpoint(t *testing.T) {
	f := newControllerFixture()
	m := f.seedLiveMatch(t)

	rec := f.do(t, http.MethodDelete, fmt.Sprintf("/api/matches/%d/ball", m.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "nothing recorded yet")

	f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/deliveries", m.ID), gin.H{"event": "6"})
	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/api/matches/%d/ball", m.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 0, m.Score.Team1.Runs)
	assert.Empty(t, m.BallByBall)
}

func TestResetEndpoints(t *testing.T) {
	f := newControllerFixture()
	m := f.seedLiveMatch(t)
	f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/deliveries", m.ID), gin.H{"event": "6"})

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/reset", m.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, StatusScheduled, m.Status)
	assert.Equal(t, 0, m.Score.Team1.Runs)
	assert.Equal(t, TeamOneKey, m.CurrentBattingTeam, "toss decision survives")

	second := newLiveMatch(t)
	require.NoError(t, f.repo.CreateMatch(second))
	f.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%d/deliveries", second.ID), gin.H{"event": "4"})

	rec = f.do(t, http.MethodPost, "/api/matches/reset-all", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, f.notifier.allCalls)
	for _, stored := range f.repo.matches {
		assert.Equal(t, StatusScheduled, stored.Status)
		assert.Equal(t, 0, stored.Score.Team1.Runs)
	}
}
