package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/models"
	"ac_learner/internal/service"

	"github.com/gin-gonic/gin"
)

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseConfigs  []string
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignUpConfigs  []string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string, configs []string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	m.lastSignUpConfigs = configs
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (models.User, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return models.User{}, m.parseErr
	}
	return models.User{ID: m.parseID, Configs: m.parseConfigs}, nil
}

type mockReplay struct {
	state    models.ACState
	err      error
	calls    int
	lastSend service.SendParams
}

func (m *mockReplay) Send(ctx context.Context, p service.SendParams) (models.ACState, error) {
	m.calls++
	m.lastSend = p
	return m.state, m.err
}

type mockCatalog struct {
	records []*acconfig.Record
}

func (m *mockCatalog) List() []acconfig.Summary {
	out := make([]acconfig.Summary, 0, len(m.records))
	for i, r := range m.records {
		out = append(out, acconfig.Summarize(i, r))
	}
	return out
}

func (m *mockCatalog) Get(name string) (*acconfig.Record, error) {
	for _, r := range m.records {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, service.ErrConfigNotFound
}

type mockMonitoring struct {
	mu    sync.Mutex
	state models.ACState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.ACState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}

type mockEventLog struct {
	resp     []models.LearningEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.LearningEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withAuth(req *http.Request, token string) *http.Request {
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
