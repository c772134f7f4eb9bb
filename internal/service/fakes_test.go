package service

import (
	"context"
	"sync"
	"time"

	"ac_learner/internal/models"
)

// fakeStateRepo satisfies repository.StateRepo.
type fakeStateRepo struct {
	loadResp models.ACState
	loadErr  error
	saveErr  error
	saved    []models.ACState
}

func (f *fakeStateRepo) Load(context.Context) (models.ACState, error) {
	return f.loadResp, f.loadErr
}

func (f *fakeStateRepo) Save(_ context.Context, s models.ACState) error {
	f.saved = append(f.saved, s)
	return f.saveErr
}

// fakeEventRepo satisfies repository.EventRepo and records its inputs.
type fakeEventRepo struct {
	gotFrom, gotTo time.Time
	gotType        string
	listCalls      int

	events    []models.LearningEvent
	listErr   error
	appendErr error
	appended  []models.LearningEvent
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.LearningEvent, error) {
	f.listCalls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.listErr
}

func (f *fakeEventRepo) Append(_ context.Context, e models.LearningEvent) error {
	f.appended = append(f.appended, e)
	return f.appendErr
}

// fakeTransmitter records the codes it was asked to send.
type fakeTransmitter struct {
	mu   sync.Mutex
	sent [][]byte
	err  error
}

func (f *fakeTransmitter) SendData(_ context.Context, code []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, append([]byte(nil), code...))
	return nil
}

func (f *fakeTransmitter) String() string { return "RM4 pro 192.168.1.40" }
