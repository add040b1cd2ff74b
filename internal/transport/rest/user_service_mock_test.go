package rest

import (
	"context"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	MeFunc       func(ctx context.Context) (*domain.User, error)
	ActivityFunc func(ctx context.Context, input user.ActivityInput) ([]domain.AuditRecord, error)
	HistoryFunc  func(ctx context.Context, input user.HistoryInput) ([]domain.AuditRecord, error)

	calls struct {
		Me []struct {
			Ctx context.Context
		}
		Activity []struct {
			Ctx   context.Context
			Input user.ActivityInput
		}
		History []struct {
			Ctx   context.Context
			Input user.HistoryInput
		}
	}
	lockMe       sync.RWMutex
	lockActivity sync.RWMutex
	lockHistory  sync.RWMutex
}

func (mock *userServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("userServiceMock.MeFunc: method is nil but userService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

// MeCalls gets all the calls that were made to Me.
func (mock *userServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *userServiceMock) Activity(ctx context.Context, input user.ActivityInput) ([]domain.AuditRecord, error) {
	if mock.ActivityFunc == nil {
		panic("userServiceMock.ActivityFunc: method is nil but userService.Activity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ActivityInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockActivity.Lock()
	mock.calls.Activity = append(mock.calls.Activity, callInfo)
	mock.lockActivity.Unlock()
	return mock.ActivityFunc(ctx, input)
}

// ActivityCalls gets all the calls that were made to Activity.
func (mock *userServiceMock) ActivityCalls() []struct {
	Ctx   context.Context
	Input user.ActivityInput
} {
	mock.lockActivity.RLock()
	calls := mock.calls.Activity
	mock.lockActivity.RUnlock()
	return calls
}

func (mock *userServiceMock) History(ctx context.Context, input user.HistoryInput) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("userServiceMock.HistoryFunc: method is nil but userService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.HistoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, input)
}

// HistoryCalls gets all the calls that were made to History.
func (mock *userServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Input user.HistoryInput
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
