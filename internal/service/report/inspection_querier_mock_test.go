package report

import (
	"context"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"sync"
)

var _ inspectionQuerier = &inspectionQuerierMock{}

type inspectionQuerierMock struct {
	ListFunc func(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *inspectionQuerierMock) List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error) {
	if mock.ListFunc == nil {
		panic("inspectionQuerierMock.ListFunc: method is nil but inspectionQuerier.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InspectionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

// ListCalls gets all the calls that were made to List.
func (mock *inspectionQuerierMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
