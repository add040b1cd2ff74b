package rest

import (
	"context"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/report"
	"sync"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	BuildFunc   func(ctx context.Context, filter domain.InspectionFilter) (*report.Report, error)
	ArchiveFunc func(ctx context.Context, r *report.Report) (string, error)

	calls struct {
		Build []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		Archive []struct {
			Ctx context.Context
			R   *report.Report
		}
	}
	lockBuild   sync.RWMutex
	lockArchive sync.RWMutex
}

func (mock *reportServiceMock) Build(ctx context.Context, filter domain.InspectionFilter) (*report.Report, error) {
	if mock.BuildFunc == nil {
		panic("reportServiceMock.BuildFunc: method is nil but reportService.Build was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InspectionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockBuild.Lock()
	mock.calls.Build = append(mock.calls.Build, callInfo)
	mock.lockBuild.Unlock()
	return mock.BuildFunc(ctx, filter)
}

// BuildCalls gets all the calls that were made to Build.
func (mock *reportServiceMock) BuildCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockBuild.RLock()
	calls := mock.calls.Build
	mock.lockBuild.RUnlock()
	return calls
}

func (mock *reportServiceMock) Archive(ctx context.Context, r *report.Report) (string, error) {
	if mock.ArchiveFunc == nil {
		panic("reportServiceMock.ArchiveFunc: method is nil but reportService.Archive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *report.Report
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, r)
}

// ArchiveCalls gets all the calls that were made to Archive.
func (mock *reportServiceMock) ArchiveCalls() []struct {
	Ctx context.Context
	R   *report.Report
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}
