package inspection

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"sync"
)

var _ inspectionRepo = &inspectionRepoMock{}

type inspectionRepoMock struct {
	CountFunc     func(ctx context.Context, filter domain.InspectionFilter) (int, error)
	CreateFunc    func(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc func(ctx context.Context) (int64, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	ListFunc      func(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error)
	StatsFunc     func(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, params domain.InspectionUpdateParams) (*domain.Inspection, error)

	calls struct {
		Count []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		Create []struct {
			Ctx context.Context
			In  *domain.Inspection
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		Stats []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.InspectionUpdateParams
		}
	}
	lockCount     sync.RWMutex
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockStats     sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *inspectionRepoMock) Count(ctx context.Context, filter domain.InspectionFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("inspectionRepoMock.CountFunc: method is nil but inspectionRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InspectionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

// CountCalls gets all the calls that were made to Count.
func (mock *inspectionRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) Create(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error) {
	if mock.CreateFunc == nil {
		panic("inspectionRepoMock.CreateFunc: method is nil but inspectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  *domain.Inspection
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *inspectionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	In  *domain.Inspection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("inspectionRepoMock.DeleteFunc: method is nil but inspectionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

// DeleteCalls gets all the calls that were made to Delete.
func (mock *inspectionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("inspectionRepoMock.DeleteAllFunc: method is nil but inspectionRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

// DeleteAllCalls gets all the calls that were made to DeleteAll.
func (mock *inspectionRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	if mock.GetByIDFunc == nil {
		panic("inspectionRepoMock.GetByIDFunc: method is nil but inspectionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *inspectionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error) {
	if mock.ListFunc == nil {
		panic("inspectionRepoMock.ListFunc: method is nil but inspectionRepo.List was just called")
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
func (mock *inspectionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) Stats(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error) {
	if mock.StatsFunc == nil {
		panic("inspectionRepoMock.StatsFunc: method is nil but inspectionRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InspectionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, filter)
}

// StatsCalls gets all the calls that were made to Stats.
func (mock *inspectionRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.InspectionUpdateParams) (*domain.Inspection, error) {
	if mock.UpdateFunc == nil {
		panic("inspectionRepoMock.UpdateFunc: method is nil but inspectionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.InspectionUpdateParams
	}{
		Ctx:    ctx,
		Id:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *inspectionRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.InspectionUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
