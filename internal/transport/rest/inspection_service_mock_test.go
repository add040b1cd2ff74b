package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/inspection"
	"sync"
	"time"
)

var _ inspectionService = &inspectionServiceMock{}

type inspectionServiceMock struct {
	CreateFunc         func(ctx context.Context, input inspection.CreateInput) (*domain.Inspection, error)
	CreateManyFunc     func(ctx context.Context, inputs []inspection.CreateInput) ([]domain.Inspection, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	ListFunc           func(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error)
	ListUnsafeFunc     func(ctx context.Context) ([]domain.Inspection, error)
	StatsFunc          func(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error)
	CountBySafetyFunc  func(ctx context.Context, safe bool) (int, error)
	CountByBodyFunc    func(ctx context.Context, bodyID uuid.UUID) (int, error)
	CountByProductFunc func(ctx context.Context, productID uuid.UUID) (int, error)
	CountByDateFunc    func(ctx context.Context, date time.Time) (int, error)
	UpdateFunc         func(ctx context.Context, input inspection.UpdateInput) (*domain.Inspection, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc      func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input inspection.CreateInput
		}
		CreateMany []struct {
			Ctx    context.Context
			Inputs []inspection.CreateInput
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		ListUnsafe []struct {
			Ctx context.Context
		}
		Stats []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		CountBySafety []struct {
			Ctx  context.Context
			Safe bool
		}
		CountByBody []struct {
			Ctx    context.Context
			BodyID uuid.UUID
		}
		CountByProduct []struct {
			Ctx       context.Context
			ProductID uuid.UUID
		}
		CountByDate []struct {
			Ctx  context.Context
			Date time.Time
		}
		Update []struct {
			Ctx   context.Context
			Input inspection.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteAll []struct {
			Ctx context.Context
		}
	}
	lockCreate         sync.RWMutex
	lockCreateMany     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockListUnsafe     sync.RWMutex
	lockStats          sync.RWMutex
	lockCountBySafety  sync.RWMutex
	lockCountByBody    sync.RWMutex
	lockCountByProduct sync.RWMutex
	lockCountByDate    sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockDeleteAll      sync.RWMutex
}

func (mock *inspectionServiceMock) Create(ctx context.Context, input inspection.CreateInput) (*domain.Inspection, error) {
	if mock.CreateFunc == nil {
		panic("inspectionServiceMock.CreateFunc: method is nil but inspectionService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inspection.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *inspectionServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input inspection.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) CreateMany(ctx context.Context, inputs []inspection.CreateInput) ([]domain.Inspection, error) {
	if mock.CreateManyFunc == nil {
		panic("inspectionServiceMock.CreateManyFunc: method is nil but inspectionService.CreateMany was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Inputs []inspection.CreateInput
	}{
		Ctx:    ctx,
		Inputs: inputs,
	}
	mock.lockCreateMany.Lock()
	mock.calls.CreateMany = append(mock.calls.CreateMany, callInfo)
	mock.lockCreateMany.Unlock()
	return mock.CreateManyFunc(ctx, inputs)
}

// CreateManyCalls gets all the calls that were made to CreateMany.
func (mock *inspectionServiceMock) CreateManyCalls() []struct {
	Ctx    context.Context
	Inputs []inspection.CreateInput
} {
	mock.lockCreateMany.RLock()
	calls := mock.calls.CreateMany
	mock.lockCreateMany.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	if mock.GetByIDFunc == nil {
		panic("inspectionServiceMock.GetByIDFunc: method is nil but inspectionService.GetByID was just called")
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
func (mock *inspectionServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error) {
	if mock.ListFunc == nil {
		panic("inspectionServiceMock.ListFunc: method is nil but inspectionService.List was just called")
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
func (mock *inspectionServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) ListUnsafe(ctx context.Context) ([]domain.Inspection, error) {
	if mock.ListUnsafeFunc == nil {
		panic("inspectionServiceMock.ListUnsafeFunc: method is nil but inspectionService.ListUnsafe was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUnsafe.Lock()
	mock.calls.ListUnsafe = append(mock.calls.ListUnsafe, callInfo)
	mock.lockListUnsafe.Unlock()
	return mock.ListUnsafeFunc(ctx)
}

// ListUnsafeCalls gets all the calls that were made to ListUnsafe.
func (mock *inspectionServiceMock) ListUnsafeCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUnsafe.RLock()
	calls := mock.calls.ListUnsafe
	mock.lockListUnsafe.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) Stats(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error) {
	if mock.StatsFunc == nil {
		panic("inspectionServiceMock.StatsFunc: method is nil but inspectionService.Stats was just called")
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
func (mock *inspectionServiceMock) StatsCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) CountBySafety(ctx context.Context, safe bool) (int, error) {
	if mock.CountBySafetyFunc == nil {
		panic("inspectionServiceMock.CountBySafetyFunc: method is nil but inspectionService.CountBySafety was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Safe bool
	}{
		Ctx:  ctx,
		Safe: safe,
	}
	mock.lockCountBySafety.Lock()
	mock.calls.CountBySafety = append(mock.calls.CountBySafety, callInfo)
	mock.lockCountBySafety.Unlock()
	return mock.CountBySafetyFunc(ctx, safe)
}

// CountBySafetyCalls gets all the calls that were made to CountBySafety.
func (mock *inspectionServiceMock) CountBySafetyCalls() []struct {
	Ctx  context.Context
	Safe bool
} {
	mock.lockCountBySafety.RLock()
	calls := mock.calls.CountBySafety
	mock.lockCountBySafety.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) CountByBody(ctx context.Context, bodyID uuid.UUID) (int, error) {
	if mock.CountByBodyFunc == nil {
		panic("inspectionServiceMock.CountByBodyFunc: method is nil but inspectionService.CountByBody was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BodyID uuid.UUID
	}{
		Ctx:    ctx,
		BodyID: bodyID,
	}
	mock.lockCountByBody.Lock()
	mock.calls.CountByBody = append(mock.calls.CountByBody, callInfo)
	mock.lockCountByBody.Unlock()
	return mock.CountByBodyFunc(ctx, bodyID)
}

// CountByBodyCalls gets all the calls that were made to CountByBody.
func (mock *inspectionServiceMock) CountByBodyCalls() []struct {
	Ctx    context.Context
	BodyID uuid.UUID
} {
	mock.lockCountByBody.RLock()
	calls := mock.calls.CountByBody
	mock.lockCountByBody.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) CountByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	if mock.CountByProductFunc == nil {
		panic("inspectionServiceMock.CountByProductFunc: method is nil but inspectionService.CountByProduct was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProductID uuid.UUID
	}{
		Ctx:       ctx,
		ProductID: productID,
	}
	mock.lockCountByProduct.Lock()
	mock.calls.CountByProduct = append(mock.calls.CountByProduct, callInfo)
	mock.lockCountByProduct.Unlock()
	return mock.CountByProductFunc(ctx, productID)
}

// CountByProductCalls gets all the calls that were made to CountByProduct.
func (mock *inspectionServiceMock) CountByProductCalls() []struct {
	Ctx       context.Context
	ProductID uuid.UUID
} {
	mock.lockCountByProduct.RLock()
	calls := mock.calls.CountByProduct
	mock.lockCountByProduct.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) CountByDate(ctx context.Context, date time.Time) (int, error) {
	if mock.CountByDateFunc == nil {
		panic("inspectionServiceMock.CountByDateFunc: method is nil but inspectionService.CountByDate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
	}{
		Ctx:  ctx,
		Date: date,
	}
	mock.lockCountByDate.Lock()
	mock.calls.CountByDate = append(mock.calls.CountByDate, callInfo)
	mock.lockCountByDate.Unlock()
	return mock.CountByDateFunc(ctx, date)
}

// CountByDateCalls gets all the calls that were made to CountByDate.
func (mock *inspectionServiceMock) CountByDateCalls() []struct {
	Ctx  context.Context
	Date time.Time
} {
	mock.lockCountByDate.RLock()
	calls := mock.calls.CountByDate
	mock.lockCountByDate.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) Update(ctx context.Context, input inspection.UpdateInput) (*domain.Inspection, error) {
	if mock.UpdateFunc == nil {
		panic("inspectionServiceMock.UpdateFunc: method is nil but inspectionService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inspection.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *inspectionServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input inspection.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("inspectionServiceMock.DeleteFunc: method is nil but inspectionService.Delete was just called")
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
func (mock *inspectionServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *inspectionServiceMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("inspectionServiceMock.DeleteAllFunc: method is nil but inspectionService.DeleteAll was just called")
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
func (mock *inspectionServiceMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}
