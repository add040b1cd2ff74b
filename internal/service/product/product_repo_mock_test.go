package product

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"sync"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	CreateFunc      func(ctx context.Context, p *domain.Product) (*domain.Product, error)
	CountFunc       func(ctx context.Context, filter domain.ProductFilter) (int, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc   func(ctx context.Context) (int64, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySerialFunc func(ctx context.Context, serial string) (*domain.Product, error)
	ListFunc        func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Product
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.ProductFilter
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
		GetBySerial []struct {
			Ctx    context.Context
			Serial string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ProductFilter
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.ProductUpdateParams
		}
	}
	lockCreate      sync.RWMutex
	lockCount       sync.RWMutex
	lockDelete      sync.RWMutex
	lockDeleteAll   sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetBySerial sync.RWMutex
	lockList        sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *productRepoMock) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if mock.CreateFunc == nil {
		panic("productRepoMock.CreateFunc: method is nil but productRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Product
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *productRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Product
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *productRepoMock) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("productRepoMock.CountFunc: method is nil but productRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProductFilter
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
func (mock *productRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.ProductFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *productRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("productRepoMock.DeleteFunc: method is nil but productRepo.Delete was just called")
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
func (mock *productRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *productRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("productRepoMock.DeleteAllFunc: method is nil but productRepo.DeleteAll was just called")
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
func (mock *productRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if mock.GetByIDFunc == nil {
		panic("productRepoMock.GetByIDFunc: method is nil but productRepo.GetByID was just called")
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
func (mock *productRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *productRepoMock) GetBySerial(ctx context.Context, serial string) (*domain.Product, error) {
	if mock.GetBySerialFunc == nil {
		panic("productRepoMock.GetBySerialFunc: method is nil but productRepo.GetBySerial was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Serial string
	}{
		Ctx:    ctx,
		Serial: serial,
	}
	mock.lockGetBySerial.Lock()
	mock.calls.GetBySerial = append(mock.calls.GetBySerial, callInfo)
	mock.lockGetBySerial.Unlock()
	return mock.GetBySerialFunc(ctx, serial)
}

// GetBySerialCalls gets all the calls that were made to GetBySerial.
func (mock *productRepoMock) GetBySerialCalls() []struct {
	Ctx    context.Context
	Serial string
} {
	mock.lockGetBySerial.RLock()
	calls := mock.calls.GetBySerial
	mock.lockGetBySerial.RUnlock()
	return calls
}

func (mock *productRepoMock) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if mock.ListFunc == nil {
		panic("productRepoMock.ListFunc: method is nil but productRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProductFilter
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
func (mock *productRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ProductFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *productRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error) {
	if mock.UpdateFunc == nil {
		panic("productRepoMock.UpdateFunc: method is nil but productRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.ProductUpdateParams
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
func (mock *productRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.ProductUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
