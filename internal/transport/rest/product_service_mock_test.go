package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/product"
	"sync"
)

var _ productService = &productServiceMock{}

type productServiceMock struct {
	CreateFunc              func(ctx context.Context, input product.CreateInput) (*domain.Product, error)
	CreateManyFunc          func(ctx context.Context, inputs []product.CreateInput) ([]domain.Product, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySerialFunc         func(ctx context.Context, serial string) (*domain.Product, error)
	ListFunc                func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	CountFunc               func(ctx context.Context, filter domain.ProductFilter) (int, error)
	CountByManufacturerFunc func(ctx context.Context, manufacturer string) (int, error)
	UpdateFunc              func(ctx context.Context, input product.UpdateInput) (*domain.Product, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc           func(ctx context.Context) (int64, error)
	CountriesFunc           func() []domain.Country

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input product.CreateInput
		}
		CreateMany []struct {
			Ctx    context.Context
			Inputs []product.CreateInput
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
		Count []struct {
			Ctx    context.Context
			Filter domain.ProductFilter
		}
		CountByManufacturer []struct {
			Ctx          context.Context
			Manufacturer string
		}
		Update []struct {
			Ctx   context.Context
			Input product.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		Countries []struct{}
	}
	lockCreate              sync.RWMutex
	lockCreateMany          sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetBySerial         sync.RWMutex
	lockList                sync.RWMutex
	lockCount               sync.RWMutex
	lockCountByManufacturer sync.RWMutex
	lockUpdate              sync.RWMutex
	lockDelete              sync.RWMutex
	lockDeleteAll           sync.RWMutex
	lockCountries           sync.RWMutex
}

func (mock *productServiceMock) Create(ctx context.Context, input product.CreateInput) (*domain.Product, error) {
	if mock.CreateFunc == nil {
		panic("productServiceMock.CreateFunc: method is nil but productService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input product.CreateInput
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
func (mock *productServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input product.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *productServiceMock) CreateMany(ctx context.Context, inputs []product.CreateInput) ([]domain.Product, error) {
	if mock.CreateManyFunc == nil {
		panic("productServiceMock.CreateManyFunc: method is nil but productService.CreateMany was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Inputs []product.CreateInput
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
func (mock *productServiceMock) CreateManyCalls() []struct {
	Ctx    context.Context
	Inputs []product.CreateInput
} {
	mock.lockCreateMany.RLock()
	calls := mock.calls.CreateMany
	mock.lockCreateMany.RUnlock()
	return calls
}

func (mock *productServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if mock.GetByIDFunc == nil {
		panic("productServiceMock.GetByIDFunc: method is nil but productService.GetByID was just called")
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
func (mock *productServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *productServiceMock) GetBySerial(ctx context.Context, serial string) (*domain.Product, error) {
	if mock.GetBySerialFunc == nil {
		panic("productServiceMock.GetBySerialFunc: method is nil but productService.GetBySerial was just called")
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
func (mock *productServiceMock) GetBySerialCalls() []struct {
	Ctx    context.Context
	Serial string
} {
	mock.lockGetBySerial.RLock()
	calls := mock.calls.GetBySerial
	mock.lockGetBySerial.RUnlock()
	return calls
}

func (mock *productServiceMock) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if mock.ListFunc == nil {
		panic("productServiceMock.ListFunc: method is nil but productService.List was just called")
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
func (mock *productServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ProductFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *productServiceMock) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("productServiceMock.CountFunc: method is nil but productService.Count was just called")
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
func (mock *productServiceMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.ProductFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *productServiceMock) CountByManufacturer(ctx context.Context, manufacturer string) (int, error) {
	if mock.CountByManufacturerFunc == nil {
		panic("productServiceMock.CountByManufacturerFunc: method is nil but productService.CountByManufacturer was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Manufacturer string
	}{
		Ctx:          ctx,
		Manufacturer: manufacturer,
	}
	mock.lockCountByManufacturer.Lock()
	mock.calls.CountByManufacturer = append(mock.calls.CountByManufacturer, callInfo)
	mock.lockCountByManufacturer.Unlock()
	return mock.CountByManufacturerFunc(ctx, manufacturer)
}

// CountByManufacturerCalls gets all the calls that were made to CountByManufacturer.
func (mock *productServiceMock) CountByManufacturerCalls() []struct {
	Ctx          context.Context
	Manufacturer string
} {
	mock.lockCountByManufacturer.RLock()
	calls := mock.calls.CountByManufacturer
	mock.lockCountByManufacturer.RUnlock()
	return calls
}

func (mock *productServiceMock) Update(ctx context.Context, input product.UpdateInput) (*domain.Product, error) {
	if mock.UpdateFunc == nil {
		panic("productServiceMock.UpdateFunc: method is nil but productService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input product.UpdateInput
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
func (mock *productServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input product.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *productServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("productServiceMock.DeleteFunc: method is nil but productService.Delete was just called")
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
func (mock *productServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *productServiceMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("productServiceMock.DeleteAllFunc: method is nil but productService.DeleteAll was just called")
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
func (mock *productServiceMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *productServiceMock) Countries() []domain.Country {
	if mock.CountriesFunc == nil {
		panic("productServiceMock.CountriesFunc: method is nil but productService.Countries was just called")
	}
	mock.lockCountries.Lock()
	mock.calls.Countries = append(mock.calls.Countries, struct{}{})
	mock.lockCountries.Unlock()
	return mock.CountriesFunc()
}

// CountriesCalls gets all the calls that were made to Countries.
func (mock *productServiceMock) CountriesCalls() []struct{} {
	mock.lockCountries.RLock()
	calls := mock.calls.Countries
	mock.lockCountries.RUnlock()
	return calls
}
