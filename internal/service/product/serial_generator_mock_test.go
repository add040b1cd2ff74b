package product

import (
	"sync"
)

var _ serialGenerator = &serialGeneratorMock{}

type serialGeneratorMock struct {
	GenerateFunc func(manufacturer string, name string) (string, bool)

	calls struct {
		Generate []struct {
			Manufacturer string
			Name         string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *serialGeneratorMock) Generate(manufacturer string, name string) (string, bool) {
	if mock.GenerateFunc == nil {
		panic("serialGeneratorMock.GenerateFunc: method is nil but serialGenerator.Generate was just called")
	}
	callInfo := struct {
		Manufacturer string
		Name         string
	}{
		Manufacturer: manufacturer,
		Name:         name,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(manufacturer, name)
}

// GenerateCalls gets all the calls that were made to Generate.
func (mock *serialGeneratorMock) GenerateCalls() []struct {
	Manufacturer string
	Name         string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
