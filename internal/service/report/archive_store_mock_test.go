package report

import (
	"context"
	"sync"
)

var _ archiveStore = &archiveStoreMock{}

type archiveStoreMock struct {
	PutFunc func(ctx context.Context, key string, data []byte, contentType string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			Data        []byte
			ContentType string
		}
	}
	lockPut sync.RWMutex
}

func (mock *archiveStoreMock) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if mock.PutFunc == nil {
		panic("archiveStoreMock.PutFunc: method is nil but archiveStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Data        []byte
		ContentType string
	}{
		Ctx:         ctx,
		Key:         key,
		Data:        data,
		ContentType: contentType,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, data, contentType)
}

// PutCalls gets all the calls that were made to Put.
func (mock *archiveStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	Data        []byte
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
