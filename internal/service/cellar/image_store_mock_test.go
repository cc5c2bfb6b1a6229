package cellar

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	SaveFunc   func(ctx context.Context, userID, wineID uuid.UUID, filename string, r io.Reader) (string, error)
	RemoveFunc func(ctx context.Context, url string) error

	calls struct {
		Save []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			WineID   uuid.UUID
			Filename string
		}
		Remove []struct {
			Ctx context.Context
			URL string
		}
	}
	lockSave   sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *imageStoreMock) Save(ctx context.Context, userID, wineID uuid.UUID, filename string, r io.Reader) (string, error) {
	if mock.SaveFunc == nil {
		panic("imageStoreMock.SaveFunc: method is nil but imageStore.Save was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		WineID   uuid.UUID
		Filename string
	}{Ctx: ctx, UserID: userID, WineID: wineID, Filename: filename}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, userID, wineID, filename, r)
}

func (mock *imageStoreMock) SaveCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	WineID   uuid.UUID
	Filename string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *imageStoreMock) Remove(ctx context.Context, url string) error {
	if mock.RemoveFunc == nil {
		panic("imageStoreMock.RemoveFunc: method is nil but imageStore.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		URL string
	}{Ctx: ctx, URL: url}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, url)
}

func (mock *imageStoreMock) RemoveCalls() []struct {
	Ctx context.Context
	URL string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
