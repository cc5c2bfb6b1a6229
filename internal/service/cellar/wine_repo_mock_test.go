package cellar

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

var _ wineRepo = &wineRepoMock{}

type wineRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID, wineID uuid.UUID) (*domain.Wine, error)
	FindFunc        func(ctx context.Context, userID uuid.UUID, filter domain.WineFilter) ([]domain.Wine, int, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc      func(ctx context.Context, wine *domain.Wine) (*domain.Wine, error)
	UpdateFunc      func(ctx context.Context, wine *domain.Wine) (*domain.Wine, error)
	SetImageURLFunc func(ctx context.Context, userID, wineID uuid.UUID, url string) (*domain.Wine, error)
	DeleteFunc      func(ctx context.Context, userID, wineID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WineID uuid.UUID
		}
		Find []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.WineFilter
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Wine *domain.Wine
		}
		Update []struct {
			Ctx  context.Context
			Wine *domain.Wine
		}
		SetImageURL []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WineID uuid.UUID
			URL    string
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WineID uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockFind        sync.RWMutex
	lockCountByUser sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockSetImageURL sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *wineRepoMock) GetByID(ctx context.Context, userID, wineID uuid.UUID) (*domain.Wine, error) {
	if mock.GetByIDFunc == nil {
		panic("wineRepoMock.GetByIDFunc: method is nil but wineRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WineID uuid.UUID
	}{Ctx: ctx, UserID: userID, WineID: wineID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, wineID)
}

func (mock *wineRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WineID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wineRepoMock) Find(ctx context.Context, userID uuid.UUID, filter domain.WineFilter) ([]domain.Wine, int, error) {
	if mock.FindFunc == nil {
		panic("wineRepoMock.FindFunc: method is nil but wineRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.WineFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, userID, filter)
}

func (mock *wineRepoMock) FindCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.WineFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *wineRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("wineRepoMock.CountByUserFunc: method is nil but wineRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *wineRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *wineRepoMock) Create(ctx context.Context, wine *domain.Wine) (*domain.Wine, error) {
	if mock.CreateFunc == nil {
		panic("wineRepoMock.CreateFunc: method is nil but wineRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Wine *domain.Wine
	}{Ctx: ctx, Wine: wine}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, wine)
}

func (mock *wineRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Wine *domain.Wine
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wineRepoMock) Update(ctx context.Context, wine *domain.Wine) (*domain.Wine, error) {
	if mock.UpdateFunc == nil {
		panic("wineRepoMock.UpdateFunc: method is nil but wineRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Wine *domain.Wine
	}{Ctx: ctx, Wine: wine}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, wine)
}

func (mock *wineRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Wine *domain.Wine
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wineRepoMock) SetImageURL(ctx context.Context, userID, wineID uuid.UUID, url string) (*domain.Wine, error) {
	if mock.SetImageURLFunc == nil {
		panic("wineRepoMock.SetImageURLFunc: method is nil but wineRepo.SetImageURL was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WineID uuid.UUID
		URL    string
	}{Ctx: ctx, UserID: userID, WineID: wineID, URL: url}
	mock.lockSetImageURL.Lock()
	mock.calls.SetImageURL = append(mock.calls.SetImageURL, callInfo)
	mock.lockSetImageURL.Unlock()
	return mock.SetImageURLFunc(ctx, userID, wineID, url)
}

func (mock *wineRepoMock) SetImageURLCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WineID uuid.UUID
	URL    string
} {
	mock.lockSetImageURL.RLock()
	calls := mock.calls.SetImageURL
	mock.lockSetImageURL.RUnlock()
	return calls
}

func (mock *wineRepoMock) Delete(ctx context.Context, userID, wineID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wineRepoMock.DeleteFunc: method is nil but wineRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WineID uuid.UUID
	}{Ctx: ctx, UserID: userID, WineID: wineID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, wineID)
}

func (mock *wineRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WineID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
