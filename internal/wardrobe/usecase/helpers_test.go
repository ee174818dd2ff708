package usecase_test

import (
	"context"
	"sync"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records calls and delegates to optional funcs.
type mockRepo struct {
	mu      sync.Mutex
	creates []repository.CreateItemOptions
	updates []repository.UpdateItemOptions
	deletes []model.ID
	wears   []repository.LogWearOptions

	createFunc func(opt repository.CreateItemOptions) (*model.WardrobeItem, error)
	updateFunc func(id model.ID, opt repository.UpdateItemOptions) (*model.WardrobeItem, error)
	getFunc    func(id model.ID) (*model.WardrobeItem, error)
	listFunc   func() ([]model.WardrobeItem, error)
	deleteFunc func(id model.ID) error
	wearFunc   func(id model.ID, opt repository.LogWearOptions) (*model.WearEntry, error)
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (*model.WardrobeItem, error) {
	m.mu.Lock()
	m.creates = append(m.creates, opt)
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, id model.ID, opt repository.UpdateItemOptions) (*model.WardrobeItem, error) {
	m.mu.Lock()
	m.updates = append(m.updates, opt)
	m.mu.Unlock()
	if m.updateFunc != nil {
		return m.updateFunc(id, opt)
	}
	return nil, nil
}

func (m *mockRepo) GetItem(ctx context.Context, id model.ID) (*model.WardrobeItem, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return nil, nil
}

func (m *mockRepo) ListItems(ctx context.Context) ([]model.WardrobeItem, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []model.WardrobeItem{}, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id model.ID) error {
	m.mu.Lock()
	m.deletes = append(m.deletes, id)
	m.mu.Unlock()
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockRepo) LogWear(ctx context.Context, id model.ID, opt repository.LogWearOptions) (*model.WearEntry, error) {
	m.mu.Lock()
	m.wears = append(m.wears, opt)
	m.mu.Unlock()
	if m.wearFunc != nil {
		return m.wearFunc(id, opt)
	}
	return &model.WearEntry{ID: "1", ItemID: id, DateWorn: model.NewTime(opt.WornAt)}, nil
}

func strPtr(s string) *string { return &s }

// echoCreate returns the submitted item with a backend id.
func echoCreate(id string) func(opt repository.CreateItemOptions) (*model.WardrobeItem, error) {
	return func(opt repository.CreateItemOptions) (*model.WardrobeItem, error) {
		item := opt.Item
		item.ID = model.ID(id)
		return &item, nil
	}
}
