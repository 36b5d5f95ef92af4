package usecase_test

import (
	"context"

	"item-catalog/internal/item"
	repo "item-catalog/internal/item/repository"
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

// mockRepo implements repository.Repository with overridable function fields.
type mockRepo struct {
	createFunc        func(opt repo.CreateItemOptions) (item.Item, error)
	getOneFunc        func(opt repo.GetOneItemOptions) (item.Item, error)
	listFunc          func(opt repo.ListItemsOptions) ([]item.Item, int, error)
	updateFunc        func(opt repo.UpdateItemOptions) (item.Item, error)
	deleteFunc        func(id string) (item.Item, error)
	listPhotoURLsFunc func() ([]string, error)
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return item.Item{}, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return item.Item{}, nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return item.Item{}, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id string) (item.Item, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return item.Item{}, nil
}

func (m *mockRepo) ListPhotoURLs(ctx context.Context) ([]string, error) {
	if m.listPhotoURLsFunc != nil {
		return m.listPhotoURLsFunc()
	}
	return nil, nil
}

// mockStore implements photostore.Store with overridable function fields and
// call recording.
type mockStore struct {
	saveFunc   func(data []byte) (string, error)
	deleteFunc func(ref string) error
	listFunc   func() ([]string, error)

	saved   [][]byte
	deleted []string
}

func (m *mockStore) Save(ctx context.Context, data []byte) (string, error) {
	m.saved = append(m.saved, data)
	if m.saveFunc != nil {
		return m.saveFunc(data)
	}
	return "/uploads/generated.jpg", nil
}

func (m *mockStore) Delete(ctx context.Context, ref string) error {
	m.deleted = append(m.deleted, ref)
	if m.deleteFunc != nil {
		return m.deleteFunc(ref)
	}
	return nil
}

func (m *mockStore) List(ctx context.Context) ([]string, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}
