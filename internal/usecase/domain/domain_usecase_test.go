package domain

import (
	"context"
	"testing"
	"time"

	"shopping-list-manager/internal/entities"
	"shopping-list-manager/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) Create(ctx context.Context, name, ownerID string) (*entities.ShoppingList, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShoppingList), args.Error(1)
}

func (m *repoMock) GetByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShoppingList), args.Error(1)
}

func (m *repoMock) ListFor(ctx context.Context, callerID string, archived bool) ([]entities.ShoppingList, error) {
	args := m.Called(ctx, callerID, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ShoppingList), args.Error(1)
}

func (m *repoMock) Rename(ctx context.Context, id, name string) (*entities.ShoppingList, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShoppingList), args.Error(1)
}

func (m *repoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) SetArchived(ctx context.Context, id string, archived bool) (*entities.ShoppingList, error) {
	args := m.Called(ctx, id, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShoppingList), args.Error(1)
}

func (m *repoMock) AddMember(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *repoMock) RemoveMember(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *repoMock) AddItem(ctx context.Context, id string, item entities.Item) (*entities.Item, error) {
	args := m.Called(ctx, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Item), args.Error(1)
}

func (m *repoMock) RemoveItem(ctx context.Context, id, itemID string) error {
	args := m.Called(ctx, id, itemID)
	return args.Error(0)
}

func (m *repoMock) SetItemResolved(ctx context.Context, id, itemID string, resolved bool) (*entities.Item, error) {
	args := m.Called(ctx, id, itemID, resolved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Item), args.Error(1)
}

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func ownedList() *entities.ShoppingList {
	return &entities.ShoppingList{
		ID:      "list-1",
		Name:    "Weekly",
		OwnerID: "user-1",
		Members: []string{"user-1", "user-2"},
	}
}

func TestUsecase_CreateListValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateList(context.Background(), "user-1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateList(context.Background(), "", "Weekly")
	require.ErrorIs(t, err, entities.ErrUnauthenticated)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CreateListDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := ownedList()
	repo.On("Create", mock.Anything, "Weekly", "user-1").Return(expected, nil)

	list, err := uc.CreateList(context.Background(), "user-1", "Weekly")
	require.NoError(t, err)
	require.Equal(t, expected, list)
	repo.AssertExpectations(t)
}

func TestUsecase_GetListForbiddenForStranger(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	_, err := uc.GetList(context.Background(), "user-3", "list-1")
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_GetListMissing(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, entities.ErrListNotFound)

	_, err := uc.GetList(context.Background(), "user-1", "missing")
	require.ErrorIs(t, err, entities.ErrListNotFound)
}

func TestUsecase_GetListAllowsMember(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	list, err := uc.GetList(context.Background(), "user-2", "list-1")
	require.NoError(t, err)
	require.Equal(t, "list-1", list.ID)
}

func TestUsecase_RenameListOwnerOnly(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	_, err := uc.RenameList(context.Background(), "user-2", "list-1", "New name")
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_RenameListDelegatesForOwner(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	renamed := ownedList()
	renamed.Name = "New name"
	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)
	repo.On("Rename", mock.Anything, "list-1", "New name").Return(renamed, nil)

	list, err := uc.RenameList(context.Background(), "user-1", "list-1", "New name")
	require.NoError(t, err)
	require.Equal(t, "New name", list.Name)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteListOwnerOnly(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	err := uc.DeleteList(context.Background(), "user-2", "list-1")
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUsecase_ArchiveListOwnerOnly(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	_, err := uc.ArchiveList(context.Background(), "user-2", "list-1", true)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "SetArchived", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AddMemberOwnerOnly(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	err := uc.AddMember(context.Background(), "user-2", "list-1", "user-3")
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AddMemberDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)
	repo.On("AddMember", mock.Anything, "list-1", "user-3").Return(nil)

	require.NoError(t, uc.AddMember(context.Background(), "user-1", "list-1", "user-3"))
	repo.AssertExpectations(t)
}

func TestUsecase_LeaveListAllowsMember(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)
	repo.On("RemoveMember", mock.Anything, "list-1", "user-2").Return(nil)

	require.NoError(t, uc.LeaveList(context.Background(), "user-2", "list-1"))
	repo.AssertExpectations(t)
}

func TestUsecase_LeaveListForbiddenForStranger(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	err := uc.LeaveList(context.Background(), "user-3", "list-1")
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AddItemAllowsMember(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := &entities.Item{ID: "item-1", Name: "Milk"}
	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)
	repo.On("AddItem", mock.Anything, "list-1", mock.MatchedBy(func(item entities.Item) bool {
		return item.Name == "Milk"
	})).Return(expected, nil)

	item, err := uc.AddItem(context.Background(), "user-2", "list-1", entities.Item{Name: "Milk"})
	require.NoError(t, err)
	require.Equal(t, expected, item)
	repo.AssertExpectations(t)
}

func TestUsecase_AddItemForbiddenForStranger(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)

	_, err := uc.AddItem(context.Background(), "user-3", "list-1", entities.Item{Name: "Milk"})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AddItemValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.AddItem(context.Background(), "user-1", "list-1", entities.Item{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUsecase_ResolveItemAllowsOwner(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := &entities.Item{ID: "item-1", Name: "Milk", Resolved: true}
	repo.On("GetByID", mock.Anything, "list-1").Return(ownedList(), nil)
	repo.On("SetItemResolved", mock.Anything, "list-1", "item-1", true).Return(expected, nil)

	item, err := uc.ResolveItem(context.Background(), "user-1", "list-1", "item-1", true)
	require.NoError(t, err)
	require.True(t, item.Resolved)
	repo.AssertExpectations(t)
}

func TestUsecase_ListListsRequiresIdentity(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.ListLists(context.Background(), "", false)
	require.ErrorIs(t, err, entities.ErrUnauthenticated)
	repo.AssertNotCalled(t, "ListFor", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_ListListsDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := []entities.ShoppingList{*ownedList()}
	repo.On("ListFor", mock.Anything, "user-1", true).Return(expected, nil)

	lists, err := uc.ListLists(context.Background(), "user-1", true)
	require.NoError(t, err)
	require.Equal(t, expected, lists)
	repo.AssertExpectations(t)
}
