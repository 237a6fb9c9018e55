package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/testutil"
)

func TestImagemService_Delete(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11), nil)
	api.On("DeleteImagem", mock.Anything, int64(7), int64(11)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 7, 11))
	api.AssertExpectations(t)
}

func TestImagemService_Delete_ForeignImage(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11), nil)

	err := svc.Delete(context.Background(), 7, 99)
	assert.ErrorIs(t, err, domain.ErrImagemNotFound)
	api.AssertNotCalled(t, "DeleteImagem", mock.Anything, mock.Anything, mock.Anything)
}

func TestImagemService_SetPrincipal(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11), nil)
	api.On("SetImagemPrincipal", mock.Anything, int64(7), int64(11)).Return(nil)

	changed, err := svc.SetPrincipal(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.True(t, changed)
	api.AssertExpectations(t)
}

func TestImagemService_SetPrincipal_AlreadyPrincipal(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11), nil)

	changed, err := svc.SetPrincipal(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.False(t, changed)
	api.AssertNotCalled(t, "SetImagemPrincipal", mock.Anything, mock.Anything, mock.Anything)
}

func TestImagemService_Move(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11, 12), nil)
	api.On("ReordenarImagens", mock.Anything, int64(7), []int64{10, 12, 11}).Return(nil)

	moved, err := svc.Move(context.Background(), 7, 12, DirectionUp)
	require.NoError(t, err)
	assert.True(t, moved)
	api.AssertExpectations(t)
}

func TestImagemService_Move_AtBoundary(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11, 12), nil)

	moved, err := svc.Move(context.Background(), 7, 12, DirectionDown)
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = svc.Move(context.Background(), 7, 10, DirectionUp)
	require.NoError(t, err)
	assert.False(t, moved)

	api.AssertNotCalled(t, "ReordenarImagens", mock.Anything, mock.Anything, mock.Anything)
}

func TestImagemService_Reorder(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11, 12), nil)
	api.On("ReordenarImagens", mock.Anything, int64(7), []int64{12, 10, 11}).Return(nil)

	assert.NoError(t, svc.Reorder(context.Background(), 7, []int64{12, 10, 11}))
	api.AssertExpectations(t)
}

func TestImagemService_Reorder_NotAPermutation(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
	}{
		{"missing", []int64{10, 11}},
		{"duplicate", []int64{10, 10, 11}},
		{"foreign", []int64{10, 11, 99}},
		{"extra", []int64{10, 11, 12, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(testutil.MockInventoryAPI)
			svc := NewImagemService(api, api)
			api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11, 12), nil)

			err := svc.Reorder(context.Background(), 7, tt.ids)
			assert.ErrorIs(t, err, domain.ErrInvalidImageOrder)
			api.AssertNotCalled(t, "ReordenarImagens", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestImagemService_Reorder_Unchanged(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewImagemService(api, api)

	api.On("GetCarro", mock.Anything, int64(7)).Return(testutil.NewCarro(7, nil, 10, 11), nil)

	assert.NoError(t, svc.Reorder(context.Background(), 7, []int64{10, 11}))
	api.AssertNotCalled(t, "ReordenarImagens", mock.Anything, mock.Anything, mock.Anything)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("cima")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, d)

	d, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, d)

	_, err = ParseDirection("lado")
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}
