package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"waste-service/internal/db/dbtest"
	"waste-service/internal/model"
	"waste-service/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestVehicleRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVehicleRepository(dbtest.New(t))

	vehicles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)

	truck := &model.Vehicle{Plate: "06 ABC 42", Brand: strPtr("MAN"), Model: strPtr("TGS")}
	require.NoError(t, repo.Create(ctx, truck))
	assert.NotZero(t, truck.ID)

	require.NoError(t, repo.Create(ctx, &model.Vehicle{Plate: "06 XYZ 7"}))

	vehicles, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "06 ABC 42", vehicles[0].Plate)
	assert.Equal(t, "MAN", *vehicles[0].Brand)
	assert.Nil(t, vehicles[1].Brand)
	assert.Nil(t, vehicles[1].Model)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Delete(ctx, truck.ID))
	assert.ErrorIs(t, repo.Delete(ctx, truck.ID), gorm.ErrRecordNotFound)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWastePointRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewWastePointRepository(dbtest.New(t))

	point := &model.WastePoint{Name: "Market square", Latitude: 39.92, Longitude: 32.85}
	require.NoError(t, repo.Create(ctx, point))
	assert.NotZero(t, point.ID)

	points, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, point.ID, points[0].ID)
	assert.Equal(t, "Market square", points[0].Name)
	assert.Equal(t, 39.92, points[0].Latitude)
	assert.Equal(t, 32.85, points[0].Longitude)

	assert.ErrorIs(t, repo.Delete(ctx, point.ID+100), gorm.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, point.ID))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStartEndPointRepository_GetByTypeMissing(t *testing.T) {
	repo := repository.NewStartEndPointRepository(dbtest.New(t))

	point, err := repo.GetByType(context.Background(), model.PointTypeStart)
	require.NoError(t, err)
	assert.Nil(t, point)
}

func TestStartEndPointRepository_UpsertKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStartEndPointRepository(dbtest.New(t))

	first, created, err := repo.Upsert(ctx, model.PointTypeStart, 1, 2)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)
	assert.Equal(t, model.PointTypeStart, first.PointType)

	second, created, err := repo.Upsert(ctx, model.PointTypeStart, 3, 4)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3.0, second.Latitude)
	assert.Equal(t, 4.0, second.Longitude)

	stored, err := repo.GetByType(ctx, model.PointTypeStart)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 3.0, stored.Latitude)
	assert.Equal(t, 4.0, stored.Longitude)
}

func TestStartEndPointRepository_TypesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStartEndPointRepository(dbtest.New(t))

	start, _, err := repo.Upsert(ctx, model.PointTypeStart, 1, 2)
	require.NoError(t, err)
	end, _, err := repo.Upsert(ctx, model.PointTypeEnd, 5, 6)
	require.NoError(t, err)
	assert.NotEqual(t, start.ID, end.ID)

	_, _, err = repo.Upsert(ctx, model.PointTypeEnd, 7, 8)
	require.NoError(t, err)

	stored, err := repo.GetByType(ctx, model.PointTypeStart)
	require.NoError(t, err)
	assert.Equal(t, start.ID, stored.ID)
	assert.Equal(t, 1.0, stored.Latitude)
	assert.Equal(t, 2.0, stored.Longitude)
}

func TestStartEndPointRepository_ConcurrentUpsertsKeepOneRow(t *testing.T) {
	ctx := context.Background()
	database := dbtest.New(t)
	repo := repository.NewStartEndPointRepository(database)

	const workers = 50
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := repo.Upsert(ctx, model.PointTypeStart, float64(i), float64(-i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var rows int64
	require.NoError(t, database.Model(&model.StartEndPoint{}).
		Where("point_type = ?", model.PointTypeStart).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}
