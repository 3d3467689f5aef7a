package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"animal-shelter/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalRepo_FindByName_FirstInsertedWins(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewAnimalRepo()

	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", Details: animals.Dog{}}))
	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "2", Name: "rex", Details: animals.Cat{}}))

	got, err := repo.FindByName(ctx, "REX")
	require.NoError(t, err)
	assert.Equal(t, animals.KindDog, got.Species())

	_, err = repo.FindByName(ctx, "Garfield")
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestAnimalRepo_Add_RejectsDuplicateAndEmptyID(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewAnimalRepo()

	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", Details: animals.Dog{}}))
	assert.Error(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Other", Details: animals.Dog{}}))
	assert.Error(t, repo.Add(ctx, animals.Animal{Name: "NoID", Details: animals.Dog{}}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAnimalRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewAnimalRepo()
	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", Details: animals.Dog{}}))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	got.Adopted = true
	got.HealthStatus = "tampered"

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.False(t, again.Adopted)
	assert.Empty(t, again.HealthStatus)
}

func TestAnimalRepo_MarkAdopted_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo, adoptions := NewAnimalRepo()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", Details: animals.Dog{}}))

	a, err := adoptions.MarkAdopted(ctx, "1", now)
	require.NoError(t, err)
	assert.True(t, a.Adopted)
	assert.Equal(t, now, a.UpdatedAt)

	_, err = adoptions.MarkAdopted(ctx, "1", now.Add(time.Hour))
	assert.ErrorIs(t, err, animals.ErrAlreadyAdopted)

	stored, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, now, stored.UpdatedAt, "rejected adoption must not touch the record")

	_, err = adoptions.MarkAdopted(ctx, "missing", now)
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestAnimalRepo_MarkAdopted_ConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo, adoptions := NewAnimalRepo()
	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", Details: animals.Dog{}}))

	const n = 32
	var wins, rejected atomic.Int32
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := adoptions.MarkAdopted(ctx, "1", time.Now())
			switch err {
			case nil:
				wins.Add(1)
			case animals.ErrAlreadyAdopted:
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
	assert.EqualValues(t, n-1, rejected.Load())
}

func TestAnimalRepo_UpdateHealth(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewAnimalRepo()
	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", HealthStatus: "Unknown", Details: animals.Dog{}}))

	a, err := repo.UpdateHealth(ctx, "1", "Healthy", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Healthy", a.HealthStatus)

	_, err = repo.UpdateHealth(ctx, "2", "Sick", time.Now())
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestAnimalRepo_RegistryCannotMarkAdopted(t *testing.T) {
	ctx := context.Background()
	repo, adoptions := NewAnimalRepo()
	require.NoError(t, repo.Add(ctx, animals.Animal{ID: "1", Name: "Rex", Details: animals.Dog{}}))

	_, ok := repo.(animals.Adoptions)
	assert.False(t, ok, "el registro no debe poder marcar adopciones")

	// Ambos puertos comparten estado.
	_, err := adoptions.MarkAdopted(ctx, "1", time.Now())
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.Adopted)
}
