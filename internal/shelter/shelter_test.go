package shelter

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"
	"animal-shelter/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShelter() (*Shelter, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})
	return NewInMemory(log), &buf
}

func mustAdd(t *testing.T, s *Shelter, name string, d animals.Details) animals.Animal {
	t.Helper()
	a, err := animals.New(name, 3, "Unknown", d)
	require.NoError(t, err)
	added, err := s.AddAnimal(context.Background(), a)
	require.NoError(t, err)
	return added
}

func mustRegister(t *testing.T, s *Shelter, adopterID int, name string) adopters.Adopter {
	t.Helper()
	ad, err := s.RegisterAdopter(context.Background(), adopters.CreateInput{AdopterID: adopterID, Name: name, ContactInfo: name + "@x.com"})
	require.NoError(t, err)
	return ad
}

func healthOf(a animals.Animal) string {
	for f := range a.Describe() {
		if f.Label == "Health" {
			return f.Value
		}
	}
	return ""
}

func TestShelter_AdoptThenUpdateHealth(t *testing.T) {
	ctx := context.Background()
	s, logs := newTestShelter()

	mustAdd(t, s, "Rex", animals.Dog{Breed: "Labrador", Trained: true})

	found, err := s.FindAnimal(ctx, "rex")
	require.NoError(t, err)
	assert.Equal(t, "Rex", found.Name)

	ana := mustRegister(t, s, 1, "Ana")

	adopted, err := s.PerformAdoption(ctx, ana.ID, "rex")
	require.NoError(t, err)
	assert.True(t, adopted.Adopted)

	_, err = s.UpdateHealth(ctx, "Rex", "Vaccinated")
	require.NoError(t, err)

	list, err := s.ListAdopted(ctx, ana.ID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	for a := range list.All() {
		assert.Equal(t, "Vaccinated", healthOf(a))
		assert.Equal(t, "Adopted", a.Status())
	}

	assert.Contains(t, logs.String(), `"msg":"animal adopted"`)
	assert.Contains(t, logs.String(), `"msg":"health updated"`)
}

func TestShelter_SecondAdoptionRejected(t *testing.T) {
	ctx := context.Background()
	s, logs := newTestShelter()
	mustAdd(t, s, "Rex", animals.Dog{})
	ana := mustRegister(t, s, 1, "Ana")
	bo := mustRegister(t, s, 2, "Bo")

	_, err := s.PerformAdoption(ctx, ana.ID, "Rex")
	require.NoError(t, err)

	_, err = s.PerformAdoption(ctx, bo.ID, "Rex")
	assert.ErrorIs(t, err, animals.ErrAlreadyAdopted)

	one, _ := s.ListAdopted(ctx, ana.ID)
	two, _ := s.ListAdopted(ctx, bo.ID)
	assert.Equal(t, 1, one.Len())
	assert.True(t, two.Empty())
	assert.Contains(t, logs.String(), `"msg":"animal already adopted"`)
}

func TestShelter_AdoptionRace(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestShelter()
	mustAdd(t, s, "Rex", animals.Dog{})
	racers := []adopters.Adopter{mustRegister(t, s, 1, "Ana"), mustRegister(t, s, 2, "Bo")}

	errs := make([]error, len(racers))
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.PerformAdoption(ctx, racers[i].ID, "Rex")
		}()
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, animals.ErrAlreadyAdopted):
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)
}

func TestShelter_UpdateHealth_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestShelter()
	mustAdd(t, s, "Rex", animals.Dog{})

	_, err := s.UpdateHealth(ctx, "Nonexistent", "Sick")
	assert.ErrorIs(t, err, animals.ErrNotFound)

	list, _ := s.ListAnimals(ctx)
	for a := range list.All() {
		assert.Equal(t, "Unknown", a.HealthStatus)
	}
}

func TestShelter_PerformAdoption_Errors(t *testing.T) {
	ctx := context.Background()
	s, logs := newTestShelter()
	mustAdd(t, s, "Rex", animals.Dog{})
	ana := mustRegister(t, s, 1, "Ana")

	_, err := s.PerformAdoption(ctx, ana.ID, "Garfield")
	assert.ErrorIs(t, err, animals.ErrNotFound)
	assert.Contains(t, logs.String(), `"msg":"animal not found"`)

	_, err = s.PerformAdoption(ctx, "missing", "Rex")
	assert.ErrorIs(t, err, adopters.ErrNotFound)

	rex, _ := s.FindAnimal(ctx, "Rex")
	assert.False(t, rex.Adopted)
}

func TestShelter_EmptyIndicators(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestShelter()

	animalsList, err := s.ListAnimals(ctx)
	require.NoError(t, err)
	assert.True(t, animalsList.Empty())

	sam, err := s.RegisterStaff(ctx, staff.CreateInput{StaffID: 1, Name: "Sam", Role: "Vet"})
	require.NoError(t, err)
	tasks, err := s.ListTasks(ctx, sam.ID)
	require.NoError(t, err)
	assert.True(t, tasks.Empty())

	require.NoError(t, s.AssignTask(ctx, sam.ID, "Check vaccines"))
	tasks, _ = s.ListTasks(ctx, sam.ID)
	assert.False(t, tasks.Empty())

	assert.ErrorIs(t, s.AssignTask(ctx, "missing", "x"), staff.ErrNotFound)
}

func TestShelter_ListAnimals_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestShelter()
	mustAdd(t, s, "Rex", animals.Dog{})
	mustAdd(t, s, "Whiskers", animals.Cat{})
	mustAdd(t, s, "Tweety", animals.Bird{WingSpan: 0.3})

	list, err := s.ListAnimals(ctx)
	require.NoError(t, err)

	var names []string
	for a := range list.All() {
		names = append(names, a.Name)
	}
	assert.Equal(t, "Rex,Whiskers,Tweety", strings.Join(names, ","))
}

func TestShelter_SameAdopterIDTwice(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestShelter()
	mustAdd(t, s, "Rex", animals.Dog{})
	mustAdd(t, s, "Whiskers", animals.Cat{})

	ana, err := s.RegisterAdopter(ctx, adopters.CreateInput{AdopterID: 1, Name: "Ana"})
	require.NoError(t, err)
	bo, err := s.RegisterAdopter(ctx, adopters.CreateInput{AdopterID: 1, Name: "Bo"})
	require.NoError(t, err)
	require.NotEqual(t, ana.ID, bo.ID)

	_, err = s.PerformAdoption(ctx, ana.ID, "Rex")
	require.NoError(t, err)
	_, err = s.PerformAdoption(ctx, bo.ID, "Whiskers")
	require.NoError(t, err)

	anaList, _ := s.ListAdopted(ctx, ana.ID)
	boList, _ := s.ListAdopted(ctx, bo.ID)
	require.Equal(t, 1, anaList.Len())
	require.Equal(t, 1, boList.Len())
	for a := range anaList.All() {
		assert.Equal(t, "Rex", a.Name)
	}
	for a := range boList.All() {
		assert.Equal(t, "Whiskers", a.Name)
	}
}
