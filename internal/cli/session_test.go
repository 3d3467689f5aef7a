package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/shelter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func intake() []string {
	return []string{
		"Rex", "3", "Labrador", "true",
		"Whiskers", "2", "Gray", "false",
		"Tweety", "1", "0.3", "true",
	}
}

func TestRunSession_FullWalkthrough(t *testing.T) {
	desk := shelter.NewInMemory(logger.Nop())
	in := script(append(intake(),
		"1", "Sam", "Caretaker", "Feed animals",
		"10", "Ana", "ana@example.com", "rex",
		"Healthy",
	)...)
	var out bytes.Buffer

	require.NoError(t, RunSession(context.Background(), desk, in, &out))

	got := out.String()
	assert.Contains(t, got, "--- All Animals ---")
	assert.Contains(t, got, "Rex - Dog - Breed: Labrador, Trained: true, Status: Available")
	assert.Contains(t, got, "Whiskers - Cat - Color: Gray, Indoor: false, Status: Available")
	assert.Contains(t, got, "Tweety - Bird - Wing Span: 0.3m, Can Fly: true, Status: Available")
	assert.Contains(t, got, "Task assigned to Sam: Feed animals")
	assert.Contains(t, got, "Tasks assigned to Sam (Caretaker):\n- Feed animals")
	assert.Contains(t, got, "Ana has adopted Rex")
	assert.Contains(t, got, "Adopted Animals by Ana:\nRex (Dog)")
	assert.Contains(t, got, `Updated Rex's health status to "Healthy".`)

	rex, err := desk.FindAnimal(context.Background(), "Rex")
	require.NoError(t, err)
	assert.True(t, rex.Adopted)
	assert.Equal(t, "Healthy", rex.HealthStatus)
}

func TestRunSession_AnimalNotFound_SkipsHealthUpdate(t *testing.T) {
	desk := shelter.NewInMemory(logger.Nop())
	in := script(append(intake(),
		"1", "Sam", "Caretaker", "Clean cages",
		"10", "Ana", "ana@example.com", "Garfield",
	)...)
	var out bytes.Buffer

	require.NoError(t, RunSession(context.Background(), desk, in, &out))

	got := out.String()
	assert.Contains(t, got, "Animal not found.")
	assert.Contains(t, got, "No animals adopted yet.")
	assert.NotContains(t, got, "Enter new health status")
}

func TestRunSession_AlreadyAdopted(t *testing.T) {
	ctx := context.Background()
	desk := shelter.NewInMemory(logger.Nop())

	// Un adoptante previo se queda con el único gato.
	cat, err := animals.New("Whiskers", 2, "Unknown", animals.Cat{Color: "Gray"})
	require.NoError(t, err)
	_, err = desk.AddAnimal(ctx, cat)
	require.NoError(t, err)
	bo, err := desk.RegisterAdopter(ctx, adopters.CreateInput{AdopterID: 10, Name: "Bo", ContactInfo: "bo@example.com"})
	require.NoError(t, err)
	_, err = desk.PerformAdoption(ctx, bo.ID, "Whiskers")
	require.NoError(t, err)

	in := script(append(intake(),
		"1", "Sam", "Caretaker", "Walk dogs",
		"10", "Ana", "ana@example.com", "whiskers",
	)...)
	var out bytes.Buffer

	require.NoError(t, RunSession(ctx, desk, in, &out))

	got := out.String()
	assert.Contains(t, got, "Whiskers - Cat - Color: Gray, Indoor: false, Status: Adopted")
	assert.Contains(t, got, "Whiskers is already adopted.")
	assert.Contains(t, got, "No animals adopted yet.")
}

func TestRunSession_RepromptsMalformedNumbers(t *testing.T) {
	desk := shelter.NewInMemory(logger.Nop())
	in := script(
		"Rex", "three", "3", "Labrador", "yes", "true",
		"Whiskers", "2", "Gray", "false",
		"Tweety", "1", "-2", "0.3", "true",
		"1", "Sam", "Caretaker", "Feed animals",
		"10", "Ana", "ana@example.com", "Tweety",
		"Recovering",
	)
	var out bytes.Buffer

	require.NoError(t, RunSession(context.Background(), desk, in, &out))

	got := out.String()
	assert.Contains(t, got, "Please enter a whole number.")
	assert.Contains(t, got, "Please enter true or false.")
	assert.Contains(t, got, "Please enter a non-negative number.")
	assert.Contains(t, got, "Ana has adopted Tweety")
	assert.Contains(t, got, `Updated Tweety's health status to "Recovering".`)
}

func TestRunSession_TruncatedInput(t *testing.T) {
	desk := shelter.NewInMemory(logger.Nop())
	var out bytes.Buffer

	err := RunSession(context.Background(), desk, script("Rex", "3"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
