package staff_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"animal-shelter/internal/adapters/storage/memory"
	"animal-shelter/internal/domain/staff"
)

func TestService_Tasks(t *testing.T) {
	ctx := context.Background()
	svc := staff.NewService(memory.NewStaffRepo())

	m, err := svc.Create(ctx, staff.CreateInput{StaffID: 1, Name: " Sam ", Role: "Caretaker"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if m.Name != "Sam" || m.ID == "" {
		t.Fatalf("expected trimmed name and a handle, got %+v", m)
	}

	tasks, _ := svc.ListTasks(ctx, m.ID)
	if !tasks.Empty() {
		t.Fatalf("expected no tasks yet")
	}

	for _, task := range []string{"Feed animals", "", "Feed animals"} {
		if err := svc.AssignTask(ctx, m.ID, task); err != nil {
			t.Fatalf("AssignTask(%q) error: %v", task, err)
		}
	}

	tasks, err = svc.ListTasks(ctx, m.ID)
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	got := slices.Collect(tasks.All())
	if !slices.Equal(got, []string{"Feed animals", "", "Feed animals"}) {
		t.Fatalf("expected tasks in assignment order, got %q", got)
	}
}

func TestService_UnknownMember(t *testing.T) {
	ctx := context.Background()
	svc := staff.NewService(memory.NewStaffRepo())

	if err := svc.AssignTask(ctx, "missing", "x"); !errors.Is(err, staff.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListTasks(ctx, "missing"); !errors.Is(err, staff.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ReusedStaffID(t *testing.T) {
	ctx := context.Background()
	svc := staff.NewService(memory.NewStaffRepo())

	sam, _ := svc.Create(ctx, staff.CreateInput{StaffID: 1, Name: "Sam"})
	lee, err := svc.Create(ctx, staff.CreateInput{StaffID: 1, Name: "Lee"})
	if err != nil {
		t.Fatalf("expected reused staff id to be accepted, got %v", err)
	}
	if sam.ID == lee.ID {
		t.Fatalf("expected distinct handles")
	}

	_ = svc.AssignTask(ctx, sam.ID, "Walk dogs")
	leeTasks, _ := svc.ListTasks(ctx, lee.ID)
	if !leeTasks.Empty() {
		t.Fatalf("tasks must stay with their own member")
	}
}
