package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"

	"github.com/spf13/cobra"
)

func newSessionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive intake: animals, a staff task, an adoption and a health update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			desk, err := st.desk()
			if err != nil {
				return err
			}
			return RunSession(cmd.Context(), desk, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// RunSession recorre el flujo completo de la recepción del refugio.
// Todo el parseo y el render viven acá; el Desk recibe valores tipados.
func RunSession(ctx context.Context, desk Desk, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	if err := intakeAnimals(ctx, desk, p, out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n--- All Animals ---")
	if err := printAnimals(ctx, desk, out); err != nil {
		return err
	}

	if err := staffTask(ctx, desk, p, out); err != nil {
		return err
	}

	adopterID, err := adoption(ctx, desk, p, out)
	if err != nil {
		return err
	}

	return healthFollowUp(ctx, desk, p, out, adopterID)
}

func intakeAnimals(ctx context.Context, desk Desk, p *prompter, out io.Writer) error {
	for i, kind := range []animals.Kind{animals.KindDog, animals.KindCat, animals.KindBird} {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Add a %s\n", kind)

		name, err := p.line("Name: ")
		if err != nil {
			return err
		}
		age, err := p.askInt("Age: ")
		if err != nil {
			return err
		}

		var details animals.Details
		switch kind {
		case animals.KindDog:
			breed, err := p.line("Breed: ")
			if err != nil {
				return err
			}
			trained, err := p.askBool("Trained (true/false): ")
			if err != nil {
				return err
			}
			details = animals.Dog{Breed: breed, Trained: trained}
		case animals.KindCat:
			color, err := p.line("Color: ")
			if err != nil {
				return err
			}
			indoor, err := p.askBool("Indoor (true/false): ")
			if err != nil {
				return err
			}
			details = animals.Cat{Color: color, Indoor: indoor}
		case animals.KindBird:
			span, err := p.askFloat("Wing Span (in meters): ")
			if err != nil {
				return err
			}
			canFly, err := p.askBool("Can Fly (true/false): ")
			if err != nil {
				return err
			}
			details = animals.Bird{WingSpan: span, CanFly: canFly}
		}

		a, err := animals.New(name, age, "Unknown", details)
		if err != nil {
			return err
		}
		if _, err := desk.AddAnimal(ctx, a); err != nil {
			return fmt.Errorf("add %s: %w", kind, err)
		}
	}
	return nil
}

func printAnimals(ctx context.Context, desk Desk, out io.Writer) error {
	list, err := desk.ListAnimals(ctx)
	if err != nil {
		return err
	}
	if list.Empty() {
		fmt.Fprintln(out, "No animals in the shelter.")
		return nil
	}
	fmt.Fprintln(out, "\nList of Animals in Shelter:")
	for a := range list.All() {
		fmt.Fprintln(out, a.Summary())
	}
	return nil
}

func staffTask(ctx context.Context, desk Desk, p *prompter, out io.Writer) error {
	fmt.Fprintln(out, "\nAdd a Staff Member")
	id, err := p.askInt("Staff ID: ")
	if err != nil {
		return err
	}
	name, err := p.line("Name: ")
	if err != nil {
		return err
	}
	role, err := p.line("Role: ")
	if err != nil {
		return err
	}
	m, err := desk.RegisterStaff(ctx, staff.CreateInput{StaffID: id, Name: name, Role: role})
	if err != nil {
		return fmt.Errorf("register staff: %w", err)
	}

	task, err := p.line("Enter task for staff: ")
	if err != nil {
		return err
	}
	if err := desk.AssignTask(ctx, m.ID, task); err != nil {
		return fmt.Errorf("assign task: %w", err)
	}
	fmt.Fprintf(out, "Task assigned to %s: %s\n", m.Name, task)

	tasks, err := desk.ListTasks(ctx, m.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nTasks assigned to %s (%s):\n", m.Name, m.Role)
	if tasks.Empty() {
		fmt.Fprintln(out, "No tasks assigned.")
		return nil
	}
	for t := range tasks.All() {
		fmt.Fprintf(out, "- %s\n", t)
	}
	return nil
}

func adoption(ctx context.Context, desk Desk, p *prompter, out io.Writer) (string, error) {
	fmt.Fprintln(out, "\nAdd an Adopter")
	id, err := p.askInt("Adopter ID: ")
	if err != nil {
		return "", err
	}
	name, err := p.line("Name: ")
	if err != nil {
		return "", err
	}
	contact, err := p.line("Contact Info: ")
	if err != nil {
		return "", err
	}
	ad, err := desk.RegisterAdopter(ctx, adopters.CreateInput{AdopterID: id, Name: name, ContactInfo: contact})
	if err != nil {
		return "", fmt.Errorf("register adopter: %w", err)
	}

	target, err := p.line("Enter name of animal to adopt: ")
	if err != nil {
		return "", err
	}

	a, err := desk.PerformAdoption(ctx, ad.ID, target)
	switch {
	case errors.Is(err, animals.ErrNotFound):
		fmt.Fprintln(out, "Animal not found.")
	case errors.Is(err, animals.ErrAlreadyAdopted):
		name := target
		if cur, ferr := desk.FindAnimal(ctx, target); ferr == nil {
			name = cur.Name
		}
		fmt.Fprintf(out, "%s is already adopted.\n", name)
	case err != nil:
		return "", fmt.Errorf("adopt: %w", err)
	default:
		fmt.Fprintf(out, "%s has adopted %s\n", ad.Name, a.Name)
	}

	adopted, err := desk.ListAdopted(ctx, ad.ID)
	if err != nil {
		return "", err
	}
	if adopted.Empty() {
		fmt.Fprintln(out, "No animals adopted yet.")
		return ad.ID, nil
	}
	fmt.Fprintf(out, "\nAdopted Animals by %s:\n", ad.Name)
	for a := range adopted.All() {
		fmt.Fprintln(out, a.Short())
	}
	return ad.ID, nil
}

func healthFollowUp(ctx context.Context, desk Desk, p *prompter, out io.Writer, adopterID string) error {
	adopted, err := desk.ListAdopted(ctx, adopterID)
	if err != nil {
		return err
	}

	var first animals.Animal
	found := false
	for a := range adopted.All() {
		first, found = a, true
		break
	}
	if !found {
		return nil
	}

	status, err := p.line(fmt.Sprintf("\nEnter new health status for %s: ", first.Name))
	if err != nil {
		return err
	}

	if _, err := desk.UpdateHealth(ctx, first.Name, status); err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			fmt.Fprintf(out, "Animal not found: %s\n", first.Name)
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "Updated %s's health status to %q.\n", first.Name, status)
	return nil
}
