// Package client habla con la API del refugio y expone las mismas operaciones
// que shelter.Shelter, traduciendo status HTTP a los errores de dominio.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"
	"animal-shelter/internal/platform/httpclient"
	"animal-shelter/internal/platform/seq"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func (c *Client) AddAnimal(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	var out animals.Record
	if err := c.http.DoJSON(ctx, http.MethodPost, "/animals", animals.ToRecord(a), &out); err != nil {
		return animals.Animal{}, mapAnimalErr(err)
	}
	return out.Animal()
}

func (c *Client) FindAnimal(ctx context.Context, name string) (animals.Animal, error) {
	var out animals.Record
	path := "/animals?name=" + url.QueryEscape(name)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return animals.Animal{}, mapAnimalErr(err)
	}
	return out.Animal()
}

func (c *Client) ListAnimals(ctx context.Context) (seq.List[animals.Animal], error) {
	var out seq.List[animals.Record]
	if err := c.http.DoJSON(ctx, http.MethodGet, "/animals", nil, &out); err != nil {
		return seq.List[animals.Animal]{}, mapAnimalErr(err)
	}
	return fromRecords(out)
}

func (c *Client) RegisterStaff(ctx context.Context, in staff.CreateInput) (staff.Member, error) {
	var out staff.MemberResponse
	body := map[string]any{"staff_id": in.StaffID, "name": in.Name, "role": in.Role}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/staff", body, &out); err != nil {
		return staff.Member{}, mapStaffErr(err)
	}
	return out.Member(), nil
}

func (c *Client) AssignTask(ctx context.Context, staffID, task string) error {
	path := "/staff/" + url.PathEscape(staffID) + "/tasks"
	if err := c.http.DoJSON(ctx, http.MethodPost, path, map[string]string{"task": task}, nil); err != nil {
		return mapStaffErr(err)
	}
	return nil
}

func (c *Client) ListTasks(ctx context.Context, staffID string) (seq.List[string], error) {
	var out seq.List[string]
	if err := c.http.DoJSON(ctx, http.MethodGet, "/staff/"+url.PathEscape(staffID)+"/tasks", nil, &out); err != nil {
		return seq.List[string]{}, mapStaffErr(err)
	}
	return out, nil
}

func (c *Client) RegisterAdopter(ctx context.Context, in adopters.CreateInput) (adopters.Adopter, error) {
	var out adopters.AdopterResponse
	body := map[string]any{"adopter_id": in.AdopterID, "name": in.Name, "contact_info": in.ContactInfo}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/adopters", body, &out); err != nil {
		return adopters.Adopter{}, mapAdopterErr(err)
	}
	return out.Adopter(), nil
}

func (c *Client) PerformAdoption(ctx context.Context, adopterID, animalName string) (animals.Animal, error) {
	var out animals.Record
	body := map[string]string{"adopter": adopterID, "animal_name": animalName}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/adoptions", body, &out); err != nil {
		return animals.Animal{}, mapAdoptionErr(err)
	}
	return out.Animal()
}

func (c *Client) ListAdopted(ctx context.Context, adopterID string) (seq.List[animals.Animal], error) {
	var out seq.List[animals.Record]
	if err := c.http.DoJSON(ctx, http.MethodGet, "/adopters/"+url.PathEscape(adopterID)+"/animals", nil, &out); err != nil {
		return seq.List[animals.Animal]{}, mapAdopterErr(err)
	}
	return fromRecords(out)
}

func (c *Client) UpdateHealth(ctx context.Context, name, status string) (animals.Animal, error) {
	var out animals.Record
	body := map[string]string{"name": name, "health_status": status}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/health-updates", body, &out); err != nil {
		return animals.Animal{}, mapAnimalErr(err)
	}
	return out.Animal()
}

func fromRecords(l seq.List[animals.Record]) (seq.List[animals.Animal], error) {
	items := make([]animals.Animal, 0, l.Len())
	for r := range l.All() {
		a, err := r.Animal()
		if err != nil {
			return seq.List[animals.Animal]{}, fmt.Errorf("decode animal %s: %w", r.ID, err)
		}
		items = append(items, a)
	}
	return seq.Of(items), nil
}

func mapAnimalErr(err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", animals.ErrNotFound, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", animals.ErrInvalidInput, err)
	default:
		return err
	}
}

func mapStaffErr(err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", staff.ErrNotFound, err)
	default:
		return err
	}
}

func mapAdopterErr(err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", adopters.ErrNotFound, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", adopters.ErrInvalidInput, err)
	default:
		return err
	}
}

// /adoptions responde 404 tanto para animal como para adoptante; el body los distingue.
func mapAdoptionErr(err error) error {
	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return err
	}
	switch he.StatusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w: %v", animals.ErrAlreadyAdopted, err)
	case http.StatusNotFound:
		if strings.Contains(he.Body, "adopter") {
			return fmt.Errorf("%w: %v", adopters.ErrNotFound, err)
		}
		return fmt.Errorf("%w: %v", animals.ErrNotFound, err)
	default:
		return err
	}
}
