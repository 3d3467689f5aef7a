package animals

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Field es un par etiqueta/valor de la ficha de un animal.
type Field struct {
	Label string
	Value string
}

// Describe recorre la ficha: campos comunes, campos de la especie y estado.
// Se evalúa en cada recorrido (refleja el estado actual del valor).
func (a Animal) Describe() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		common := []Field{
			{Label: "Name", Value: a.Name},
			{Label: "Species", Value: string(a.Species())},
			{Label: "Age", Value: strconv.Itoa(a.Age)},
			{Label: "Health", Value: a.HealthStatus},
		}
		for _, f := range common {
			if !yield(f) {
				return
			}
		}
		for _, f := range kindFields(a.Details) {
			if !yield(f) {
				return
			}
		}
		yield(Field{Label: "Status", Value: a.Status()})
	}
}

func kindFields(d Details) []Field {
	switch v := d.(type) {
	case Dog:
		return []Field{
			{Label: "Breed", Value: v.Breed},
			{Label: "Trained", Value: strconv.FormatBool(v.Trained)},
		}
	case Cat:
		return []Field{
			{Label: "Color", Value: v.Color},
			{Label: "Indoor", Value: strconv.FormatBool(v.Indoor)},
		}
	case Bird:
		return []Field{
			{Label: "Wing Span", Value: FormatWingSpan(v.WingSpan)},
			{Label: "Can Fly", Value: strconv.FormatBool(v.CanFly)},
		}
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("animals: unknown details type %T", d))
	}
}

// FormatWingSpan siempre con al menos un decimal: 1 -> "1.0m".
func FormatWingSpan(m float64) string {
	s := strconv.FormatFloat(m, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "m"
}

// Summary: "Rex - Dog - Breed: Labrador, Trained: true, Status: Available".
func (a Animal) Summary() string {
	var attrs []string
	for _, f := range kindFields(a.Details) {
		attrs = append(attrs, f.Label+": "+f.Value)
	}
	attrs = append(attrs, "Status: "+a.Status())
	return a.Name + " - " + string(a.Species()) + " - " + strings.Join(attrs, ", ")
}

// Short: "Rex (Dog)", como en el listado de adoptados.
func (a Animal) Short() string {
	return a.Name + " (" + string(a.Species()) + ")"
}
