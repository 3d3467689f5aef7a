package animals

import "time"

// Kind es la especie. Conjunto cerrado: Dog, Cat, Bird.
type Kind string

const (
	KindDog  Kind = "Dog"
	KindCat  Kind = "Cat"
	KindBird Kind = "Bird"
)

// ParseKind acepta cualquier casing ("dog", "DOG").
func ParseKind(s string) (Kind, bool) {
	switch Kind(titleASCII(s)) {
	case KindDog:
		return KindDog, true
	case KindCat:
		return KindCat, true
	case KindBird:
		return KindBird, true
	default:
		return "", false
	}
}

// Details son los atributos propios de cada especie.
// Interfaz sellada: sólo Dog, Cat y Bird la implementan.
type Details interface {
	Kind() Kind
	sealed()
}

type Dog struct {
	Breed   string
	Trained bool
}

type Cat struct {
	Color  string
	Indoor bool
}

type Bird struct {
	WingSpan float64 // metros
	CanFly   bool
}

func (Dog) Kind() Kind  { return KindDog }
func (Cat) Kind() Kind  { return KindCat }
func (Bird) Kind() Kind { return KindBird }

func (Dog) sealed()  {}
func (Cat) sealed()  {}
func (Bird) sealed() {}

// Animal es el registro canónico guardado en el refugio.
// Adopted sólo pasa de false a true, y únicamente vía Adoptions.MarkAdopted.
type Animal struct {
	ID string

	Name         string
	Age          int
	HealthStatus string
	Adopted      bool

	Details Details

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New arma un animal sin adoptar. No sanitiza name/age (eso es del caller).
func New(name string, age int, healthStatus string, details Details) (Animal, error) {
	if details == nil {
		return Animal{}, ErrInvalidInput
	}
	return Animal{
		Name:         name,
		Age:          age,
		HealthStatus: healthStatus,
		Details:      details,
	}, nil
}

func (a Animal) Species() Kind {
	if a.Details == nil {
		return ""
	}
	return a.Details.Kind()
}

// Status es la etiqueta derivada del flag de adopción.
func (a Animal) Status() string {
	if a.Adopted {
		return "Adopted"
	}
	return "Available"
}

func titleASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case i == 0 && c >= 'a' && c <= 'z':
			b[i] = c - 32
		case i > 0 && c >= 'A' && c <= 'Z':
			b[i] = c + 32
		}
	}
	return string(b)
}
