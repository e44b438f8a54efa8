package directory

type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// ClientPatch describe una actualización parcial: los campos nil no se tocan.
// Phones nil deja los teléfonos como están; un slice no nil (incluso vacío)
// reemplaza la lista completa.
type ClientPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phones    []string
}

func (p ClientPatch) empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Phones == nil
}

// FindCriteria: campos vacíos se omiten; los presentes se combinan con OR.
type FindCriteria struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
