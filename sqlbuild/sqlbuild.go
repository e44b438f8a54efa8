// Package sqlbuild arma cláusulas WHERE y SET a partir de predicados tipados.
// Cada valor viaja como parámetro ligado; nada se interpola en el texto SQL.
package sqlbuild

import "strings"

// Pred es un predicado booleano sobre columnas. Interfaz cerrada:
// solo los tipos de este paquete la implementan.
type Pred interface {
	isPred()
}

type Op string

const (
	OpEq Op = "="
	// OpContains: substring sin distinguir mayúsculas (LIKE sobre lower()).
	OpContains Op = "contains"
)

// Filter es la hoja del árbol: una condición sobre una columna.
type Filter struct {
	Col   string
	Op    Op
	Value any
}

func (Filter) isPred() {}

// And combina predicados con AND (apuntar a filas concretas).
type And []Pred

func (And) isPred() {}

// Or combina predicados con OR ("coincide con cualquiera de los criterios").
type Or []Pred

func (Or) isPred() {}

func Eq(col string, v any) Filter { return Filter{Col: col, Op: OpEq, Value: v} }

func Contains(col, substr string) Filter {
	return Filter{Col: col, Op: OpContains, Value: substr}
}

// Build devuelve la cláusula y sus parámetros en orden. Un And/Or vacío
// (o con hijos vacíos) produce cláusula vacía.
func Build(p Pred) (string, []any) {
	switch v := p.(type) {
	case Filter:
		if v.Op == OpContains {
			// los comodines se concatenan en SQL, el valor queda ligado tal cual
			return "lower(" + v.Col + ") LIKE '%'||lower(?)||'%'", []any{v.Value}
		}
		return v.Col + " " + string(v.Op) + " ?", []any{v.Value}
	case And:
		return join(v, " AND ")
	case Or:
		return join(v, " OR ")
	}
	return "", nil
}

func join(preds []Pred, sep string) (string, []any) {
	var parts []string
	var args []any
	for _, p := range preds {
		c, a := Build(p)
		if c == "" {
			continue
		}
		parts = append(parts, c)
		args = append(args, a...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	if len(parts) == 1 {
		return parts[0], args
	}
	return "(" + strings.Join(parts, sep) + ")", args
}

// Assign es una asignación col=valor para un UPDATE parcial.
type Assign struct {
	Col   string
	Value any
}

func Set(col string, v any) Assign { return Assign{Col: col, Value: v} }

// BuildSet arma la cláusula SET. Cero asignaciones devuelve cláusula vacía:
// el llamador distingue "no hay nada que actualizar" de un error.
func BuildSet(assigns []Assign) (string, []any) {
	if len(assigns) == 0 {
		return "", nil
	}
	cols := make([]string, 0, len(assigns))
	args := make([]any, 0, len(assigns))
	for _, a := range assigns {
		cols = append(cols, a.Col+" = ?")
		args = append(args, a.Value)
	}
	return strings.Join(cols, ", "), args
}
