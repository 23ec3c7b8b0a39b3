package entity

// Category agrupa ítems del menú (bebidas, entradas, postres...).
// No es dueña de sus MenuItems: la relación inversa es solo de consulta.
type Category struct {
	ID          int64
	Name        string  // único
	Description *string // nil = sin descripción
}
