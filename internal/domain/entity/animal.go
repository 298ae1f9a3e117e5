package entity

// Animal registro de la tabla animals. AnimalID lo asigna la base de datos.
type Animal struct {
	AnimalID int64
	Species  string
	Name     string
	Age      int
}
