package entity

import "time"

// Person datos de identidad de una persona física. La CURP es su llave natural:
// re-sembrar con la misma CURP nunca crea un duplicado.
type Person struct {
	ID        int64
	Name      string
	Surname   string
	Lastname  *string // segundo apellido, opcional
	BirthDate time.Time
	CURP      string
}
