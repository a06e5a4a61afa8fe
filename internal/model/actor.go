package model

import "fmt"

type Actor struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

func (a *Actor) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type UpdateActorParams struct {
	FirstName *string
	LastName  *string
}
