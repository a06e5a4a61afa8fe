package model

type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type UpdateGenreParams struct {
	Name *string
}
