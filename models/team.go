package models

type Team struct {
	ID         int    `json:"id" db:"id"`
	DivisionID int    `json:"division_id" db:"division_id"`
	Number     *int   `json:"number,omitempty" db:"number"`
	Name       string `json:"name" db:"name"`
}
