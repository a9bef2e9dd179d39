package models

import "time"

// DefaultStage is the lifecycle stage of a startup created without one.
const DefaultStage = "Idea"

type Startup struct {
	Id        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Domain    string    `db:"domain" json:"domain"`
	Stage     string    `db:"stage" json:"stage"`
	Funding   float64   `db:"funding" json:"funding"`
	FounderId int64     `db:"founder_id" json:"founder_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
