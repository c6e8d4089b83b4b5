package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation is a single compatibility submission, owned by the account
// whose pin matches. Records are never updated, only created and deleted.
type Calculation struct {
	ID  uuid.UUID `db:"id" json:"id"`
	Pin string    `db:"pin" json:"idPin"`

	YourName       string `db:"your_name" json:"yourName"`
	YourAge        int    `db:"your_age" json:"yourAge"`
	YourEducation  string `db:"your_education" json:"yourEducation"`
	CrushName      string `db:"crush_name" json:"crushName"`
	CrushAge       int    `db:"crush_age" json:"crushAge"`
	CrushEducation string `db:"crush_education" json:"crushEducation"`

	RelationshipMonths int `db:"relationship_months" json:"relationshipMonths"`
	RelationshipDays   int `db:"relationship_days" json:"relationshipDays"`

	LovePercentage int       `db:"love_percentage" json:"lovePercentage"`
	CalculatedAt   time.Time `db:"calculated_at" json:"calculatedAt"`
}
