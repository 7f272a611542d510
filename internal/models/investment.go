package models

import (
	"time"
)

// Investment represents one recorded investment together with the interest
// figures that were in effect when the client last calculated them. The
// stored figures are whatever the caller supplied; totals are not recomputed
// on write, so they can go stale if a client sends inconsistent values.
//
// StartDate and EndDate hold plain YYYY-MM-DD strings and CalculationDate the
// canonical YYYY-MM-DD HH:MM:SS form produced by pkg/timeparse. Keeping them
// as strings keeps the column contents identical across both SQL backends.
type Investment struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"index;not null;default:0" json:"user_id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Principal        float64   `gorm:"type:decimal(15,2);not null" json:"principal"`
	Rate             float64   `gorm:"type:decimal(5,2);not null" json:"rate"`
	StartDate        string    `gorm:"size:10;not null" json:"start_date"`
	EndDate          *string   `gorm:"size:10" json:"end_date"`
	Months           float64   `gorm:"type:decimal(8,2);default:0" json:"months"`
	SimpleInterest   float64   `gorm:"type:decimal(15,2);default:0" json:"simple_interest"`
	CompoundInterest float64   `gorm:"type:decimal(15,2);default:0" json:"compound_interest"`
	TotalSimple      float64   `gorm:"type:decimal(15,2);default:0" json:"total_simple"`
	TotalCompound    float64   `gorm:"type:decimal(15,2);default:0" json:"total_compound"`
	CalculationDate  *string   `gorm:"size:19" json:"calculation_date"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Investment model
func (Investment) TableName() string {
	return "investments"
}
