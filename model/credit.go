package model

import "time"

type CarbonCredit struct {
	ID                 string    `db:"id"`
	ProjectName        string    `db:"project_name"`
	Supplier           string    `db:"supplier"`
	CreditType         string    `db:"credit_type"`
	Vintage            int       `db:"vintage"`
	QuantityAvailable  int       `db:"quantity_available"`
	PricePerTon        float64   `db:"price_per_ton"`
	Location           string    `db:"location"`
	VerificationStatus string    `db:"verification_status"`
	Methodology        string    `db:"methodology"`
	PublicDetails      JSONMap   `db:"public_details"`
	PrivateDetails     JSONMap   `db:"private_details"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
