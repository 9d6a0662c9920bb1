package schema

import "time"

type (
	Product struct {
		ID          ID      `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Price       float64 `json:"price"`
	}

	Order struct {
		ID         ID        `json:"id"`
		CustomerID ID        `json:"customer_id,omitempty"`
		TotalPrice float64   `json:"total_price"`
		Status     string    `json:"status,omitempty"`
		CreatedAt  time.Time `json:"created_at,omitempty"`
		UpdatedAt  time.Time `json:"updated_at,omitempty"`
	}
)
