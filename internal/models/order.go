package models

import "time"

type Order struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	Status       string    `json:"status"`
}

// Cancel marks the order as removed. Persistence is the caller's job.
func (o *Order) Cancel() {
	o.Status = OrderStatusRemoved
}

func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusRemoved
}
