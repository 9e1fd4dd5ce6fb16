package models

const (
	OrderStatusPending = "pending"
	OrderStatusRemoved = "removed"
)
