package models

const (
	EventTrafficJamDetected = "TrafficJamDetected"
	EventOrderCreated       = "OrderCreated"
	EventOrderCancelled     = "OrderCancelled"
)
