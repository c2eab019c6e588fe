package events

const OrderCreatedExchange = "order_created_exchange"

// OrderCreatedEvent is published after an order has been committed. It carries
// the line quantities so inventory or notification collaborators can react;
// nothing in this repo consumes it.
type OrderCreatedEvent struct {
	OrderID    string      `json:"orderId"`
	Username   string      `json:"username"`
	TotalPrice float64     `json:"totalPrice"`
	Products   []OrderItem `json:"products"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}
