package models

// OrderStatus represents the lifecycle status of an order as reported by the
// order service. The client never advances a status on its own; it only
// reflects the last value it fetched.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// StatusPipeline is the fixed forward-only delivery progression. Cancelled is
// not part of the pipeline; it is a terminal side-exit reachable only from
// pending or confirmed.
var StatusPipeline = [5]OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:        {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:      {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing:      {StatusOutForDelivery: true},
	StatusOutForDelivery: {StatusDelivered: true},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// CanTransition reports whether from -> to is a legal single step.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// PipelineIndex returns the position of s in StatusPipeline. The second
// return is false for cancelled and for unknown statuses.
func PipelineIndex(s OrderStatus) (int, bool) {
	for i, step := range StatusPipeline {
		if step == s {
			return i, true
		}
	}
	return -1, false
}

// IsTerminal reports whether no further transition can follow s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsValid reports whether s is one of the statuses the order service emits.
func (s OrderStatus) IsValid() bool {
	_, ok := validNext[s]
	return ok
}
