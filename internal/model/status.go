package model

// OrderStatus follows a fixed forward progression. Cancelled is absorbing
// and reachable from any non-terminal state.
type OrderStatus string

const (
	OrderNotProcessed OrderStatus = "not_processed"
	OrderProcessed    OrderStatus = "processed"
	OrderShipping     OrderStatus = "shipping"
	OrderDelivered    OrderStatus = "delivered"
	OrderCancelled    OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderNotProcessed: 1,
	OrderProcessed:    2,
	OrderShipping:     3,
	OrderDelivered:    4,
	OrderCancelled:    5,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderNotProcessed: "Recibido",
	OrderProcessed:    "Empacando",
	OrderShipping:     "En camino",
	OrderDelivered:    "Entregado",
	OrderCancelled:    "Cancelado",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Terminal reports whether the order can no longer change status.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition enforces monotonic progression: the status never moves
// backwards, except that cancellation is allowed from any non-terminal state.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if !s.Valid() || !to.Valid() || s.Terminal() {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	return orderStatusRank[to] >= orderStatusRank[s]
}

// PayoutStatus is linear: waiting_confirmation → pending_clearance →
// available → released. Cancelled exists for rendering but has no
// transition path.
type PayoutStatus string

const (
	PayoutWaitingConfirmation PayoutStatus = "waiting_confirmation"
	PayoutPendingClearance    PayoutStatus = "pending_clearance"
	PayoutAvailable           PayoutStatus = "available"
	PayoutReleased            PayoutStatus = "released"
	PayoutCancelled           PayoutStatus = "cancelled"
)

var payoutStatusLabels = map[PayoutStatus]string{
	PayoutWaitingConfirmation: "Esperando confirmación",
	PayoutPendingClearance:    "En verificación",
	PayoutAvailable:           "Disponible",
	PayoutReleased:            "Transferido",
	PayoutCancelled:           "Cancelado",
}

var payoutNextStatus = map[PayoutStatus]PayoutStatus{
	PayoutWaitingConfirmation: PayoutPendingClearance,
	PayoutPendingClearance:    PayoutAvailable,
	PayoutAvailable:           PayoutReleased,
}

func (s PayoutStatus) Valid() bool {
	_, ok := payoutStatusLabels[s]
	return ok
}

func (s PayoutStatus) Label() string {
	if label, ok := payoutStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CanTransition allows exactly one forward step per state.
func (s PayoutStatus) CanTransition(to PayoutStatus) bool {
	next, ok := payoutNextStatus[s]
	return ok && next == to
}
