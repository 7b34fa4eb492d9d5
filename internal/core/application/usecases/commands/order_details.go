package commands

import (
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
)

// OrderDetails is an order as returned by the workflow commands: the order plus
// the offer and visitor it references, as committed. Offer is nil for outside
// orders, Visitor is nil when the order has no visitor.
type OrderDetails struct {
	Order   *order.Order
	Offer   *offer.Offer
	Visitor *visitor.Visitor
}
