// Package offer models vehicle listings put up for sale by the dealership.
//
// An offer's status is owned by the order workflow: placing an order reserves
// the offer, completing it sells the offer, cancelling or withdrawing it
// releases the offer back to available. Admin edits of the status go through
// ChangeStatus and are guarded by the caller against active orders.
package offer
