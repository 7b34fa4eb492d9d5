// Package payment models money transfers recorded against an order.
// Payments never gate the order lifecycle.
package payment
