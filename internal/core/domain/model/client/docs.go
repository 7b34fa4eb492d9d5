// Package client models buyers with a financial relationship with the dealership.
// Totals change only through the payment ledger.
package client
