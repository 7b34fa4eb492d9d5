// Package kernel holds the value objects shared by every dealership aggregate:
// UUID identifiers and non-negative Money amounts.
package kernel
