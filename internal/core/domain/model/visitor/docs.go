// Package visitor models prospective buyers and the offers they are interested in.
package visitor
