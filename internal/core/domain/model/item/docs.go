// Package item provides the Item entity for the movers system.
//
// An Item is a weighted object that can be referenced by a mover's cargo
// list. Items are immutable once created; the capacity check over their
// weights happens in the domain services layer, not here.
package item
