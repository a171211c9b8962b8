// Package activitylog provides the append-only audit trail of mover state
// transitions. One Entry is written per successful transition, inside the
// same transaction as the mover update, and is never modified afterwards.
package activitylog
