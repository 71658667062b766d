package types

import "time"

// ModuleName identifies a module in the registry and on the command line.
type ModuleName string

// String returns the string form of the module name.
func (n ModuleName) String() string { return string(n) }

// Stamp identifies a persisted record and when it was produced.
type Stamp struct {
	ID string    `json:"id"`
	At time.Time `json:"at"`
}
