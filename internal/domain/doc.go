// Package domain defines the core data models and contracts shared by every
// toolbox module. It contains plain types, the module contract, and the error
// taxonomy only; concrete stores and modules live elsewhere.
package domain
