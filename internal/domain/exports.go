package domain

import (
	interfaces "toolbox/internal/domain/interfaces"
	types "toolbox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ModuleName = types.ModuleName
	Stamp      = types.Stamp
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ResultStore = interfaces.ResultStore
	Logger      = interfaces.Logger
)
