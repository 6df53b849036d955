// Package modules groups the mountable dashboard modules for composition.
package modules

import (
	module "github.com/aislehq/aisle/internal/services/web/module"
	"github.com/aislehq/aisle/internal/services/web/modules/clients"
	"github.com/aislehq/aisle/internal/services/web/modules/gifts"
	"github.com/aislehq/aisle/internal/services/web/modules/hotels"
	"github.com/aislehq/aisle/internal/services/web/modules/public"
)

// DefaultPublicModules returns the modules mounted without authentication.
func DefaultPublicModules() []module.Module {
	return []module.Module{
		public.New(),
	}
}

// DefaultProtectedModules returns the modules mounted behind the dashboard
// auth guard.
func DefaultProtectedModules() []module.Module {
	return []module.Module{
		hotels.New(),
		clients.New(),
		gifts.New(),
	}
}
