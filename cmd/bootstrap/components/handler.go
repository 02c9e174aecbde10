package components

import (
	"carevacay/internal/handler"
	"carevacay/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewConversationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
