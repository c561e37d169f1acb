package components

import (
	"roomstay/internal/handler"
	"roomstay/internal/handler/api"
	"roomstay/internal/handler/middleware"
	"roomstay/internal/infra/observability"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewReviewHandler,
		api.NewDiscountHandler,
		middleware.NewAuthMiddleware,
		observability.InitRegistry,
		func(auth *api.AuthHandler, booking *api.BookingHandler, room *api.RoomHandler, review *api.ReviewHandler, discount *api.DiscountHandler) handler.Handlers {
			return handler.Handlers{
				Auth:     auth,
				Booking:  booking,
				Room:     room,
				Review:   review,
				Discount: discount,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
