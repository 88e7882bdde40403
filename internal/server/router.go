package server

import (
	"net/http"

	"messhall/internal/auth"
	mealctrl "messhall/internal/meal/controller"
	orderctrl "messhall/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(orderCtrl *orderctrl.OrderController, mealCtrl *mealctrl.MealController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(auth.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.Create)
		r.Get("/{orderId}", orderCtrl.Get)
		r.Patch("/{orderId}", orderCtrl.UpdateStatus)
		r.Delete("/{orderId}", orderCtrl.Remove)
	})

	r.Route("/meals", func(r chi.Router) {
		r.Get("/{mealId}", mealCtrl.Get)
		r.Patch("/{mealId}", mealCtrl.Update)
	})

	return r
}
