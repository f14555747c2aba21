package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	discountctrl "orchid/internal/discount/controller"
	"orchid/internal/order"
	verificationctrl "orchid/internal/verification/controller"
)

func NewRouter(
	orders *order.Module,
	otp *verificationctrl.OtpController,
	discounts *discountctrl.PreviewController,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/checkout", orders.Checkout.HandleCheckout)
	r.Get("/payment/return", orders.GatewayReturn.HandleReturn)

	r.Get("/discounts/{code}/preview", discounts.HandlePreview)

	r.Route("/auth/otp", func(r chi.Router) {
		r.Post("/issue", otp.HandleIssue)
		r.Post("/verify", otp.HandleVerify)
	})

	r.Route("/admin/orders/{orderId}", func(r chi.Router) {
		r.Get("/", orders.Admin.HandleGet)
		r.Patch("/status", orders.Admin.HandleUpdateStatus)
		r.Post("/cancel", orders.Admin.HandleCancel)
		r.Delete("/", orders.Admin.HandleDelete)
	})

	return r
}
