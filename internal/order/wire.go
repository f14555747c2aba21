package order

import (
	"database/sql"

	"go.uber.org/zap"

	"orchid/internal/config"
	discountrepo "orchid/internal/discount/repository"
	"orchid/internal/gateway"
	"orchid/internal/order/controller"
	orderrepo "orchid/internal/order/repository"
	"orchid/internal/order/service"
	"orchid/internal/order/usecase"
	productrepo "orchid/internal/product/repository"
)

// Module bundles the three HTTP surfaces of the order feature.
type Module struct {
	Checkout      *controller.CheckoutController
	GatewayReturn *controller.GatewayReturnController
	Admin         *controller.AdminOrderController
}

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *Module {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	productRepo := productrepo.NewMySQLProductRepository(db)
	discountRepo := discountrepo.NewMySQLDiscountRepository(db)

	builder := gateway.NewRequestBuilder(cfg.Gateway)

	checkoutSvc := service.NewCheckoutService(orderRepo, productRepo, logger)
	paymentSvc := service.NewPaymentService(orderRepo, logger)
	adminSvc := service.NewAdminService(orderRepo, logger)

	checkoutUC := usecase.NewCheckoutUseCase(checkoutSvc, discountRepo, builder, logger)
	returnUC := usecase.NewGatewayReturnUseCase(builder, paymentSvc, logger)
	adminUC := usecase.NewAdminOrderUseCase(adminSvc, logger)

	return &Module{
		Checkout:      controller.NewCheckoutController(checkoutUC, logger),
		GatewayReturn: controller.NewGatewayReturnController(returnUC, logger),
		Admin:         controller.NewAdminOrderController(adminUC, logger),
	}
}
