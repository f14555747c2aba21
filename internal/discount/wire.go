package discount

import (
	"database/sql"

	"go.uber.org/zap"

	"orchid/internal/discount/controller"
	"orchid/internal/discount/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.PreviewController {
	repo := repository.NewMySQLDiscountRepository(db)
	return controller.NewPreviewController(repo, logger)
}
