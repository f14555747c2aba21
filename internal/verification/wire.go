package verification

import (
	"database/sql"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"orchid/internal/config"
	"orchid/internal/mailer"
	userrepo "orchid/internal/user/repository"
	"orchid/internal/verification/controller"
	"orchid/internal/verification/service"
	"orchid/internal/verification/store"
)

func NewModule(db *sql.DB, rdb *goredis.Client, sender mailer.Sender, cfg *config.Config, logger *zap.Logger) *controller.OtpController {
	otpStore := store.NewRedisOtpStore(rdb, cfg.Otp.TTL)
	userRepo := userrepo.NewMySQLUserRepository(db)

	svc := service.NewOtpService(otpStore, userRepo, sender, cfg.Otp.TTL, cfg.Otp.CodeLength, logger)

	return controller.NewOtpController(svc, logger)
}
