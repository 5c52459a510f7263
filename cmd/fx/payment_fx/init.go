package payment_fx

import (
	"os"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigcampus/internal/api/controllers"
	"gigcampus/internal/gateway/razorpay"
	"gigcampus/internal/repositories"
	"gigcampus/internal/services"
)

var Module = fx.Provide(
	provideGatewayConfig,
	provideGateway,
	provideFeeCalculator,
	provideOrderService,
	provideVerificationService,
	controllers.NewPaymentController,
)

func provideGatewayConfig() razorpay.Config {
	return razorpay.Config{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		BaseURL:   os.Getenv("RAZORPAY_BASE_URL"),
	}
}

func provideGateway(cfg razorpay.Config) razorpay.OrderCreator {
	return razorpay.NewClient(cfg)
}

func provideFeeCalculator() *services.FeeCalculator {
	rate := cast.ToFloat64(os.Getenv("PLATFORM_FEE_RATE"))
	if rate == 0 {
		rate = 0.10
	}
	return services.NewFeeCalculator(services.FeeConfig{Rate: rate})
}

func provideOrderService(
	payments repositories.PaymentRepository,
	applications repositories.ApplicationRepository,
	gateway razorpay.OrderCreator,
	fees *services.FeeCalculator,
	cfg razorpay.Config,
	logger *zap.Logger,
) services.OrderService {
	return services.NewOrderService(payments, applications, gateway, fees, cfg.KeyID, logger)
}

func provideVerificationService(db *gorm.DB, cfg razorpay.Config, logger *zap.Logger) services.VerificationService {
	return services.NewVerificationService(db, cfg.KeySecret, logger)
}
