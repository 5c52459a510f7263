package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gigcampus/internal/gateway/razorpay"
	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/request_models"
	"gigcampus/internal/models/response_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type OrderService interface {
	CreateOrder(ctx context.Context, payerID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error)
}

type orderService struct {
	payments     repositories.PaymentRepository
	applications repositories.ApplicationRepository
	gateway      razorpay.OrderCreator
	fees         *FeeCalculator
	checkoutKey  string
	logger       *zap.Logger
}

func NewOrderService(
	payments repositories.PaymentRepository,
	applications repositories.ApplicationRepository,
	gateway razorpay.OrderCreator,
	fees *FeeCalculator,
	checkoutKey string,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		payments:     payments,
		applications: applications,
		gateway:      gateway,
		fees:         fees,
		checkoutKey:  checkoutKey,
		logger:       logger,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, payerID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	kind := db_models.PaymentKind(req.Kind)

	if kind == db_models.PaymentKindProject {
		if req.PayeeID == nil || req.ProjectID == nil {
			return nil, fmt.Errorf("%w: project payments need a payee and a project", utils.ErrValidation)
		}
		if req.ApplicationID != nil {
			application, err := s.applications.FindByID(ctx, *req.ApplicationID)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			if application == nil || application.Status != db_models.ApplicationStatusAccepted {
				return nil, fmt.Errorf("%w: invalid or non-accepted application", utils.ErrValidation)
			}
		}
	}

	split, err := s.fees.Split(req.Amount)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	// The gateway call comes first: if it fails nothing is persisted.
	receipt := fmt.Sprintf("order_%d", time.Now().UnixNano())
	notes := map[string]string{
		"kind":     req.Kind,
		"payer_id": payerID.String(),
	}
	if req.ProjectID != nil {
		notes["project_id"] = req.ProjectID.String()
	}

	// Gateway amounts are in paise.
	order, err := s.gateway.CreateOrder(ctx, req.Amount*100, currency, receipt, notes)
	if err != nil {
		s.logger.Error("gateway order creation failed",
			zap.String("payer_id", payerID.String()),
			zap.Int64("amount", req.Amount),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrGateway, err)
	}

	payment := &db_models.Payment{
		GatewayOrderID: order.ID,
		Amount:         req.Amount,
		Currency:       currency,
		Status:         db_models.PaymentStatusCreated,
		Kind:           kind,
		ProjectID:      req.ProjectID,
		ApplicationID:  req.ApplicationID,
		PayerID:        payerID,
		PayeeID:        req.PayeeID,
		PlatformFee:    split.PlatformFee,
		PayeeEarnings:  split.PayeeEarnings,
	}

	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: create payment: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("payment order created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("gateway_order_id", order.ID),
		zap.Int64("amount", req.Amount),
		zap.Int64("platform_fee", split.PlatformFee))

	return &response_models.CreateOrderResponse{
		GatewayOrderID: order.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		PaymentID:      payment.ID,
		CheckoutKey:    s.checkoutKey,
	}, nil
}
