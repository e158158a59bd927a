package scheduler

import (
	"github.com/ikkim/chorokshop-backend/internal/app/service"
	"github.com/ikkim/chorokshop-backend/pkg/logger"
	"github.com/ikkim/chorokshop-backend/pkg/util"
	"github.com/robfig/cron/v3"
)

// CartStatsScheduler 장바구니 통계 리포트 스케줄러
// Reads go through the snapshot path only; the report never mutates the cart.
type CartStatsScheduler struct {
	cron        *cron.Cron
	cartService service.CartService
	schedule    string
}

// NewCartStatsScheduler 장바구니 통계 스케줄러 생성
func NewCartStatsScheduler(cartService service.CartService, schedule string) *CartStatsScheduler {
	return &CartStatsScheduler{
		cron:        cron.New(),
		cartService: cartService,
		schedule:    schedule,
	}
}

// Start 스케줄러 시작
func (s *CartStatsScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.report)
	if err != nil {
		logger.Error("Failed to add cron job for cart stats report", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Cart stats scheduler started successfully", map[string]interface{}{
		"schedule": s.schedule,
	})

	return nil
}

// Stop 스케줄러 중지
func (s *CartStatsScheduler) Stop() {
	logger.Info("Stopping cart stats scheduler...", nil)
	s.cron.Stop()
	logger.Info("Cart stats scheduler stopped", nil)
}

func (s *CartStatsScheduler) report() {
	summary := s.cartService.Summary()

	logger.Info("Cart stats report", map[string]interface{}{
		"entry_count":    len(summary.Items),
		"total_quantity": summary.TotalQuantity,
		"total_cost":     util.FormatKRW(summary.TotalCost),
	})
}
