package service

import (
	"time"

	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
)

type DashboardService interface {
	GetOrderTrend(days int) ([]repository.OrderTrendData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	dashRepo          repository.DashboardRepository
	lowStockThreshold int
}

func NewDashboardService(dashRepo repository.DashboardRepository, lowStockThreshold int) DashboardService {
	return &dashboardService{dashRepo: dashRepo, lowStockThreshold: lowStockThreshold}
}

func (s *dashboardService) GetOrderTrend(days int) ([]repository.OrderTrendData, error) {
	if days <= 0 {
		return nil, validationErr("days must be greater than zero")
	}
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	trend, err := s.dashRepo.GetOrderTrend(startDate, endDate)
	return trend, wrapDB(err, "order trend")
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.dashRepo.GetDashboardStats(s.lowStockThreshold)
	if err != nil {
		return nil, wrapDB(err, "dashboard stats")
	}
	return stats, nil
}
