package repository

import (
	"time"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(lowStockThreshold int) (*DashboardStats, error)
	GetOrderTrend(startDate, endDate time.Time) ([]OrderTrendData, error)
}

// OrderTrendData is one day of the sales/purchase chart.
type OrderTrendData struct {
	Date      string          `json:"date"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// DashboardStats is the overview card data. Order sums cover active orders only.
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	Receivables    decimal.Decimal `json:"receivables"`
	Payables       decimal.Decimal `json:"payables"`
	OpenOrders     int64           `json:"open_orders"`
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

var activeStatuses = []model.OrderStatus{model.StatusCreated, model.StatusCompleted}

func (r *dashboardRepo) GetDashboardStats(lowStockThreshold int) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).Where("quantity < ?", lowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Order{}).Where("status = ?", model.StatusCreated).Count(&stats.OpenOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Row().Scan(&stats.TotalValuation); err != nil {
		return nil, err
	}

	sums := []struct {
		orderType model.OrderType
		column    string
		dest      *decimal.Decimal
	}{
		{model.OrderSale, "total_payable", &stats.TotalSales},
		{model.OrderPurchase, "total_payable", &stats.TotalPurchases},
		{model.OrderSale, "remaining_amount", &stats.Receivables},
		{model.OrderPurchase, "remaining_amount", &stats.Payables},
	}
	for _, s := range sums {
		err := r.db.Model(&model.Order{}).
			Select("COALESCE(SUM("+s.column+"), 0)").
			Where("type = ? AND status IN ?", s.orderType, activeStatuses).
			Row().Scan(s.dest)
		if err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

func (r *dashboardRepo) GetOrderTrend(startDate, endDate time.Time) ([]OrderTrendData, error) {
	var results []OrderTrendData

	rows, err := r.db.Model(&model.Order{}).
		Select(`
			DATE(date) as day,
			COALESCE(SUM(CASE WHEN type = 'sale' THEN total_payable ELSE 0 END), 0) as sales,
			COALESCE(SUM(CASE WHEN type = 'purchase' THEN total_payable ELSE 0 END), 0) as purchases
		`).
		Where("date BETWEEN ? AND ? AND status IN ?", startDate, endDate, activeStatuses).
		Group("DATE(date)").
		Order("day ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data OrderTrendData
		var day any
		if err := rows.Scan(&day, &data.Sales, &data.Purchases); err != nil {
			return nil, err
		}
		data.Date = formatDay(day)
		results = append(results, data)
	}

	return results, rows.Err()
}

// formatDay normalizes DATE() output, which is a time on PostgreSQL and text on SQLite.
func formatDay(v any) string {
	switch d := v.(type) {
	case time.Time:
		return d.Format("2006-01-02")
	case []byte:
		return string(d)
	case string:
		return d
	default:
		return ""
	}
}
