package service

import (
	"context"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) GetIncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return s.reportRepo.SumIncomeBetween(ctx, start, end)
}

func (s *reportService) GetTopRentedEquipment(ctx context.Context) ([]domain.EquipmentRentalCount, error) {
	return s.reportRepo.TopRentedEquipment(ctx)
}

func (s *reportService) GetTopClients(ctx context.Context) ([]domain.ClientRentalCount, error) {
	return s.reportRepo.TopClients(ctx)
}

func (s *reportService) GetActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.reportRepo.ActiveRentals(ctx, time.Now())
}
