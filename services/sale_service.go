package services

import (
	"context"
	"time"

	"salestracker/commands"
	"salestracker/constants"
	"salestracker/dto"
	"salestracker/errors"
	"salestracker/events"
	"salestracker/models"
	"salestracker/services/logger"
	"salestracker/validator"

	"gorm.io/gorm"
)

const saleDateLayout = "2006-01-02"

type SaleServiceInterface interface {
	Get(ctx context.Context, id uint) (dto.SaleResponse, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]dto.SaleResponse, error)
	Create(ctx context.Context, req dto.CreateSaleRequest) (uint, error)
	Delete(ctx context.Context, id uint) error
}

type SaleServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Events      events.Publisher
	Invalidator CacheInvalidator
}

type SaleService struct {
	db    *gorm.DB
	hooks writeHooks
}

func NewSaleService(opts SaleServiceOptions) *SaleService {
	return &SaleService{
		db:    opts.DB,
		hooks: newWriteHooks(opts.Events, opts.Invalidator, opts.Logger),
	}
}

func saleResponse(sale models.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:     sale.ID,
		UserID: sale.UserID,
		Amount: sale.Amount,
		Date:   sale.Date.Format(saleDateLayout),
	}
}

func (s *SaleService) Get(ctx context.Context, id uint) (dto.SaleResponse, error) {
	var sale models.Sale
	if err := s.db.WithContext(ctx).First(&sale, id).Error; err != nil {
		if isNotFound(err) {
			return dto.SaleResponse{}, errors.NotFound(errors.ResourceSale, "")
		}
		return dto.SaleResponse{}, storeError(err)
	}
	return saleResponse(sale), nil
}

// ListByUser returns the user's most recent sales. limit defaults to 10 and
// is capped at 50.
func (s *SaleService) ListByUser(ctx context.Context, userID uint, limit int) ([]dto.SaleResponse, error) {
	if limit <= 0 {
		limit = constants.DefaultSalesLimit
	}
	limit = min(limit, constants.MaxSalesLimit)

	db := s.db.WithContext(ctx)
	if err := requireUser(db, userID); err != nil {
		return nil, storeError(err)
	}

	var sales []models.Sale
	if err := db.Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").
		Limit(limit).
		Find(&sales).Error; err != nil {
		return nil, storeError(err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, saleResponse(sale))
	}
	return out, nil
}

// Create records a sale. The user check and the insert share a transaction.
func (s *SaleService) Create(ctx context.Context, req dto.CreateSaleRequest) (uint, error) {
	date, err := time.Parse(saleDateLayout, req.Date)
	if err != nil {
		return 0, errors.Validation("Sale date must be formatted as YYYY-MM-DD")
	}
	sale := &models.Sale{UserID: req.UserID, Amount: req.Amount, Date: date}
	if err := validator.ValidateSale(sale); err != nil {
		return 0, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, sale.UserID); err != nil {
			return err
		}
		return commands.NewCreateSaleCommand(sale, tx).Execute()
	})
	if err != nil {
		return 0, storeError(err)
	}
	s.hooks.committed(ctx, events.SaleCreated, saleResponse(*sale))
	return sale.ID, nil
}

func (s *SaleService) Delete(ctx context.Context, id uint) error {
	var sale models.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, id).Error; err != nil {
			if isNotFound(err) {
				return errors.NotFound(errors.ResourceSale, "")
			}
			return err
		}
		return commands.NewDeleteSaleCommand(id, tx).Execute()
	})
	if err != nil {
		return storeError(err)
	}
	s.hooks.committed(ctx, events.SaleDeleted, saleResponse(sale))
	return nil
}
