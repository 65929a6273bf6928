package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/hera-erp/core/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements core.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindHeaderByID finds a transaction header by ID within an organization
func (r *GormTransactionRepository) FindHeaderByID(ctx context.Context, orgID, id uuid.UUID) (*core.TransactionHeader, error) {
	var model models.TransactionHeaderModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveHeader creates or updates a transaction header
func (r *GormTransactionRepository) SaveHeader(ctx context.Context, header *core.TransactionHeader) error {
	var model models.TransactionHeaderModel
	model.FromDomain(header)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveLine creates or updates a transaction line. The unique index on
// (header id, line number) rejects duplicate line numbers per header.
func (r *GormTransactionRepository) SaveLine(ctx context.Context, line *core.TransactionLine) error {
	var model models.TransactionLineModel
	model.FromDomain(line)
	return r.db.WithContext(ctx).Save(&model).Error
}

// FindLines returns the lines of a header ordered by line number
func (r *GormTransactionRepository) FindLines(ctx context.Context, orgID, headerID uuid.UUID) ([]core.TransactionLine, error) {
	var lineModels []models.TransactionLineModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND header_id = ?", orgID, headerID).
		Order("line_number ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}

	lines := make([]core.TransactionLine, len(lineModels))
	for i, model := range lineModels {
		lines[i] = *model.ToDomain()
	}
	return lines, nil
}

// FindHeadersForOrg finds transaction headers for an organization
func (r *GormTransactionRepository) FindHeadersForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]core.TransactionHeader, error) {
	var headerModels []models.TransactionHeaderModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.TransactionHeaderModel{}).
			Where("organization_id = ?", orgID),
		filter, "transaction_date DESC, created_at DESC",
	)

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "transaction_type":
			query = query.Where("transaction_type = ?", value)
		case "smart_code":
			query = query.Where("smart_code = ?", value)
		}
	}

	if err := query.Find(&headerModels).Error; err != nil {
		return nil, err
	}

	headers := make([]core.TransactionHeader, len(headerModels))
	for i, model := range headerModels {
		headers[i] = *model.ToDomain()
	}
	return headers, nil
}
