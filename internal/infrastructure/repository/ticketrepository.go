package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/infrastructure/persistence/mappers"
	"tlogi/internal/infrastructure/persistence/models"
	"tlogi/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"subject":         model.Subject,
			"status":          model.Status,
			"priority":        model.Priority,
			"public_token":    model.PublicToken,
			"transcript_sent": model.TranscriptSent,
			"closed_at":       model.ClosedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.TicketModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("channel_id = ?", channelID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket by channel: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByPublicToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("public_token = ?", token).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket by token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindOpenByOwner(ctx context.Context, ownerID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ? AND status = ?", ownerID, "open").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var rows []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

func (r *TicketRepository) GetStats(ctx context.Context) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &ticket.Stats{}

	if err := tx.
		Model(&models.TicketModel{}).
		Where("status = ?", "open").
		Count(&stats.OpenTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to count open tickets: %w", err)
	}

	if err := tx.
		Model(&models.TicketModel{}).
		Where("status = ?", "closed").
		Count(&stats.ClosedTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to count closed tickets: %w", err)
	}

	stats.TotalTickets = stats.OpenTickets + stats.ClosedTickets
	return stats, nil
}
