package gormstore

import (
	"context"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"gorm.io/gorm"
)

// MessageRepository stores enquiries in the messages table
type MessageRepository struct {
	db *gorm.DB
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	return translate("create message", r.db.WithContext(ctx).Create(message).Error)
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, translate("find message", err)
	}
	return &message, nil
}

func (r *MessageRepository) FindByOwner(ctx context.Context, ownerID, status string) ([]model.Message, error) {
	messages := []model.Message{}
	err := r.ownerScope(ctx, ownerID, status).Order("date DESC").Find(&messages).Error
	if err != nil {
		return nil, translate("find owner messages", err)
	}
	return messages, nil
}

func (r *MessageRepository) CountByOwner(ctx context.Context, ownerID, status string) (int64, error) {
	var count int64
	err := r.ownerScope(ctx, ownerID, status).Model(&model.Message{}).Count(&count).Error
	return count, translate("count owner messages", err)
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Message{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return translate("update message status", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("update message status", repository.ErrNotFound)
	}
	return nil
}

func (r *MessageRepository) ownerScope(ctx context.Context, ownerID, status string) *gorm.DB {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return q
}
