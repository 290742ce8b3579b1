package gormstore

import (
	"context"
	"strings"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"gorm.io/gorm"
)

// searchColumns are matched case-insensitively against the search term
var searchColumns = []string{
	"location_city",
	"location_state",
	"location_address",
	"title",
	"description",
}

// PropertyRepository stores listings in the properties table
type PropertyRepository struct {
	db *gorm.DB
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	return translate("create property", r.db.WithContext(ctx).Create(property).Error)
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
		return nil, translate("find property", err)
	}
	return &property, nil
}

func (r *PropertyRepository) Find(ctx context.Context, query model.PropertyQuery) ([]model.Property, error) {
	properties := []model.Property{}
	err := r.db.WithContext(ctx).
		Scopes(typeScope(query.TypeFilter()), searchScope(query.SearchTerm())).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, translate("find properties", err)
	}
	return properties, nil
}

func (r *PropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	properties := []model.Property{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, translate("find owner properties", err)
	}
	return properties, nil
}

func (r *PropertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, translate("count owner properties", err)
}

func (r *PropertyRepository) Update(ctx context.Context, property *model.Property) error {
	result := r.db.WithContext(ctx).Save(property)
	if result.Error != nil {
		return translate("update property", result.Error)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Property{})
	if result.Error != nil {
		return translate("delete property", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("delete property", repository.ErrNotFound)
	}
	return nil
}

func typeScope(propertyType string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if propertyType == "" {
			return db
		}
		return db.Where("type = ?", propertyType)
	}
}

// searchScope matches term as a literal substring of any search column
func searchScope(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

		conditions := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, column := range searchColumns {
			conditions[i] = "LOWER(" + column + `) LIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
