package models

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Resource is any resource that is owned by a user.
type Resource interface {
	Category | Transaction | Budget | RecurringRule | SavingsGoal
}

// List returns all resources owned by the user, newest first.
func List[R Transaction | Budget | RecurringRule | SavingsGoal](userID string) ([]R, error) {
	resources := make([]R, 0)
	err := DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// ListCategories returns the categories of the user and all global
// categories, newest first.
func ListCategories(userID string) ([]Category, error) {
	categories := make([]Category, 0)
	err := DB.
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Create stores a new resource. Writes that do not change any row
// are reported as ErrNoRowsWritten.
func Create[R Resource | User](resource *R) error {
	result := DB.Create(resource)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsWritten
	}

	return nil
}

// Update sets the given fields of the resource with the ID to the values
// of the update.
func Update[R Resource](id string, update R, fields ...string) error {
	var model R
	result := DB.
		Model(&model).
		Where("id = ?", id).
		Select(fields).
		Updates(&update)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(result)
	}

	return nil
}

// Delete removes the resource with the ID.
func Delete[R Resource](id string) error {
	var model R
	result := DB.Where("id = ?", id).Delete(&model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(result)
	}

	return nil
}

// Upsert creates the resources or overwrites existing ones with the same ID.
func Upsert[R Resource](resources []R) error {
	if len(resources) == 0 {
		return nil
	}

	return DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&resources).Error
}

// UpsertOwned creates the resources for the user or overwrites the ones
// with the same ID the user already owns. Resources whose ID belongs to
// somebody else or to a global category are left unchanged. Their IDs
// are returned as taken.
func UpsertOwned[R Category | Transaction](userID string, resources []R, id func(R) string) (written int, taken []string, err error) {
	if len(resources) == 0 {
		return 0, nil, nil
	}

	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, id(r))
	}

	var model R
	err = DB.
		Model(&model).
		Where("id IN ? AND (user_id IS NULL OR user_id <> ?)", ids, userID).
		Pluck("id", &taken).Error
	if err != nil {
		return 0, nil, err
	}

	writable := slices.DeleteFunc(slices.Clone(resources), func(r R) bool {
		return slices.Contains(taken, id(r))
	})
	if len(writable) == 0 {
		return 0, taken, nil
	}

	// Rows that changed owner since they were checked are not updated
	err = DB.Clauses(clause.OnConflict{
		UpdateAll: true,
		Where: clause.Where{Exprs: []clause.Expression{clause.Expr{
			SQL:  "?.user_id = ?",
			Vars: []any{clause.Table{Name: clause.CurrentTable}, userID},
		}}},
	}).Create(&writable).Error
	if err != nil {
		return 0, nil, err
	}

	return len(writable), taken, nil
}

// CreateMissing creates the resources whose IDs do not exist yet and
// returns how many were created.
func CreateMissing[R Resource](resources []R) (int64, error) {
	if len(resources) == 0 {
		return 0, nil
	}

	result := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&resources)
	return result.RowsAffected, result.Error
}

func notFound(db *gorm.DB) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
}

// DeleteAll removes all users and their resources and seeds the default
// categories again.
func DeleteAll() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range Registry {
			err := tx.Where("1 = 1").Delete(&model).Error
			if err != nil {
				return err
			}
		}

		err := tx.Where("1 = 1").Delete(&User{}).Error
		if err != nil {
			return err
		}

		return seedDefaultCategories(tx)
	})
}
