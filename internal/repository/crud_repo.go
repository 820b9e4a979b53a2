package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrReference = errors.New("referenced record does not exist")
)

// crudRepo implements the statements shared by every resource table.
// pk is the primary key column, columns the set overwritten by Update.
type crudRepo[T any] struct {
	db      *gorm.DB
	pk      string
	columns []string
}

func newCrudRepo[T any](db *gorm.DB, pk string, columns []string) crudRepo[T] {
	return crudRepo[T]{db: db, pk: pk, columns: columns}
}

func (r crudRepo[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

func (r crudRepo[T]) FindAll(ctx context.Context) ([]T, error) {
	items := []T{}
	err := r.db.WithContext(ctx).Order(r.pk + " ASC").Find(&items).Error
	return items, err
}

func (r crudRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, r.pk+" = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r crudRepo[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(r.pk+" = ?", id).Count(&count).Error
	return count > 0, err
}

// Update overwrites every column in r.columns, zero values included.
func (r crudRepo[T]) Update(ctx context.Context, id uint, entity *T) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where(r.pk+" = ?", id).
		Select(r.columns).
		Updates(entity)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r crudRepo[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where(r.pk+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReference
	default:
		return err
	}
}
