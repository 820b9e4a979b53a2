package service

import (
	"context"
	"fmt"
)

type existenceChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// checkReference fails with ErrInvalidReference when id is set but names no live row.
func checkReference(ctx context.Context, repo existenceChecker, field string, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := repo.Exists(ctx, *id)
	if err != nil {
		return fmt.Errorf("check %s: %w", field, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrInvalidReference, field, *id)
	}
	return nil
}
