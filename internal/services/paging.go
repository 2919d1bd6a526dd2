package services

import "selexia/pkg/utils"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return utils.ErrInvalidPageSize
	}
	return nil
}
