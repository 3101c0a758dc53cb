package service

import (
	"errors"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
	"go.uber.org/zap"
)

// notFound превращает repository.ErrNotFound в доменную ошибку NOT_FOUND,
// остальные ошибки хранилища пробрасываются как есть.
func notFound(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return err
}

// logRejection пишет отказ по инварианту на уровне Info, а сбой хранилища - на уровне Error
func logRejection(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	code := domain.CodeOf(err)
	fields = append(fields, zap.String("code", string(code)), zap.Error(err))
	if code == domain.CodeStoreFailure {
		log.Error(msg, fields...)
		return
	}
	log.Info(msg, fields...)
}
