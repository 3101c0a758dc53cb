package repository

import (
	"context"
	"errors"
)

// ErrNotFound возвращается реализациями, когда строка отсутствует
var ErrNotFound = errors.New("not found")

// Repositories - набор репозиториев, привязанных к одной транзакции
type Repositories struct {
	Events EventRepository
	Teams  TeamRepository
	Stats  StatsRepository
}

// Transactor задает границы транзакции. Ошибка из fn откатывает транзакцию,
// nil фиксирует её. Отмена ctx до фиксации тоже приводит к откату.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
