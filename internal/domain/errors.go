package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeNotSupported     ErrorCode = "NOT_SUPPORTED"
	CodeScheduleConflict ErrorCode = "SCHEDULE_CONFLICT"
	CodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	CodeInvalidState     ErrorCode = "INVALID_STATE"
	CodeInvalidMember    ErrorCode = "INVALID_MEMBER"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"

	// CodeStoreFailure не создается ядром: так классифицируется любая ошибка хранилища.
	CodeStoreFailure ErrorCode = "STORE_FAILURE"
)

type DomainError struct {
	Code    ErrorCode
	Message string

	// Conflicts заполняется только для SCHEDULE_CONFLICT
	Conflicts []*Event
	// Limit заполняется только для CAPACITY_EXCEEDED
	Limit int
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrNotSupported - командная операция для не командного события
	ErrNotSupported = &DomainError{
		Code:    CodeNotSupported,
		Message: "event does not support teams",
	}

	// ErrScheduleConflict - у организатора уже есть пересекающееся событие
	ErrScheduleConflict = &DomainError{
		Code:    CodeScheduleConflict,
		Message: "organizer already has an overlapping event",
	}

	// ErrCapacityExceeded - превышен max_team_size
	ErrCapacityExceeded = &DomainError{
		Code:    CodeCapacityExceeded,
		Message: "team is full",
	}

	// ErrInvalidState - нарушение машины состояний участника
	ErrInvalidState = &DomainError{
		Code:    CodeInvalidState,
		Message: "invalid state transition",
	}

	// ErrInvalidMember - новый лидер не является участником команды
	ErrInvalidMember = &DomainError{
		Code:    CodeInvalidMember,
		Message: "new leader must be a joined member of the team",
	}

	ErrLeaderRemoval = &DomainError{
		Code:    CodeInvalidState,
		Message: "leader cannot be removed directly",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewScheduleConflictError возвращает конфликт вместе со списком пересекающихся событий
func NewScheduleConflictError(conflicts []*Event) *DomainError {
	return &DomainError{
		Code:      CodeScheduleConflict,
		Message:   fmt.Sprintf("organizer already has %d overlapping event(s)", len(conflicts)),
		Conflicts: conflicts,
	}
}

func NewCapacityExceededError(limit int) *DomainError {
	return &DomainError{
		Code:    CodeCapacityExceeded,
		Message: fmt.Sprintf("team is full: max team size is %d", limit),
		Limit:   limit,
	}
}

func NewInvalidStateError(message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidState,
		Message: message,
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// CodeOf возвращает код доменной ошибки; всё остальное считается отказом хранилища.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeStoreFailure
}
