package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bagdasarian/event-manager/internal/domain"
)

// decodeJSON отклоняет тело с неизвестными полями и значениями не того типа
func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return domain.NewBadRequestError(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.NewBadRequestError(fmt.Sprintf("%s parameter is required", name))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewBadRequestError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return domain.NewBadRequestError(fmt.Sprintf("%s is required", name))
	}
	return nil
}
