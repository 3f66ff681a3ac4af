package utils

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateRange valida e converte o intervalo informado
func ParseDateRange(from, to string) (*time.Time, *time.Time, error) {
	if from == "" || to == "" {
		return nil, nil, errors.New("é necessário informar as datas de início e fim")
	}

	start, err := ParseDate(from)
	if err != nil {
		return nil, nil, err
	}

	end, err := ParseDate(to)
	if err != nil {
		return nil, nil, err
	}

	if start.After(*end) {
		return nil, nil, ErrInvalidDateRange
	}

	return start, end, nil
}
