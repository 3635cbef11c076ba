package models

import "time"

// DocumentInfo сводка по документу, хранящемуся на сервере
type DocumentInfo struct {
	UpdatedAt  time.Time
	ID         string
	Operations int
}
