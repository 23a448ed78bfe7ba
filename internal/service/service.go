package service

import (
	"time"

	"github.com/carson-networks/expense-server/internal/cache"
	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
}

// NewService creates a new Service with the given storage and cache.
func NewService(store *storage.Storage, summaryCache cache.Cache, summaryTTL time.Duration) *Service {
	return &Service{
		Expense: NewExpenseService(store, summaryCache, summaryTTL),
	}
}
