package services

import (
	"log/slog"
	"sort"
	"sync"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/staticdata"
)

// StatementService serves the fixed account and transaction data. The base
// data set is compiled in; development environments may append extra
// display-only rows, which is the only mutation the service allows.
type StatementService struct {
	mu     sync.RWMutex
	extra  []models.Transaction
	logger *slog.Logger
}

// NewStatementService creates a statement service
func NewStatementService(logger *slog.Logger) *StatementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementService{logger: logger}
}

// Accounts returns the fixed account set in display order
func (s *StatementService) Accounts() []models.Account {
	return staticdata.Accounts()
}

// AccountByID looks up one of the fixed accounts
func (s *StatementService) AccountByID(id string) (models.Account, bool) {
	return staticdata.AccountByID(id)
}

// Transactions returns the statement in rendered order, most recent first.
// Appended demo rows are merged into the fixed set by date.
func (s *StatementService) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := staticdata.Transactions()
	if len(s.extra) == 0 {
		return out
	}

	out = append(out, s.extra...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// AppendDemoTransactions adds display-only rows to the statement. Invalid
// rows are skipped rather than failing the batch.
func (s *StatementService) AppendDemoTransactions(transactions []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range transactions {
		if err := t.Validate(); err != nil {
			s.logger.Warn("skipping invalid demo transaction",
				"description", t.Description,
				"error", err.Error(),
			)
			continue
		}
		s.extra = append(s.extra, t)
	}

	s.logger.Info("demo transactions appended", "count", len(s.extra))
}
