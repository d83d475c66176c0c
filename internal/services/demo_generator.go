package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"netbank-prototype/internal/models"
)

// DemoDataGenerator produces randomized display-only statement rows for
// development environments. The running balance column is synthesized the
// same way the fixed data set presents it and carries no accounting meaning.
type DemoDataGenerator struct {
	faker *gofakeit.Faker
}

// NewDemoDataGenerator creates a generator with its own seeded source
func NewDemoDataGenerator(seed int64) *DemoDataGenerator {
	return &DemoDataGenerator{faker: gofakeit.New(seed)}
}

// Generate produces count transactions spread over the past days, newest
// first. Roughly one in four rows is a credit.
func (g *DemoDataGenerator) Generate(count, days int) []models.Transaction {
	if count <= 0 {
		return nil
	}
	if days <= 0 {
		days = 30
	}

	balance := decimal.NewFromFloat(g.faker.Float64Range(500, 5000)).Round(2)

	out := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		var amount decimal.Decimal
		var description string

		if g.faker.IntRange(1, 4) == 1 {
			amount = decimal.NewFromFloat(g.faker.Float64Range(50, 2000)).Round(2)
			description = fmt.Sprintf("Deposit - %s", g.faker.Company())
		} else {
			amount = decimal.NewFromFloat(g.faker.Float64Range(5, 400)).Round(2).Neg()
			description = g.faker.Company()
		}

		now := time.Now().UTC().Truncate(24 * time.Hour)
		date := g.faker.DateRange(now.AddDate(0, 0, -days), now)

		out = append(out, models.Transaction{
			Date:        date,
			Description: description,
			Amount:      amount,
			Balance:     balance,
		})

		balance = balance.Sub(amount)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}
