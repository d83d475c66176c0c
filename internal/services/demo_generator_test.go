package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// DemoDataGeneratorTestSuite defines the test suite for DemoDataGenerator
type DemoDataGeneratorTestSuite struct {
	suite.Suite
	generator *DemoDataGenerator
}

// SetupTest runs before each test
func (s *DemoDataGeneratorTestSuite) SetupTest() {
	s.generator = NewDemoDataGenerator(42)
}

// TestDemoDataGeneratorSuite runs the test suite
func TestDemoDataGeneratorSuite(t *testing.T) {
	suite.Run(t, new(DemoDataGeneratorTestSuite))
}

func (s *DemoDataGeneratorTestSuite) TestGenerate_ProducesValidRows() {
	rows := s.generator.Generate(25, 30)

	s.Require().Len(rows, 25)
	for _, row := range rows {
		s.NoError(row.Validate())
		s.NotEmpty(row.Description)
		s.False(row.Amount.IsZero())
	}
}

func (s *DemoDataGeneratorTestSuite) TestGenerate_NewestFirst() {
	rows := s.generator.Generate(10, 14)

	for i := 1; i < len(rows); i++ {
		s.False(rows[i].Date.After(rows[i-1].Date))
	}
}

func (s *DemoDataGeneratorTestSuite) TestGenerate_NonPositiveCount() {
	s.Nil(s.generator.Generate(0, 30))
	s.Nil(s.generator.Generate(-3, 30))
}

func (s *DemoDataGeneratorTestSuite) TestNewDemoDataGenerator_ClockSeed() {
	// The production wiring seeds straight from the wall clock
	generator := NewDemoDataGenerator(time.Now().UnixNano())

	rows := generator.Generate(3, 7)
	s.Require().Len(rows, 3)
	for _, row := range rows {
		s.NoError(row.Validate())
	}
}

func (s *DemoDataGeneratorTestSuite) TestGenerate_Deterministic() {
	a := NewDemoDataGenerator(7).Generate(5, 10)
	b := NewDemoDataGenerator(7).Generate(5, 10)

	s.Require().Len(b, len(a))
	for i := range a {
		s.Equal(a[i].Description, b[i].Description)
		s.True(a[i].Amount.Equal(b[i].Amount))
	}
}
