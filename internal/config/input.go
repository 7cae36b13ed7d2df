package config

import (
	"fmt"
	"os"

	"github.com/rpgo/fi-projector/internal/calculation"
	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario set from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario set. JSON is accepted as a YAML subset.
func (ip *InputParser) Parse(data []byte) (*domain.ScenarioSet, error) {
	var set domain.ScenarioSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&set); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &set, nil
}

// ValidateConfiguration validates the loaded scenario set
func (ip *InputParser) ValidateConfiguration(set *domain.ScenarioSet) error {
	if len(set.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(set.Scenarios))
	for i := range set.Scenarios {
		scenario := &set.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if prev, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		seen[scenario.Name] = i

		if err := calculation.ValidateSimulationConfig(scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example scenario set: a growing plan
// with no risky exposure and a three-stage plan with a mid-life shock.
func (ip *InputParser) CreateExampleConfiguration() *domain.ScenarioSet {
	assumptions := domain.Assumptions{
		InflationRate:        decimal.NewFromFloat(0.03),
		RiskFreeReturn:       decimal.NewFromFloat(0.05),
		RiskyReturn:          decimal.NewFromFloat(0.10),
		RiskyVolatility:      decimal.NewFromFloat(0.18),
		RiskAllocation:       decimal.Zero,
		InsuranceMonthlyCost: decimal.NewFromInt(1_000_000),
		WithdrawalRate:       decimal.NewFromFloat(0.040805),
	}

	staged := assumptions
	staged.InflationRate = decimal.NewFromFloat(0.0343)
	staged.RiskAllocation = decimal.NewFromFloat(0.6)
	staged.InsuranceMonthlyCost = decimal.NewFromInt(500_000)

	return &domain.ScenarioSet{
		Currency: "COP",
		Scenarios: []domain.SimulationConfig{
			{
				Name:                   "Growing Contributions",
				CurrentAge:             35,
				RetirementAge:          65,
				CurrentAssets:          decimal.NewFromInt(200_000_000),
				DesiredMonthlySpending: decimal.NewFromInt(25_000_000),
				Contributions: domain.ContributionPlan{
					Growing: &domain.GrowingContribution{
						MonthlyAmount:  decimal.NewFromInt(8_000_000),
						AnnualIncrease: decimal.NewFromFloat(0.07),
					},
				},
				Assumptions: assumptions,
			},
			{
				Name:          "Three Stages With Shock",
				CurrentAge:    18,
				RetirementAge: 65,
				CurrentAssets: decimal.NewFromInt(5_000_000),
				Contributions: domain.ContributionPlan{
					Staged: &domain.StagedContributions{
						AnnualCostOfLiving: decimal.NewFromInt(360_000_000),
						Stages: []domain.Stage{
							{StartAge: 18, EndAge: 30, MonthlyAmount: decimal.NewFromInt(2_000_000), AnnualIncrease: decimal.NewFromFloat(0.05)},
							{StartAge: 31, EndAge: 50, MonthlyAmount: decimal.NewFromInt(6_000_000), AnnualIncrease: decimal.NewFromFloat(0.04)},
							{StartAge: 51, EndAge: 65, MonthlyAmount: decimal.NewFromInt(10_000_000), AnnualIncrease: decimal.NewFromFloat(0.03)},
						},
					},
				},
				Assumptions: staged,
				Shock: &domain.ShockEvent{
					Age:               45,
					GrossLoss:         decimal.NewFromInt(1_000_000_000),
					InsuranceCoverage: decimal.NewFromFloat(0.75),
				},
				Seed: 20240601,
			},
		},
	}
}
