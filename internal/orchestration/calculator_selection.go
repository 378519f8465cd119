package orchestration

import (
	"github.com/agbru/boothcalc/internal/booth"
	"github.com/agbru/boothcalc/internal/config"
)

// GetCalculatorsToRun returns the calculators selected by cfg.Algo: every
// registered one, sorted by name, for "all"; otherwise the single named
// calculator, or nil if it is unknown.
func GetCalculatorsToRun(cfg config.AppConfig, factory booth.CalculatorFactory) []booth.Calculator {
	if cfg.Algo == config.AlgoAll {
		return factory.GetAll()
	}
	if calc, err := factory.Get(cfg.Algo); err == nil {
		return []booth.Calculator{calc}
	}
	return nil
}
