package cli

import (
	"fmt"

	"github.com/aretw0/pomdp"
)

// Validate loads both documents and prints every stochasticity issue of the
// model. It returns an error when loading fails or any issue is found.
func Validate(envPath, policyPath string, tolerance float64, p *Printer) error {
	eng, err := pomdp.New(envPath, policyPath)
	if err != nil {
		return err
	}

	m := eng.Model()
	p.Info("%s: %d states, %d actions, %d observations, discount %g",
		envPath, m.States.Len(), m.Actions.Len(), m.Observations.Len(), m.Discount)
	p.Info("%s: %d alpha vectors", policyPath, eng.Policy().Len())

	width := m.States.Len()
	for i := 0; i < eng.Policy().Len(); i++ {
		if n := len(eng.Policy().Row(i)); n != width {
			p.Issue(fmt.Sprintf("alpha vector %d has %d coefficients, model has %d states", i, n, width))
			return fmt.Errorf("policy does not match model")
		}
	}

	issues := eng.Validate(tolerance)
	for _, is := range issues {
		p.Issue(is.String())
	}
	if len(issues) > 0 {
		return fmt.Errorf("found %d issues", len(issues))
	}
	p.OK("model is valid")
	return nil
}
