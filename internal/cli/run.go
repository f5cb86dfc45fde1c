package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/aretw0/pomdp/pkg/session"
)

// Result summarizes a finished run.
type Result struct {
	Actions []string
	Values  []float64
	Belief  []float64
}

// Run drives the decision loop on sess: pick the best action, print it,
// feed back the next observation, update. Observations come from
// cfg.Observations first and then, one per line, from in (which may be nil).
// The run ends when a cfg.StopOn action is chosen, when observations run
// out, or after cfg.MaxSteps decisions.
func Run(ctx context.Context, sess *session.Session, cfg RunConfig, in io.Reader, p *Printer) (Result, error) {
	var res Result
	next := observationSource(cfg.Observations, in)

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	for step := 1; step <= maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		d, err := sess.BestAction(ctx)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
		name, err := sess.ActionName(d.Action)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
		// Reward is informational; a partially specified model leaves it undefined.
		reward := "n/a"
		if r, err := sess.ExpectedReward(d.Action); err == nil {
			reward = fmt.Sprintf("%.4f", r)
		}
		res.Actions = append(res.Actions, name)
		res.Values = append(res.Values, d.Value)
		p.Step(step, name, d.Value, reward, formatBelief(sess))

		if slices.Contains(cfg.StopOn, name) {
			break
		}

		obs, ok, err := next()
		if err != nil {
			return res, err
		}
		if !ok {
			break
		}
		o, err := sess.ObservationIndex(obs)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
		p.Observe(obs)
		if err := sess.Update(ctx, d.Action, o); err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
	}

	res.Belief = sess.Belief()
	return res, nil
}

func observationSource(listed []string, in io.Reader) func() (string, bool, error) {
	var scanner *bufio.Scanner
	if in != nil {
		scanner = bufio.NewScanner(in)
	}
	return func() (string, bool, error) {
		if len(listed) > 0 {
			obs := listed[0]
			listed = listed[1:]
			return obs, true, nil
		}
		if scanner == nil {
			return "", false, nil
		}
		for scanner.Scan() {
			if line := trimAll([]string{scanner.Text()}); len(line) > 0 {
				return line[0], true, nil
			}
		}
		return "", false, scanner.Err()
	}
}

func formatBelief(sess *session.Session) []string {
	b := sess.Belief()
	out := make([]string, len(b))
	for i, p := range b {
		name, _ := sess.StateName(i)
		out[i] = name + "=" + strconv.FormatFloat(p, 'f', 4, 64)
	}
	return out
}
