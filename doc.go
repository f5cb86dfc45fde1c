/*
Package pomdp tracks beliefs and picks actions for a Partially Observable
Markov Decision Process described by two documents: an environment file in
the line-oriented POMDP format and a policy file holding alpha vectors.

# Concept

The environment file declares the discount, the state, action and observation
names, and the T (transition), O (observation) and R (reward) tables. Every
shorthand the format allows (inline scalars, rows, matrices, identity,
uniform and the * wildcard) is expanded into dense tables when the file is
parsed, so the runtime only ever sees concrete numbers.

The policy is a list of alpha vectors, each tagged with an action. The best
action for a belief is the tag of the vector with the highest dot product;
ties go to the vector listed first.

A Session holds one belief and walks the decision loop: ask for the best
action, act, observe, update. Model and Policy are read-only after loading
and may be shared by any number of sessions.

# Usage

	sess, err := pomdp.Open("voicemail.pomdp", "voicemail.policy", []float64{0.65, 0.35})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	d, _ := sess.BestAction(ctx)
	name, _ := sess.ActionName(d.Action)
	fmt.Println(name, d.Value)

	o, _ := sess.ObservationIndex("hearSave")
	if err := sess.Update(ctx, d.Action, o); err != nil {
		log.Fatal(err)
	}

# Errors

Every failure is fatal for the file or session it came from and can be
classified with errors.Is against domain.ErrParse, domain.ErrLookup,
domain.ErrNumeric and domain.ErrDimension.
*/
package pomdp
