package pomdp_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/pomdp"
)

// ExampleOpen walks the voicemail dialogue: the system keeps asking until it
// is confident enough to act.
func ExampleOpen() {
	sess, err := pomdp.Open("testdata/voicemail.pomdp", "testdata/voicemail.policy", []float64{0.65, 0.35})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	heard := []string{"hearDelete", "hearSave", "hearSave"}
	for {
		d, err := sess.BestAction(ctx)
		if err != nil {
			log.Fatal(err)
		}
		name, _ := sess.ActionName(d.Action)
		fmt.Printf("%s %.2f\n", name, d.Value)
		if name != "ask" || len(heard) == 0 {
			break
		}

		o, err := sess.ObservationIndex(heard[0])
		if err != nil {
			log.Fatal(err)
		}
		heard = heard[1:]
		if err := sess.Update(ctx, d.Action, o); err != nil {
			log.Fatal(err)
		}
	}
	// Output:
	// ask 3.46
	// ask 2.91
	// ask 3.13
	// doSave 5.14
}
