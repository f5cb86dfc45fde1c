/*
Package session holds the mutable half of the runtime: the current belief.

A Session is the single-trajectory wrapper described by the decision loop:
ask for the best action, act, observe, update. It is not safe for concurrent
use; callers that need several trajectories at once either create one Session
per goroutine or use a Manager.

A Manager keeps many beliefs keyed by session ID in a ports.BeliefStore and
serializes every operation on the same ID with a reference-counted lock,
while sharing one read-only engine (model and policy) across all of them.
*/
package session
