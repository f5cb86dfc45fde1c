/*
Package ports defines the driven ports (interfaces) for the POMDP runtime.

These interfaces decouple the core logic from external implementations, allowing
the runtime to read its documents from different sources and keep session
beliefs in different stores.

# Key Interfaces

  - SourceLoader: Responsible for returning the raw bytes of a named document (environment or policy).
  - BeliefStore: Responsible for holding the current belief of each session.
  - BeliefEngine: The stateless numerical core (belief update and policy evaluation).
*/
package ports
