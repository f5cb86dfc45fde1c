/*
Package domain contains the core domain models of the POMDP runtime.

It defines the fully expanded model read from an environment file, the
alpha-vector policy read from a policy document, and the belief that a
session carries between updates. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Space: An ordered list of unique names (states, actions or observations) with O(1) name lookup.
  - Tensor: A dense table over a fixed shape that remembers which cells were assigned.
  - Model: Discount, value semantics, the three spaces and the T, Z and R tables.
  - Policy: The ordered alpha vectors, each tagged with the action it recommends.
  - Belief: A probability distribution over states.
*/
package domain
