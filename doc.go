// Package stablematch computes and verifies stable matchings between two
// equal-sized sets of agents, hospitals and students, each holding a strict
// total ranking of the other side.
//
// What is a stable matching?
//
//	A one-to-one assignment of hospitals to students such that no hospital h
//	and student s, not assigned to each other, both prefer each other to
//	their assigned partners. Such a pair (h, s) is a blocking pair.
//
// Packages:
//
//	core/        - Instance (validated preference lists + rank tables), Matching
//	galeshapley/ - deferred acceptance, proposer-optimal, O(n²)
//	verify/      - independent validity and stability checks with diagnostics
//	prefio/      - text formats for instances and matchings, snappy files
//	builder/     - deterministic and seeded instance families
//	bench/       - scalability sweep with CSV output and growth exponents
//	cmd/stablematch - CLI: match, verify, generate, bench
//
// Quick example (the 2×2 conflict):
//
//	H1: S1 > S2      S1: H2 > H1
//	H2: S1 > S2      S2: H1 > H2
//
//	H1 → S1  accepted
//	H2 → S1  accepted, H1 displaced
//	H1 → S2  accepted
//
//	result: H1–S2, H2–S1 after 3 proposals
//
//	go get github.com/katalvlaran/stablematch
package stablematch
