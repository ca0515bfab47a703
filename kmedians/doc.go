// Package kmedians implements K-Medians partitional clustering.
//
// What
//
//	Given a dataset and K initial medians, KMedians.Process alternates:
//	  1. assignment — every point joins the cluster of its nearest median;
//	     ties go to the lowest median index;
//	  2. pruning    — clusters left empty are dropped together with their
//	     medians, so K never grows back;
//	  3. update     — each median becomes the per-dimension median of its
//	     members (middle value, or the mean of the two middle values);
//	  4. convergence — the largest metric distance any median moved; the run
//	     stops once it is below the tolerance or after MaxIterations passes.
//
// Usage
//
//	km, err := kmedians.New(initial, kmedians.WithTolerance(1e-4))
//	if err != nil { ... }
//	res, err := km.Process(data)
//	// res.Clusters[k] holds point indices, res.Medians[k] its median,
//	// res.Labels[p] the cluster index of point p.
//
// Determinism
//
//	Results depend only on inputs and options. WithWorkers spreads the
//	assignment and update passes over goroutines; each point and each cluster
//	is computed independently, so the output is identical to a sequential run.
//
// Degenerate results
//
//	An empty dataset prunes every cluster on the first pass. Process then
//	returns a Result with no clusters (Result.Empty reports true) and no error.
//
// Complexity (N points, K medians, D dimensions)
//
//	Per iteration O(K·N·D) for assignment plus O(N·D·log N) for median sorting;
//	at most MaxIterations iterations.
package kmedians
