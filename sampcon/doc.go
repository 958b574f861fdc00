/*
Package sampcon determines the sampling precision of two independently
generated ensembles of structural models and validates the clustering of
their union.

Given the pairwise distance matrix over every model of sample A followed by
every model of sample B, the analysis proceeds as follows:

	Thresholds   grid of candidate clustering thresholds over the distance range
	Sweep        cluster, tabulate and test each threshold
	Select       pick the smallest threshold at which the samples agree
	NewPartition re-cluster the population at the chosen threshold
	Precision    mean RMSD of each retained cluster's members to its center

Analyze runs everything but the final precision step, which needs the model
coordinates.

Clustering is a greedy procedure seeded by population order (see
NewClustering). The composition of clusters therefore depends on the order
of the models; the analysis reproduces that behavior instead of replacing it
with an order independent hierarchical clustering.
*/
package sampcon
