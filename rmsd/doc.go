/*
Package rmsd computes optimal rigid superpositions of two structures and the
root-mean-square deviation between them.

The superposition is a mass-weighted version of the Kabsch algorithm that is
described in detail here: http://cnx.org/content/m11608/latest/

Superposition can be disabled, in which case the RMSD is computed on the
coordinates exactly as given. This is what a structural distance matrix
builder wants when the models already share a reference frame.
*/
package rmsd
