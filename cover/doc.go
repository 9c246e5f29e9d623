/*
Package cover holds instances of the exact set covering problem.

An instance is a number N of elements, indexed 0 ... N-1, and M subsets of
those elements, each with a non-negative cost. A solution is a set of
subsets such that every element belongs to exactly one of them, and an
optimal solution is a solution of minimal total cost.

Instances are built with New, which validates its input, or read from a file:

	ins, err := cover.Load("instance.json")

Two file formats are understood. JSON files contain a single object:

	{"N": 3, "Costs": [1, 5, 1, 1], "Subsets": [[0, 1, 2], [0], [1], [2]]}

MPS files are accepted when they describe a set partitioning problem, i.e
a single cost row, equality rows only, 0/1 columns and a right-hand side
of 1 on every row.

Any problem with the input is reported as an *InputError.
*/
package cover
