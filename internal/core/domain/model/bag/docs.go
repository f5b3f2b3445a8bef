// Package bag implements the SortingBag aggregate: a capacity- and
// priority-constrained transport container of tagged orders moving between
// the retail outlet and the processing facility.
package bag
