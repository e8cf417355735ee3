// Copyright 2025 The tcam Authors
// This file is part of tcam.
//
// tcam is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tcam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with tcam. If not, see <http://www.gnu.org/licenses/>.

// Package trel defines the five-valued set relation used to classify the
// pair-wise relationship between ternary quads and ternary keys, along with
// the monoid used to fold many per-quad relations into a single per-key
// relation.
package trel

import "fmt"

// Relation classifies the relationship between two sets S1 and S2.
type Relation byte

const (
	// Equal means S1 is identical to S2.
	Equal Relation = iota
	// Subset means S1 is a proper subset of S2.
	Subset
	// Superset means S1 is a proper superset of S2.
	Superset
	// Intersect means S1 and S2 intersect but neither contains the other.
	Intersect
	// Disjoint means S1 and S2 share no elements.
	Disjoint
)

func (r Relation) String() string {
	switch r {
	case Equal:
		return "equal"
	case Subset:
		return "subset"
	case Superset:
		return "superset"
	case Intersect:
		return "intersect"
	case Disjoint:
		return "disjoint"
	default:
		panic(fmt.Sprintf("trel: invalid Relation value %d", byte(r)))
	}
}

// Update folds cur into acc and returns the new accumulator. Equal is the
// identity of the monoid; Disjoint is absorbing. Update is commutative and
// associative, which is what allows per-quad relations to be folded
// left-to-right, in any order, into a single per-key relation.
func Update(acc, cur Relation) Relation {
	switch cur {
	case Equal:
		return acc
	case Subset:
		if acc == Equal {
			return Subset
		}
		if acc == Superset {
			return Intersect
		}
		return acc
	case Superset:
		if acc == Equal {
			return Superset
		}
		if acc == Subset {
			return Intersect
		}
		return acc
	case Intersect:
		if acc != Disjoint {
			return Intersect
		}
		return acc
	case Disjoint:
		return Disjoint
	default:
		panic(fmt.Sprintf("trel: invalid Relation value %d", byte(cur)))
	}
}

// Swap maps Subset<->Superset and fixes Equal/Intersect/Disjoint. It
// expresses the relation-symmetry law: Relation(k2, k1) == Swap(Relation(k1, k2)).
func Swap(r Relation) Relation {
	switch r {
	case Subset:
		return Superset
	case Superset:
		return Subset
	default:
		return r
	}
}
