/*
Package sparse implements a simple type for sparse integer matrices.
It is used for the LL(1) transition table, where most of the
(non-terminal, terminal) cells are empty. Every entry in the matrix is either
a single int32 or a pair (int32,int32); a second value in a cell is how table
conflicts are recorded.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(5, 8, -1)    // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(4, 7)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	a, b     int32
}

func (t triplet) index(colcnt int) int {
	return t.row*colcnt + t.col
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue).
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, found := m.find(i, j); found {
		return m.values[k].a, m.values[k].b
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j). A second value already stored
// at (i,j) is cleared.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	m.setOrAdd(i, j, value, false)
	return m
}

// Add a value in the matrix at position (i,j). If (i,j) is empty, this is
// identical to Set. Otherwise value is stored as the second value of (i,j),
// overwriting a previous second value. Add returns true if (i,j) has already
// been occupied.
func (m *IntMatrix) Add(i, j int, value int32) bool {
	return m.setOrAdd(i, j, value, true)
}

// Each calls f for every position set, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.a, t.b)
	}
}

func (m *IntMatrix) setOrAdd(i, j int, value int32, doAdd bool) bool {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	k, found := m.find(i, j)
	if found {
		occupied := m.values[k].a != m.nullval
		if doAdd && occupied {
			m.values[k].b = value
		} else {
			m.values[k].a, m.values[k].b = value, m.nullval
		}
		return occupied
	}
	t := triplet{row: i, col: j, a: value, b: m.nullval}
	m.values = append(m.values, t)    // make room
	copy(m.values[k+1:], m.values[k:]) // shift remainder one index to the right
	m.values[k] = t
	return false
}

// find returns the index of (i,j) in the triplet slice, or the index where it
// would have to be inserted.
func (m *IntMatrix) find(i, j int) (int, bool) {
	target := i*m.colcnt + j
	k := sort.Search(len(m.values), func(n int) bool {
		return m.values[n].index(m.colcnt) >= target
	})
	return k, k < len(m.values) && m.values[k].row == i && m.values[k].col == j
}
