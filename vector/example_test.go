// SPDX-License-Identifier: MIT
package vector_test

import (
	"fmt"

	"github.com/katalvlaran/qlinalg/complexnum"
	"github.com/katalvlaran/qlinalg/vector"
)

// ExampleAdd walks through negation, scalar product and addition.
func ExampleAdd() {
	v1 := vector.New(
		complexnum.New(6, -4), complexnum.New(7, 3),
		complexnum.New(4.2, -8.1), complexnum.New(0, -3),
	)
	neg, _ := vector.Negate(v1)
	fmt.Printf("-%v = %v\n", v1, neg)

	v2 := vector.New(
		complexnum.New(6, 3), complexnum.New(0, 0),
		complexnum.New(5, 1), complexnum.New(4, 0),
	)
	alpha := complexnum.New(3, 2)
	scaled, _ := vector.Scale(v2, alpha)
	fmt.Printf("%v * %v = %v\n", alpha, v2, scaled)

	v3 := vector.New(
		complexnum.New(16, 2.5), complexnum.New(0, -7),
		complexnum.New(6, 0), complexnum.New(0, -4),
	)
	sum, _ := vector.Add(v1, v3)
	fmt.Printf("%v + %v = %v\n", v1, v3, sum)

	_, err := vector.Add(v1, vector.New(complexnum.One()))
	fmt.Println(err)

	// Output:
	// -[6-4i, 7+3i, 4.2-8.1i, 0-3i] = [-6+4i, -7-3i, -4.2+8.1i, -0+3i]
	// 3+2i * [6+3i, 0+0i, 5+1i, 4+0i] = [12+21i, 0+0i, 13+13i, 12+8i]
	// [6-4i, 7+3i, 4.2-8.1i, 0-3i] + [16+2.5i, 0-7i, 6+0i, 0-4i] = [22-1.5i, 7-4i, 10.2-8.1i, 0-7i]
	// Add: vector: dimension mismatch
}

// ExampleInnerProduct shows the inner product, norm and distance.
func ExampleInnerProduct() {
	a := vector.New(complexnum.New(1, 1), complexnum.New(2, -1))
	b := vector.New(complexnum.New(3, 0), complexnum.New(0, 1))

	ip, _ := vector.InnerProduct(a, b)
	n, _ := vector.Norm(vector.New(complexnum.New(3, 4)))
	d, _ := vector.Distance(a, b)

	fmt.Println(ip)
	fmt.Println(n)
	fmt.Printf("%.4f\n", d)

	// Output:
	// 2-1i
	// 5
	// 3.6056
}
