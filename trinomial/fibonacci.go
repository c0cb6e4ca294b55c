package trinomial

import (
	"fmt"
	"math/big"
)

// Fibonacci returns F(k) with F(1) = F(2) = 1, for k >= 1.
func Fibonacci(k int) *big.Int {
	return recurrence(k, 1, 1)
}

// Lucas returns L(k) with L(1) = 1, L(2) = 3, for k >= 1.
func Lucas(k int) *big.Int {
	return recurrence(k, 1, 3)
}

func recurrence(k int, s1, s2 int64) *big.Int {
	if k < 1 {
		panic(fmt.Errorf("cannot recurrence: index must be >= 1, got %d", k))
	}
	a, b := big.NewInt(s1), big.NewInt(s2)
	for ; k > 1; k-- {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
