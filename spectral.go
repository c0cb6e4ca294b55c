/*
Package spectral is the companion verification library for the Fibonacci-Lucas
spectral law of the trinomial family x^n = x + 1. It provides exact integer
polynomial arithmetic (resultants, division with remainder, irreducibility
witnesses), the number-theoretic objects of the paper (trinomial roots, golden
ratio norms, Fibonacci and Lucas sequences), and a verifier that re-derives
every identity of the paper from scratch and checks it against the stated
closed forms.
*/
package spectral
