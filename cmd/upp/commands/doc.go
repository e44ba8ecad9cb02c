// Package commands defines the upp CLI.
//
// Commands
//
//   - mul    Multiply two polynomials classically and with Karatsuba
//   - bench  Time both multiplication algorithms on random polynomials
//   - frac   Evaluate a single fraction expression
//
// Coefficients are given in ascending order of degree, so "--a 1,2,3"
// denotes 3x^2 + 2x + 1.
//
// Negative fraction operands must come after "--", as in
// "upp frac -- -1/2 * 3".
package commands
