// Package problem builds elevator problems, stores them by name and answers
// questions about stored problems.
package problem
