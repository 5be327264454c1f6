// Command ratcalc is a calculator for exact complex rationals.
//
// Usage:
//
//	ratcalc eval 1/3-1/4j / -1/2j
//	ratcalc pow 1+1j 8
//	ratcalc tower 2 4
//	ratcalc batch -f cases.yaml --sum
//
// SPDX-License-Identifier: MIT
package main

import "github.com/lukaszgryglicki/ratcomplex/internal/cli"

func main() {
	cli.Execute()
}
