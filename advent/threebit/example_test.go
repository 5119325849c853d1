package threebit_test

import (
	"fmt"

	"github.com/cespare/advent/advent/threebit"
)

func ExampleRun() {
	prog := threebit.Program{0, 1, 5, 4, 3, 0}
	out := threebit.Run(prog, threebit.Registers{A: 729})
	fmt.Println(threebit.FormatOutput(out))
	// Output: 4,6,3,5,6,3,5,2,1,0
}

func ExampleQuine() {
	a, ok := threebit.Quine(threebit.Program{0, 3, 5, 4, 3, 0})
	fmt.Println(a, ok)
	// Output: 117440 true
}

func ExampleDisassemble() {
	fmt.Print(threebit.Disassemble(threebit.Program{2, 4, 1, 1, 7, 5, 4, 4, 0, 3, 5, 5, 3, 0}))
	// Output:
	//  0  bst A
	//  2  bxl 1
	//  4  cdv B
	//  6  bxc
	//  8  adv 3
	// 10  out B
	// 12  jnz 0
}
