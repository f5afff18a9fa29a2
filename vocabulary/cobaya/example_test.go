package cobaya_test

import (
	"fmt"

	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
)

func ExampleComposeChi2Name() {
	name := cobaya.ComposeChi2Name("planck_2018")
	like, _ := cobaya.DecomposeChi2Name(name)
	fmt.Println(name)
	fmt.Println(like)
	// Output:
	// chi2__planck_2018
	// planck_2018
}

func ExampleChi2NamesFor() {
	fmt.Println(cobaya.Chi2NamesFor([]string{"bao", "sn"}))
	fmt.Println(cobaya.MinusLogPriorNamesFor([]string{"0"}))
	// Output:
	// [chi2__bao chi2__sn]
	// [minuslogprior__0]
}
