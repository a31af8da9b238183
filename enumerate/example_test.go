package enumerate_test

import (
	"fmt"

	"github.com/katalvlaran/rnaenum/enumerate"
	"github.com/katalvlaran/rnaenum/nucleotide"
)

// ExampleEnumerate lists the unmutated structures of AUGC.
// Only A–U (0,1) and G–C (2,3) are compatible.
func ExampleEnumerate() {
	r := enumerate.DefaultRestrictions()
	r.MaxMutations = 0

	seqs, err := enumerate.Enumerate(nucleotide.MustParse("AUGC"), r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range seqs {
		fmt.Println(s)
	}
	// Output:
	// AUGC []
	// AUGC [(0,1)]
	// AUGC [(2,3)]
	// AUGC [(0,1), (2,3)]
}

// ExampleEnumerate_split forces a mutation at position 2. The mutated C
// (rendered lower-case) splits AUCAU into two independent AU segments.
func ExampleEnumerate_split() {
	r := enumerate.DefaultRestrictions()
	r.MinMutations, r.MaxMutations = 1, 1
	r.MutationSites = enumerate.Sites(2)

	seqs, err := enumerate.Enumerate(nucleotide.MustParse("AUCAU"), r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range seqs {
		fmt.Println(s)
	}
	// Output:
	// AUcAU []
	// AUcAU [(3,4)]
	// AUcAU [(0,1)]
	// AUcAU [(0,1), (3,4)]
}

// ExampleEnumerateParallel counts candidates with up to two mutations.
func ExampleEnumerateParallel() {
	r := enumerate.DefaultRestrictions()
	r.MaxMutations = 2

	seqs, err := enumerate.EnumerateParallel(nucleotide.MustParse("AUGC"), r, enumerate.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(seqs))
	// Output:
	// 20
}
