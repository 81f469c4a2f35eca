package cocoapods_test

import (
	"fmt"

	"github.com/matzehuels/depscan/pkg/manager/cocoapods"
)

func ExampleExtractor_Extract() {
	content := `source 'https://cdn.example/specs/'
pod 'A', '1.2.3'
pod 'B', :git => 'https://github.com/acct/repo.git', :tag => 'v2.0'
pod 'C', :path => '../local'
`
	pf := (&cocoapods.Extractor{}).Extract(content, "")
	for _, dep := range pf.Deps {
		if dep.Skipped() {
			fmt.Printf("%s skip=%s\n", dep.PackageName, dep.SkipReason())
			continue
		}
		fmt.Printf("%s %s@%s %v\n", dep.PackageName, dep.Datasource(), dep.CurrentValue(), dep.RegistryURLs())
	}
	// Output:
	// A pod@1.2.3 [https://cdn.example/specs]
	// acct/repo github-tags@v2.0 []
	// C skip=path-dependency
}
