package manager_test

import (
	"fmt"

	"github.com/matzehuels/depscan/pkg/manager/cocoapods"
)

func ExampleExtractor() {
	for _, content := range []string{"pod 'Alamofire', '5.8.1'\n", "\x00\x01"} {
		pf := cocoapods.New(nil).Extract(content, "")
		if pf == nil {
			fmt.Println("skipped")
			continue
		}
		for _, dep := range pf.Deps {
			fmt.Println(dep.PackageName, dep.Datasource(), dep.CurrentValue())
		}
	}
	// Output:
	// Alamofire pod 5.8.1
	// skipped
}
