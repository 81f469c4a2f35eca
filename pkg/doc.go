// Package pkg contains the depscan libraries.
//
// depscan reads package manager manifests and reports the dependencies they
// declare, so that an update planner can later check each one against its
// upstream source. Nothing here talks to a registry: datasources are plain
// identifiers naming where a dependency would be looked up.
//
// # Packages
//
// [manager] defines the extraction contract: a [manager.Manager] matches
// files by pattern and hands their content to an Extractor, which returns a
// [manager.PackageFile] or nil. Each dependency has one of three shapes:
// registry pinned, git pinned, or skipped with a reason.
//
// The extractors live below it:
//
//   - manager/cocoapods: Podfiles, with source registries and git/path pods
//   - manager/bazel: git_repository rules in WORKSPACE files
//   - manager/meteor: Npm.depends blocks in package.js
//   - manager/rubyversion, manager/pyenv: single-value version files
//   - manager/managers: the built-in list and config overrides
//
// [pipeline] runs extraction for files or whole trees with a result cache,
// bounded concurrency and per-file error reporting. [api] serves the same
// runner over HTTP.
//
// Supporting packages: [cache] (file, SQLite, Redis and no-op backends),
// [config] (depscan.toml), [errors] (coded errors), [io] (JSON import/export)
// and [observability] (hooks and counters for metrics).
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.ExtractFile(ctx, "ios/Podfile", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, dep := range res.PackageFile.Deps {
//	    fmt.Println(dep.PackageName, dep.Datasource(), dep.CurrentValue())
//	}
//
// # Testing
//
//	go test ./...                       # unit tests
//	go test -tags integration ./pkg/... # include Redis tests (REDIS_URL)
//
// [manager]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/manager
// [manager.Manager]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/manager#Manager
// [manager.PackageFile]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/manager#PackageFile
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/pipeline
// [api]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/api
// [cache]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/depscan/pkg/observability
package pkg
