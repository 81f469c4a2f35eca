// Package cocoapods extracts pod declarations from CocoaPods Podfiles.
//
// # Overview
//
// A Podfile is Ruby, but depscan never evaluates it. Each line is matched
// against a fixed list of patterns and the captured fields decide the shape
// of the dependency:
//
//	source 'https://cdn.cocoapods.org/'
//	pod 'Alamofire', '5.8.1'                                  # registry pin
//	pod 'Kingfisher', :git => 'https://github.com/onevcat/Kingfisher.git', :tag => '7.10.0'
//	pod 'Local', :path => '../Local'                          # path-dependency
//	pod 'Firebase/Analytics'                                  # unspecified-version
//
// Registry pins carry the source URLs declared on or above their line.
// Sources declared further down never apply to earlier pods.
//
// Git pins hosted on github.com or gitlab.com map to the host's tag
// datasource with an account/repo package name. Other git hosts use the
// generic git-tags datasource and keep the URL as the package name.
//
// # Usage
//
//	m := cocoapods.New(logger)
//	pf := m.Extract(content, "ios/Podfile")
//
// When a Podfile.lock exists next to the manifest its path is reported in
// [manager.PackageFile.LockFiles].
package cocoapods
