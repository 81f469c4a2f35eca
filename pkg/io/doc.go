// Package io reads and writes extraction results as JSON.
//
// # Format
//
// A package file is an object with a deps array and optional lockFiles:
//
//	{
//	  "deps": [
//	    {
//	      "depName": "A",
//	      "packageName": "A",
//	      "groupName": "A",
//	      "shape": "registry",
//	      "datasource": "pod",
//	      "currentValue": "1.2.3",
//	      "registryUrls": ["https://cdn.example/specs"],
//	      "managerData": {"lineNumber": 1}
//	    },
//	    {
//	      "depName": "C",
//	      "packageName": "C",
//	      "groupName": "C",
//	      "shape": "skip",
//	      "skipReason": "path-dependency",
//	      "managerData": {"lineNumber": 3}
//	    }
//	  ],
//	  "lockFiles": ["ios/Podfile.lock"]
//	}
//
// shape is one of "registry", "git" or "skip" and decides which of the
// datasource, currentValue, currentDigest, skipReason and registryUrls keys
// are meaningful. An absent package file (a manifest with nothing to
// extract) is encoded as null.
//
// # Import and Export
//
// [WriteJSON] and [ExportJSON] write any result value with two-space
// indentation. [ReadPackageFile] reads a single package file back.
package io
