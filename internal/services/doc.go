// Package services defines the shared error taxonomy for pipeline components
// and hosts clients for external tools.
//
// Errors are tagged with sentinel markers via Wrap so the pipeline can decide
// whether a failure aborts the build, degrades one platform, or excludes a
// single catalog entry.
package services
