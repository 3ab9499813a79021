// Package repository resolves declared dependencies to artifact files.
//
// The Adapter drives resolution one dependency at a time through a Resolver
// and never fails as a whole: a dependency that cannot be resolved is logged
// and reported as a failed Outcome, and the remaining dependencies are still
// resolved. Callers build the classpath from Resolved(outcomes), which keeps
// the declaration order of the successful entries.
//
// Resolvers operate on the Maven 2 repository layout:
//
//	<root>/<groupId with dots as slashes>/<artifactId>/<version>/<artifactId>-<version>[-<classifier>].<extension>
//
// Local looks artifacts up in a directory tree, Remote downloads them over
// HTTP, and Chain tries the local repository first and then each remote in
// order, storing downloads in the local repository.
package repository
