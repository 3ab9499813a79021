// Package cmdutil provides shared command utilities. It centralizes flag
// group management, pipeline construction and output helpers.
package cmdutil

import (
	"os"

	"github.com/spf13/cobra"
)

// EnvExecutionID names the execution id override.
const EnvExecutionID = "ENHANCE_EXECUTION_ID"

// DefaultExecutionID is used when neither flag nor env sets one.
const DefaultExecutionID = "default"

// EnhanceFlags holds the goal parameters shared by enhance and classpath.
type EnhanceFlags struct {
	ClassSource      string
	ClassDestination string
	Packages         string
	TransformArgs    string
	Classpath        string
	Scope            string
	ExecutionID      string
}

// AddTo registers the goal flags on the given cobra command.
func (f *EnhanceFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ClassSource, "class-source", "",
		"Directory of compiled classes (default: target/classes or target/test-classes)")
	cmd.Flags().StringVar(&f.ClassDestination, "class-destination", "",
		"Output directory for enhanced classes (default: class source)")
	cmd.Flags().StringVar(&f.Packages, "packages", "",
		"Comma-delimited packages to enhance, optionally suffixed with * or **")
	cmd.Flags().StringVar(&f.TransformArgs, "transform-args", "",
		"Arguments passed to the engine verbatim")
	cmd.Flags().StringVar(&f.Classpath, "classpath", "",
		"Extra classpath appended after the class source")
	cmd.Flags().StringVar(&f.Scope, "scope", "",
		"Scope token naming target/<token>classes; test- selects test scope")
	cmd.Flags().StringVar(&f.ExecutionID, "execution-id", "",
		"Execution id; ids containing \"test\" select test scope (env: "+EnvExecutionID+")")
}

// ResolvedExecutionID returns the flag, then the env, then "default".
func (f *EnhanceFlags) ResolvedExecutionID() string {
	if f.ExecutionID != "" {
		return f.ExecutionID
	}
	if env := os.Getenv(EnvExecutionID); env != "" {
		return env
	}
	return DefaultExecutionID
}

// RepositoryFlags holds artifact repository flags.
type RepositoryFlags struct {
	LocalRepository string
	Remotes         []string
	Offline         bool
}

// AddTo registers the repository flags on the given cobra command.
func (f *RepositoryFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.LocalRepository, "local-repository", "",
		"Local repository directory (env: ENHANCE_REPOSITORY_LOCAL, default: ~/.m2/repository)")
	cmd.Flags().StringArrayVar(&f.Remotes, "remote-repository", nil,
		"Remote repository URL, tried in order (can be repeated; replaces configured remotes)")
	cmd.Flags().BoolVar(&f.Offline, "offline", false,
		"Resolve from the local repository only")
}

// ResolveProjectPath returns the project path from command args,
// defaulting to the current directory.
func ResolveProjectPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
