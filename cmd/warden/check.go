package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/content"
	"github.com/dshills/warden/internal/content/gitprovider"
	"github.com/dshills/warden/internal/diffparse"
	"github.com/dshills/warden/internal/gitctx"
	"github.com/dshills/warden/internal/github"
	"github.com/dshills/warden/internal/output"
	"github.com/dshills/warden/internal/report"
	"github.com/dshills/warden/internal/runner"
)

var (
	flagConfig  string
	flagFormat  string
	flagOut     string
	flagPaths   string
	flagExclude string
)

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "warden.yml", "Path to the governance configuration file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json, markdown, sarif)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagPaths, "paths", "", "Include file path globs (comma-separated)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclude file path globs (comma-separated)")
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func diffOpts() gitctx.DiffOptions {
	var opts gitctx.DiffOptions
	if flagPaths != "" {
		opts.Include = splitComma(flagPaths)
	}
	if flagExclude != "" {
		opts.Exclude = splitComma(flagExclude)
	}
	return opts
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check code changes against declared watches",
	Long:  "Check code changes against declared watches. Use subcommands to select the diff source.",
}

var checkUnstagedCmd = &cobra.Command{
	Use:   "unstaged",
	Short: "Check unstaged changes (working tree vs index)",
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := gitctx.Unstaged(diffOpts())
		if err != nil {
			reportRuntimeError(err)
			return nil
		}
		_, err = runCheck(diff, content.Index, content.WorkingTree)
		return err
	},
}

var checkStagedCmd = &cobra.Command{
	Use:   "staged",
	Short: "Check staged changes (index vs HEAD)",
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := gitctx.Staged(diffOpts())
		if err != nil {
			reportRuntimeError(err)
			return nil
		}
		_, err = runCheck(diff, diff.Repo.Head, content.Index)
		return err
	},
}

var flagParent string

var checkCommitCmd = &cobra.Command{
	Use:   "commit <sha>",
	Short: "Check a specific commit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sha := args[0]
		parent := flagParent
		if parent == "" {
			parent = sha + "~1"
		}
		diff, err := gitctx.Commit(sha, flagParent, diffOpts())
		if err != nil {
			reportRuntimeError(err)
			return nil
		}
		_, err = runCheck(diff, parent, sha)
		return err
	},
}

var (
	flagMergeBase bool
	flagGitHubPR  int
)

var checkRangeCmd = &cobra.Command{
	Use:   "range <revRange>",
	Short: "Check a revision range (e.g., origin/main..HEAD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		revRange := args[0]
		diff, err := gitctx.Range(revRange, flagMergeBase, diffOpts())
		if err != nil {
			reportRuntimeError(err)
			return nil
		}
		base, head, err := resolveRange(revRange, flagMergeBase)
		if err != nil {
			reportRuntimeError(err)
			return nil
		}
		result, err := runCheck(diff, base, head)
		if err != nil || result == nil {
			return err
		}
		if flagGitHubPR > 0 {
			if err := postGitHubReview(diff, result.Reports); err != nil {
				fmt.Fprintf(os.Stderr, "Error posting GitHub review: %v\n", err)
				exitCode = ExitRuntimeError
			}
		}
		return nil
	},
}

// runCheck loads the configuration, runs the governance pipeline over
// diff against the given content revisions, and writes the report. It
// returns the result so callers that need it for further action (e.g.
// posting a GitHub review) don't have to re-run the pipeline.
func runCheck(diff gitctx.DiffResult, baseRef, headRef string) (*runner.Result, error) {
	root, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		exitCode = ExitUsageError
		return nil, nil
	}

	files := diffparse.Parse(diff.Diff)

	provider := gitprovider.New(diff.Repo.Root)

	result, err := runner.Run(context.Background(), files, root, provider, runner.Params{
		BaseRef: baseRef,
		HeadRef: headRef,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil, nil
	}

	if err := output.WriteReport(&result, flagFormat, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return nil, nil
	}

	if len(result.Reports) > 0 {
		exitCode = ExitSignals
	}
	return &result, nil
}

func reportRuntimeError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = ExitRuntimeError
}

func postGitHubReview(diff gitctx.DiffResult, reports []report.Output) error {
	owner, repo, err := github.DetectRepo()
	if err != nil {
		return err
	}
	client, err := github.NewClient()
	if err != nil {
		return err
	}
	diffFiles := make(map[string]bool, len(diff.Files))
	for _, f := range diff.Files {
		diffFiles[f] = true
	}
	review := github.BuildGitHubReview(reports, diffFiles)
	return client.PostReview(context.Background(), owner, repo, flagGitHubPR, review)
}

// resolveRange splits a revision range into explicit base/head
// revisions for content materialization, independent of the "..."
// rewriting gitctx.Range applies to the diff text itself.
func resolveRange(revRange string, mergeBase bool) (base, head string, err error) {
	sep := ".."
	if strings.Contains(revRange, "...") {
		sep = "..."
	}
	idx := strings.Index(revRange, sep)
	if idx < 0 {
		return "", "", fmt.Errorf("invalid revision range %q", revRange)
	}
	base = revRange[:idx]
	head = revRange[idx+len(sep):]

	if mergeBase {
		out, mergeErr := exec.Command("git", "merge-base", base, head).Output()
		if mergeErr == nil {
			base = strings.TrimSpace(string(out))
		}
	}
	return base, head, nil
}

func init() {
	checkCmd.AddCommand(checkUnstagedCmd)
	checkCmd.AddCommand(checkStagedCmd)
	checkCmd.AddCommand(checkCommitCmd)
	checkCmd.AddCommand(checkRangeCmd)

	for _, cmd := range []*cobra.Command{checkUnstagedCmd, checkStagedCmd, checkCommitCmd, checkRangeCmd} {
		addCheckFlags(cmd)
	}

	checkCommitCmd.Flags().StringVar(&flagParent, "parent", "", "Override parent SHA (for merge commits)")
	checkRangeCmd.Flags().BoolVar(&flagMergeBase, "merge-base", true, "Use merge base for branch comparisons")
	checkRangeCmd.Flags().IntVar(&flagGitHubPR, "github-pr", 0, "Post reports as a review on this PR number")
}
