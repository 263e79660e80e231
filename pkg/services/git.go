package services

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

// ExecuteGitWithToken runs git in dir, replacing the remote name in args by
// its URL with the token embedded. The token never appears in the output.
func ExecuteGitWithToken(ctx context.Context, dir, remote, token string, args ...string) (string, error) {
	cmdGetURL := exec.CommandContext(ctx, "git", "remote", "get-url", remote)
	cmdGetURL.Dir = dir
	outURL, err := cmdGetURL.Output()
	if err != nil {
		return "Failed to get remote url", err
	}
	remoteURL := strings.TrimSpace(string(outURL))
	authenticatedURL, err := withToken(remoteURL, token)
	if err != nil {
		return "Invalid remote url", err
	}

	newArgs := make([]string, len(args))
	copy(newArgs, args)
	for i, v := range newArgs {
		if v == remote {
			newArgs[i] = authenticatedURL
		}
	}
	cmd := exec.CommandContext(ctx, "git", newArgs...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return maskToken(string(output), token, authenticatedURL, remoteURL), err
}

func withToken(remoteURL, token string) (string, error) {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("remote %q is not an http(s) url", remoteURL)
	}
	u.User = url.UserPassword("oauth2", token)
	return u.String(), nil
}

func maskToken(output, token, authenticatedURL, remoteURL string) string {
	if authenticatedURL != "" {
		output = strings.ReplaceAll(output, authenticatedURL, remoteURL)
	}
	if token != "" {
		output = strings.ReplaceAll(output, token, "***")
	}
	return output
}

// SyncRepo pulls the content repository and drops the store index so new
// and removed translations are visible on the next lookup.
func SyncRepo(ctx context.Context, store *ContentStore, dir, remote, branch, token string) (string, error) {
	log, err := ExecuteGitWithToken(ctx, dir, remote, token, "pull", remote, branch)
	if err == nil {
		store.Invalidate()
	}
	return log, err
}
