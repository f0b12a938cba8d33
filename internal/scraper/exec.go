package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// ExecScraper bridges to an external scraper process. The request is written
// as JSON to the process's stdin and the result is read as JSON from its
// stdout; a non-zero exit is a transport error, while provider-level failure
// comes back in the result's success flag.
type ExecScraper struct {
	command  string
	provider Provider
}

func NewExec(command string, provider Provider) *ExecScraper {
	return &ExecScraper{command: command, provider: provider}
}

type execRequest struct {
	Provider    Provider    `json:"provider"`
	Credentials Credentials `json:"credentials"`
	Options     Options     `json:"options"`
}

func (e *ExecScraper) Scrape(ctx context.Context, creds Credentials, opts Options) (*Result, error) {
	input, err := json.Marshal(execRequest{
		Provider:    e.provider,
		Credentials: creds,
		Options:     opts,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding scrape request: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.command)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running scraper for %s: %w (stderr: %s)", e.provider, err, stderr.String())
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("parsing scraper output for %s: %w", e.provider, err)
	}

	return &result, nil
}
