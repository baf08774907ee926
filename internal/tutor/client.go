package tutor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathplanner/internal/llm"
)

// Client issues one completion call per Complete and folds every outcome
// into a Result. It never retries.
type Client struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewClient creates a Client over provider. A zero timeout leaves the call
// without a deadline of its own.
func NewClient(provider llm.Provider, timeout time.Duration) *Client {
	return &Client{provider: provider, timeout: timeout}
}

// Complete sends systemRole and prompt as a system and a user message and
// returns the text of the first choice.
func (c *Client) Complete(ctx context.Context, systemRole, prompt string) Result {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.provider.Complete(ctx, llm.NewRequest(systemRole, prompt))
	if err != nil {
		return Failure(classify(err), err)
	}
	if resp.Text == "" {
		return Failure(KindService, &llm.ErrInvalidResponse{Err: fmt.Errorf("empty completion text")})
	}
	return Success(resp.Text)
}

// Model returns the model every call is sent to.
func (c *Client) Model() string {
	return c.provider.ModelID()
}

func classify(err error) ErrorKind {
	var authErr *llm.ErrAuthentication
	if errors.As(err, &authErr) {
		return KindAuth
	}
	return KindService
}
