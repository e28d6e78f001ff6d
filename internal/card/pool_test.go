package card

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSubmitRunsJobAndReturnsResult(t *testing.T) {
	p := NewPool(2, 4)
	p.Start(context.Background())
	defer p.Stop()

	out, err := p.Submit(context.Background(), func() ([]byte, error) {
		return []byte("hello"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestPoolSubmitRespectsContextCancellation(t *testing.T) {
	p := NewPool(1, 1)
	p.Start(context.Background())
	defer p.Stop()

	block := make(chan struct{})
	// Occupy the single worker so the queue fills up behind it.
	go p.Submit(context.Background(), func() ([]byte, error) {
		<-block
		return nil, nil
	})
	time.Sleep(10 * time.Millisecond)
	go p.Submit(context.Background(), func() ([]byte, error) { <-block; return nil, nil })
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Submit(ctx, func() ([]byte, error) { return nil, nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
}
