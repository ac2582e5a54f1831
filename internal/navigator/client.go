package navigator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/savia-portfolio-chat/internal/classify"
	"github.com/savia-portfolio-chat/internal/jsonx"
)

// Classifier resolves free-form text the navigator has no fast-path for.
type Classifier interface {
	Classify(ctx context.Context, message string) (Reply, error)
}

// LocalClassifier runs the keyword engine in-process.
type LocalClassifier struct {
	engine *classify.CachedEngine
}

// NewLocalClassifier wraps a cached engine.
func NewLocalClassifier(engine *classify.CachedEngine) *LocalClassifier {
	return &LocalClassifier{engine: engine}
}

// Classify never fails locally; the error return satisfies Classifier.
func (lc *LocalClassifier) Classify(ctx context.Context, message string) (Reply, error) {
	ans := lc.engine.Classify(ctx, message)
	return answerToReply(ans), nil
}

func answerToReply(ans classify.Answer) Reply {
	return Reply{
		Message:   ans.Message,
		Portfolio: ans.Portfolio,
		Work:      ans.Work,
		Contact:   ans.Contact,
		Resume:    ans.Resume,
	}
}

// RemoteClassifier calls a chat API over HTTP. It exists for deployments
// where the classifier runs as its own service.
type RemoteClassifier struct {
	endpoint string
	client   *http.Client
}

// NewRemoteClassifier builds a client for the given /api/chat endpoint.
func NewRemoteClassifier(endpoint string, timeout time.Duration) *RemoteClassifier {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &RemoteClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Message Reply `json:"message"`
}

// Classify posts the message and decodes the wrapped reply.
func (rc *RemoteClassifier) Classify(ctx context.Context, message string) (Reply, error) {
	body, err := jsonx.Marshal(chatRequest{Message: message})
	if err != nil {
		return Reply{}, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rc.endpoint, bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rc.client.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reply{}, fmt.Errorf("chat request returned status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := jsonx.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return Reply{}, fmt.Errorf("decode chat response: %w", err)
	}
	return out.Message, nil
}
