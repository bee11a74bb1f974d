package provider

import (
	"context"
	"fmt"
	"net/http"
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ProbeSDK проверяет, что скрипт SDK отдается. Ответ 5xx и сетевые ошибки повторяются.
func ProbeSDK(ctx context.Context, client HTTPDoer, retrier Retrier, url string) error {
	return retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return fmt.Errorf("build sdk request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("load sdk: %w", err)
		}
		_ = resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("load sdk: status %d", resp.StatusCode)
		}
		return nil
	})
}
