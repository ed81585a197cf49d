package trigger

import (
	"fmt"

	"github.com/profefranko/profefranko-api/pkg/httpclient"
	"github.com/profefranko/profefranko-api/pkg/logger"
	"go.uber.org/zap"
)

// CallAsync calls a trigger URL asynchronously with the submission reference
// appended. This is used to notify downstream automations (CRM sync, Slack
// alerts) after a contact or quote lands. Failures are logged but don't block
// the operation.
func CallAsync(triggerURL, reference string, httpClient httpclient.Client) {
	if triggerURL == "" {
		// No trigger URL configured, skip silently
		return
	}

	// Run in goroutine to avoid blocking
	go func() {
		targetURL := fmt.Sprintf("%s%s", triggerURL, reference)

		logger.Info("Calling trigger URL",
			zap.String("url", targetURL),
			zap.String("reference", reference))

		resp, err := httpClient.Get(targetURL)
		if err != nil {
			logger.Error("Failed to call trigger URL",
				zap.Error(err),
				zap.String("url", targetURL),
				zap.String("reference", reference))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			logger.Info("Trigger URL called successfully",
				zap.String("url", targetURL),
				zap.String("reference", reference),
				zap.Int("status_code", resp.StatusCode))
		} else {
			logger.Warn("Trigger URL returned non-success status",
				zap.String("url", targetURL),
				zap.String("reference", reference),
				zap.Int("status_code", resp.StatusCode))
		}
	}()
}
