package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caretide/caretide_backend/config"
)

// lokiWriter is an io.Writer that pushes JSON log lines to Loki's push API,
// one line per Write call. A hand-rolled pusher is enough here; a full Loki
// client would pull in its own batching and retry machinery.
type lokiWriter struct {
	endpoint string
	username string
	password string
	client   *http.Client
	stream   map[string]string
}

func newLokiHandler(cfg *config.Config, level slog.Level) slog.Handler {
	lw := &lokiWriter{
		endpoint: cfg.Logging.Output.Loki.Endpoint + "/loki/api/v1/push",
		username: cfg.Logging.Output.Loki.Username,
		password: cfg.Logging.Output.Loki.Password,
		client:   &http.Client{Timeout: 3 * time.Second},
		stream: map[string]string{
			"service": cfg.Observability.ServiceName,
			"env":     cfg.Server.Environment,
		},
	}
	return slog.NewJSONHandler(lw, &slog.HandlerOptions{Level: level})
}

type lokiPush struct {
	Streams []lokiStream `json:"streams"`
}

type lokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

func (lw *lokiWriter) Write(p []byte) (n int, err error) {
	ts := strconv.FormatInt(time.Now().UnixNano(), 10)
	line := string(bytes.TrimRight(p, "\n"))

	payload, err := json.Marshal(lokiPush{
		Streams: []lokiStream{{
			Stream: lw.stream,
			Values: [][2]string{{ts, line}},
		}},
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, lw.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lw.username != "" {
		req.SetBasicAuth(lw.username, lw.password)
	}

	resp, err := lw.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return len(p), nil
}
