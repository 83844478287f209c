package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/openlogistics-io/referencedata/internal/logger/adapter/fiber"

	"github.com/openlogistics-io/referencedata/internal/logger"
)

// accessLogLine implements the loggers default json format.
type accessLogLine struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
}

func consoleConfig() adapter.Config {
	return adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			Console:                  logger.Console{Enabled: true},
		},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *accessLogLine
	}{
		{
			name:       "no writers no output",
			targetPath: "/",
			config:     adapter.Config{},
			want:       nil,
		},
		{
			name:       "get / log to console json",
			targetPath: "/",
			config:     consoleConfig(),
			want:       &accessLogLine{Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "query string kept in URI",
			targetPath: "/?name=EM",
			config:     consoleConfig(),
			want:       &accessLogLine{Status: 200, URI: "/?name=EM", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "not found logged with original path",
			targetPath: "//missing",
			config:     consoleConfig(),
			want:       &accessLogLine{Status: 404, URI: "//missing", Method: fiber.MethodGet, Host: "example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := runMiddleware(t, tt.targetPath, tt.config)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			require.NotEmpty(t, output)

			var line accessLogLine
			require.NoError(t, json.Unmarshal([]byte(output), &line))

			assert.Equal(t, tt.want.Status, line.Status)
			assert.Equal(t, tt.want.URI, line.URI)
			assert.Equal(t, tt.want.Method, line.Method)
			assert.Equal(t, tt.want.Host, line.Host)
		})
	}
}

func TestCheckAliveNotLogged(t *testing.T) {
	cfg := consoleConfig()
	cfg.Config.DisableCheckAlive = true
	cfg.CheckAliveURI = "/checkalive"

	output := runMiddleware(t, "/checkalive", cfg)
	assert.Empty(t, output)
}

func runMiddleware(t *testing.T, targetPath string, adapterConfig adapter.Config) string {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapterConfig))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("alive")
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil))
	if err != nil {
		_ = w.Close()
		os.Stdout = stdout
		os.Stderr = stderr
		t.Fatal(err)
	}

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		if _, copyErr := io.Copy(&buf, r); copyErr != nil {
			return
		}

		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr

	return <-outC
}
