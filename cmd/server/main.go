package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_string_toolkit/pkg/normalize"
	"github.com/baditaflorin/go_string_toolkit/pkg/table"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB; inputs are single strings
)

var (
	normalizer *normalize.Normalizer
	renderer   *table.Renderer
	logger     l.Logger
)

// NormalizeRequest carries one text and the optional pipeline stages.
type NormalizeRequest struct {
	Text         string `json:"text"`
	Strict       bool   `json:"strict,omitempty"`
	StripEscapes bool   `json:"strip_escapes,omitempty"`
}

// NormalizeResponse is the canonical form of the input text.
type NormalizeResponse struct {
	Result       string `json:"result"`
	VisualLength int    `json:"visual_length"`
}

// ValidateRequest distinguishes a missing text from a blank one: an absent
// "text" key is the missing state.
type ValidateRequest struct {
	Text    *string  `json:"text"`
	Allowed []string `json:"allowed,omitempty"`
}

// ValidateResponse reports the validation verdict.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// PalindromeRequest selects the diacritic-folding comparison mode.
type PalindromeRequest struct {
	Text           string `json:"text"`
	FoldDiacritics bool   `json:"fold_diacritics"`
}

// CheckResponse is the shared boolean verdict for palindrome and anagram checks.
type CheckResponse struct {
	Result bool `json:"result"`
}

// AnagramRequest carries the two candidate strings.
type AnagramRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// TableRequest carries ordered records: each record is a sequence of
// key/value pairs, since JSON objects do not preserve key order.
type TableRequest struct {
	Records [][]TableField `json:"records"`
}

// TableField is one cell of a record.
type TableField struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// TableResponse carries the rendered table or the consistency error string.
type TableResponse struct {
	Table string `json:"table"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	warmUp := flag.Bool("warm-up", true, "Prime internal pools on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting string toolkit HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
	)

	initToolkit(*warmUp)

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		MaxRequestBodySize: *maxRequestSize,
		TCPKeepalive:       true,
		TCPKeepalivePeriod: 3 * time.Minute,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  logFile != "",
		AsyncWrite:  true,
		BufferSize:  256 * 1024,
		MaxFileSize: 5 * 1024 * 1024,
		MaxBackups:  3,
		AddSource:   true,
	})
}

// initToolkit builds the shared normalizer and renderer instances.
func initToolkit(warmUp bool) {
	var err error
	normalizer, err = normalize.New(
		normalize.WithLogger(logger),
		normalize.WithWarmUp(warmUp),
	)
	if err != nil {
		logger.Error("Failed to initialize normalizer", "error", err)
		os.Exit(1)
	}

	renderer, err = table.New(
		table.WithLogger(logger),
		table.WithWarmUp(warmUp),
	)
	if err != nil {
		logger.Error("Failed to initialize table renderer", "error", err)
		os.Exit(1)
	}

	logger.Info("Toolkit initialized", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "StringToolkitServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/normalize":
		handleNormalize(ctx)
	case "/validate":
		handleValidate(ctx)
	case "/palindrome":
		handlePalindrome(ctx)
	case "/anagram":
		handleAnagram(ctx)
	case "/table":
		handleTable(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func handleNormalize(ctx *fasthttp.RequestCtx) {
	var req NormalizeRequest
	if !decodeBody(ctx, &req) {
		return
	}
	result := normalizer.NormalizeWith(req.Text, req.Strict, req.StripEscapes)
	writeJSONResponse(ctx, NormalizeResponse{
		Result:       result,
		VisualLength: normalizer.VisualLength(result),
	})
}

func handleValidate(ctx *fasthttp.RequestCtx) {
	var req ValidateRequest
	if !decodeBody(ctx, &req) {
		return
	}
	value := normalize.NoText()
	if req.Text != nil {
		value = normalize.NewText(*req.Text)
	}
	var valid bool
	if len(req.Allowed) > 0 {
		valid = normalizer.ValidateAgainst(value, req.Allowed)
	} else {
		valid = normalizer.Validate(value)
	}
	writeJSONResponse(ctx, ValidateResponse{Valid: valid})
}

func handlePalindrome(ctx *fasthttp.RequestCtx) {
	var req PalindromeRequest
	if !decodeBody(ctx, &req) {
		return
	}
	result := normalizer.IsPalindrome(normalize.NewText(req.Text), req.FoldDiacritics)
	writeJSONResponse(ctx, CheckResponse{Result: result})
}

func handleAnagram(ctx *fasthttp.RequestCtx) {
	var req AnagramRequest
	if !decodeBody(ctx, &req) {
		return
	}
	result := normalizer.IsAnagram(normalize.NewText(req.A), normalize.NewText(req.B))
	writeJSONResponse(ctx, CheckResponse{Result: result})
}

func handleTable(ctx *fasthttp.RequestCtx) {
	var req TableRequest
	if !decodeBody(ctx, &req) {
		return
	}
	records := make([]table.Record, len(req.Records))
	for i, fields := range req.Records {
		rec := make(table.Record, len(fields))
		for j, f := range fields {
			rec[j] = table.Field{Key: f.Key, Value: f.Value}
		}
		records[i] = rec
	}
	writeJSONResponse(ctx, TableResponse{Table: renderer.Render(records)})
}

// decodeBody parses the request body as JSON, writing a 400 on failure.
func decodeBody(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "POST required")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "encoding failure")
		return
	}
	ctx.SetBody(body)
}

func writeJSONError(ctx *fasthttp.RequestCtx, msg string) {
	body, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.SetBody(body)
}
