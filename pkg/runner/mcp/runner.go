package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/logging"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Records *app.Service
	Log     logging.Logger
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Records == nil {
		return errors.New("mcp runner requires a record service")
	}
	name := r.Name
	if name == "" {
		name = "nomilog"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and log drinking diary records, and query per-period statistics and month calendars."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Records)
	registerResources(srv, svc)
	registerTools(srv, svc)

	switch t := r.Transport; t {
	case "", TransportStdio:
		r.log().Debug(ctx, "serving mcp over stdio")
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) log() logging.Logger {
	if r.Log == nil {
		return logging.Nop()
	}
	return r.Log
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.HTTPServerCert == "") != (r.HTTPServerKey == "") {
		return errors.New("both http tls cert and key must be provided")
	}

	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))

	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	r.log().Info(ctx, "serving mcp over http", "addr", ln.Addr().String(), "path", path)

	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.HTTPServerCert != "" {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
