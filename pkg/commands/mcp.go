package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes diary records, statistics and month
calendars as tools and resources.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			path := strings.TrimSpace(httpPath)
			if path == "" {
				path = "/mcp"
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Records:          e.Service,
				Log:              e.Log,
				Name:             "nomilog",
				Version:          version,
				HTTPEndpointPath: path,
				HTTPServerCert:   strings.TrimSpace(httpTLSCert),
				HTTPServerKey:    strings.TrimSpace(httpTLSKey),
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportHTTP):
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}

				addr := net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", listenURL(a, host, path, runner.HTTPServerCert != ""))
				}
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			return runner.Do(cmdContext(cmd))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

// listenURL names the bound address the way a client would dial it.
func listenURL(a net.Addr, host, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, a.String(), path)
	}

	displayHost := host
	if displayHost == "" || displayHost == "0.0.0.0" || displayHost == "::" {
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			displayHost = tcpAddr.IP.String()
		} else {
			displayHost = "127.0.0.1"
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(displayHost, strconv.Itoa(tcpAddr.Port)), path)
}
