package webserve

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Server owns the listening socket and the console output around it.
type Server struct {
	config Config
	root   string
	out    io.Writer
	server *http.Server
}

// NewServer validates the configuration and prepares the server. The
// root directory must exist; nothing is bound yet.
func NewServer(config Config) (*Server, error) {
	root, err := config.resolveDir()
	if err != nil {
		return nil, err
	}
	handler := NewHandler(os.DirFS(root).(fs.StatFS), os.Stdout)
	return &Server{
		config: config,
		root:   root,
		out:    os.Stdout,
		server: &http.Server{Handler: handler},
	}, nil
}

func (s *Server) printBanner() {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "静态服务器已启动")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "访问地址: %s\n", color.CyanString("http://localhost:%d", s.config.Port))
	fmt.Fprintf(s.out, "访问地址: %s\n", color.CyanString("http://127.0.0.1:%d", s.config.Port))
	fmt.Fprintf(s.out, "工作目录: %s\n", s.root)
	fmt.Fprintln(s.out, "按 Ctrl+C 停止服务器")
	fmt.Fprintln(s.out, rule)
}

// Run binds the listening socket, prints the banner, and serves until
// a termination signal arrives. A bind failure is returned before
// anything is printed or served.
func (s *Server) Run() error {
	listener, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", s.config.Addr())
	}
	s.printBanner()

	// Register for signals before serving so a termination during
	// startup is not missed.
	termination := make(chan os.Signal, 1)
	signal.Notify(termination, terminationSignals...)
	defer signal.Stop(termination)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.server.Serve(listener)
	}()

	select {
	case sig := <-termination:
		slog.Debug("termination signal", "signal", sig.String())
		fmt.Fprintln(s.out, "\n服务器已停止")
		return s.server.Close()
	case err := <-serverErrors:
		return errors.Wrap(err, "server terminated unexpectedly")
	}
}
