package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// getLinesChannel yields the lines of f with trailing CR removed.
func getLinesChannel(f io.Reader) <-chan string {
	out := make(chan string)

	currentLine := ""
	go func() {
		defer close(out)

		buf := make([]byte, 8)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				parts := strings.Split(string(buf[:n]), "\n")
				for i := 0; i < len(parts)-1; i++ {
					out <- strings.TrimSuffix(currentLine+parts[i], "\r")
					currentLine = ""
				}
				currentLine += parts[len(parts)-1]
			}
			if errors.Is(err, io.EOF) {
				if currentLine != "" {
					out <- strings.TrimSuffix(currentLine, "\r")
					currentLine = ""
				}
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return out
}

// buildRequest joins lines with CRLF and makes sure the head is terminated.
func buildRequest(lines <-chan string) string {
	var b strings.Builder
	for line := range lines {
		b.WriteString(line + "\r\n")
	}
	raw := b.String()
	if !strings.Contains(raw, "\r\n\r\n") {
		raw += "\r\n"
	}
	return raw
}

func main() {
	addr := pflag.String("addr", "localhost:3000", "server address")
	timeout := pflag.Duration("timeout", 5*time.Second, "connection deadline")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	raw := buildRequest(getLinesChannel(os.Stdin))

	conn, err := net.DialTimeout("tcp", *addr, *timeout)
	if err != nil {
		logger.Fatal("error dialing", zap.String("addr", *addr), zap.Error(err))
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(*timeout))

	if _, err := conn.Write([]byte(raw)); err != nil {
		logger.Fatal("write error", zap.Error(err))
	}
	resp, err := io.ReadAll(conn)
	if err != nil {
		logger.Warn("read error", zap.Error(err))
	}
	fmt.Print(string(resp))
}
