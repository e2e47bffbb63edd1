package main

import (
	"fmt"
	"net"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nhdewitt/http-router/internal/request"
)

func main() {
	addr := pflag.String("addr", ":42069", "listen address")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatal("error listening", zap.Error(err))
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", *addr)
	for {
		c, err := listener.Accept()
		if err != nil {
			logger.Fatal("error accepting connection", zap.Error(err))
		}
		logger.Info("connection accepted", zap.Stringer("remote", c.RemoteAddr()))

		raw, err := request.ReadRaw(c, 0)
		if err != nil {
			logger.Warn("error reading request", zap.Error(err))
			c.Close()
			continue
		}
		req, err := request.Parse(raw)
		if err != nil {
			logger.Warn("error parsing request", zap.Error(err))
			c.Close()
			continue
		}

		fmt.Println("Request line:")
		fmt.Printf("- Method: %s\n", req.Method)
		fmt.Printf("- Target: %s\n", req.Resource.Path())
		fmt.Printf("- Version: %s\n", req.Version)
		fmt.Println("Headers:")
		for _, name := range req.Headers.Names() {
			fmt.Printf("- %s:%s\n", name, req.Headers.Get(name))
		}
		fmt.Println("Body:")
		fmt.Println(req.Body)
		c.Close()
		fmt.Println("Connection to ", c.RemoteAddr(), "closed")
	}
}
