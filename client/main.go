package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Smoke-test client for the stdio transport.
//
//	go run ./client/... bin/gtex-mcp
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./client/... <path_to_gtex_mcp_binary>")
	}
	program := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	c, err := client.NewStdioMCPClient(
		program,
		os.Environ(),
		os.Args[2:]...,
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer c.Close()
	captureServerLog(c)

	fmt.Println("Initializing client...")
	if err := c.Start(ctx); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "gtex-mcp-smoke-client",
		Version: "1.0.0",
	}

	serverInfo, err := c.Initialize(ctx, initRequest)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	fmt.Printf(
		"Initialized with server: %s %s\n\n",
		serverInfo.ServerInfo.Name,
		serverInfo.ServerInfo.Version,
	)

	fmt.Println("Performing health check...")
	if err := c.Ping(ctx); err != nil {
		log.Fatalf("Health check failed: %v", err)
	}
	fmt.Println("Server is alive and responding")

	if serverInfo.Capabilities.Tools != nil {
		fmt.Println("Fetching available tools...")
		toolsResult, err := c.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			log.Fatalf("Failed to list tools: %v", err)
		}
		fmt.Printf("Server has %d tools available\n", len(toolsResult.Tools))
		for i, tool := range toolsResult.Tools {
			fmt.Printf("  %d. %s - %s\n", i+1, tool.Name, tool.Description)
		}
	}

	// End-to-end check against the live portal: the service-info tool
	// needs no arguments and returns a small fixed payload.
	fmt.Println("\nCalling get_service_info...")
	callRequest := mcp.CallToolRequest{}
	callRequest.Params.Name = "get_service_info"
	callResult, err := c.CallTool(ctx, callRequest)
	if err != nil {
		log.Fatalf("Tool call failed: %v", err)
	}
	if callResult.IsError {
		log.Fatalf("Tool call returned an error result: %v", callResult.Content)
	}
	for _, content := range callResult.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			fmt.Println(text.Text)
		}
	}

	fmt.Println("Client finished successfully. Shutting down...")
}

func captureServerLog(c *client.Client) {
	if stderr, ok := client.GetStderr(c); ok {
		go func() {
			buf := make([]byte, 4096)
			for {
				n, err := stderr.Read(buf)
				if err != nil {
					if err != io.EOF {
						log.Printf("Error reading stderr: %v", err)
					}
					return
				}
				if n > 0 {
					fmt.Fprintf(os.Stderr, "[Server] %s", buf[:n])
				}
			}
		}()
	}
}
