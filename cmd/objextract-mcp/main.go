package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/object-extract-mcp/internal/config"
	"github.com/ironsheep/object-extract-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("objextract-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "extract":
			log.SetOutput(os.Stderr)
			log.SetFlags(0)
			if err := runExtract(os.Args[2:], config.Load(log.Default())); err != nil {
				log.Fatalf("extract: %v", err)
			}
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load(log.Default())
	if cfg.Debug() {
		log.Printf("Object Extract MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	server.Version = Version
	srv := server.New(cfg, log.Default())
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("objextract-mcp - MCP server that cuts transparent images into objects")
	fmt.Println()
	fmt.Println("Usage: objextract-mcp [options]")
	fmt.Println("       objextract-mcp extract [-threshold N] [-min N] [-out DIR] [-bucket B] [-preview FILE] image.png")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  OBJEXTRACT_LOG_LEVEL=debug      Enable debug logging")
	fmt.Println("  OBJEXTRACT_THRESHOLD=100        Default alpha threshold (10-255)")
	fmt.Println("  OBJEXTRACT_MIN_DIMENSION=10     Default minimum object size")
	fmt.Println("  OBJEXTRACT_OUTPUT_DIR=.         Export directory")
	fmt.Println("  OBJEXTRACT_S3_BUCKET            Export to this S3 bucket instead")
	fmt.Println("  OBJEXTRACT_S3_PREFIX            Key prefix inside the bucket")
	fmt.Println("  OBJEXTRACT_S3_REGION=eu-west-2  AWS region of the bucket")
	fmt.Println()
	fmt.Println("Without a command the server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
