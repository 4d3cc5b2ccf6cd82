// parse-receipt runs the extraction pipeline on a single file and prints the
// result as JSON. No database, no matching; handy for tuning the heuristics.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/pipeline"
	"github.com/ezbooks/ezbooks/internal/resolver"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parse-receipt <file>")
		os.Exit(2)
	}
	path := os.Args[1]
	body, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var analyzer docai.DocumentAnalyzer
	if cfg.DocAI.Region != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.DocAI.Region))
		if err != nil {
			logger.Error("load AWS config", "error", err)
			os.Exit(1)
		}
		analyzer = docai.NewTextractAnalyzer(textract.NewFromConfig(awsCfg), cfg.DocAI.Timeout, logger)
	} else {
		analyzer = docai.NewTesseractAnalyzer(cfg.DocAI.TessdataDir, os.TempDir(), logger)
	}

	pipe := pipeline.New(analyzer, resolver.FromConfig(cfg.Resolver, logger), nil, logger)
	result, err := pipe.Parse(ctx, uuid.Nil, docai.Document{
		Bytes:       body,
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Filename:    filepath.Base(path),
	})
	if err != nil {
		logger.Error("parse failed", "path", path, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
