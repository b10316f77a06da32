package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aitrends/gh-aitrends/internal/commands"
	"github.com/aitrends/gh-aitrends/internal/config"
	lambdapkg "github.com/aitrends/gh-aitrends/internal/lambda"
)

//go:embed affiliate_links.json
var affiliateLinksJSON []byte

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.Load()

	var affiliateLinks map[string]string
	if err := json.Unmarshal(affiliateLinksJSON, &affiliateLinks); err != nil {
		log.Fatalf("Error parsing affiliate links JSON: %v", err)
	}

	app, err := commands.NewApp(cfg, affiliateLinks, GitSHA, GitDirty)
	if err != nil {
		log.Fatalf("Error initializing application: %v", err)
	}

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app))
	} else {
		rootCmd := app.NewRootCommand()
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := app.SaveCache(); err != nil {
			log.Fatalf("Error saving cache: %v", err)
		}
	}
}
