package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"content-gateway/pkg/api"
	"content-gateway/pkg/clients/supabase"
	"content-gateway/pkg/config"
	"content-gateway/pkg/seed"
	"content-gateway/pkg/services"
)

// app wires configuration, the store client and services together
type app struct {
	cfg            *config.Config
	contentService services.ContentService
	leadService    services.LeadService
}

func newApp() *app {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	// Initialize configuration
	cfg := config.LoadConfig()
	for _, w := range cfg.Warnings() {
		log.Printf("Warning: %s", w)
	}

	// A single store client is shared by all requests
	store := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StoreTimeout)

	return &app{
		cfg:            cfg,
		contentService: services.NewContentService(store, cfg.ContentRowID),
		leadService:    services.NewLeadService(store),
	}
}

func (a *app) router() *gin.Engine {
	gin.SetMode(a.cfg.GinMode)

	handlers := api.NewHandlers(a.contentService, a.leadService)
	return api.NewRouter(a.cfg, handlers)
}

func serve(c *cli.Context) error {
	a := newApp()
	router := a.router()

	// Start the server
	log.Printf("Server starting on port %s", a.cfg.Port)
	return router.Run(a.cfg.Addr())
}

func seedContent(c *cli.Context) error {
	a := newApp()

	content, err := seed.DefaultContent()
	if err != nil {
		return err
	}

	err = a.contentService.SeedContent(c.Context, content, c.Bool("force"))
	if errors.Is(err, services.ErrContentExists) {
		log.Println("Content already exists, nothing to do (use --force to overwrite)")
		return nil
	}
	return err
}

func runLambda(c *cli.Context) error {
	ginLambda := ginadapter.New(newApp().router())

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return ginLambda.ProxyWithContext(ctx, req)
	})
	return nil
}

func main() {
	cliApp := &cli.App{
		Name:   "content-gateway",
		Usage:  "Site content and lead capture API backed by Supabase",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serve,
			},
			{
				Name:  "seed",
				Usage: "Create the site content row from the built-in defaults",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite existing content",
					},
				},
				Action: seedContent,
			},
			{
				Name:   "lambda",
				Usage:  "Serve the API as an AWS Lambda function behind API Gateway",
				Action: runLambda,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
